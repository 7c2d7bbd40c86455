// utils/auth.go
package utils

import (
	"errors"
	"strings"
	"time"

	"aiva-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a signed JWT whose subject is the technician's email.
func GenerateToken(email string) (string, error) {
	expiryHours := config.C.JWTExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24 * 7
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	if config.C.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}

	return token.SignedString([]byte(config.C.JWTSecret))
}

// ParseSubject verifies the token signature and expiry and returns the
// embedded subject email.
func ParseSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.C.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}

// Auth middleware
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(header) < 8 || strings.ToUpper(header[0:6]) != "BEARER" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Missing or invalid auth header"})
			return
		}
		tokenString := strings.TrimSpace(header[7:])

		email, err := ParseSubject(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}

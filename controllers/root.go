package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is a liveness probe.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AIVA backend running"})
}

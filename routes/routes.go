package routes

import (
	"aiva-backend/config"
	"aiva-backend/controllers"
	"aiva-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if config.C.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{config.C.AllowedOrigin}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Authorization", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Public
	r.POST("/signup-technician", controllers.SignupTechnician)
	r.POST("/login", controllers.Login)
	r.POST("/payment-webhook", controllers.PaymentWebhook)
	r.GET("/webhook", controllers.VerifyWebhook)
	r.POST("/webhook", controllers.ReceiveWebhook)
	r.GET("/", controllers.Root)

	// Bearer-protected
	authed := r.Group("/")
	authed.Use(utils.AuthMiddleware())
	{
		authed.GET("/me", controllers.Me)

		authed.POST("/services", controllers.CreateService)
		authed.GET("/services/me", controllers.GetMyServices)
		authed.PUT("/services/:id", controllers.UpdateService)
		authed.DELETE("/services/:id", controllers.DeleteService)

		authed.POST("/check-availability", controllers.CheckAvailability)
		authed.POST("/book", controllers.CreateBooking)
		authed.GET("/bookings/me", controllers.GetMyBookings)
		authed.POST("/bookings/:id/cancel", controllers.CancelBooking)

		authed.POST("/chat", controllers.Chat)
	}

	return r
}

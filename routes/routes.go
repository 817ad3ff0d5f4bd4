package routes

import (
	"net/http"
	"time"

	"egarage/handlers"
	"egarage/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/signup", hb.Auth.Signup)
	r.POST("/login", hb.Auth.Login)
}

// RegisterVehicleRoutes registers the vehicle registry endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/vehicle")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo, hb.AuthCache))
		api.POST("/add", middleware.RequireCapability("vehicle:add"), hb.Vehicle.Add)
		api.GET("/user", middleware.RequireCapability("vehicle:list"), hb.Vehicle.ListOwn)
		api.GET("/:id", middleware.RequireCapability("vehicle:get"), hb.Vehicle.Get)
		api.PUT("/:id", middleware.RequireCapability("vehicle:update"), hb.Vehicle.Update)
		api.DELETE("/:id", middleware.RequireCapability("vehicle:delete"), hb.Vehicle.Delete)
	}
}

// RegisterProviderRoutes registers the service-provider directory endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/serviceProvider")
	{
		// The directory listing is public; registration requires a
		// ServiceProvider account.
		api.GET("/get", hb.Provider.List)
		api.POST("/register",
			middleware.JWTAuthMiddleware(hb.AccountRepo, hb.AuthCache),
			middleware.RequireCapability("provider:register"),
			hb.Provider.Register)
	}
}

// RegisterAppointmentRoutes registers booking, payment and listing endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/appointment")
	{
		// Revenue stays public per the storefront's dashboard widget.
		api.GET("/total-revenue", hb.Appointment.TotalRevenue)

		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo, hb.AuthCache))
		api.POST("/book", middleware.RequireCapability("appointment:book"), hb.Appointment.Book)
		api.POST("/:id/payment/confirm", middleware.RequireCapability("appointment:pay"), hb.Appointment.ConfirmPayment)
		api.PATCH("/:id/status", middleware.RequireCapability("appointment:transition"), hb.Appointment.UpdateStatus)
		api.GET("/user", middleware.RequireCapability("appointment:list-own"), hb.Appointment.ListOwn)
		api.GET("/provider", middleware.RequireCapability("appointment:list-provider"), hb.Appointment.ListForProvider)
		api.GET("/all", middleware.RequireCapability("appointment:list-all"), hb.Appointment.ListAll)
	}
}

// RegisterMessageRoutes registers the contact-message endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/messages")
	{
		api.POST("/sendmessage", hb.Message.Send)
		api.GET("/messages",
			middleware.JWTAuthMiddleware(hb.AccountRepo, hb.AuthCache),
			middleware.RequireCapability("message:list"),
			hb.Message.List)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterHealthRoute(r)
}

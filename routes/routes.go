package routes

import (
	"net/http"
	"time"

	"fitbook/config"
	"fitbook/handlers"
	"fitbook/middleware"
	"fitbook/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Auth          *handlers.AuthHandler
	Slots         *handlers.SlotHandler
	Bookings      *handlers.BookingHandler
	Wallet        *handlers.WalletHandler
	Notifications *handlers.NotificationHandler
	Kyc           *handlers.KycHandler
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.RegisterUser)
		api.POST("/verify", hb.Auth.VerifyUser)
		api.POST("/login", hb.Auth.LoginUser)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(auth.RoleUser))
		protected.GET("/:userId/bookings", hb.Bookings.UserBookings)
	}
}

// RegisterTrainerRoutes registers trainer endpoints.
func RegisterTrainerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/trainers")
	{
		api.POST("/register", hb.Auth.RegisterTrainer)
		api.POST("/verify", hb.Auth.VerifyTrainer)
		api.POST("/login", hb.Auth.LoginTrainer)
		api.GET("/specializations", hb.Kyc.Specializations)
		api.GET("/:trainerId/schedule", hb.Slots.GetSchedule)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(auth.RoleTrainer))
		protected.POST("/slots", hb.Slots.CreateSlots)
		protected.DELETE("/slots/:slotId", hb.Slots.DeleteSlot)
		protected.POST("/:trainerId/kyc", hb.Kyc.SubmitKyc)
		protected.GET("/:trainerId/kyc", hb.Kyc.KycStatus)
		protected.GET("/:trainerId/bookings", hb.Bookings.TrainerBookings)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		userOnly := api.Group("")
		userOnly.Use(middleware.JWTAuthMiddleware(auth.RoleUser))
		userOnly.POST("/checkout", hb.Bookings.InitiateCheckout)
		userOnly.POST("/finalize", hb.Bookings.FinalizeBooking)
		userOnly.DELETE("/:bookingId", hb.Bookings.CancelBooking)

		trainerOnly := api.Group("")
		trainerOnly.Use(middleware.JWTAuthMiddleware(auth.RoleTrainer))
		trainerOnly.POST("/:bookingId/complete", hb.Bookings.RecordCompletion)
		trainerOnly.PUT("/:bookingId/prescription", hb.Bookings.UpdatePrescription)
	}
}

// RegisterWalletRoutes sets up trainer wallet endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wallet")
	{
		api.Use(middleware.JWTAuthMiddleware(auth.RoleTrainer))
		api.GET("/:trainerId", hb.Wallet.GetWallet)
		api.POST("/:trainerId/withdraw", hb.Wallet.Withdraw)
	}
}

// RegisterNotificationRoutes sets up notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(""))
		api.GET("/:receiverId", hb.Notifications.List)
		api.DELETE("/:receiverId", hb.Notifications.Clear)
	}
}

// RegisterAdminRoutes sets up endpoints for moderation.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(auth.RoleAdmin))
		api.PUT("/kyc/:trainerId", hb.Kyc.ReviewKyc)
		api.POST("/slots/sweep", hb.Slots.SweepExpired)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterTrainerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-portal/controllers"
	"hotel-portal/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the portal's API surface.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomTypeController,
	dc *controllers.DraftController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	sessions middleware.SessionResolver,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Session(sessions))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/register", ac.Register)
			auth.POST("/logout", ac.Logout)
			auth.POST("/refresh", ac.Refresh)
			auth.GET("/me", ac.Me)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rc.GetRoomTypes)
			roomTypes.GET("/:id", rc.GetRoomTypeByID)
		}

		drafts := api.Group("/drafts")
		{
			drafts.POST("", dc.CreateDraft)
			drafts.GET("/:id", dc.GetDraft)
			drafts.PATCH("/:id", dc.UpdateDraft)
			drafts.DELETE("/:id", dc.DeleteDraft)
			drafts.POST("/:id/advance", dc.Advance)
			drafts.POST("/:id/back", dc.Back)
			drafts.GET("/:id/availability", dc.GetAvailability)
			drafts.POST("/:id/checkout", dc.Checkout)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		methods := api.Group("/payment-methods")
		{
			methods.GET("", pc.GetPaymentMethods)
			methods.DELETE("/:id", pc.DeletePaymentMethod)
		}
	}

	return r
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-portal/client"
	"hotel-portal/config"
	"hotel-portal/controllers"
	"hotel-portal/events"
	"hotel-portal/routes"
	"hotel-portal/services"
	"hotel-portal/store"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Cannot load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	db, err := config.ConnectDatabase(cfg.MySQL)
	if err != nil {
		logrus.Fatalf("❌ Database connect failed: %v", err)
	}
	logrus.Info("✅ Database connection established")

	redisClient, err := config.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Fatalf("❌ Redis connect failed: %v", err)
	}
	logrus.Info("✅ Redis connection established")

	// Notifications are best-effort; the portal runs without a broker.
	var notifier *events.Notifier
	if cfg.AMQP.URL != "" {
		notifier, err = events.NewNotifier(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			logrus.Warnf("⚠️  RabbitMQ unavailable, booking events disabled: %v", err)
		} else {
			defer notifier.Close()
			logrus.Info("✅ RabbitMQ connection established")
		}
	}

	backend := client.New(client.Config{
		BaseURL:    cfg.Backend.BaseURL,
		PaymentURL: cfg.Backend.PaymentURL,
		Timeout:    cfg.Backend.Timeout,
	})

	draftStore := store.NewDraftStore(redisClient, cfg.Portal.DraftTTL)
	sessionStore := store.NewSessionStore(redisClient, cfg.Portal.SessionTTL)

	// Initialize services
	sessionService := services.NewSessionService(backend, sessionStore)
	availabilityService := services.NewAvailabilityService(backend, draftStore)
	wizardService := services.NewWizardService(draftStore, backend, availabilityService)
	paymentService := services.NewPaymentService(backend, db)
	bookingService := services.NewBookingService(backend, notifier)
	checkoutService := services.NewCheckoutService(draftStore, backend, paymentService, notifier, wizardService)

	// Initialize controllers
	authController := controllers.NewAuthController(sessionService)
	roomTypeController := controllers.NewRoomTypeController(backend)
	draftController := controllers.NewDraftController(wizardService, availabilityService, checkoutService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)

	router := routes.SetupRouter(
		authController,
		roomTypeController,
		draftController,
		bookingController,
		paymentController,
		sessionService,
		cfg.Server.CORSOrigins,
	)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Warn("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	logrus.Info("✅ Server stopped gracefully")
}

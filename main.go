package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"egarage/config"
	"egarage/cron"
	"egarage/database"
	accountRepoPkg "egarage/database/repository/account"
	appointmentRepoPkg "egarage/database/repository/appointment"
	messageRepoPkg "egarage/database/repository/message"
	providerRepoPkg "egarage/database/repository/provider"
	vehicleRepoPkg "egarage/database/repository/vehicle"
	"egarage/handlers"
	"egarage/middleware"
	"egarage/routes"
	"egarage/services/auth"
	"egarage/services/booking"
	"egarage/services/message"
	"egarage/services/provider"
	"egarage/services/vehicle"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// Services.
	authService := &auth.DefaultAuthService{
		Repo:  accountRepo,
		Cache: utils.GetAuthCacheClient(),
	}
	vehicleService := &vehicle.DefaultVehicleService{Repo: vehicleRepo}
	providerService := &provider.DefaultProviderService{
		Repo:  providerRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       appointmentRepo,
		Providers:  providerRepo,
		Gateway:    booking.NewStripeGateway(logger),
		Scheduler:  cron.NewAsynqExpiryScheduler(),
		PaymentTTL: time.Duration(config.AppConfig.PaymentTTLMin) * time.Minute,
	}
	messageService := &message.DefaultMessageService{Repo: messageRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		AuthCache:   utils.GetAuthCacheClient(),

		Auth:        &handlers.AuthHandler{Service: authService},
		Vehicle:     &handlers.VehicleHandler{Service: vehicleService},
		Provider:    &handlers.ProviderHandler{Service: providerService},
		Appointment: &handlers.AppointmentHandler{Service: bookingService},
		Message:     &handlers.MessageHandler{Service: messageService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker that cancels appointments whose payment window lapsed.
	cron.InitExpiryWorker(bookingService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

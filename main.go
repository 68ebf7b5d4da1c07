package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbook/config"
	"fitbook/cron"
	"fitbook/database"
	bookingRepo "fitbook/database/repository/booking"
	notificationRepo "fitbook/database/repository/notification"
	slotRepo "fitbook/database/repository/slot"
	trainerRepo "fitbook/database/repository/trainer"
	userRepoPkg "fitbook/database/repository/user"
	walletRepo "fitbook/database/repository/wallet"
	"fitbook/handlers"
	"fitbook/middleware"
	"fitbook/routes"
	"fitbook/services/auth"
	"fitbook/services/booking"
	"fitbook/services/notification"
	"fitbook/services/payment"
	"fitbook/services/scheduling"
	"fitbook/services/storage"
	"fitbook/services/trainer"
	"fitbook/services/wallet"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitOTPCache()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	wallets := walletRepo.NewMongoWalletRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()
	trainers := trainerRepo.NewMongoTrainerRepo()
	users := userRepoPkg.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"slots":    slots.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
		"wallets":  wallets.EnsureIndexes,
		"trainers": trainers.EnsureIndexes,
		"users":    users.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// notification queue.
	queueClient := asynq.NewClient(utils.NotifyQueueRedisOpt())
	defer queueClient.Close()
	notifier := notification.NewQueueProducer(queueClient, logger)

	worker := notification.NewWorker(utils.NotifyQueueRedisOpt(), notifications, logger)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start notification worker: %v", err)
	}
	defer worker.Shutdown()

	// services.
	slotService := scheduling.NewDefaultSlotService(slots, trainers, logger)
	walletService := wallet.NewDefaultWalletService(wallets, logger)
	gateway := payment.NewStripeGateway(logger)
	bookingService := booking.NewDefaultBookingService(
		slots, bookings, trainers, gateway, walletService, notifier, logger)
	authService := auth.NewDefaultAuthService(users, trainers, utils.LogEmailSender{}, logger)
	trainerService := trainer.NewDefaultTrainerService(trainers, storageService, logger)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Auth:          handlers.NewAuthHandler(authService),
		Slots:         handlers.NewSlotHandler(slotService),
		Bookings:      handlers.NewBookingHandler(bookingService),
		Wallet:        handlers.NewWalletHandler(walletService),
		Notifications: handlers.NewNotificationHandler(notifications),
		Kyc:           handlers.NewKycHandler(trainerService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// daily schedule maintenance.
	sweeper := cron.StartExpiredSlotSweeper(slotService, logger)
	defer sweeper.Stop()

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

// File: homevista/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homevista/config"
	"homevista/database"
	bookingRepoPkg "homevista/database/repository/booking"
	paymentRepoPkg "homevista/database/repository/payment"
	propertyRepoPkg "homevista/database/repository/property"
	userRepoPkg "homevista/database/repository/user"
	"homevista/handlers"
	"homevista/middleware"
	"homevista/routes"
	"homevista/services/reservation"
	"homevista/services/settlement"
	"homevista/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Services.
	reservationService := &reservation.DefaultReservationService{
		Repo:         bookingRepo,
		PropertyRepo: propertyRepo,
		Cache:        utils.GetCacheClient(),
		Logger:       logger,
	}
	settlementService := &settlement.DefaultSettlementService{
		Repo:     paymentRepo,
		UserRepo: userRepo,
		Gateway: &settlement.StripeGateway{
			Origin:        config.AppConfig.CheckoutOrigin,
			ServiceCharge: config.AppConfig.ServiceCharge,
		},
		ServiceCharge:  config.AppConfig.ServiceCharge,
		GatewayTimeout: config.AppConfig.GatewayTimeout,
		Logger:         logger,
	}

	// Handlers and routes.
	bookingHandler := handlers.NewBookingHandler(reservationService)
	paymentHandler := handlers.NewPaymentHandler(settlementService)
	routes.SetupRoutes(router, bookingHandler, paymentHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
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

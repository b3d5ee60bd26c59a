package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dloopapp/dloop-partner-backend/api/routes"
	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/handlers"
	"github.com/dloopapp/dloop-partner-backend/internal/services"
	"github.com/dloopapp/dloop-partner-backend/pkg/paymentapi"
	"github.com/joho/godotenv"

	mongorepo "github.com/dloopapp/dloop-partner-backend/internal/repositories/mongodb"
	mongodb "github.com/dloopapp/dloop-partner-backend/pkg/mongodb"
)

func main() {
	// A missing .env is fine; config falls back to real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT.Secret is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	partnerRepo := mongorepo.NewPartnerRepository(db)
	businessRepo := mongorepo.NewBusinessRepository(db)
	locationRepo := mongorepo.NewLocationRepository(db)
	materialRepo := mongorepo.NewMaterialRepository(db)
	couponRepo := mongorepo.NewCouponRepository(db)
	campaignRepo := mongorepo.NewCampaignRepository(db)
	subscriptionRepo := mongorepo.NewSubscriptionRepository(db)

	// External collaborators
	paymentClient := paymentapi.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, cfg.Payment.MockAPI)

	// Services
	authService := services.NewAuthService(partnerRepo, cfg)
	businessService := services.NewBusinessService(businessRepo)
	locationService := services.NewLocationService(locationRepo)
	materialService := services.NewMaterialService(materialRepo)
	couponService := services.NewCouponService(couponRepo)
	campaignService := services.NewCampaignService(campaignRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, paymentClient)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		BusinessHandler:     handlers.NewBusinessHandler(businessService),
		LocationHandler:     handlers.NewLocationHandler(locationService),
		MaterialHandler:     handlers.NewMaterialHandler(materialService),
		CouponHandler:       handlers.NewCouponHandler(couponService),
		CampaignHandler:     handlers.NewCampaignHandler(campaignService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

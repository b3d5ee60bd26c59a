package routes

import (
	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/handlers"
	"github.com/dloopapp/dloop-partner-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	BusinessHandler     *handlers.BusinessHandler
	LocationHandler     *handlers.LocationHandler
	MaterialHandler     *handlers.MaterialHandler
	CouponHandler       *handlers.CouponHandler
	CampaignHandler     *handlers.CampaignHandler
	SubscriptionHandler *handlers.SubscriptionHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Business profile routes
		business := protected.Group("/business")
		{
			business.GET("", deps.BusinessHandler.GetBusiness)
			business.PUT("", deps.BusinessHandler.UpdateBusiness)
		}

		// Location routes
		locations := protected.Group("/locations")
		{
			locations.GET("", deps.LocationHandler.GetLocations)
			locations.GET("/count", deps.LocationHandler.GetLocationCount)
			locations.GET("/:id", deps.LocationHandler.GetLocationByID)
			locations.POST("", deps.LocationHandler.CreateLocation)
			locations.PUT("/:id", deps.LocationHandler.UpdateLocation)
			locations.DELETE("/:id", deps.LocationHandler.DeleteLocation)
		}

		// Material routes
		materials := protected.Group("/materials")
		{
			materials.GET("", deps.MaterialHandler.GetMaterials)
			materials.GET("/count", deps.MaterialHandler.GetMaterialCount)
			materials.GET("/:id", deps.MaterialHandler.GetMaterialByID)
			materials.POST("", deps.MaterialHandler.CreateMaterial)
			materials.PUT("/:id", deps.MaterialHandler.UpdateMaterial)
			materials.DELETE("/:id", deps.MaterialHandler.DeleteMaterial)
		}

		// Coupon routes
		coupons := protected.Group("/coupons")
		{
			coupons.GET("", deps.CouponHandler.GetCoupons)
			coupons.GET("/count", deps.CouponHandler.GetCouponCount)
			coupons.GET("/:id", deps.CouponHandler.GetCouponByID)
			coupons.POST("", deps.CouponHandler.CreateCoupon)
			coupons.PUT("/:id", deps.CouponHandler.UpdateCoupon)
			coupons.DELETE("/:id", deps.CouponHandler.DeleteCoupon)
			coupons.POST("/:id/redeem", deps.CouponHandler.RedeemCoupon)
		}

		// Boost campaign routes
		protected.POST("/boost/estimate", deps.CampaignHandler.GetEstimate)
		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetCampaigns)
			campaigns.GET("/count", deps.CampaignHandler.GetCampaignCount)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.PUT("/:id", deps.CampaignHandler.UpdateCampaign)
			campaigns.PATCH("/:id/status", deps.CampaignHandler.SetCampaignStatus)
		}

		// Subscription routes
		subscriptions := protected.Group("/subscriptions")
		{
			subscriptions.GET("", deps.SubscriptionHandler.GetSubscriptions)
			subscriptions.GET("/current", deps.SubscriptionHandler.GetCurrentSubscription)
			subscriptions.POST("", deps.SubscriptionHandler.PurchaseSubscription)
		}
	}

	return router
}

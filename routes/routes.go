package routes

import (
	"github.com/quark1412/FoodyRush-sub000/configs"
	"github.com/quark1412/FoodyRush-sub000/controllers"
	"github.com/quark1412/FoodyRush-sub000/middlewares"
	"github.com/quark1412/FoodyRush-sub000/repository"
	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"data": "ok"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	colorRepo := repository.NewColorRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	statRepo := repository.NewStatisticRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	productSvc := services.NewProductService(db, productRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	colorSvc := services.NewColorService(colorRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, userRepo, addressRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, productRepo)
	userSvc := services.NewUserService(userRepo)
	statSvc := services.NewStatisticService(statRepo)
	exportSvc := services.NewExportService()
	locationSvc := services.NewLocationService(cfg.LocationAPIBase)
	chatbotSvc := services.NewChatbotService(productRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	colorCtrl := controllers.NewColorController(colorSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	userCtrl := controllers.NewUserController(userSvc)
	statCtrl := controllers.NewStatisticController(statSvc, exportSvc)
	locationCtrl := controllers.NewLocationController(locationSvc)
	addressCtrl := controllers.NewAddressController(addressRepo)
	chatbotCtrl := controllers.NewChatbotController(chatbotSvc)
	dashboardCtrl := controllers.NewDashboardController(db)

	// Chatbot hub
	chatbotHub := ws.NewChatbotHub(chatbotSvc)
	go chatbotHub.Run()
	r.GET("/ws/chatbot", middlewares.WSAuthMiddleware(cfg.JWTSecret), chatbotHub.HandleWebSocket)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/refreshToken", authCtrl.Refresh)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Storefront (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/products/:id/reviews", reviewCtrl.ListForProduct)
	r.GET("/categories", categoryCtrl.List)

	// Checkout address cascade (public)
	loc := r.Group("/locations")
	{
		loc.GET("/provinces", locationCtrl.Provinces)
		loc.GET("/provinces/:code/districts", locationCtrl.Districts)
		loc.GET("/districts/:code/communes", locationCtrl.Communes)
	}

	// Customer (protected)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders/:id/tracking", orderCtrl.Track)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
		u.POST("/reviews", reviewCtrl.Create)
		u.POST("/chatbot", chatbotCtrl.Ask)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/addresses", addressCtrl.List)
		profile.POST("/addresses", addressCtrl.Create)
		profile.PUT("/addresses/:id", addressCtrl.Update)
		profile.DELETE("/addresses/:id", addressCtrl.Delete)
	}

	// Admin — each screen sits behind its permission string
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/dashboard", middlewares.RequirePermission("STATISTICS"), dashboardCtrl.Dashboard)

		products := admin.Group("", middlewares.RequirePermission("PRODUCTS"))
		{
			products.GET("/products", productCtrl.AdminList)
			products.POST("/products", productCtrl.Create)
			products.PATCH("/products/:id", productCtrl.Update)
			products.PUT("/products/:id/variants", productCtrl.SetVariant)
			products.PATCH("/products/:id/archive", productCtrl.Archive)
			products.PATCH("/products/:id/restore", productCtrl.Restore)
		}

		categories := admin.Group("", middlewares.RequirePermission("CATEGORIES"))
		{
			categories.GET("/categories", categoryCtrl.AdminList)
			categories.POST("/categories", categoryCtrl.Create)
			categories.PATCH("/categories/:id", categoryCtrl.Update)
			categories.PATCH("/categories/:id/archive", categoryCtrl.Archive)
			categories.PATCH("/categories/:id/restore", categoryCtrl.Restore)
		}

		colors := admin.Group("", middlewares.RequirePermission("COLORS"))
		{
			colors.GET("/colors", colorCtrl.AdminList)
			colors.POST("/colors", colorCtrl.Create)
			colors.PATCH("/colors/:id", colorCtrl.Update)
			colors.PATCH("/colors/:id/archive", colorCtrl.Archive)
			colors.PATCH("/colors/:id/restore", colorCtrl.Restore)
		}

		orders := admin.Group("", middlewares.RequirePermission("ORDERS"))
		{
			orders.GET("/orders", orderCtrl.AdminList)
			orders.GET("/orders/:id", orderCtrl.AdminDetail)
			orders.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
			orders.PATCH("/orders/:id/paid", orderCtrl.MarkPaid)
		}

		users := admin.Group("", middlewares.RequirePermission("USERS"))
		{
			users.GET("/users", userCtrl.AdminList)
			users.GET("/users/:id", userCtrl.Detail)
			users.PATCH("/users/:id/role", userCtrl.UpdateRole)
			users.PATCH("/users/:id/archive", userCtrl.Archive)
			users.PATCH("/users/:id/restore", userCtrl.Restore)
		}

		reviews := admin.Group("", middlewares.RequirePermission("REVIEWS"))
		{
			reviews.GET("/reviews", reviewCtrl.AdminList)
			reviews.POST("/reviews/:id/reply", reviewCtrl.Reply)
			reviews.PATCH("/reviews/:id/hide", reviewCtrl.Hide)
			reviews.PATCH("/reviews/:id/show", reviewCtrl.Show)
		}

		stats := admin.Group("", middlewares.RequirePermission("STATISTICS"))
		{
			stats.GET("/statistics", statCtrl.Summary)
			stats.GET("/statistics/export", statCtrl.Export)
			stats.GET("/statistics/chart", statCtrl.Chart)
		}
	}
}

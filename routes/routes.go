package routes

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/configs"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/controllers"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/middlewares"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/payment"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gigRepo := repository.NewGigRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	postRepo := repository.NewPostRepository(db)
	chatRepo := repository.NewChatRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Gateway
	gateway := payment.NewStripeProcessor(cfg.StripeSecretKey, cfg.CheckoutSuccess, cfg.CheckoutCancel)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	gigSvc := services.NewGigService(gigRepo, reviewRepo)
	orderSvc := services.NewOrderService(db, orderRepo, gigRepo, userRepo, reviewRepo, chatRepo, gateway, cfg.PlatformFeeRate)
	postSvc := services.NewPostService(postRepo)
	chatSvc := services.NewChatService(chatRepo, orderRepo)
	reportSvc := services.NewReportService(reportRepo)
	exportSvc := services.NewExportService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	gigCtrl := controllers.NewGigController(gigSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	postCtrl := controllers.NewPostController(postSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	adminCtrl := controllers.NewAdminController(db, userRepo, orderRepo, exportSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public marketplace
	r.GET("/gigs", gigCtrl.List)
	r.GET("/gigs/:id", gigCtrl.Detail)
	r.GET("/gigs/:id/reviews", gigCtrl.Reviews)
	r.GET("/posts", postCtrl.ListOpen)

	// Orders
	o := r.Group("/orders", auth())
	{
		o.POST("", orderCtrl.Place)
		o.GET("", orderCtrl.List)
		o.POST("/verify-payment", orderCtrl.VerifyPayment)
		o.GET("/:id", orderCtrl.Detail)
		o.PATCH("/:id/status", orderCtrl.UpdateStatus)
		o.POST("/:id/cancel", orderCtrl.Cancel)
		o.POST("/:id/review", orderCtrl.AddReview)
	}

	// Job posts
	p := r.Group("/posts", auth())
	{
		p.POST("", postCtrl.Create)
		p.POST("/:id/close", postCtrl.Close)
		p.POST("/:id/apply", postCtrl.Apply)
		p.GET("/:id/applications", postCtrl.Applications)
	}
	r.PATCH("/applications/:id", auth(), postCtrl.Decide)

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/posts", postCtrl.ListMine)
	}

	// Freelancer
	fl := r.Group("/freelancer", auth(entity.RoleFreelancer, entity.RoleAdmin))
	{
		fl.POST("/gigs", gigCtrl.Create)
		fl.GET("/gigs", gigCtrl.ListMine)
		fl.PATCH("/gigs/:id", gigCtrl.Update)
		fl.PUT("/gigs/:id/packages", gigCtrl.UpsertPackage)
	}

	// Chat
	chat := r.Group("/chat", auth())
	{
		chat.GET("/rooms", chatCtrl.Rooms)
		chat.GET("/rooms/:id/messages", chatCtrl.Messages)
		chat.POST("/rooms/:id/messages", chatCtrl.Send)
	}

	// Chat over WebSocket
	hub := ws.NewChatHub(chatSvc)
	go hub.Run()
	r.GET("/ws/chat/:roomId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Reports
	rep := r.Group("/reports", auth())
	{
		rep.POST("", reportCtrl.Create)
		rep.GET("", reportCtrl.ListMine)
		rep.GET("/:id", reportCtrl.Detail)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/active", adminCtrl.SetUserActive)
		admin.GET("/orders", adminCtrl.Orders)
		admin.POST("/orders/:id/payout", orderCtrl.Payout)
		admin.GET("/reports", reportCtrl.ListAll)
		admin.PATCH("/reports/:id/status", reportCtrl.UpdateStatus)
		admin.GET("/exports/orders", adminCtrl.ExportOrders)
		admin.GET("/exports/revenue", adminCtrl.ExportRevenue)
	}
}

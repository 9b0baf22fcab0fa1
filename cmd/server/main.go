package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/indrad3v4/Vibratonic/internal/config"
	"github.com/indrad3v4/Vibratonic/internal/gateway"
	"github.com/indrad3v4/Vibratonic/internal/handlers"
	"github.com/indrad3v4/Vibratonic/internal/metrics"
	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/models"
	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"

	_ "github.com/indrad3v4/Vibratonic/docs"
)

// @title           Vibratonic API
// @version         1.0
// @description     API for the Vibratonic hackathon and crowdfunding platform
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	metrics.Register()

	hub := ws.NewHub()

	hackathonService := services.NewHackathonService()
	mvpService := services.NewMVPService()
	userService := services.NewUserService()
	services.Seed(hackathonService, mvpService, userService)
	log.Println("demo fixtures seeded")

	feeCalculator := services.NewFeeCalculator()
	mollieGateway := gateway.NewMollieSimulator(cfg.MollieAPIKey)
	paymentService := services.NewPaymentService(mollieGateway, feeCalculator, mvpService, userService)
	authService := services.NewAuthService(userService, cfg.JWTSecret)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService, userService, hub)
	mvpHandler := handlers.NewMVPHandler(mvpService, userService, hub)
	paymentHandler := handlers.NewPaymentHandler(paymentService, mvpService, hub)
	statsHandler := handlers.NewStatsHandler(hackathonService, mvpService, userService)
	wsHandler := handlers.NewWSHandler(hub, mvpService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/mvps/:id", wsHandler.HandleMVPSocket)
	r.GET("/ws/feed", wsHandler.HandleFeedSocket)
	r.POST("/webhook/mollie", paymentHandler.HandleWebhook)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)

		hackathons := api.Group("/hackathons")
		{
			hackathons.GET("", hackathonHandler.ListHackathons)
			hackathons.GET("/:id", hackathonHandler.GetHackathon)
			hackathons.GET("/:id/mvps", mvpHandler.ListByHackathon)

			authed := hackathons.Group("")
			authed.Use(middleware.JWTAuth(authService))
			{
				authed.POST("", middleware.RequireRole((*models.UserProfile).CanCreateHackathon), hackathonHandler.CreateHackathon)
				authed.POST("/:id/join", hackathonHandler.JoinHackathon)
				authed.PUT("/:id/status", hackathonHandler.UpdateStatus)
				authed.PUT("/:id/status/override", middleware.RequireRole((*models.UserProfile).CanAdmin), hackathonHandler.OverrideStatus)
			}
		}

		mvps := api.Group("/mvps")
		{
			mvps.GET("", mvpHandler.ListMVPs)
			mvps.GET("/:id", mvpHandler.GetMVP)

			authed := mvps.Group("")
			authed.Use(middleware.JWTAuth(authService))
			{
				authed.POST("", mvpHandler.CreateMVP)
				authed.POST("/:id/submit", mvpHandler.SubmitMVP)
				authed.PUT("/:id/status", mvpHandler.UpdateStatus)
				authed.PUT("/:id/status/override", middleware.RequireRole((*models.UserProfile).CanAdmin), mvpHandler.OverrideStatus)
			}
		}

		payments := api.Group("/payments")
		{
			payments.GET("/methods", paymentHandler.ListPaymentMethods)
			payments.GET("/fees", paymentHandler.CalculateFees)
			payments.GET("/:id", paymentHandler.GetPayment)

			authed := payments.Group("")
			authed.Use(middleware.JWTAuth(authService))
			{
				authed.POST("", middleware.RequireRole((*models.UserProfile).CanInvest), paymentHandler.CreatePayment)
				authed.POST("/:id/refund", middleware.RequireRole((*models.UserProfile).CanAdmin), paymentHandler.Refund)
			}
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.RequireRole((*models.UserProfile).CanAdmin))
		{
			admin.GET("/stats", statsHandler.GetStats)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

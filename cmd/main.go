package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coffee-app/internal/config"
	"coffee-app/internal/handler"
	"coffee-app/internal/repository"
	"coffee-app/internal/services"
	"coffee-app/internal/store"
	"coffee-app/internal/utils"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// MongoDB — каноническое хранилище сообщений
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	shutdownManager.Register("Closing MongoDB connection", func(ctx context.Context) error {
		return mongoClient.Disconnect(ctx)
	})

	// Redis — KV-хранилище состояния приложения
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatal("Invalid Redis URL:", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	shutdownManager.Register("Closing Redis connection", func(context.Context) error {
		return rdb.Close()
	})

	minioClient, err := utils.NewMinioClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket)
	if err != nil {
		log.Fatal("Failed to connect to MinIO:", err)
	}

	kv := store.NewRedisStore(rdb)
	jwtUtil := utils.NewJWTUtil(cfg.Auth.JWTSecret)
	geocode := utils.NewGeocodeClient(cfg.Geocode.URL)

	msgRepo := repository.NewMongoMessageRepository(db)
	notifier := services.NewNotifier(kv)
	media := services.NewMinioMediaStore(minioClient, cfg.Minio.Bucket)

	authService := services.NewAuthService(ctx, kv, msgRepo)
	clientService := services.NewClientService(kv)
	visitService := services.NewVisitService(kv, notifier)
	orderService := services.NewOrderService(kv, media, notifier)
	trackingService := services.NewTrackingService(kv, geocode)
	commService := services.NewCommunicationService(msgRepo, rdb, notifier)

	// Фоновые задачи: опрос сообщений и «пульс» техников
	poller := services.NewMessagePoller(commService, trackingService)
	poller.Start(ctx)
	trackingService.StartHeartbeat(ctx)

	authHandler := handler.NewAuthHandler(authService, jwtUtil)
	clientHandler := handler.NewClientHandler(clientService)
	visitHandler := handler.NewVisitHandler(visitService)
	orderHandler := handler.NewOrderHandler(orderService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	commHandler := handler.NewCommunicationHandler(commService)
	notifHandler := handler.NewNotificationHandler(notifier)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", utils.AuthMiddleware(jwtUtil), authHandler.Logout)
			auth.GET("/me", utils.AuthMiddleware(jwtUtil), authHandler.Me)
		}

		protected := api.Group("/")
		protected.Use(utils.AuthMiddleware(jwtUtil))
		{
			clients := protected.Group("/clients")
			{
				clients.GET("/", clientHandler.GetClients)
				clients.POST("/", clientHandler.AddClient)
				clients.PUT("/:id", clientHandler.UpdateClient)
				clients.DELETE("/:id", clientHandler.DeleteClient)
			}

			visits := protected.Group("/visits")
			{
				visits.GET("/my", visitHandler.GetMyVisits)
				visits.GET("/today", visitHandler.GetTodaysVisits)
				visits.GET("/upcoming", visitHandler.GetUpcomingVisits)
				visits.POST("/generate", visitHandler.GenerateNext)
				visits.POST("/optimize", visitHandler.OptimizeRoute)
				visits.PUT("/:id/status", utils.RequireRoles("technician", "admin"), visitHandler.UpdateStatus)

				adminVisits := visits.Group("/")
				adminVisits.Use(utils.RequireRoles("admin"))
				{
					adminVisits.GET("/", visitHandler.GetAllVisits)
					adminVisits.POST("/", visitHandler.AddVisit)
				}
			}

			orders := protected.Group("/orders")
			{
				orders.GET("/my", orderHandler.GetMyOrders)
				orders.POST("/", orderHandler.SaveOrder)
				orders.PUT("/:id", orderHandler.UpdateOrder)
				orders.POST("/:id/sync", orderHandler.SyncOrder)
				orders.POST("/:id/media", orderHandler.AttachMedia)
				orders.GET("/", utils.RequireRoles("admin"), orderHandler.GetAllOrders)
			}

			technicians := protected.Group("/technicians")
			{
				technicians.GET("/", trackingHandler.GetTechnicians)
				technicians.PUT("/:id/location", trackingHandler.UpdateLocation)
				technicians.PUT("/:id/status", trackingHandler.UpdateStatus)
				technicians.POST("/", utils.RequireRoles("admin"), trackingHandler.AddTechnician)
			}

			messages := protected.Group("/messages")
			{
				messages.GET("/", commHandler.GetMessages)
				messages.POST("/", commHandler.SendMessage)
				messages.POST("/quick", commHandler.SendQuickMessage)
				messages.POST("/location", commHandler.SendLocation)
				messages.POST("/route", commHandler.SendRoute)
				messages.POST("/call", commHandler.LogCall)
				messages.GET("/conversations", commHandler.GetConversations)
				messages.GET("/conversation/:id", commHandler.GetConversation)
				messages.GET("/unread", commHandler.GetUnreadCount)
				messages.PUT("/read-all", commHandler.MarkAllAsRead)
				messages.PUT("/:id/read", commHandler.MarkAsRead)
				messages.DELETE("/:id", commHandler.DeleteMessage)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("/", notifHandler.GetNotifications)
				notifications.PUT("/:id/read", notifHandler.MarkAsRead)
			}
		}
	}

	server := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Field service running on %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register("Shutting down HTTP server", func(ctx context.Context) error {
		return server.Shutdown(ctx)
	})

	select {}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalcache "boxpoint-api/internal/cache"
	"boxpoint-api/internal/handler"
	"boxpoint-api/internal/middleware"
	"boxpoint-api/internal/repository"
	"boxpoint-api/internal/service"
	"boxpoint-api/internal/ws"
	"boxpoint-api/pkg/cache"
	"boxpoint-api/pkg/config"
	"boxpoint-api/pkg/database"
	"boxpoint-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Optional product cache
	productCache := internalcache.NewNoopProductCache()
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Warning: %v, running without product cache", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		productCache = internalcache.WithDelayedInvalidation(
			internalcache.NewRedisProductCache(redisClient, time.Duration(cfg.Redis.TTLSecs)*time.Second),
			internalcache.DefaultRevalidateDelay,
		)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	imageRepo := repository.NewImageRepo(db)
	userRepo := repository.NewUserRepo(db)
	cartRepo := repository.NewCartRepo(db)
	orderItemRepo := repository.NewOrderItemRepo(db)

	tokens := jwt.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	categoryService := service.NewCategoryService(categoryRepo, productRepo, db, productCache, wsHub)
	productService := service.NewProductService(service.ProductServiceDeps{
		Products:   productRepo,
		Categories: categoryRepo,
		Images:     imageRepo,
		Carts:      cartRepo,
		OrderItems: orderItemRepo,
		DB:         db,
		Cache:      productCache,
		Events:     wsHub,
	})
	downloadPath := cfg.Server.APIPrefix + "/images/image/download/"
	imageService := service.NewImageService(imageRepo, productService, db, productCache, wsHub, downloadPath)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, tokens)
	dashService := service.NewDashboardService(productRepo, categoryRepo, imageRepo)

	handlers := handler.Handlers{
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Image:     handler.NewImageHandler(imageService),
		User:      handler.NewUserHandler(userService),
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(dashService),
	}

	// 6. Setup Fiber
	app := handler.NewApp(cfg.Server.Name, cfg.Server.BodyLimit)

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	var guard fiber.Handler
	if cfg.Auth.Enabled {
		guard = middleware.RequireAuth(authService)
		log.Println("Authentication enabled for mutating routes")
	}
	handler.RegisterRoutes(app.Group(cfg.Server.APIPrefix), handlers, guard)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

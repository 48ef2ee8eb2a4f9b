package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"artvault/internal/caching"
	"artvault/internal/cart"
	"artvault/internal/config"
	"artvault/internal/handlers"
	"artvault/internal/jobs/background"
	"artvault/internal/middleware"
	"artvault/internal/repositories"
	"artvault/internal/services"
	"artvault/internal/wishlist"
	"artvault/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// File config: settlement wallets, gallery identity, media options
	storeCfg, err := config.Load(os.Getenv("STORE_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load store config: %v", err)
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminPasswordHash == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD_HASH environment variables are required")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	storageSvc, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL, storeCfg.Media.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	bucketCtx, cancelBuckets := context.WithTimeout(context.Background(), 30*time.Second)
	for _, bucket := range []string{storeCfg.Media.Bucket, handlers.ReceiptBucket} {
		if err := storageSvc.EnsureBucketExists(bucketCtx, bucket); err != nil {
			log.Fatalf("Failed to ensure bucket %s exists: %v", bucket, err)
		}
	}
	cancelBuckets()

	// Create repositories
	productRepo := repositories.NewProductRepo(pool)
	imageRepo := repositories.NewImageRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)

	// Create cache service and session stores
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)
	carts := cart.NewStore()
	wishlists := wishlist.NewStore()

	// Create services
	productSvc := services.NewProductService(productRepo, cacheSvc)
	imageSvc := services.NewImageService(imageRepo, storageSvc, storeCfg.Media.Bucket)
	checkoutSvc := services.NewCheckoutService(orderRepo, carts, storeCfg.Wallets)
	authSvc := services.NewAuthService(adminEmail, adminPasswordHash, []byte(jwtSecret), 12*time.Hour)

	// Create handlers
	productHandlers := handlers.NewProductHandlers(productSvc)
	imageHandlers := handlers.NewImageHandlers(imageSvc)
	cartHandlers := handlers.NewCartHandlers(carts, productSvc)
	wishlistHandlers := handlers.NewWishlistHandlers(wishlists, productSvc)
	checkoutHandlers := handlers.NewCheckoutHandlers(checkoutSvc, storageSvc, storeCfg.Gallery)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, storageSvc, storeCfg.Media.Bucket, version)

	// Background jobs
	scheduler, err := background.NewJobScheduler(carts, wishlists, productSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// JWT middleware configuration for admin routes
	jwtConfig := echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(middleware.JWTCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(401, "Invalid token")
		},
	}

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Authentication routes
	v1.POST("/auth/login", authHandlers.Login)

	// Public catalog routes
	v1.GET("/products", productHandlers.ListProducts)
	v1.GET("/products/search", productHandlers.SearchProducts)
	v1.GET("/products/:id", productHandlers.GetProduct)
	v1.GET("/categories/:slug/products", productHandlers.ListByCategory)
	v1.GET("/images", imageHandlers.List)
	v1.GET("/checkout/wallets", checkoutHandlers.Wallets)

	// Shopper routes (anonymous session cookie)
	shop := v1.Group("")
	shop.Use(middleware.Session())
	shop.GET("/cart", cartHandlers.GetCart)
	shop.POST("/cart/items", cartHandlers.AddItem)
	shop.PUT("/cart/items/:productID", cartHandlers.UpdateItem)
	shop.DELETE("/cart/items/:productID", cartHandlers.RemoveItem)
	shop.GET("/wishlist", wishlistHandlers.List)
	shop.POST("/wishlist/:productID/toggle", wishlistHandlers.Toggle)
	shop.POST("/checkout", checkoutHandlers.Checkout)
	shop.GET("/orders/:id", checkoutHandlers.GetOrder)

	// Admin routes (require JWT)
	admin := v1.Group("/admin")
	admin.Use(echojwt.WithConfig(jwtConfig))
	admin.POST("/products", productHandlers.CreateProduct)
	admin.PATCH("/products/:id", productHandlers.UpdateProduct)
	admin.DELETE("/products/:id", productHandlers.DeleteProduct)
	admin.POST("/images/upload", imageHandlers.Upload)
	admin.DELETE("/images/:id", imageHandlers.Delete)
	admin.GET("/orders", checkoutHandlers.ListOrders)
	admin.PUT("/orders/:id/status", checkoutHandlers.UpdateOrderStatus)
	admin.POST("/orders/:id/receipt", checkoutHandlers.GenerateReceipt)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Artvault gallery server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}

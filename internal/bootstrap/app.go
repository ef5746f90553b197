// Package bootstrap loads configuration, wires every component together, and
// owns the application lifecycle.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/Yashkhope01/Blog/internal/handler/http"
	"github.com/Yashkhope01/Blog/internal/infra/blob/cloudinary"
	gormpersistence "github.com/Yashkhope01/Blog/internal/infra/persistence/gorm"
	"github.com/Yashkhope01/Blog/internal/infra/setup"
	"github.com/Yashkhope01/Blog/internal/middleware"
	"github.com/Yashkhope01/Blog/internal/service"
	"github.com/Yashkhope01/Blog/internal/storage"
	"github.com/Yashkhope01/Blog/internal/worker"
)

// Config holds everything loaded from the environment.
type Config struct {
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTExpiryHours   int
	ServerPort       string
	LogLevel         string
	AppEnv           string
	CORSOrigin       string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	CloudinaryURL    string
	CloudinaryFolder string
}

// LoadConfig reads the environment, with a .env file as an optional
// convenience. JWT_SECRET, REDIS_ADDR and the DB settings are required.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           os.Getenv("DB_NAME"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ServerPort:       os.Getenv("SERVER_PORT"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		AppEnv:           os.Getenv("APP_ENV"),
		CORSOrigin:       os.Getenv("CORS_ALLOWED_ORIGIN"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: os.Getenv("CLOUDINARY_FOLDER"),
		JWTExpiryHours:   24,
		RateLimitMax:     100,
		RateLimitWindow:  1 * time.Minute,
	}

	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	if v, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS")); err == nil && v > 0 {
		cfg.JWTExpiryHours = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_MAX")); err == nil && v > 0 {
		cfg.RateLimitMax = v
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("environment variables DB_USER and DB_NAME must be set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App bundles the running components so Shutdown can reach them.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	AsynqClient *asynq.Client
	AsynqServer *worker.WorkerServer
	HTTPServer  *http.Server
}

// NewApp loads configuration and initializes every component.
func NewApp() (*App, error) {
	// 1. Configuration
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. Logger
	log := logrus.StandardLogger()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	// 3. Infrastructure
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	redisClientOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	asynqClient := asynq.NewClient(redisClientOpt)

	var uploader storage.ImageUploader
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary.New(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to init Cloudinary uploader: %w", err)
		}
		uploader = cld
	} else {
		log.Warn("CLOUDINARY_URL not set; image file uploads are disabled")
	}
	log.Info("Infrastructure initialized")

	// 4. Repositories
	userRepo := gormpersistence.NewGormUserRepository(db)
	blogRepo := gormpersistence.NewGormBlogRepository(db)
	commentRepo := gormpersistence.NewGormCommentRepository(db)
	contactRepo := gormpersistence.NewGormContactRepository(db)

	// 5. Services
	authService, err := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	blogService := service.NewBlogService(blogRepo, uploader)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	contactService := service.NewContactService(contactRepo, asynqClient)
	log.Info("Services initialized")

	// 6. Handlers
	authHandler := httpHandler.NewAuthHandler(authService)
	blogHandler := httpHandler.NewBlogHandler(blogService)
	commentHandler := httpHandler.NewCommentHandler(commentService)
	contactHandler := httpHandler.NewContactHandler(contactService)

	// 7. Worker
	workerServer := worker.NewWorkerServer(redisClientOpt, contactRepo, log)

	// 8. Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authRequired := middleware.Auth(authService)
	adminRequired := middleware.RequireAdmin()
	publicLimit := middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicLimit, authHandler.Register)
			auth.POST("/login", publicLimit, authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
			auth.PUT("/profile", authRequired, authHandler.UpdateProfile)
			auth.GET("/users", authRequired, adminRequired, authHandler.Users)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.List)
			blogs.GET("/featured", blogHandler.Featured)
			blogs.GET("/:slug", blogHandler.GetBySlug)
			blogs.POST("", authRequired, adminRequired, blogHandler.Create)
			blogs.PUT("/id/:id", authRequired, adminRequired, blogHandler.Update)
			blogs.DELETE("/id/:id", authRequired, adminRequired, blogHandler.Delete)
			blogs.PUT("/id/:id/like", authRequired, blogHandler.Like)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", authRequired, commentHandler.Create)
			comments.GET("/blog/:blogId", commentHandler.ListByBlog)
			comments.PUT("/id/:id", authRequired, commentHandler.Update)
			comments.DELETE("/id/:id", authRequired, commentHandler.Delete)
			comments.PUT("/id/:id/like", authRequired, commentHandler.Like)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", publicLimit, contactHandler.Submit)
			contact.GET("", authRequired, adminRequired, contactHandler.List)
			contact.GET("/:id", authRequired, adminRequired, contactHandler.Get)
			contact.PUT("/:id", authRequired, adminRequired, contactHandler.Update)
			contact.DELETE("/:id", authRequired, adminRequired, contactHandler.Delete)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Server is running", "status": "OK"})
		})
	}
	log.Info("Router setup complete")

	// 9. HTTP server
	httpServer := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		AsynqClient: asynqClient,
		AsynqServer: workerServer,
		HTTPServer:  httpServer,
	}, nil
}

// Start launches the worker and the HTTP server.
func (a *App) Start() {
	go a.AsynqServer.Start()
	a.Log.Info("Worker server routine started")

	go func() {
		a.Log.Infof("HTTP server listening on %s", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown stops the components in reverse dependency order.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.AsynqServer != nil {
		a.AsynqServer.Shutdown()
	}
	if a.AsynqClient != nil {
		if err := a.AsynqClient.Close(); err != nil {
			a.Log.Errorf("Error closing Asynq client: %v", err)
		}
	}
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware logs one line per request, severity split on the status
// code.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": c.Writer.Status(),
			"latency_ms":  time.Since(startTime).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			entry.Error(errorMessage)
			return
		}
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Server error")
		case c.Writer.Status() >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}

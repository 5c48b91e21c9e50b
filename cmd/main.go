package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/aurumtrade/aurum-api/docs" // Import generated docs
	"github.com/aurumtrade/aurum-api/internal/actions"
	"github.com/aurumtrade/aurum-api/internal/auth"
	"github.com/aurumtrade/aurum-api/internal/config"
	"github.com/aurumtrade/aurum-api/internal/controllers"
	"github.com/aurumtrade/aurum-api/internal/database"
	"github.com/aurumtrade/aurum-api/internal/middleware"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/rates"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	configuration   *config.Config
	provider        *auth.Provider
	acts            *actions.Actions
	authController  *controllers.AuthController
	newsController  controllers.NewsController
	queryController *controllers.QueryController
	ratesController *controllers.RatesController
)

// @title Aurum Trade API
// @version 1.0
// @description Backend API for the Aurum Trade corporate website
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services, auth provider and actions
	userService := services.NewUserService(db)
	newsService := services.NewNewsService(db)
	queryService := services.NewQueryService(db)
	provider = auth.NewProvider(db, userService, configuration.JWTSecret, configuration.SessionTTL)
	acts = actions.New(configuration.AdminEmails, provider, newsService, userService, queryService)

	// Clear out sessions that expired while the server was down
	if err := provider.PurgeExpiredSessions(context.Background()); err != nil {
		log.WithError(err).Warn("Failed to purge expired sessions")
	}

	// Initialize the rate service with its redis-backed cache
	rateCache := rates.NewCache(configuration.RedisAddr, configuration.RedisPassword, configuration.RedisDB)
	rateClient := rates.NewClient(configuration.GoldAPIBaseURL, configuration.GoldAPIKey)
	rateService := rates.NewService(rateClient, rateCache, configuration.RateCacheTTL)

	// Initialize controllers
	authController = controllers.NewAuthController(acts, provider)
	newsController = controllers.NewNewsController(acts, newsService)
	queryController = controllers.NewQueryController(acts, queryService)
	ratesController = controllers.NewRatesController(rateService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.User{}, &models.News{}, &models.Query{}, &models.Session{})
	checkPanicErr(err)

	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/news", newsController.ListNews)
			publicApi.GET("/news/:slug", newsController.GetNewsBySlug)
			publicApi.POST("/queries", queryController.CreateQuery)
			publicApi.GET("/rates/gold", ratesController.GetGoldRate)
		}

		authApi := v1.Group("/auth")
		{
			authApi.POST("/signup", authController.Signup)
			authApi.POST("/signin", authController.Signin)
			authApi.POST("/signout", authController.Signout)
		}

		// The mutation actions authorize themselves and always answer with
		// the action envelope, so their routes carry no auth middleware.
		adminApi := v1.Group("/admin")
		{
			adminApi.POST("/news", newsController.CreateNews)
			adminApi.PUT("/news/:id", newsController.EditNews)
			adminApi.DELETE("/news/:id", newsController.DeleteNews)

			inbox := adminApi.Group("/queries")
			inbox.Use(middleware.Authenticate(provider), middleware.RequireRole(models.RoleAdmin))
			{
				inbox.GET("", queryController.ListQueries)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "aurum-api",
	})
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)
	defer database.Close(db)

	// Initialize Gin router
	engine, err := router.SetupRouter(db, router.Options{
		AllowedOrigins: configuration.AllowedOrigins,
		Logger:         log.StandardLogger(),
	})
	checkPanicErr(err)

	// Start the server
	runServer(configuration.Address(), engine)
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
// An explicit LOG_LEVEL takes precedence over the environment default
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level := config.LevelForEnvironment(conf.Environment)
	if parsed, err := log.ParseLevel(conf.LogLevel); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	controllers.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects to the database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.DBSeed {
		_, err = database.SeedIfEmpty(db)
		checkPanicErr(err)
	}
	return db
}

// runServer serves HTTP until SIGINT or SIGTERM, then drains in-flight requests
func runServer(addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server gracefully stopped")
}

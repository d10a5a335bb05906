package router

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
)

// Options tunes the router
type Options struct {
	// AllowedOrigins lists the origins allowed by CORS
	AllowedOrigins []string
	// Logger receives one entry per request
	Logger *logrus.Logger
}

// SetupRouter builds the services and controllers over db and registers
// every route on a new gin engine
func SetupRouter(db *gorm.DB, opts Options) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck(sqlDB))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}

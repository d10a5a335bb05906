package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza prices
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Set the price a restaurant charges for a pizza. The price must be between 1 and 30 and both the pizza and the restaurant must exist.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req models.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		requestLogger(ctx).WithError(err).Debug("Invalid restaurant pizza body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			requestLogger(ctx).WithError(err).Debug("Restaurant pizza rejected")
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
			return
		}
		requestLogger(ctx).WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
		return
	}

	requestLogger(ctx).WithField("restaurant_pizza_id", created.ID).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, created.Detail())
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant by its ID
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		requestLogger(ctx).WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it serves and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		c.handleError(ctx, err, "Failed to retrieve restaurant")
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every price it set for a pizza
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		c.handleError(ctx, err, "Failed to delete restaurant")
		return
	}
	requestLogger(ctx).WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *restaurantController) handleError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, services.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	requestLogger(ctx).WithError(err).Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(message))
}

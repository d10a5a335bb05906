package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to manage the prices restaurants set for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new price, returning it with
	// its pizza and restaurant loaded
	CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.PizzaID == nil || req.RestaurantID == nil {
			return fmt.Errorf("%w: pizza_id and restaurant_id are required", ErrValidation)
		}

		pizza, err := findPizza(tx, *req.PizzaID)
		if err != nil {
			return asValidationError(err)
		}
		restaurant, err := findRestaurant(tx, *req.RestaurantID)
		if err != nil {
			return asValidationError(err)
		}

		if req.Price == nil {
			return fmt.Errorf("%w: price is required", ErrValidation)
		}
		rp, err := models.NewRestaurantPizza(*req.Price, pizza.ID, restaurant.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}

		if err := tx.Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}

		rp.Pizza = pizza
		rp.Restaurant = restaurant
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

// asValidationError reports unresolved references as validation failures
// without revealing which one was missing
func asValidationError(err error) error {
	if errors.Is(err, ErrPizzaNotFound) || errors.Is(err, ErrRestaurantNotFound) {
		return fmt.Errorf("%w: unknown pizza or restaurant", ErrValidation)
	}
	return err
}

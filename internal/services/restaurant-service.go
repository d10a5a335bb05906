package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its pizzas and prices
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every price it set
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRestaurant(tx, id); err != nil {
			return err
		}
		// Removed explicitly so the cascade holds even where the store does
		// not enforce foreign keys
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("delete prices of restaurant %d: %w", id, err)
		}
		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

// findRestaurant looks up a restaurant on the given handle, which may be a transaction
func findRestaurant(db *gorm.DB, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

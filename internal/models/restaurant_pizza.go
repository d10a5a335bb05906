package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Price bounds for a pizza served by a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza joins a restaurant and a pizza, carrying the price the
// restaurant charges for it
type RestaurantPizza struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Price        int        `gorm:"not null" json:"price"`
	PizzaID      uint       `gorm:"not null;index" json:"pizza_id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Pizza        Pizza      `gorm:"foreignKey:PizzaID" json:"pizza"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds a join record, rejecting prices outside
// [MinPrice, MaxPrice]
func NewRestaurantPizza(price int, pizzaID, restaurantID uint) (RestaurantPizza, error) {
	if err := ValidatePrice(price); err != nil {
		return RestaurantPizza{}, err
	}
	return RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}, nil
}

// ValidatePrice checks the price lies within the allowed range
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinPrice, MaxPrice, price),
		}
	}
	return nil
}

// BeforeSave is a GORM hook, so rows that bypass NewRestaurantPizza are
// still checked before they reach the database
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

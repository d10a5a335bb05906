package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices pairs restaurants with pizzas by position in the seed slices
var seedPrices = []struct {
	restaurant int
	pizza      int
	price      int
}{
	{restaurant: 0, pizza: 0, price: 1},
	{restaurant: 1, pizza: 1, price: 4},
	{restaurant: 2, pizza: 2, price: 5},
}

// SeedIfEmpty seeds the database with initial data when no restaurant or pizza exists yet.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := Seed(db); err != nil {
		return false, err
	}
	return true, nil
}

// Seed inserts the initial restaurants, pizzas and prices in one transaction
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := append([]models.Restaurant(nil), seedRestaurants...)
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}

		pizzas := append([]models.Pizza(nil), seedPizzas...)
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		for _, sp := range seedPrices {
			rp, err := models.NewRestaurantPizza(sp.price, pizzas[sp.pizza].ID, restaurants[sp.restaurant].ID)
			if err != nil {
				return err
			}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("seed restaurant pizzas: %w", err)
			}
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(restaurants),
			"pizzas":            len(pizzas),
			"restaurant_pizzas": len(seedPrices),
		}).Info("Database seeded successfully")
		return nil
	})
}

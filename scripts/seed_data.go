package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

func main() {
	// Parse command line flags
	driver := flag.String("driver", "sqlite", "Database driver (sqlite or postgres)")
	path := flag.String("db", "app.db", "SQLite database file")
	uri := flag.String("uri", "", "Full database DSN, overrides -db")
	force := flag.Bool("force", false, "Seed even when the database already has data")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     *driver,
		Path:       *path,
		URI:        *uri,
		MaxRetries: 1,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *force {
		err = database.Seed(db)
	} else {
		var seeded bool
		seeded, err = database.SeedIfEmpty(db)
		if err == nil && !seeded {
			fmt.Println("Database already has data, use -force to seed anyway")
		}
	}
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	var restaurants, pizzas, prices int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&prices)

	fmt.Printf("Restaurants: %d\n", restaurants)
	fmt.Printf("Pizzas: %d\n", pizzas)
	fmt.Printf("Restaurant pizzas: %d\n", prices)
	fmt.Println("\nTry it out:")
	fmt.Println("curl http://localhost:5555/restaurants")
	fmt.Println("curl -X POST http://localhost:5555/restaurant_pizzas \\")
	fmt.Println(`  -H 'Content-Type: application/json' -d '{"price": 10, "pizza_id": 1, "restaurant_id": 1}'`)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "Karen's Pizza Shack", restaurants[0].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas, "list must not load pizzas")
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	t.Run("loads pizzas and prices", func(t *testing.T) {
		restaurant, err := service.GetRestaurantByID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, restaurant.RestaurantPizzas, 1)
		assert.Equal(t, 1, restaurant.RestaurantPizzas[0].Price)
		assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := service.GetRestaurantByID(context.Background(), 42)
		assert.True(t, errors.Is(err, ErrRestaurantNotFound))
	})
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	before := countRestaurantPizzas(t, db)
	require.NoError(t, service.DeleteRestaurant(ctx, 1))

	_, err := service.GetRestaurantByID(ctx, 1)
	assert.True(t, errors.Is(err, ErrRestaurantNotFound))

	var remaining int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&remaining).Error)
	assert.Zero(t, remaining)
	assert.Equal(t, before-1, countRestaurantPizzas(t, db))

	// Pizzas are left untouched
	pizzas, err := NewPizzaService(db).GetAllPizzas(ctx)
	require.NoError(t, err)
	assert.Len(t, pizzas, 3)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	err := service.DeleteRestaurant(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrRestaurantNotFound))
}

func TestPizzaService(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ctx := context.Background()

	pizzas, err := service.GetAllPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese", pizzas[0].Ingredients)

	pizza, err := service.GetPizzaByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Geri", pizza.Name)

	_, err = service.GetPizzaByID(ctx, 77)
	assert.True(t, errors.Is(err, ErrPizzaNotFound))
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantPizzaService(db)

	created, err := service.CreateRestaurantPizza(context.Background(), models.CreateRestaurantPizzaRequest{
		Price:        intPtr(10),
		PizzaID:      uintPtr(1),
		RestaurantID: uintPtr(2),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 10, created.Price)
	assert.Equal(t, "Emma", created.Pizza.Name)
	assert.Equal(t, "Sanjay's Pizza", created.Restaurant.Name)

	var stored models.RestaurantPizza
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, uint(2), stored.RestaurantID)
}

func TestCreateRestaurantPizzaValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  models.CreateRestaurantPizzaRequest
	}{
		{
			name: "price below range",
			req:  models.CreateRestaurantPizzaRequest{Price: intPtr(0), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
		},
		{
			name: "price above range",
			req:  models.CreateRestaurantPizzaRequest{Price: intPtr(31), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
		},
		{
			name: "missing price",
			req:  models.CreateRestaurantPizzaRequest{PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
		},
		{
			name: "unknown pizza",
			req:  models.CreateRestaurantPizzaRequest{Price: intPtr(10), PizzaID: uintPtr(404), RestaurantID: uintPtr(1)},
		},
		{
			name: "unknown restaurant",
			req:  models.CreateRestaurantPizzaRequest{Price: intPtr(10), PizzaID: uintPtr(1), RestaurantID: uintPtr(404)},
		},
		{
			name: "missing references",
			req:  models.CreateRestaurantPizzaRequest{Price: intPtr(10)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := NewRestaurantPizzaService(db)
			before := countRestaurantPizzas(t, db)

			_, err := service.CreateRestaurantPizza(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "unexpected error: %v", err)
			assert.Equal(t, before, countRestaurantPizzas(t, db))
		})
	}
}

func TestCreateRestaurantPizzaKeepsPriceReason(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantPizzaService(db)

	_, err := service.CreateRestaurantPizza(context.Background(), models.CreateRestaurantPizzaRequest{
		Price: intPtr(50), PizzaID: uintPtr(1), RestaurantID: uintPtr(1),
	})

	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Field)
}

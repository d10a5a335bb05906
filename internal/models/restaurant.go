package models

// Restaurant represents a restaurant that serves pizzas at a given price
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant_pizzas"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

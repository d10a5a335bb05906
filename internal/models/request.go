package models

// CreateRestaurantPizzaRequest is the body of a request to add a pizza to a
// restaurant's menu. Pointer fields tell an absent value apart from zero.
type CreateRestaurantPizzaRequest struct {
	Price        *int  `json:"price" example:"10"`
	PizzaID      *uint `json:"pizza_id" example:"1"`
	RestaurantID *uint `json:"restaurant_id" example:"1"`
}

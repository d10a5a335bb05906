package models

// RestaurantSummary is the list view of a restaurant, without its pizzas
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the list view of a pizza
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is a join record as nested inside a restaurant
type RestaurantPizzaView struct {
	ID           uint         `json:"id"`
	Price        int          `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is the full view of a restaurant. RestaurantPizzas is
// never nil so it always renders as an array.
type RestaurantDetail struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetail is a created join record with both sides summarized
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func (r Restaurant) Detail() RestaurantDetail {
	views := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		views = append(views, rp.View())
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: views,
	}
}

func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.Summary(),
	}
}

func (rp RestaurantPizza) Detail() RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.Summary(),
		Restaurant:   rp.Restaurant.Summary(),
	}
}

// RestaurantSummaries converts restaurants to their list view
func RestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Summary())
	}
	return out
}

// PizzaSummaries converts pizzas to their list view
func PizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.Summary())
	}
	return out
}

package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurantPizza(t *testing.T) {
	testCases := []struct {
		name    string
		price   int
		wantErr bool
	}{
		{name: "lower bound is accepted", price: 1},
		{name: "upper bound is accepted", price: 30},
		{name: "price in range is accepted", price: 10},
		{name: "zero is rejected", price: 0, wantErr: true},
		{name: "negative is rejected", price: -5, wantErr: true},
		{name: "above upper bound is rejected", price: 31, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rp, err := NewRestaurantPizza(tt.price, 2, 3)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, "price", verr.Field)
				assert.Equal(t, RestaurantPizza{}, rp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, rp.Price)
			assert.Equal(t, uint(2), rp.PizzaID)
			assert.Equal(t, uint(3), rp.RestaurantID)
			assert.Zero(t, rp.ID)
		})
	}
}

func TestBeforeSaveRejectsInvalidPrice(t *testing.T) {
	rp := &RestaurantPizza{Price: 45, PizzaID: 1, RestaurantID: 1}
	assert.Error(t, rp.BeforeSave(nil))

	rp.Price = 15
	assert.NoError(t, rp.BeforeSave(nil))
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse()
	assert.Equal(t, []string{"validation errors"}, resp.Errors)
}

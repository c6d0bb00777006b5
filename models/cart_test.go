package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartRequiresPositiveQuantity(t *testing.T) {
	_, err := NewCart(1, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewCart(1, 5, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	cart, err := NewCart(1, 5, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(5), cart.Items[0].FoodItemID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestApplyAppendsNewLine(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.Apply(5, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestApplyAccumulatesExistingLine(t *testing.T) {
	cart := &Cart{Items: []CartItem{{FoodItemID: 5, Quantity: 2}}}

	cart.Apply(5, 3)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart.Apply(5, -4)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestApplyDropsLineAtZeroOrBelow(t *testing.T) {
	cart := &Cart{Items: []CartItem{{FoodItemID: 5, Quantity: 2}}}
	cart.Apply(5, -2)
	assert.Empty(t, cart.Items, "a line never sits at quantity zero")

	cart = &Cart{Items: []CartItem{{FoodItemID: 5, Quantity: 2}}}
	cart.Apply(5, -10)
	assert.Empty(t, cart.Items)
}

func TestApplyIgnoresNegativeDeltaForAbsentLine(t *testing.T) {
	cart := &Cart{Items: []CartItem{{FoodItemID: 5, Quantity: 2}}}
	cart.Apply(9, -1)

	require.Len(t, cart.Items, 1)
	assert.Nil(t, cart.Line(9))
}

func TestApplyKeepsOtherLinesIntact(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{FoodItemID: 1, Quantity: 1},
		{FoodItemID: 2, Quantity: 2},
		{FoodItemID: 3, Quantity: 3},
	}}

	cart.Apply(2, -2)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Line(1).Quantity)
	assert.Equal(t, 3, cart.Line(3).Quantity)
}

func TestRemoveDeletesLineRegardlessOfQuantity(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{FoodItemID: 1, Quantity: 4},
		{FoodItemID: 2, Quantity: 2},
	}}

	cart.Remove(1)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].FoodItemID)

	// removing an absent line is a no-op
	cart.Remove(42)
	assert.Len(t, cart.Items, 1)
}

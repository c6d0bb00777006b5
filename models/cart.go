package models

import (
	"errors"
	"time"
)

// ErrInvalidQuantity is returned when a cart would be created with a
// non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
	Version   uint       `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem references a live food item; nothing here is priced. Prices are
// snapshotted only at checkout, into OrderItem.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CartID     uint      `json:"cart_id" gorm:"not null;index"`
	FoodItemID uint      `json:"food_id" gorm:"not null"`
	Food       *FoodItem `json:"food,omitempty" gorm:"foreignKey:FoodItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
}

// NewCart creates a cart holding a single line. The first add must be
// positive; there is no such thing as an empty newborn cart.
func NewCart(userID, foodID uint, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Cart{
		UserID: userID,
		Items:  []CartItem{{FoodItemID: foodID, Quantity: quantity}},
	}, nil
}

// Apply folds a quantity delta into the cart. An existing line accumulates
// and is dropped entirely once it reaches zero or below; a new line is
// appended only for a positive quantity.
func (c *Cart) Apply(foodID uint, quantity int) {
	for i := range c.Items {
		if c.Items[i].FoodItemID == foodID {
			c.Items[i].Quantity += quantity
			if c.Items[i].Quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
	if quantity > 0 {
		c.Items = append(c.Items, CartItem{CartID: c.ID, FoodItemID: foodID, Quantity: quantity})
	}
}

// Remove deletes the line matching foodID regardless of its quantity.
func (c *Cart) Remove(foodID uint) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.FoodItemID != foodID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// Line returns the cart line for foodID, or nil when absent.
func (c *Cart) Line(foodID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].FoodItemID == foodID {
			return &c.Items[i]
		}
	}
	return nil
}

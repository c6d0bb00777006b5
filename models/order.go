package models

import "time"

// OrderStatus represents all possible states of an order.
// The string values are a wire contract and must round-trip unchanged.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// PaymentMethod is a label only; no gateway integration exists.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Reference       string        `json:"reference" gorm:"uniqueIndex;not null"`
	UserID          uint          `json:"user_id" gorm:"not null;index"`
	User            User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID    uint          `json:"restaurant_id" gorm:"not null;index"`
	Restaurant      Restaurant    `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64       `json:"total_amount" gorm:"not null"`
	DeliveryAddress string        `json:"delivery_address" gorm:"not null"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"not null;default:'COD'"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'Pending'"`
	Rating          *int          `json:"rating,omitempty"`
	Feedback        string        `json:"feedback,omitempty"`
	Version         uint          `json:"version" gorm:"not null;default:1"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is a denormalized snapshot taken at checkout. Name and price are
// frozen here so later menu edits never change a placed order.
type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null;index"`
	FoodItemID uint    `json:"food_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
}

package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Category    string     `json:"category"`
	Price       string     `json:"price"` // price-tier label, e.g. "$20 for two"
	OwnerID     *uint      `json:"owner_id"` // nil means platform-operated
	Owner       *User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	Foods       []FoodItem `json:"foods,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OwnedBy reports whether the restaurant belongs to the given user.
func (r *Restaurant) OwnedBy(userID uint) bool {
	return r.OwnerID != nil && *r.OwnerID == userID
}

type FoodItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Image        string    `json:"image"`
	Price        float64   `json:"price" gorm:"not null"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

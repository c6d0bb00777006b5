package handlers

import (
	"net/http"

	"foodie-api/config"
	"foodie-api/middleware"
	"foodie-api/models"
	"foodie-api/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	OwnerID     *uint  `json:"owner_id"`
}

// CreateRestaurant creates a restaurant. Owners always become the owner of
// what they create; admins may create platform-operated restaurants or
// assign an owner explicitly.
func CreateRestaurant(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Address:     req.Address,
		Category:    req.Category,
		Price:       req.Price,
		IsActive:    true,
	}
	if actor.IsOwner() {
		ownerID := actor.ID
		restaurant.OwnerID = &ownerID
	} else {
		restaurant.OwnerID = req.OwnerID
	}

	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// ListManagedRestaurants returns the restaurants the caller manages:
// the owner's single restaurant, or everything for an admin.
func ListManagedRestaurants(c *gin.Context) {
	actor := middleware.GetActor(c)

	var restaurants []models.Restaurant
	query := config.DB.Preload("Foods")
	if actor.IsOwner() {
		query = query.Where("owner_id = ?", actor.ID)
	}
	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// UpdateRestaurant updates restaurant details (owner of it, or admin)
func UpdateRestaurant(c *gin.Context) {
	actor := middleware.GetActor(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if err := policy.CanManageRestaurant(actor, &restaurant); err != nil {
		fail(c, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "image": true, "description": true,
		"address": true, "category": true, "price": true, "is_active": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant and all of its food items in one
// transaction, so no dish is left referencing a dead restaurant.
func DeleteRestaurant(c *gin.Context) {
	actor := middleware.GetActor(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if err := policy.CanManageRestaurant(actor, &restaurant); err != nil {
		fail(c, err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

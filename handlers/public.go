package handlers

import (
	"net/http"

	"foodie-api/config"
	"foodie-api/lifecycle"
	"foodie-api/models"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all active restaurants (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category LIKE ?", "%"+category+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetRestaurantFoods returns the available dishes of a restaurant (public)
func GetRestaurantFoods(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var foods []models.FoodItem
	query := config.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Find(&foods)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(foods),
		"foods":      foods,
	})
}

// GetStateMachineInfo publishes the intended order lifecycle for clients.
// Status advancement itself is permissive; this is documentation.
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":        lifecycle.AllStatuses,
		"transitions":     lifecycle.IntendedTransitions(),
		"terminal_states": lifecycle.TerminalStates(),
		"description":     "Order lifecycle state machine",
	})
}

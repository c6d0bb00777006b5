package handlers

import (
	"net/http"

	"foodie-api/config"
	"foodie-api/middleware"
	"foodie-api/models"
	"foodie-api/policy"

	"github.com/gin-gonic/gin"
)

type CreateFoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CreateFoodItem adds a dish to a restaurant's menu (its owner, or admin)
func CreateFoodItem(c *gin.Context) {
	actor := middleware.GetActor(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if err := policy.CanManageRestaurant(actor, &restaurant); err != nil {
		fail(c, err)
		return
	}

	var req CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.FoodItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Image:        req.Image,
		Price:        req.Price,
		Category:     req.Category,
		Description:  req.Description,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item added", "food": food})
}

// ListManagedFoods returns every dish of a restaurant, unavailable ones
// included, for its owner or an admin.
func ListManagedFoods(c *gin.Context) {
	actor := middleware.GetActor(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if err := policy.CanManageRestaurant(actor, &restaurant); err != nil {
		fail(c, err)
		return
	}

	var foods []models.FoodItem
	config.DB.Where("restaurant_id = ?", restaurant.ID).Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// UpdateFoodItem updates a dish (owner of its restaurant, or admin)
func UpdateFoodItem(c *gin.Context) {
	actor := middleware.GetActor(c)

	food, ok := managedFood(c, actor)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "image": true, "price": true,
		"category": true, "description": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(food).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "food": food})
}

// DeleteFoodItem removes a dish (owner of its restaurant, or admin)
func DeleteFoodItem(c *gin.Context) {
	actor := middleware.GetActor(c)

	food, ok := managedFood(c, actor)
	if !ok {
		return
	}
	config.DB.Delete(food)
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}

// managedFood loads the dish in the :id param and verifies the caller may
// manage its restaurant. Responds and returns false on any failure.
func managedFood(c *gin.Context, actor policy.Actor) (*models.FoodItem, bool) {
	var food models.FoodItem
	if err := config.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return nil, false
	}
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, food.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	if err := policy.CanManageRestaurant(actor, &restaurant); err != nil {
		fail(c, err)
		return nil, false
	}
	return &food, true
}

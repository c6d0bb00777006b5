package handlers

import (
	"fmt"
	"net/http"

	"foodie-api/config"
	"foodie-api/middleware"
	"foodie-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStats returns dashboard statistics. Admins see platform-wide numbers;
// owners see numbers scoped to their restaurant, or all zeros when they
// have none yet. Revenue sums totalAmount over every matching order,
// cancelled ones included.
func GetStats(c *gin.Context) {
	actor := middleware.GetActor(c)

	var owned *models.Restaurant
	if actor.IsOwner() {
		restaurant, found := ownedRestaurant(actor)
		if !found {
			c.JSON(http.StatusOK, gin.H{
				"total_restaurants": 0,
				"total_orders":      0,
				"total_users":       0,
				"total_revenue":     "0.00",
			})
			return
		}
		owned = restaurant
	}

	orderScope := func() *gorm.DB {
		q := config.DB.Model(&models.Order{})
		if owned != nil {
			q = q.Where("restaurant_id = ?", owned.ID)
		}
		return q
	}
	restaurantScope := config.DB.Model(&models.Restaurant{})
	if owned != nil {
		restaurantScope = restaurantScope.Where("id = ?", owned.ID)
	}

	var totalRestaurants, totalOrders int64
	restaurantScope.Count(&totalRestaurants)
	orderScope().Count(&totalOrders)

	var totalUsers int64
	if actor.IsAdmin() {
		config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&totalUsers)
	}

	var totalRevenue float64
	orderScope().Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)

	c.JSON(http.StatusOK, gin.H{
		"total_restaurants": totalRestaurants,
		"total_orders":      totalOrders,
		"total_users":       totalUsers,
		"total_revenue":     fmt.Sprintf("%.2f", totalRevenue),
	})
}

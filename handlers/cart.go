package handlers

import (
	"net/http"
	"strconv"

	"foodie-api/config"
	"foodie-api/middleware"
	"foodie-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	FoodID uint `json:"food_id" binding:"required"`
	// Quantity carries no binding: zero and negative deltas are meaningful
	// (a decrement, or a no-op against an existing line).
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart, or an empty shape when none exists
func GetCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	var cart models.Cart
	err := config.DB.Preload("Items.Food").Where("user_id = ?", actor.ID).First(&cart).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddToCart folds a quantity delta into the caller's cart, creating the
// cart on first positive add.
func AddToCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cart models.Cart
	err := config.DB.Preload("Items").Where("user_id = ?", actor.ID).First(&cart).Error
	if err != nil {
		fresh, err := models.NewCart(actor.ID, req.FoodID, req.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		if err := config.DB.Create(fresh).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
		respondCart(c, fresh.ID)
		return
	}

	cart.Apply(req.FoodID, req.Quantity)
	if err := saveCart(&cart); err != nil {
		fail(c, err)
		return
	}
	respondCart(c, cart.ID)
}

// RemoveFromCart deletes the line for a food id, regardless of quantity
func RemoveFromCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	var cart models.Cart
	err := config.DB.Preload("Items").Where("user_id = ?", actor.ID).First(&cart).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
		return
	}

	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}

	cart.Remove(uint(foodID))
	if err := saveCart(&cart); err != nil {
		fail(c, err)
		return
	}
	respondCart(c, cart.ID)
}

// ClearCart deletes the cart aggregate wholesale. Called by clients after
// a successful checkout, and directly by the cart page.
func ClearCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	var cart models.Cart
	if err := config.DB.Where("user_id = ?", actor.ID).First(&cart).Error; err == nil {
		err := config.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&cart).Error
		})
		if err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// saveCart writes the cart's current lines back to the store. The version
// column is compared-and-swapped so a concurrent mutation of the same cart
// loses cleanly instead of silently interleaving.
func saveCart(cart *models.Cart) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Cart{}).
			Where("id = ? AND version = ?", cart.ID, cart.Version).
			Update("version", cart.Version+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errConflict
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			item := models.CartItem{
				CartID:     cart.ID,
				FoodItemID: cart.Items[i].FoodItemID,
				Quantity:   cart.Items[i].Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func respondCart(c *gin.Context, cartID uint) {
	var cart models.Cart
	config.DB.Preload("Items.Food").First(&cart, cartID)
	c.JSON(http.StatusOK, cart)
}

package handlers

import (
	"net/http"

	"foodie-api/config"
	"foodie-api/lifecycle"
	"foodie-api/metrics"
	"foodie-api/middleware"
	"foodie-api/models"
	"foodie-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	RestaurantID uint               `json:"restaurant_id" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	// TotalAmount is declared by the client and stored as given; zero is a
	// legitimate total, so no required binding.
	TotalAmount     float64              `json:"total_amount"`
	DeliveryAddress string               `json:"delivery_address" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"omitempty,oneof=COD Online"`
}

type OrderItemRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PlaceOrder converts the client-declared cart snapshot into an immutable
// order. Declared prices and total are stored as given; the line items are
// never re-derived from the live menu, which is what shields a placed order
// from later price edits. The caller clears their cart afterwards.
func PlaceOrder(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCOD
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			FoodItemID: it.FoodID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	order := models.Order{
		Reference:       uuid.NewString(),
		UserID:          actor.ID,
		RestaurantID:    req.RestaurantID,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.StatusPending,
		Version:         1,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	metrics.OrdersPlaced.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	actor := middleware.GetActor(c)

	var orders []models.Order
	config.DB.Preload("Items").Preload("Restaurant").
		Where("user_id = ?", actor.ID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListOrders returns all orders for an admin, or the orders of the caller's
// restaurant for an owner. An owner without a restaurant gets an empty list.
func ListOrders(c *gin.Context) {
	actor := middleware.GetActor(c)

	query := config.DB.Preload("Items").Preload("User")
	if actor.IsOwner() {
		restaurant, found := ownedRestaurant(actor)
		if !found {
			c.JSON(http.StatusOK, gin.H{"count": 0, "orders": []models.Order{}})
			return
		}
		query = query.Where("restaurant_id = ?", restaurant.ID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus sets a new status on an order (owner of its restaurant,
// or admin). The label must be one of the five recognized statuses; any
// recognized status may be set from any non-terminal state.
func UpdateOrderStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := lifecycle.ParseStatus(req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var owned *models.Restaurant
	if actor.IsOwner() {
		if restaurant, found := ownedRestaurant(actor); found {
			owned = restaurant
		}
	}
	if err := policy.CanManageOrder(actor, &order, owned); err != nil {
		fail(c, err)
		return
	}
	if err := lifecycle.CanAdvance(order.Status); err != nil {
		fail(c, err)
		return
	}

	if err := updateOrder(&order, map[string]interface{}{"status": status}); err != nil {
		fail(c, err)
		return
	}

	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// CancelOrder lets a customer cancel their own order while still Pending
func CancelOrder(c *gin.Context) {
	actor := middleware.GetActor(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := policy.CanActOnOwnOrder(actor, &order); err != nil {
		fail(c, err)
		return
	}
	if err := lifecycle.CanCancel(order.Status); err != nil {
		fail(c, err)
		return
	}

	if err := updateOrder(&order, map[string]interface{}{"status": models.StatusCancelled}); err != nil {
		fail(c, err)
		return
	}

	metrics.StatusTransitions.WithLabelValues(string(models.StatusCancelled)).Inc()
	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

// SubmitFeedback records a rating and free-text feedback on a delivered
// order. A repeat submission overwrites the previous one.
func SubmitFeedback(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lifecycle.ValidateRating(req.Rating); err != nil {
		fail(c, err)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := policy.CanActOnOwnOrder(actor, &order); err != nil {
		fail(c, err)
		return
	}
	if err := lifecycle.CanReview(order.Status); err != nil {
		fail(c, err)
		return
	}

	update := map[string]interface{}{"rating": req.Rating, "feedback": req.Feedback}
	if err := updateOrder(&order, update); err != nil {
		fail(c, err)
		return
	}

	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted", "order": order})
}

// updateOrder applies fields to the order with a compare-and-swap on the
// version column; a concurrent mutation surfaces as a conflict rather than
// a silent lost update.
func updateOrder(order *models.Order, fields map[string]interface{}) error {
	fields["version"] = order.Version + 1
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errConflict
	}
	order.Version++
	return nil
}

// ownedRestaurant looks up the single restaurant owned by the actor.
func ownedRestaurant(actor policy.Actor) (*models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", actor.ID).First(&restaurant).Error; err != nil {
		return nil, false
	}
	return &restaurant, true
}

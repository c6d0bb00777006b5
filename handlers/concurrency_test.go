package handlers

import (
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"foodie-api/config"
	"foodie-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var casDBSeq int64

func setupCASDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PATH", fmt.Sprintf("file:cas_test_%d?mode=memory&cache=shared", atomic.AddInt64(&casDBSeq, 1)))
	config.InitDB()
}

func TestUpdateOrderRejectsStaleWrite(t *testing.T) {
	setupCASDB(t)

	order := models.Order{
		Reference:       uuid.NewString(),
		UserID:          1,
		RestaurantID:    1,
		TotalAmount:     100,
		DeliveryAddress: "12 Main St",
		PaymentMethod:   models.PaymentCOD,
		Status:          models.StatusPending,
		Version:         1,
	}
	require.NoError(t, config.DB.Create(&order).Error)

	// two copies of the same aggregate, as two concurrent requests see it
	stale := order

	require.NoError(t, updateOrder(&order, map[string]interface{}{"status": models.StatusPreparing}))

	// the copy that lost the race carries the old version and must not land
	err := updateOrder(&stale, map[string]interface{}{"status": models.StatusCancelled})
	assert.ErrorIs(t, err, errConflict)

	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusPreparing, reloaded.Status)
	assert.Equal(t, uint(2), reloaded.Version)
}

func TestSaveCartRejectsStaleWrite(t *testing.T) {
	setupCASDB(t)

	fresh, err := models.NewCart(1, 7, 2)
	require.NoError(t, err)
	require.NoError(t, config.DB.Create(fresh).Error)

	var cart models.Cart
	require.NoError(t, config.DB.Preload("Items").Where("user_id = ?", uint(1)).First(&cart).Error)
	stale := cart

	cart.Apply(7, 1)
	require.NoError(t, saveCart(&cart))

	stale.Apply(7, 5)
	assert.ErrorIs(t, saveCart(&stale), errConflict)

	var reloaded models.Cart
	require.NoError(t, config.DB.Preload("Items").First(&reloaded, cart.ID).Error)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 3, reloaded.Items[0].Quantity, "the stale write must not interleave")
}

func TestConflictMapsToHTTP409(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	fail(c, errConflict)

	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "modified concurrently")
}

package policy

import (
	"testing"

	"foodie-api/models"

	"github.com/stretchr/testify/assert"
)

func ownerRef(id uint) *uint { return &id }

func TestCanManageRestaurant(t *testing.T) {
	restaurantA := &models.Restaurant{ID: 1, OwnerID: ownerRef(10)}
	restaurantB := &models.Restaurant{ID: 2, OwnerID: ownerRef(20)}
	platform := &models.Restaurant{ID: 3} // no owner: platform-operated

	admin := Actor{ID: 99, Role: models.RoleAdmin}
	ownerA := Actor{ID: 10, Role: models.RoleOwner}
	customer := Actor{ID: 10, Role: models.RoleCustomer}

	assert.NoError(t, CanManageRestaurant(admin, restaurantA))
	assert.NoError(t, CanManageRestaurant(admin, platform))
	assert.NoError(t, CanManageRestaurant(ownerA, restaurantA))

	// owner of A acting on B's restaurant is denied
	assert.ErrorIs(t, CanManageRestaurant(ownerA, restaurantB), ErrForbidden)
	// owners get no claim over platform-operated restaurants
	assert.ErrorIs(t, CanManageRestaurant(ownerA, platform), ErrForbidden)
	// role matters: a customer with a matching id is still denied
	assert.ErrorIs(t, CanManageRestaurant(customer, restaurantA), ErrForbidden)
}

func TestCanManageOrder(t *testing.T) {
	orderAtA := &models.Order{ID: 1, RestaurantID: 1}
	restaurantA := &models.Restaurant{ID: 1, OwnerID: ownerRef(10)}
	restaurantB := &models.Restaurant{ID: 2, OwnerID: ownerRef(20)}

	admin := Actor{ID: 99, Role: models.RoleAdmin}
	ownerA := Actor{ID: 10, Role: models.RoleOwner}
	ownerB := Actor{ID: 20, Role: models.RoleOwner}

	assert.NoError(t, CanManageOrder(admin, orderAtA, nil))
	assert.NoError(t, CanManageOrder(ownerA, orderAtA, restaurantA))

	// owner of B may not touch an order placed against restaurant A
	assert.ErrorIs(t, CanManageOrder(ownerB, orderAtA, restaurantB), ErrForbidden)
	// an owner with no restaurant at all is denied
	assert.ErrorIs(t, CanManageOrder(ownerA, orderAtA, nil), ErrForbidden)
}

func TestCanActOnOwnOrder(t *testing.T) {
	order := &models.Order{ID: 1, UserID: 7}

	assert.NoError(t, CanActOnOwnOrder(Actor{ID: 7, Role: models.RoleCustomer}, order))
	assert.ErrorIs(t, CanActOnOwnOrder(Actor{ID: 8, Role: models.RoleCustomer}, order), ErrForbidden)
}

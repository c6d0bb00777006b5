// Package policy implements role-based access checks. Every guarded
// operation receives an explicit Actor value; nothing is read from ambient
// request state.
package policy

import (
	"errors"

	"foodie-api/models"
)

// ErrForbidden marks an actor acting outside their permitted scope.
var ErrForbidden = errors.New("forbidden")

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   uint
	Role models.UserRole
}

func (a Actor) IsAdmin() bool    { return a.Role == models.RoleAdmin }
func (a Actor) IsOwner() bool    { return a.Role == models.RoleOwner }
func (a Actor) IsCustomer() bool { return a.Role == models.RoleCustomer }

// CanManageRestaurant gates writes to a restaurant and its food items.
// Admins pass unconditionally; an owner passes only for the restaurant
// whose owner reference is themselves.
func CanManageRestaurant(actor Actor, restaurant *models.Restaurant) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsOwner() && restaurant.OwnedBy(actor.ID) {
		return nil
	}
	return ErrForbidden
}

// CanManageOrder gates status changes on an order. The owner's restaurant
// must be the one the order was placed against.
func CanManageOrder(actor Actor, order *models.Order, owned *models.Restaurant) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsOwner() && owned != nil && order.RestaurantID == owned.ID {
		return nil
	}
	return ErrForbidden
}

// CanActOnOwnOrder gates customer mutations (cancel, feedback): only the
// customer the order belongs to may touch it.
func CanActOnOwnOrder(actor Actor, order *models.Order) error {
	if order.UserID != actor.ID {
		return ErrForbidden
	}
	return nil
}

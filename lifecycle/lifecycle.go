// Package lifecycle holds the rules governing order status: which labels
// exist, which states are terminal, and who may move an order when.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"foodie-api/models"
)

var (
	// ErrInvalidStatus marks a status label outside the recognized set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidState marks an operation not permitted in the order's
	// current state (e.g. cancelling a Delivered order).
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidRating marks a feedback rating outside 1–5.
	ErrInvalidRating = errors.New("invalid rating")
)

// AllStatuses lists every recognized status label, in lifecycle order.
// These exact strings are persisted and served to clients.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

// ParseStatus validates a raw label against the recognized set. The error
// enumerates every valid label so callers can self-correct.
func ParseStatus(label string) (models.OrderStatus, error) {
	for _, s := range AllStatuses {
		if string(s) == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q. Must be one of: %s", ErrInvalidStatus, label, statusList())
}

func statusList() string {
	labels := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		labels[i] = string(s)
	}
	return strings.Join(labels, ", ")
}

// IsTerminal reports whether no further status change is allowed.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// CanAdvance checks whether an owner or admin may set a new status on an
// order in its current state. Sequencing is deliberately not enforced:
// any recognized status may be set from any non-terminal state.
func CanAdvance(current models.OrderStatus) error {
	if IsTerminal(current) {
		return fmt.Errorf("%w: order is already %s", ErrInvalidState, current)
	}
	return nil
}

// CanCancel checks customer cancellation eligibility.
func CanCancel(current models.OrderStatus) error {
	if current != models.StatusPending {
		return fmt.Errorf("%w: only Pending orders can be cancelled", ErrInvalidState)
	}
	return nil
}

// CanReview checks feedback eligibility. Feedback is only meaningful once
// the food has actually arrived.
func CanReview(current models.OrderStatus) error {
	if current != models.StatusDelivered {
		return fmt.Errorf("%w: feedback only for delivered orders", ErrInvalidState)
	}
	return nil
}

// ValidateRating rejects ratings outside the 1–5 scale.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidRating)
	}
	return nil
}

package lifecycle

import (
	"testing"

	"foodie-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusRecognizedLabels(t *testing.T) {
	for _, label := range []string{"Pending", "Preparing", "Out for Delivery", "Delivered", "Cancelled"} {
		status, err := ParseStatus(label)
		require.NoError(t, err, "label %q", label)
		assert.Equal(t, label, string(status), "labels must round-trip byte-for-byte")
	}
}

func TestParseStatusRejectsUnknownLabel(t *testing.T) {
	_, err := ParseStatus("Shipped")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	// the error enumerates every valid label for caller clarity
	for _, label := range []string{"Pending", "Preparing", "Out for Delivery", "Delivered", "Cancelled"} {
		assert.Contains(t, err.Error(), label)
	}
}

func TestParseStatusIsCaseSensitive(t *testing.T) {
	_, err := ParseStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanAdvance(t *testing.T) {
	assert.NoError(t, CanAdvance(models.StatusPending))
	assert.NoError(t, CanAdvance(models.StatusPreparing))
	assert.NoError(t, CanAdvance(models.StatusOutForDelivery))

	assert.ErrorIs(t, CanAdvance(models.StatusDelivered), ErrInvalidState)
	assert.ErrorIs(t, CanAdvance(models.StatusCancelled), ErrInvalidState)
}

func TestCanCancelOnlyFromPending(t *testing.T) {
	assert.NoError(t, CanCancel(models.StatusPending))

	for _, status := range []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
		models.StatusCancelled,
	} {
		err := CanCancel(status)
		require.ErrorIs(t, err, ErrInvalidState, "status %q", status)
		assert.Contains(t, err.Error(), "only Pending orders can be cancelled")
	}
}

func TestCanReviewOnlyWhenDelivered(t *testing.T) {
	assert.NoError(t, CanReview(models.StatusDelivered))

	for _, status := range []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusCancelled,
	} {
		assert.ErrorIs(t, CanReview(status), ErrInvalidState, "status %q", status)
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.ErrorIs(t, ValidateRating(0), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRating(6), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRating(-3), ErrInvalidRating)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusPreparing))
	assert.False(t, IsTerminal(models.StatusOutForDelivery))
}

func TestIntendedTransitionGraph(t *testing.T) {
	assert.Equal(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		NextStates(models.StatusPending))
	assert.Equal(t,
		[]models.OrderStatus{models.StatusOutForDelivery},
		NextStates(models.StatusPreparing))
	assert.Equal(t,
		[]models.OrderStatus{models.StatusDelivered},
		NextStates(models.StatusOutForDelivery))
	assert.Empty(t, NextStates(models.StatusDelivered))
	assert.Empty(t, NextStates(models.StatusCancelled))
}

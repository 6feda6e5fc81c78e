package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionsAreMonotonic(t *testing.T) {
	// Nothing ever returns to pending.
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusFailed} {
		assert.False(t, s.CanTransitionTo(StatusPending), "%s must not transition back to pending", s)
	}

	// Terminal states allow nothing at all.
	for _, terminal := range []Status{StatusCancelled, StatusCompleted, StatusFailed} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusFailed} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestStatusAllowedTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusFailed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))

	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusFailed))
}

func TestStatusCapabilities(t *testing.T) {
	assert.True(t, StatusPending.CanBePaid())
	assert.False(t, StatusConfirmed.CanBePaid())

	assert.True(t, StatusPending.CanBeCancelled())
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusFailed.CanBeCancelled())
	assert.False(t, StatusCompleted.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
}

func TestBookingTypeValidity(t *testing.T) {
	for _, bt := range AllBookingTypes() {
		assert.True(t, bt.IsValid())
	}
	assert.False(t, BookingType("cruise").IsValid())
	assert.False(t, BookingType("").IsValid())
}

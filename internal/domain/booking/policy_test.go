//go:build unit

package booking_test

import (
	"testing"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyTransitions(t *testing.T) {
	policy := booking.DefaultPolicy()

	cases := []struct {
		name    string
		role    user.Role
		current booking.Status
		next    booking.Status
		errIs   error
	}{
		{name: "customer cancels pending", role: user.RoleCustomer, current: booking.StatusPending, next: booking.StatusCancelled},
		{name: "customer cancels confirmed", role: user.RoleCustomer, current: booking.StatusConfirmed, next: booking.StatusCancelled},
		{name: "customer cannot confirm", role: user.RoleCustomer, current: booking.StatusPending, next: booking.StatusConfirmed, errIs: booking.ErrInvalidTransition},
		{name: "customer cannot complete", role: user.RoleCustomer, current: booking.StatusConfirmed, next: booking.StatusCompleted, errIs: booking.ErrInvalidTransition},
		{name: "customer cannot revive cancelled", role: user.RoleCustomer, current: booking.StatusCancelled, next: booking.StatusPending, errIs: booking.ErrInvalidTransition},

		{name: "manager confirms pending", role: user.RoleManager, current: booking.StatusPending, next: booking.StatusConfirmed},
		{name: "manager cancels confirmed", role: user.RoleManager, current: booking.StatusConfirmed, next: booking.StatusCancelled},
		{name: "manager completes confirmed", role: user.RoleManager, current: booking.StatusConfirmed, next: booking.StatusCompleted},
		{name: "manager cannot complete pending", role: user.RoleManager, current: booking.StatusPending, next: booking.StatusCompleted, errIs: booking.ErrInvalidTransition},
		{name: "manager cannot leave terminal state", role: user.RoleManager, current: booking.StatusCompleted, next: booking.StatusConfirmed, errIs: booking.ErrInvalidTransition},

		{name: "admin confirms pending", role: user.RoleAdmin, current: booking.StatusPending, next: booking.StatusConfirmed},
		{name: "admin revives cancelled", role: user.RoleAdmin, current: booking.StatusCancelled, next: booking.StatusConfirmed},
		{name: "admin reopens completed", role: user.RoleAdmin, current: booking.StatusCompleted, next: booking.StatusConfirmed},
		{name: "admin cannot complete cancelled", role: user.RoleAdmin, current: booking.StatusCancelled, next: booking.StatusCompleted, errIs: booking.ErrInvalidTransition},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := policy.ApplyTransition(c.current, c.next, c.role)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.next, got)
		})
	}
}

func TestApplyTransitionRejectsUnknownStatus(t *testing.T) {
	policy := booking.DefaultPolicy()

	_, err := policy.ApplyTransition(booking.Status("archived"), booking.StatusCancelled, user.RoleAdmin)
	require.ErrorIs(t, err, booking.ErrInvalidStatus)

	_, err = policy.ApplyTransition(booking.StatusPending, booking.Status("archived"), user.RoleAdmin)
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestActiveFor(t *testing.T) {
	assert.True(t, booking.ActiveFor(booking.StatusPending))
	assert.True(t, booking.ActiveFor(booking.StatusConfirmed))
	assert.False(t, booking.ActiveFor(booking.StatusCancelled))
	assert.False(t, booking.ActiveFor(booking.StatusCompleted))
}

func TestValidateActiveOverride(t *testing.T) {
	policy := booking.DefaultPolicy()

	cases := []struct {
		name      string
		resulting booking.Status
		active    bool
		role      user.Role
		errIs     error
	}{
		{name: "activate pending is consistent", resulting: booking.StatusPending, active: true, role: user.RoleCustomer},
		{name: "deactivate cancelled is consistent", resulting: booking.StatusCancelled, active: false, role: user.RoleCustomer},
		{name: "activate cancelled rejected", resulting: booking.StatusCancelled, active: true, role: user.RoleCustomer, errIs: booking.ErrCannotActivateInactiveStatus},
		{name: "activate completed rejected for manager", resulting: booking.StatusCompleted, active: true, role: user.RoleManager, errIs: booking.ErrCannotActivateInactiveStatus},
		{name: "admin may activate terminal status", resulting: booking.StatusCancelled, active: true, role: user.RoleAdmin},
		{name: "deactivate confirmed rejected even for admin", resulting: booking.StatusConfirmed, active: false, role: user.RoleAdmin, errIs: booking.ErrCannotDeactivateActiveStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := policy.ValidateActiveOverride(c.resulting, c.active, c.role)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cafe-reservation/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func validAssignments() []booking.Assignment {
	return []booking.Assignment{
		{TableID: uuid.New(), SlotID: uuid.New()},
	}
}

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	cafeID := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	t.Run("basic success case", func(t *testing.T) {
		b, err := booking.NewBooking(userID, cafeID, tomorrow, 2, validAssignments(), booking.Note{}, testNow)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, cafeID, b.CafeID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.IsActive())
		assert.True(t, b.Occupying())
	})

	t.Run("non-positive guest number", func(t *testing.T) {
		_, err := booking.NewBooking(userID, cafeID, tomorrow, 0, validAssignments(), booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrInvalidGuestNumber)

		_, err = booking.NewBooking(userID, cafeID, tomorrow, -3, validAssignments(), booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrInvalidGuestNumber)
	})

	t.Run("today is rejected", func(t *testing.T) {
		// Later the same day still counts as today
		today := testNow.Add(4 * time.Hour)
		_, err := booking.NewBooking(userID, cafeID, today, 2, validAssignments(), booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(userID, cafeID, testNow.AddDate(0, 0, -1), 2, validAssignments(), booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("empty assignment set", func(t *testing.T) {
		_, err := booking.NewBooking(userID, cafeID, tomorrow, 2, nil, booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrNoAssignments)
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		a := booking.Assignment{TableID: uuid.New(), SlotID: uuid.New()}
		_, err := booking.NewBooking(userID, cafeID, tomorrow, 2, []booking.Assignment{a, a}, booking.Note{}, testNow)
		require.ErrorIs(t, err, booking.ErrDuplicateAssignment)
	})

	t.Run("same table different slots is allowed", func(t *testing.T) {
		tableID := uuid.New()
		assignments := []booking.Assignment{
			{TableID: tableID, SlotID: uuid.New()},
			{TableID: tableID, SlotID: uuid.New()},
		}
		b, err := booking.NewBooking(userID, cafeID, tomorrow, 2, assignments, booking.Note{}, testNow)
		require.NoError(t, err)
		assert.Len(t, b.Assignments(), 2)
	})
}

func TestOccupying(t *testing.T) {
	id := uuid.New()
	date := testNow.AddDate(0, 0, 1)

	cases := []struct {
		name   string
		status booking.Status
		active bool
		want   bool
	}{
		{name: "pending active", status: booking.StatusPending, active: true, want: true},
		{name: "confirmed active", status: booking.StatusConfirmed, active: true, want: true},
		{name: "cancelled inactive", status: booking.StatusCancelled, active: false, want: false},
		{name: "completed inactive", status: booking.StatusCompleted, active: false, want: false},
		{name: "pending deactivated", status: booking.StatusPending, active: false, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := booking.ReconstructBooking(
				id, uuid.New(), uuid.New(), date, 2, c.status, c.active,
				booking.Note{}, validAssignments(), testNow, testNow,
			)
			assert.Equal(t, c.want, b.Occupying())
		})
	}
}

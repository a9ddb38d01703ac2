//go:build unit

package booking_test

import (
	"testing"

	"cafe-reservation/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) booking.TimeInterval {
	t.Helper()
	s, err := booking.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := booking.ParseTimeOfDay(end)
	require.NoError(t, err)
	iv, err := booking.NewTimeInterval(s, e)
	require.NoError(t, err)
	return iv
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "morning", in: "09:00", hour: 9, minute: 0},
		{name: "midnight", in: "00:00", hour: 0, minute: 0},
		{name: "last minute of day", in: "23:59", hour: 23, minute: 59},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "12:60", wantErr: true},
		{name: "garbage", in: "noon", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tod, err := booking.ParseTimeOfDay(c.in)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.hour, tod.Hour())
			assert.Equal(t, c.minute, tod.Minute())
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod, err := booking.NewTimeOfDay(9, 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())
}

func TestNewTimeInterval(t *testing.T) {
	nine, _ := booking.ParseTimeOfDay("09:00")
	ten, _ := booking.ParseTimeOfDay("10:00")

	t.Run("valid", func(t *testing.T) {
		iv, err := booking.NewTimeInterval(nine, ten)
		require.NoError(t, err)
		assert.Equal(t, nine, iv.Start())
		assert.Equal(t, ten, iv.End())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := booking.NewTimeInterval(nine, nine)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.NewTimeInterval(ten, nine)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestTimeIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "touching endpoints do not overlap", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "partial overlap", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:30", "10:30"}, want: true},
		{name: "containment", a: [2]string{"08:00", "12:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "identical", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "disjoint", a: [2]string{"09:00", "10:00"}, b: [2]string{"11:00", "12:00"}, want: false},
		{name: "one minute apart", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:01", "11:00"}, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustInterval(t, c.a[0], c.a[1])
			b := mustInterval(t, c.b[0], c.b[1])

			assert.Equal(t, c.want, a.Overlaps(b))
			// The test is symmetric by definition
			assert.Equal(t, c.want, b.Overlaps(a))
		})
	}
}

func TestNote(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		n, err := booking.NewNote("window seat please")
		require.NoError(t, err)
		assert.Equal(t, "window seat please", n.String())
		assert.False(t, n.IsEmpty())
	})

	t.Run("empty", func(t *testing.T) {
		n, err := booking.NewNote("")
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
	})

	t.Run("too long", func(t *testing.T) {
		long := make([]byte, booking.MaxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := booking.NewNote(string(long))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})
}

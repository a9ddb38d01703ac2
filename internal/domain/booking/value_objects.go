package booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time without a date, stored as minutes since
// midnight. Slots are recurring time-of-day windows; combining one with a
// booking date yields the actual occupied interval.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.New("time of day out of range")
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "15:04" formatted strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// TimeInterval is a half-open [start, end) window within one day.
type TimeInterval struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if start < 0 || int(end) > minutesPerDay {
		return TimeInterval{}, ErrInvalidInterval
	}
	if start >= end {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{start: start, end: end}, nil
}

func (i TimeInterval) Start() TimeOfDay { return i.start }
func (i TimeInterval) End() TimeOfDay   { return i.end }

// Overlaps is the half-open intersection test: touching endpoints do not
// count as overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.start < other.end && other.start < i.end
}

func (i TimeInterval) String() string {
	return i.start.String() + "-" + i.end.String()
}

// Assignment pairs a table with a slot. A booking owns a non-empty,
// duplicate-free set of assignments.
type Assignment struct {
	TableID uuid.UUID
	SlotID  uuid.UUID
}

type Note struct {
	value string
}

const MaxNoteLength = 256

func NewNote(value string) (Note, error) {
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

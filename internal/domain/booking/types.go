package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ActiveFor is the authoritative status→active mapping: a booking occupies
// its tables only while pending or confirmed.
func ActiveFor(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether the status has no outgoing transitions in
// normal operation. Admins may still force a transition out (see Policy).
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

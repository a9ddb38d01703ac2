package booking

import (
	"errors"

	"cafe-reservation/internal/domain/user"
)

var (
	ErrInvalidTransition            = errors.New("invalid status transition")
	ErrCannotActivateInactiveStatus = errors.New("cannot activate booking with inactive status")
	ErrCannotDeactivateActiveStatus = errors.New("cannot deactivate booking with active status")
)

// Policy is the role-gated transition matrix, kept as data so rule changes
// don't touch control flow. Absent entries mean the transition is forbidden.
type Policy struct {
	transitions map[user.Role]map[Status][]Status
}

func NewPolicy(transitions map[user.Role]map[Status][]Status) *Policy {
	return &Policy{transitions: transitions}
}

// DefaultPolicy returns the standard matrix:
//   - customers may cancel their pending or confirmed bookings
//   - managers additionally confirm, cancel and complete
//   - admins may also force a booking back out of a terminal state
func DefaultPolicy() *Policy {
	return NewPolicy(map[user.Role]map[Status][]Status{
		user.RoleCustomer: {
			StatusPending:   {StatusCancelled},
			StatusConfirmed: {StatusCancelled},
		},
		user.RoleManager: {
			StatusPending:   {StatusConfirmed, StatusCancelled},
			StatusConfirmed: {StatusCancelled, StatusCompleted},
		},
		user.RoleAdmin: {
			StatusPending:   {StatusConfirmed, StatusCancelled},
			StatusConfirmed: {StatusCancelled, StatusCompleted},
			StatusCancelled: {StatusPending, StatusConfirmed},
			StatusCompleted: {StatusConfirmed},
		},
	})
}

// ApplyTransition validates current→requested for the given role and
// returns the resulting status.
func (p *Policy) ApplyTransition(current, requested Status, role user.Role) (Status, error) {
	if !current.IsValid() || !requested.IsValid() {
		return "", ErrInvalidStatus
	}
	for _, allowed := range p.transitions[role][current] {
		if allowed == requested {
			return requested, nil
		}
	}
	return "", ErrInvalidTransition
}

// ValidateActiveOverride checks an explicitly supplied active flag against
// the status the booking will end up with. The mapping in ActiveFor is
// authoritative; a mismatching override is rejected rather than silently
// corrected. Admins may re-activate a terminal booking as part of a forced
// transition.
func (p *Policy) ValidateActiveOverride(resulting Status, requestedActive bool, role user.Role) error {
	if requestedActive {
		if !ActiveFor(resulting) && role != user.RoleAdmin {
			return ErrCannotActivateInactiveStatus
		}
		return nil
	}
	if ActiveFor(resulting) {
		return ErrCannotDeactivateActiveStatus
	}
	return nil
}

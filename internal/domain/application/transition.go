package application

import (
	"fmt"

	"realname-backend/internal/domain/actor"
)

// Action is a requested state transition. Audit actions are a superset of
// these (a decide splits into approved/rejected at audit time).
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionResubmit Action = "resubmit"
	ActionCancel   Action = "cancel"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
)

// IllegalTransitionError carries the status the record was actually in so
// callers can render a precise message.
type IllegalTransitionError struct {
	Current Status
	Action  Action
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an application in status %q", e.Action, e.Current)
}

type rule struct {
	from   Status
	action Action
	roles  []actor.Role
	to     Status
}

// The one authoritative transition table. Cancellation is allowed from both
// pending and rejected.
var transitions = []rule{
	{from: StatusPending, action: ActionCancel, roles: []actor.Role{actor.RoleCustomer}, to: StatusCancelled},
	{from: StatusRejected, action: ActionCancel, roles: []actor.Role{actor.RoleCustomer}, to: StatusCancelled},
	{from: StatusRejected, action: ActionResubmit, roles: []actor.Role{actor.RoleCustomer}, to: StatusPending},
	{from: StatusPending, action: ActionApprove, roles: []actor.Role{actor.RoleAuditor, actor.RoleAdmin}, to: StatusApproved},
	{from: StatusPending, action: ActionReject, roles: []actor.Role{actor.RoleAuditor, actor.RoleAdmin}, to: StatusRejected},
}

// NextStatus resolves (current, action, role) against the transition table.
// A role miss yields ErrForbidden; a state/action miss yields
// IllegalTransitionError. Ownership must already have been checked.
func NextStatus(current Status, act Action, role actor.Role) (Status, error) {
	for _, r := range transitions {
		if r.from != current || r.action != act {
			continue
		}
		for _, allowed := range r.roles {
			if allowed == role {
				return r.to, nil
			}
		}
		return "", ErrForbidden
	}
	return "", &IllegalTransitionError{Current: current, Action: act}
}

// file: internals/features/outpasses/outpass/service/state_machine.go
package service

import (
	"errors"
	"fmt"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/model"
)

// Op names a lifecycle operation. Every role-gated endpoint maps to exactly
// one Op, and every Op is validated here: role first, then source state.
type Op string

const (
	OpCreate            Op = "CREATE"
	OpCancel            Op = "CANCEL"
	OpMarkFeePending    Op = "MARK_FEE_PENDING"
	OpMarkFeePaid       Op = "MARK_FEE_PAID"
	OpApprove           Op = "APPROVE"
	OpReject            Op = "REJECT"
	OpScheduleMeeting   Op = "SCHEDULE_MEETING"
	OpCancelMeeting     Op = "CANCEL_MEETING"
	OpVacate            Op = "VACATE"
	OpGateCheckout      Op = "GATE_CHECKOUT"
	OpProcessExitCode   Op = "PROCESS_EXIT_CODE"
	OpProcessReturnCode Op = "PROCESS_RETURN_CODE"
	OpMarkReturned      Op = "MARK_RETURNED"
)

// ErrUnauthorized: caller's role is not in the operation's allowed set.
var ErrUnauthorized = errors.New("role not permitted for this operation")

// InvalidTransitionError carries the current and required states so the
// caller sees exactly why the operation was refused.
type InvalidTransitionError struct {
	Op       Op
	Current  model.Status
	Required []model.Status
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Required) == 0 {
		return fmt.Sprintf("%s not allowed from terminal status %s", e.Op, e.Current)
	}
	return fmt.Sprintf("%s requires status %v, current status is %s", e.Op, e.Required, e.Current)
}

// rule: who may run the operation, from which states, landing where.
// sources == nil means "any non-terminal state".
type rule struct {
	roles   []string
	sources []model.Status
	target  model.Status
}

var transitionTable = map[Op]rule{
	OpCreate: {
		roles:  []string{constants.RoleParent},
		target: model.StatusPending,
	},
	OpCancel: {
		roles: []string{constants.RoleParent},
		sources: []model.Status{
			model.StatusPending, model.StatusFeePending, model.StatusApproved,
			model.StatusMeeting, model.StatusReadyForExit,
		},
		target: model.StatusCancelled,
	},
	OpMarkFeePending: {
		roles:  []string{constants.RoleAccountant},
		target: model.StatusFeePending,
	},
	// MarkFeePaid is status-preserving unless the outpass is FEE_PENDING;
	// Transition handles that branch explicitly.
	OpMarkFeePaid: {
		roles:  []string{constants.RoleAccountant},
		target: model.StatusPending,
	},
	OpApprove: {
		roles:  []string{constants.RoleHM},
		target: model.StatusApproved,
	},
	OpReject: {
		roles:  []string{constants.RoleHM, constants.RoleWarden},
		target: model.StatusRejected,
	},
	OpScheduleMeeting: {
		roles:  []string{constants.RoleHM},
		target: model.StatusMeeting,
	},
	OpCancelMeeting: {
		roles:   []string{constants.RoleHM},
		sources: []model.Status{model.StatusMeeting},
		target:  model.StatusPending,
	},
	OpVacate: {
		roles:   []string{constants.RoleWarden},
		sources: []model.Status{model.StatusApproved},
		target:  model.StatusReadyForExit,
	},
	OpGateCheckout: {
		roles:   []string{constants.RoleGateStaff},
		sources: []model.Status{model.StatusReadyForExit},
		target:  model.StatusCheckedOut,
	},
	OpProcessExitCode: {
		roles:   []string{constants.RoleGateStaff},
		sources: []model.Status{model.StatusReadyForExit},
		target:  model.StatusCheckedOut,
	},
	OpProcessReturnCode: {
		roles:   []string{constants.RoleGateStaff},
		sources: []model.Status{model.StatusCheckedOut},
		target:  model.StatusCompleted,
	},
	OpMarkReturned: {
		roles:  []string{constants.RoleWarden, constants.RoleHM},
		target: model.StatusCompleted,
	},
}

// Authorize checks the caller's role against the operation's allowed set.
func Authorize(op Op, role string) error {
	r, ok := transitionTable[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	for _, allowed := range r.roles {
		if role == allowed {
			return nil
		}
	}
	return ErrUnauthorized
}

// Transition validates the source-state precondition and returns the target
// status. It must be called with the status re-read under the row lock.
func Transition(op Op, current model.Status) (model.Status, error) {
	r, ok := transitionTable[op]
	if !ok {
		return current, fmt.Errorf("unknown operation %q", op)
	}

	// MarkFeePaid: fee fields update regardless, status moves only out of
	// FEE_PENDING. Any other non-terminal status is kept as-is.
	if op == OpMarkFeePaid {
		if current.IsTerminal() {
			return current, &InvalidTransitionError{Op: op, Current: current}
		}
		if current == model.StatusFeePending {
			return model.StatusPending, nil
		}
		return current, nil
	}

	if r.sources == nil {
		if current.IsTerminal() {
			return current, &InvalidTransitionError{Op: op, Current: current}
		}
		return r.target, nil
	}

	for _, s := range r.sources {
		if current == s {
			return r.target, nil
		}
	}
	return current, &InvalidTransitionError{Op: op, Current: current, Required: r.sources}
}

// Apply runs both guards in the mandated order: role, then source state.
func Apply(op Op, role string, current model.Status) (model.Status, error) {
	if err := Authorize(op, role); err != nil {
		return current, err
	}
	return Transition(op, current)
}

// RequiredSources exposes the valid source set for an operation (nil = any
// non-terminal). Used by dashboards to label actionable requests.
func RequiredSources(op Op) []model.Status {
	return transitionTable[op].sources
}

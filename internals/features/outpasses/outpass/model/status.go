// file: internals/features/outpasses/outpass/model/status.go
package model

// Status is the single source of truth for an outpass' lifecycle state.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusFeePending   Status = "FEE_PENDING"
	StatusApproved     Status = "APPROVED"
	StatusMeeting      Status = "MEETING"
	StatusReadyForExit Status = "READY_FOR_EXIT"
	StatusCheckedOut   Status = "CHECKED_OUT"
	StatusCompleted    Status = "COMPLETED"
	StatusOverdue      Status = "OVERDUE"
	StatusRejected     Status = "REJECTED"
	StatusCancelled    Status = "CANCELLED"
	StatusExpired      Status = "EXPIRED"
)

// TerminalStatuses is the set from which no transition is defined. A student
// may hold at most one outpass outside this set at any time.
var TerminalStatuses = []Status{
	StatusCompleted,
	StatusRejected,
	StatusCancelled,
	StatusExpired,
}

func (s Status) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// ActiveStatuses returns every non-terminal state, the set the
// one-active-request-per-student rule counts against.
func ActiveStatuses() []Status {
	return []Status{
		StatusPending, StatusFeePending, StatusApproved, StatusMeeting,
		StatusReadyForExit, StatusCheckedOut, StatusOverdue,
	}
}

// IsValid reports whether s is one of the defined lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusFeePending, StatusApproved, StatusMeeting,
		StatusReadyForExit, StatusCheckedOut, StatusCompleted, StatusOverdue,
		StatusRejected, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

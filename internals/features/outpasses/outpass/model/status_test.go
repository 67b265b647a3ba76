// file: internals/features/outpasses/outpass/model/status_test.go
package model

import "testing"

func TestIsTerminal(t *testing.T) {
	for _, s := range TerminalStatuses {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{
		StatusPending, StatusFeePending, StatusApproved, StatusMeeting,
		StatusReadyForExit, StatusCheckedOut, StatusOverdue,
	} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestActiveAndTerminalPartition(t *testing.T) {
	seen := map[Status]bool{}
	for _, s := range ActiveStatuses() {
		if s.IsTerminal() {
			t.Errorf("%s is in both the active and terminal sets", s)
		}
		seen[s] = true
	}
	for _, s := range TerminalStatuses {
		seen[s] = true
	}
	if len(seen) != 11 {
		t.Errorf("active + terminal cover %d statuses, want 11", len(seen))
	}
}

func TestIsValid(t *testing.T) {
	valid := []Status{
		StatusPending, StatusFeePending, StatusApproved, StatusMeeting,
		StatusReadyForExit, StatusCheckedOut, StatusCompleted,
		StatusOverdue, StatusRejected, StatusCancelled, StatusExpired,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "pending", "DONE"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

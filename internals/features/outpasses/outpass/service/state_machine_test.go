// file: internals/features/outpasses/outpass/service/state_machine_test.go
package service

import (
	"errors"
	"testing"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/model"
)

func TestAuthorizeRoleMatrix(t *testing.T) {
	cases := []struct {
		op      Op
		role    string
		allowed bool
	}{
		{OpCreate, constants.RoleParent, true},
		{OpCreate, constants.RoleWarden, false},
		{OpCancel, constants.RoleParent, true},
		{OpCancel, constants.RoleHM, false},
		{OpMarkFeePending, constants.RoleAccountant, true},
		{OpMarkFeePending, constants.RoleHM, false},
		{OpMarkFeePaid, constants.RoleAccountant, true},
		{OpApprove, constants.RoleHM, true},
		{OpApprove, constants.RoleAccountant, false},
		{OpReject, constants.RoleHM, true},
		{OpReject, constants.RoleWarden, true},
		{OpReject, constants.RoleGateStaff, false},
		{OpScheduleMeeting, constants.RoleHM, true},
		{OpCancelMeeting, constants.RoleHM, true},
		{OpVacate, constants.RoleWarden, true},
		{OpVacate, constants.RoleHM, false},
		{OpGateCheckout, constants.RoleGateStaff, true},
		{OpGateCheckout, constants.RoleWarden, false},
		{OpProcessExitCode, constants.RoleGateStaff, true},
		{OpProcessReturnCode, constants.RoleGateStaff, true},
		{OpProcessReturnCode, constants.RoleParent, false},
		{OpMarkReturned, constants.RoleWarden, true},
		{OpMarkReturned, constants.RoleHM, true},
		{OpMarkReturned, constants.RoleGateStaff, false},
	}

	for _, tc := range cases {
		err := Authorize(tc.op, tc.role)
		if tc.allowed && err != nil {
			t.Errorf("%s by %s: want allowed, got %v", tc.op, tc.role, err)
		}
		if !tc.allowed && !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%s by %s: want ErrUnauthorized, got %v", tc.op, tc.role, err)
		}
	}
}

func TestVacateOnlyFromApproved(t *testing.T) {
	next, err := Transition(OpVacate, model.StatusApproved)
	if err != nil {
		t.Fatalf("vacate from APPROVED: %v", err)
	}
	if next != model.StatusReadyForExit {
		t.Fatalf("vacate target = %s, want READY_FOR_EXIT", next)
	}

	for _, from := range []model.Status{
		model.StatusPending, model.StatusFeePending, model.StatusMeeting,
		model.StatusReadyForExit, model.StatusCheckedOut, model.StatusOverdue,
	} {
		if _, err := Transition(OpVacate, from); err == nil {
			t.Errorf("vacate from %s: want error, got none", from)
		}
	}
}

func TestTerminalStatusesAreImmutable(t *testing.T) {
	ops := []Op{
		OpCancel, OpMarkFeePending, OpMarkFeePaid, OpApprove, OpReject,
		OpScheduleMeeting, OpCancelMeeting, OpVacate, OpGateCheckout,
		OpProcessExitCode, OpProcessReturnCode, OpMarkReturned,
	}
	for _, status := range model.TerminalStatuses {
		for _, op := range ops {
			if _, err := Transition(op, status); err == nil {
				t.Errorf("%s from terminal %s: want error, got none", op, status)
			}
		}
	}
}

func TestCancelSourceSet(t *testing.T) {
	cancellable := []model.Status{
		model.StatusPending, model.StatusFeePending, model.StatusApproved,
		model.StatusMeeting, model.StatusReadyForExit,
	}
	for _, from := range cancellable {
		next, err := Transition(OpCancel, from)
		if err != nil {
			t.Errorf("cancel from %s: %v", from, err)
			continue
		}
		if next != model.StatusCancelled {
			t.Errorf("cancel from %s landed on %s", from, next)
		}
	}

	// Once out of the gate the parent can no longer cancel.
	for _, from := range []model.Status{model.StatusCheckedOut, model.StatusOverdue} {
		if _, err := Transition(OpCancel, from); err == nil {
			t.Errorf("cancel from %s: want error, got none", from)
		}
	}
}

func TestMarkFeePaidPreservesStatus(t *testing.T) {
	next, err := Transition(OpMarkFeePaid, model.StatusFeePending)
	if err != nil {
		t.Fatalf("mark fee paid from FEE_PENDING: %v", err)
	}
	if next != model.StatusPending {
		t.Fatalf("FEE_PENDING resolves to %s, want PENDING", next)
	}

	for _, from := range []model.Status{
		model.StatusPending, model.StatusApproved, model.StatusMeeting,
		model.StatusReadyForExit, model.StatusCheckedOut,
	} {
		next, err := Transition(OpMarkFeePaid, from)
		if err != nil {
			t.Errorf("mark fee paid from %s: %v", from, err)
			continue
		}
		if next != from {
			t.Errorf("mark fee paid from %s moved to %s, want status preserved", from, next)
		}
	}
}

func TestInvalidTransitionErrorDetails(t *testing.T) {
	_, err := Transition(OpGateCheckout, model.StatusPending)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("want *InvalidTransitionError, got %T (%v)", err, err)
	}
	if ite.Op != OpGateCheckout || ite.Current != model.StatusPending {
		t.Fatalf("error details = %+v", ite)
	}
	if len(ite.Required) != 1 || ite.Required[0] != model.StatusReadyForExit {
		t.Fatalf("required set = %v, want [READY_FOR_EXIT]", ite.Required)
	}
}

// The happy path end to end, role and state checked at every hop.
func TestFullLifecycleRoundTrip(t *testing.T) {
	steps := []struct {
		op   Op
		role string
		want model.Status
	}{
		{OpMarkFeePending, constants.RoleAccountant, model.StatusFeePending},
		{OpMarkFeePaid, constants.RoleAccountant, model.StatusPending},
		{OpScheduleMeeting, constants.RoleHM, model.StatusMeeting},
		{OpCancelMeeting, constants.RoleHM, model.StatusPending},
		{OpApprove, constants.RoleHM, model.StatusApproved},
		{OpVacate, constants.RoleWarden, model.StatusReadyForExit},
		{OpProcessExitCode, constants.RoleGateStaff, model.StatusCheckedOut},
		{OpProcessReturnCode, constants.RoleGateStaff, model.StatusCompleted},
	}

	current := model.StatusPending
	for _, step := range steps {
		next, err := Apply(step.op, step.role, current)
		if err != nil {
			t.Fatalf("%s by %s from %s: %v", step.op, step.role, current, err)
		}
		if next != step.want {
			t.Fatalf("%s landed on %s, want %s", step.op, next, step.want)
		}
		current = next
	}

	if !current.IsTerminal() {
		t.Fatalf("lifecycle ended on non-terminal %s", current)
	}
}

func TestApplyChecksRoleBeforeState(t *testing.T) {
	// Wrong role AND wrong state: the role refusal must win.
	_, err := Apply(OpVacate, constants.RoleParent, model.StatusPending)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized first, got %v", err)
	}
}

func TestRequiredSources(t *testing.T) {
	if got := RequiredSources(OpVacate); len(got) != 1 || got[0] != model.StatusApproved {
		t.Fatalf("vacate sources = %v", got)
	}
	if got := RequiredSources(OpMarkReturned); got != nil {
		t.Fatalf("mark-returned sources = %v, want nil (any non-terminal)", got)
	}
}

func TestAdminHoldsNoTransitionGrants(t *testing.T) {
	// ADMIN is a read and configuration role. The route gates pin each
	// transition endpoint to the role that owns it, and the table must
	// agree so no gate-passing role is then refused here.
	ops := []Op{
		OpCreate, OpCancel, OpMarkFeePending, OpMarkFeePaid,
		OpApprove, OpReject, OpScheduleMeeting, OpCancelMeeting,
		OpVacate, OpGateCheckout, OpProcessExitCode,
		OpProcessReturnCode, OpMarkReturned,
	}
	for _, op := range ops {
		if err := Authorize(op, constants.RoleAdmin); err != ErrUnauthorized {
			t.Errorf("Authorize(%s, ADMIN) = %v, want ErrUnauthorized", op, err)
		}
	}
}

// file: internals/features/outpasses/outpass/service/approval_ledger_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/model"
)

func TestRecordApprovalUpsertsSingleRowPerRole(t *testing.T) {
	db := openTestDB(t)
	outpassID := uuid.New()
	firstActor := uuid.New()
	secondActor := uuid.New()

	if err := RecordApproval(db, outpassID, constants.RoleHM, &firstActor, model.ApprovalApproved, "cleared", nil); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	fee := 150.0
	err := RecordApproval(db, outpassID, constants.RoleHM, &secondActor, model.ApprovalRejected, "changed mind", &ApprovalSnapshot{FeeAmount: &fee})
	if err != nil {
		t.Fatalf("second decision: %v", err)
	}

	rows, err := ListApprovals(db, outpassID)
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows for one role = %d, want 1", len(rows))
	}

	got := rows[0]
	if got.OutpassApprovalStatus != model.ApprovalRejected {
		t.Errorf("status = %s, want %s", got.OutpassApprovalStatus, model.ApprovalRejected)
	}
	if got.OutpassApprovalComments != "changed mind" {
		t.Errorf("comments = %q, want the later decision's comments", got.OutpassApprovalComments)
	}
	if got.OutpassApprovalApproverID == nil || *got.OutpassApprovalApproverID != secondActor {
		t.Errorf("approver id = %v, want %s", got.OutpassApprovalApproverID, secondActor)
	}
	if got.OutpassApprovalFeeAmount == nil || *got.OutpassApprovalFeeAmount != fee {
		t.Errorf("fee amount = %v, want %v", got.OutpassApprovalFeeAmount, fee)
	}
}

func TestRecordApprovalReplayLeavesSameRow(t *testing.T) {
	db := openTestDB(t)
	outpassID := uuid.New()
	actor := uuid.New()

	for i := 0; i < 3; i++ {
		if err := RecordApproval(db, outpassID, constants.RoleWarden, &actor, model.ApprovalApproved, "vacated", nil); err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
	}

	rows, err := ListApprovals(db, outpassID)
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows after replay = %d, want 1", len(rows))
	}
	if rows[0].OutpassApprovalStatus != model.ApprovalApproved {
		t.Errorf("status = %s, want %s", rows[0].OutpassApprovalStatus, model.ApprovalApproved)
	}
}

func TestRecordApprovalKeepsRolesSeparate(t *testing.T) {
	db := openTestDB(t)
	outpassID := uuid.New()

	if err := RecordApproval(db, outpassID, constants.RoleHM, nil, model.ApprovalApproved, "", nil); err != nil {
		t.Fatalf("hm decision: %v", err)
	}
	if err := RecordApproval(db, outpassID, constants.RoleWarden, nil, model.ApprovalApproved, "", nil); err != nil {
		t.Fatalf("warden decision: %v", err)
	}

	rows, err := ListApprovals(db, outpassID)
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows for two roles = %d, want 2", len(rows))
	}
}

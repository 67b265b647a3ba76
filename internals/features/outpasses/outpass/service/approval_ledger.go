// file: internals/features/outpasses/outpass/service/approval_ledger.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"outpass_backend/internals/features/outpasses/outpass/model"
)

// ApprovalSnapshot carries the optional decision context stored on the row.
type ApprovalSnapshot struct {
	FeeAmount   *float64
	MeetingDate *time.Time
}

// RecordApproval upserts the (outpass, role) ledger row: insert when absent,
// otherwise overwrite status/actor/comments/snapshot/timestamp. Idempotent:
// replaying the same call leaves the same final row. Always call it on the
// transaction that performs the matching status mutation.
func RecordApproval(tx *gorm.DB, outpassID uuid.UUID, role string, actorID *uuid.UUID, status model.ApprovalStatus, comments string, snap *ApprovalSnapshot) error {
	row := model.OutpassApprovalModel{
		OutpassApprovalOutpassID:    outpassID,
		OutpassApprovalApproverRole: role,
		OutpassApprovalApproverID:   actorID,
		OutpassApprovalStatus:       status,
		OutpassApprovalComments:     comments,
	}
	if snap != nil {
		row.OutpassApprovalFeeAmount = snap.FeeAmount
		row.OutpassApprovalMeetingDate = snap.MeetingDate
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "outpass_approval_outpass_id"},
			{Name: "outpass_approval_approver_role"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"outpass_approval_approver_id",
			"outpass_approval_status",
			"outpass_approval_comments",
			"outpass_approval_fee_amount",
			"outpass_approval_meeting_date",
			"outpass_approval_updated_at",
		}),
	}).Create(&row).Error
}

// ListApprovals returns all role rows for audit display, oldest first.
func ListApprovals(db *gorm.DB, outpassID uuid.UUID) ([]model.OutpassApprovalModel, error) {
	var rows []model.OutpassApprovalModel
	err := db.
		Where("outpass_approval_outpass_id = ?", outpassID).
		Order("outpass_approval_created_at ASC").
		Find(&rows).Error
	return rows, err
}

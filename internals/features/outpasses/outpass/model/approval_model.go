// file: internals/features/outpasses/outpass/model/approval_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalPending         ApprovalStatus = "PENDING"
	ApprovalApproved        ApprovalStatus = "APPROVED"
	ApprovalRejected        ApprovalStatus = "REJECTED"
	ApprovalReviewRequested ApprovalStatus = "REVIEW"
)

// OutpassApprovalModel is the per-role decision ledger. One row per
// (outpass, role); later decisions by the same role overwrite the row.
type OutpassApprovalModel struct {
	OutpassApprovalID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:outpass_approval_id" json:"outpass_approval_id"`

	OutpassApprovalOutpassID    uuid.UUID      `gorm:"type:uuid;not null;column:outpass_approval_outpass_id;uniqueIndex:uq_outpass_approval_role" json:"outpass_approval_outpass_id"`
	OutpassApprovalApproverRole string         `gorm:"size:20;not null;column:outpass_approval_approver_role;uniqueIndex:uq_outpass_approval_role" json:"outpass_approval_approver_role"`
	OutpassApprovalApproverID   *uuid.UUID     `gorm:"type:uuid;column:outpass_approval_approver_id" json:"outpass_approval_approver_id,omitempty"`
	OutpassApprovalStatus       ApprovalStatus `gorm:"size:20;not null;default:'PENDING';column:outpass_approval_status" json:"outpass_approval_status"`
	OutpassApprovalComments     string         `gorm:"type:text;column:outpass_approval_comments" json:"outpass_approval_comments"`

	// Decision snapshots
	OutpassApprovalFeeAmount   *float64   `gorm:"type:numeric(10,2);column:outpass_approval_fee_amount" json:"outpass_approval_fee_amount,omitempty"`
	OutpassApprovalMeetingDate *time.Time `gorm:"column:outpass_approval_meeting_date" json:"outpass_approval_meeting_date,omitempty"`

	OutpassApprovalCreatedAt time.Time `gorm:"column:outpass_approval_created_at;autoCreateTime" json:"outpass_approval_created_at"`
	OutpassApprovalUpdatedAt time.Time `gorm:"column:outpass_approval_updated_at;autoUpdateTime" json:"outpass_approval_updated_at"`
}

func (OutpassApprovalModel) TableName() string { return "outpass_approvals" }

// file: internals/features/outpasses/outpass/model/outpass_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutpassModel struct {
	// PK
	OutpassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:outpass_id" json:"outpass_id"`

	// Required relations (immutable after creation)
	OutpassStudentID uuid.UUID `gorm:"type:uuid;not null;column:outpass_student_id;index:idx_outpasses_student" json:"outpass_student_id"`
	OutpassParentID  uuid.UUID `gorm:"type:uuid;not null;column:outpass_parent_id;index:idx_outpasses_parent" json:"outpass_parent_id"`

	// Pickup: registered guardian OR free-text person (both may inform)
	OutpassGuardianID           *uuid.UUID `gorm:"type:uuid;column:outpass_guardian_id" json:"outpass_guardian_id,omitempty"`
	OutpassPickupPersonName     string     `gorm:"size:100;column:outpass_pickup_person_name" json:"outpass_pickup_person_name"`
	OutpassPickupPersonPhone    string     `gorm:"size:15;column:outpass_pickup_person_phone" json:"outpass_pickup_person_phone"`
	OutpassPickupPersonRelation string     `gorm:"size:50;column:outpass_pickup_person_relation" json:"outpass_pickup_person_relation"`

	// Scheduling
	OutpassOutgoingDate       datatypes.Date `gorm:"not null;column:outpass_outgoing_date;index:idx_outpasses_dates" json:"outpass_outgoing_date"`
	OutpassOutgoingTime       string         `gorm:"type:time;not null;column:outpass_outgoing_time" json:"outpass_outgoing_time"`
	OutpassExpectedReturnDate datatypes.Date `gorm:"not null;column:outpass_expected_return_date;index:idx_outpasses_dates" json:"outpass_expected_return_date"`
	OutpassExpectedReturnTime string         `gorm:"type:time;not null;column:outpass_expected_return_time" json:"outpass_expected_return_time"`
	OutpassActualReturnDate   *time.Time     `gorm:"column:outpass_actual_return_date" json:"outpass_actual_return_date,omitempty"`

	// Purpose
	OutpassReason       string `gorm:"type:text;not null;column:outpass_reason" json:"outpass_reason"`
	OutpassDestination  string `gorm:"size:200;column:outpass_destination" json:"outpass_destination"`
	OutpassModeOfTravel string `gorm:"size:100;column:outpass_mode_of_travel" json:"outpass_mode_of_travel"`

	// Priority
	OutpassIsPriority     bool   `gorm:"not null;default:false;column:outpass_is_priority;index:idx_outpasses_status_priority" json:"outpass_is_priority"`
	OutpassPriorityReason string `gorm:"type:text;column:outpass_priority_reason" json:"outpass_priority_reason"`
	OutpassPriorityLevel  int    `gorm:"not null;default:0;column:outpass_priority_level" json:"outpass_priority_level"` // 1=Low, 2=Medium, 3=High

	// Status (enum, see status.go)
	OutpassStatus Status `gorm:"size:50;not null;default:'PENDING';column:outpass_status;index:idx_outpasses_status_priority" json:"outpass_status"`

	// Two-step verification codes: exit_code is live only in READY_FOR_EXIT,
	// return_code only in CHECKED_OUT.
	OutpassExitCode   string `gorm:"size:6;column:outpass_exit_code;index:idx_outpasses_exit_code" json:"-"`
	OutpassReturnCode string `gorm:"size:6;column:outpass_return_code;index:idx_outpasses_return_code" json:"-"`

	// Checkout metadata
	OutpassCheckoutTime      *time.Time `gorm:"column:outpass_checkout_time" json:"outpass_checkout_time,omitempty"`
	OutpassCheckedOutBy      *uuid.UUID `gorm:"type:uuid;column:outpass_checked_out_by" json:"outpass_checked_out_by,omitempty"`
	OutpassGateNumber        string     `gorm:"size:20;column:outpass_gate_number" json:"outpass_gate_number"`
	OutpassVerificationPhoto string     `gorm:"size:255;column:outpass_verification_photo" json:"outpass_verification_photo"`

	// Meeting sub-state (HM detour)
	OutpassMeetingScheduled bool       `gorm:"not null;default:false;column:outpass_meeting_scheduled" json:"outpass_meeting_scheduled"`
	OutpassMeetingDate      *time.Time `gorm:"column:outpass_meeting_date" json:"outpass_meeting_date,omitempty"`
	OutpassMeetingVenue     string     `gorm:"size:200;column:outpass_meeting_venue" json:"outpass_meeting_venue"`
	OutpassMeetingNotes     string     `gorm:"type:text;column:outpass_meeting_notes" json:"outpass_meeting_notes"`

	// Fee sub-state (accountant)
	OutpassFeeDue     *float64   `gorm:"type:numeric(10,2);column:outpass_fee_due" json:"outpass_fee_due,omitempty"`
	OutpassFeePaid    bool       `gorm:"not null;default:false;column:outpass_fee_paid" json:"outpass_fee_paid"`
	OutpassFeePaidAt  *time.Time `gorm:"column:outpass_fee_paid_at" json:"outpass_fee_paid_at,omitempty"`
	OutpassFeeOrderID string     `gorm:"size:64;column:outpass_fee_order_id;index:idx_outpasses_fee_order" json:"-"`

	// Timestamps
	OutpassCreatedAt time.Time `gorm:"column:outpass_created_at;autoCreateTime;index:idx_outpasses_created_at,sort:desc" json:"outpass_created_at"`
	OutpassUpdatedAt time.Time `gorm:"column:outpass_updated_at;autoUpdateTime" json:"outpass_updated_at"`
}

func (OutpassModel) TableName() string { return "outpasses" }

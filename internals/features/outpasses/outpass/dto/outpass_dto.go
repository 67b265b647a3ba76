// file: internals/features/outpasses/outpass/dto/outpass_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "outpass_backend/internals/features/outpasses/outpass/model"
)

/* =========================================================
   Helpers (trim)
========================================================= */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

/* =========================================================
   CREATE REQUEST (parent)
========================================================= */

type OutpassCreateRequest struct {
	// Required
	OutpassStudentID          uuid.UUID `json:"outpass_student_id" validate:"required"`
	OutpassOutgoingDate       string    `json:"outpass_outgoing_date" validate:"required,datetime=2006-01-02"`
	OutpassOutgoingTime       string    `json:"outpass_outgoing_time" validate:"required,datetime=15:04"`
	OutpassExpectedReturnDate string    `json:"outpass_expected_return_date" validate:"required,datetime=2006-01-02"`
	OutpassExpectedReturnTime string    `json:"outpass_expected_return_time" validate:"required,datetime=15:04"`
	OutpassReason             string    `json:"outpass_reason" validate:"required,min=3"`

	// Pickup: registered guardian and/or free-text person
	OutpassGuardianID           *uuid.UUID `json:"outpass_guardian_id"`
	OutpassPickupPersonName     *string    `json:"outpass_pickup_person_name" validate:"omitempty,max=100"`
	OutpassPickupPersonPhone    *string    `json:"outpass_pickup_person_phone" validate:"omitempty,max=15"`
	OutpassPickupPersonRelation *string    `json:"outpass_pickup_person_relation" validate:"omitempty,max=50"`

	// Optional
	OutpassDestination  *string `json:"outpass_destination" validate:"omitempty,max=200"`
	OutpassModeOfTravel *string `json:"outpass_mode_of_travel" validate:"omitempty,max=100"`

	// Priority
	OutpassIsPriority     bool    `json:"outpass_is_priority"`
	OutpassPriorityReason *string `json:"outpass_priority_reason"`
	OutpassPriorityLevel  int     `json:"outpass_priority_level" validate:"omitempty,min=0,max=3"`
}

func (r *OutpassCreateRequest) Normalize() {
	r.OutpassReason = strings.TrimSpace(r.OutpassReason)
	r.OutpassPickupPersonName = trimPtr(r.OutpassPickupPersonName)
	r.OutpassPickupPersonPhone = trimPtr(r.OutpassPickupPersonPhone)
	r.OutpassPickupPersonRelation = trimPtr(r.OutpassPickupPersonRelation)
	r.OutpassDestination = trimPtr(r.OutpassDestination)
	r.OutpassModeOfTravel = trimPtr(r.OutpassModeOfTravel)
	r.OutpassPriorityReason = trimPtr(r.OutpassPriorityReason)
}

// ToModel builds the new PENDING outpass. The parent comes from the caller's
// token, never from the body.
func (r *OutpassCreateRequest) ToModel(parentID uuid.UUID) *m.OutpassModel {
	outDate, _ := time.Parse("2006-01-02", r.OutpassOutgoingDate)
	retDate, _ := time.Parse("2006-01-02", r.OutpassExpectedReturnDate)

	return &m.OutpassModel{
		OutpassStudentID:            r.OutpassStudentID,
		OutpassParentID:             parentID,
		OutpassGuardianID:           r.OutpassGuardianID,
		OutpassPickupPersonName:     deref(r.OutpassPickupPersonName),
		OutpassPickupPersonPhone:    deref(r.OutpassPickupPersonPhone),
		OutpassPickupPersonRelation: deref(r.OutpassPickupPersonRelation),
		OutpassOutgoingDate:         datatypes.Date(outDate),
		OutpassOutgoingTime:         r.OutpassOutgoingTime,
		OutpassExpectedReturnDate:   datatypes.Date(retDate),
		OutpassExpectedReturnTime:   r.OutpassExpectedReturnTime,
		OutpassReason:               r.OutpassReason,
		OutpassDestination:          deref(r.OutpassDestination),
		OutpassModeOfTravel:         deref(r.OutpassModeOfTravel),
		OutpassIsPriority:           r.OutpassIsPriority,
		OutpassPriorityReason:       deref(r.OutpassPriorityReason),
		OutpassPriorityLevel:        r.OutpassPriorityLevel,
		OutpassStatus:               m.StatusPending,
	}
}

/* =========================================================
   ACTION REQUESTS (staff)
========================================================= */

type FeePendingRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type MeetingRequest struct {
	Date  time.Time `json:"date" validate:"required"`
	Venue string    `json:"venue" validate:"required,max=200"`
	Notes string    `json:"notes" validate:"omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type VacateRequest struct {
	// Optional pre-uploaded photo URL; a multipart "verification_photo" file
	// takes precedence when present.
	VerificationPhoto string `json:"verification_photo" validate:"omitempty,max=255"`
}

type GateCheckoutRequest struct {
	GateNumber string `json:"gate_number" validate:"omitempty,max=20"`
}

type ProcessCodeRequest struct {
	Code       string `json:"code" validate:"required,len=6,numeric"`
	GateNumber string `json:"gate_number" validate:"omitempty,max=20"`
}

/* =========================================================
   RESPONSES
========================================================= */

// VacateResponse surfaces the freshly minted exit code to the warden once;
// the model itself never serializes codes.
type VacateResponse struct {
	Outpass  *m.OutpassModel `json:"outpass"`
	ExitCode string          `json:"exit_code"`
}

// ProcessCodeResponse: type EXIT carries the return code for the student,
// type ENTRY closes the loop.
type ProcessCodeResponse struct {
	Type        string `json:"type"` // EXIT or ENTRY
	StudentName string `json:"student_name"`
	ReturnCode  string `json:"return_code,omitempty"`
}

// ApprovalResponse rows underneath an outpass detail view.
type OutpassDetailResponse struct {
	Outpass   *m.OutpassModel          `json:"outpass"`
	Approvals []m.OutpassApprovalModel `json:"approvals"`
}

// DashboardOutpassResponse is the flattened staff list row: outpass joined
// with the student's display attributes.
type DashboardOutpassResponse struct {
	OutpassID     uuid.UUID `gorm:"column:outpass_id" json:"outpass_id"`
	StudentID     uuid.UUID `gorm:"column:outpass_student_id" json:"student_id"`
	StudentName   string    `gorm:"column:student_name" json:"student_name"`
	StudentRollNo string    `gorm:"column:student_roll_no" json:"student_roll_no"`
	ClassName     string    `gorm:"column:student_class_name" json:"class_name"`
	Section       string    `gorm:"column:student_section" json:"section"`
	HostelName    string    `gorm:"column:hostel_name" json:"hostel_name"`

	Status        m.Status  `gorm:"column:outpass_status" json:"status"`
	IsPriority    bool      `gorm:"column:outpass_is_priority" json:"is_priority"`
	PriorityLevel int       `gorm:"column:outpass_priority_level" json:"priority_level"`
	Reason        string    `gorm:"column:outpass_reason" json:"reason"`
	Destination   string    `gorm:"column:outpass_destination" json:"destination"`

	OutgoingDate       time.Time  `gorm:"column:outpass_outgoing_date" json:"outgoing_date"`
	OutgoingTime       string     `gorm:"column:outpass_outgoing_time" json:"outgoing_time"`
	ExpectedReturnDate time.Time  `gorm:"column:outpass_expected_return_date" json:"expected_return_date"`
	ExpectedReturnTime string     `gorm:"column:outpass_expected_return_time" json:"expected_return_time"`
	ActualReturnDate   *time.Time `gorm:"column:outpass_actual_return_date" json:"actual_return_date,omitempty"`
	CheckoutTime       *time.Time `gorm:"column:outpass_checkout_time" json:"checkout_time,omitempty"`
	MeetingDate        *time.Time `gorm:"column:outpass_meeting_date" json:"meeting_date,omitempty"`

	FeeDue  *float64 `gorm:"column:outpass_fee_due" json:"fee_due,omitempty"`
	FeePaid bool     `gorm:"column:outpass_fee_paid" json:"fee_paid"`

	CreatedAt time.Time `gorm:"column:outpass_created_at" json:"created_at"`
}

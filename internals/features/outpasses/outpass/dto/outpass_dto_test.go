// file: internals/features/outpasses/outpass/dto/outpass_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "outpass_backend/internals/features/outpasses/outpass/model"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() OutpassCreateRequest {
	return OutpassCreateRequest{
		OutpassStudentID:          uuid.New(),
		OutpassOutgoingDate:       "2026-05-01",
		OutpassOutgoingTime:       "09:30",
		OutpassExpectedReturnDate: "2026-05-02",
		OutpassExpectedReturnTime: "18:00",
		OutpassReason:             "Family function",
	}
}

func TestCreateRequestNormalize(t *testing.T) {
	req := validCreateRequest()
	req.OutpassReason = "  Family function  "
	req.OutpassDestination = strPtr("  Chennai  ")
	req.OutpassPickupPersonName = strPtr("   ")

	req.Normalize()

	if req.OutpassReason != "Family function" {
		t.Errorf("reason = %q", req.OutpassReason)
	}
	if req.OutpassDestination == nil || *req.OutpassDestination != "Chennai" {
		t.Errorf("destination = %v", req.OutpassDestination)
	}
	if req.OutpassPickupPersonName != nil {
		t.Errorf("blank pickup name should normalize to nil, got %q", *req.OutpassPickupPersonName)
	}
}

func TestCreateRequestValidation(t *testing.T) {
	v := validator.New()

	req := validCreateRequest()
	if err := v.Struct(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := validCreateRequest()
	bad.OutpassOutgoingDate = "01-05-2026"
	if err := v.Struct(&bad); err == nil {
		t.Error("wrong date layout accepted")
	}

	bad = validCreateRequest()
	bad.OutpassOutgoingTime = "9:30am"
	if err := v.Struct(&bad); err == nil {
		t.Error("wrong time layout accepted")
	}

	bad = validCreateRequest()
	bad.OutpassReason = "ok"
	if err := v.Struct(&bad); err == nil {
		t.Error("two-character reason accepted")
	}

	bad = validCreateRequest()
	bad.OutpassPriorityLevel = 5
	if err := v.Struct(&bad); err == nil {
		t.Error("priority level above 3 accepted")
	}
}

func TestCreateRequestToModel(t *testing.T) {
	parentID := uuid.New()
	req := validCreateRequest()
	req.OutpassIsPriority = true
	req.OutpassPriorityLevel = 2

	o := req.ToModel(parentID)

	if o.OutpassParentID != parentID {
		t.Errorf("parent id = %s, want %s", o.OutpassParentID, parentID)
	}
	if o.OutpassStatus != m.StatusPending {
		t.Errorf("new outpass status = %s, want PENDING", o.OutpassStatus)
	}
	if got := time.Time(o.OutpassOutgoingDate).Format("2006-01-02"); got != "2026-05-01" {
		t.Errorf("outgoing date = %s", got)
	}
	if o.OutpassOutgoingTime != "09:30" {
		t.Errorf("outgoing time = %s", o.OutpassOutgoingTime)
	}
	if !o.OutpassIsPriority || o.OutpassPriorityLevel != 2 {
		t.Errorf("priority not carried: %v/%d", o.OutpassIsPriority, o.OutpassPriorityLevel)
	}
	if o.OutpassExitCode != "" || o.OutpassReturnCode != "" {
		t.Error("new outpass must not carry verification codes")
	}
}

func TestProcessCodeRequestValidation(t *testing.T) {
	v := validator.New()

	ok := ProcessCodeRequest{Code: "482916"}
	if err := v.Struct(&ok); err != nil {
		t.Fatalf("valid code rejected: %v", err)
	}

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		bad := ProcessCodeRequest{Code: code}
		if err := v.Struct(&bad); err == nil {
			t.Errorf("code %q accepted", code)
		}
	}
}

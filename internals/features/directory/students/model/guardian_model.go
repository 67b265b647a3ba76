// file: internals/features/directory/students/model/guardian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GuardianModel: a registered pickup person attached to a student.
type GuardianModel struct {
	GuardianID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guardian_id" json:"guardian_id"`

	GuardianStudentID    uuid.UUID `gorm:"type:uuid;not null;column:guardian_student_id;uniqueIndex:uq_guardian_student_phone" json:"guardian_student_id"`
	GuardianName         string    `gorm:"size:100;not null;column:guardian_name" json:"guardian_name"`
	GuardianRelationship string    `gorm:"size:50;column:guardian_relationship" json:"guardian_relationship"`
	GuardianPhone        string    `gorm:"size:15;not null;column:guardian_phone;uniqueIndex:uq_guardian_student_phone" json:"guardian_phone"`
	GuardianPhoto        string    `gorm:"size:255;column:guardian_photo" json:"guardian_photo"`

	GuardianIsApproved bool `gorm:"not null;default:false;column:guardian_is_approved" json:"guardian_is_approved"`

	GuardianCreatedAt time.Time `gorm:"column:guardian_created_at;autoCreateTime" json:"guardian_created_at"`
	GuardianUpdatedAt time.Time `gorm:"column:guardian_updated_at;autoUpdateTime" json:"guardian_updated_at"`
}

func (GuardianModel) TableName() string { return "guardians" }

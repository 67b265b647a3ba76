// file: internals/features/directory/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentModel is reference data: the engine reads it, never mutates it.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentCode      string `gorm:"size:20;not null;uniqueIndex;column:student_code" json:"student_code"`
	StudentFirstName string `gorm:"size:100;not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string `gorm:"size:100;column:student_last_name" json:"student_last_name"`
	StudentRollNo    string `gorm:"size:20;column:student_roll_no" json:"student_roll_no"`

	// Academic (read-only attributes, plain text as displayed)
	StudentClassName string `gorm:"size:50;column:student_class_name;index:idx_students_class_section" json:"student_class_name"`
	StudentSection   string `gorm:"size:20;column:student_section;index:idx_students_class_section" json:"student_section"`

	// Housing
	StudentIsHosteller bool       `gorm:"not null;default:true;column:student_is_hosteller" json:"student_is_hosteller"`
	StudentHostelID    *uuid.UUID `gorm:"type:uuid;column:student_hostel_id;index:idx_students_hostel" json:"student_hostel_id,omitempty"`
	StudentRoomID      *uuid.UUID `gorm:"type:uuid;column:student_room_id" json:"student_room_id,omitempty"`

	StudentIsActive      bool           `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentAdmissionDate datatypes.Date `gorm:"column:student_admission_date" json:"student_admission_date"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) FullName() string {
	if s.StudentLastName == "" {
		return s.StudentFirstName
	}
	return s.StudentFirstName + " " + s.StudentLastName
}

// file: internals/features/directory/students/model/parent_link_model.go
package model

import (
	"github.com/google/uuid"
)

// ParentStudentModel links an identity-provider parent to a student. The
// engine consults it before Create and when listing a parent's requests.
type ParentStudentModel struct {
	ParentStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_student_id" json:"parent_student_id"`

	ParentStudentParentID  uuid.UUID `gorm:"type:uuid;not null;column:parent_student_parent_id;uniqueIndex:uq_parent_student" json:"parent_student_parent_id"`
	ParentStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:parent_student_student_id;uniqueIndex:uq_parent_student" json:"parent_student_student_id"`

	ParentStudentRelationship     string `gorm:"size:20;column:parent_student_relationship" json:"parent_student_relationship"` // FATHER, MOTHER, ...
	ParentStudentCanCreateOutpass bool   `gorm:"not null;default:true;column:parent_student_can_create_outpass" json:"parent_student_can_create_outpass"`
	ParentStudentCanPickup        bool   `gorm:"not null;default:true;column:parent_student_can_pickup" json:"parent_student_can_pickup"`
}

func (ParentStudentModel) TableName() string { return "parent_students" }

// file: internals/features/directory/staff/model/staff_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StaffProfileModel mirrors the identity provider's staff record. Wardens
// carry an assigned-hostel scope that narrows their dashboard view.
type StaffProfileModel struct {
	StaffProfileID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_profile_id" json:"staff_profile_id"`
	StaffProfileUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:staff_profile_user_id" json:"staff_profile_user_id"`

	StaffProfileDesignation string `gorm:"size:100;column:staff_profile_designation" json:"staff_profile_designation"`

	// Hostels this staff member covers (wardens only, others empty).
	StaffProfileHostelIDs pq.StringArray `gorm:"type:uuid[];column:staff_profile_hostel_ids" json:"staff_profile_hostel_ids"`

	StaffProfileCreatedAt time.Time `gorm:"column:staff_profile_created_at;autoCreateTime" json:"staff_profile_created_at"`
	StaffProfileUpdatedAt time.Time `gorm:"column:staff_profile_updated_at;autoUpdateTime" json:"staff_profile_updated_at"`
}

func (StaffProfileModel) TableName() string { return "staff_profiles" }

// file: internals/features/directory/housing/model/hostel_model.go
package model

import (
	"github.com/google/uuid"
)

type HostelModel struct {
	HostelID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hostel_id" json:"hostel_id"`
	HostelName string    `gorm:"size:100;not null;column:hostel_name" json:"hostel_name"`
	HostelCode string    `gorm:"size:10;uniqueIndex;column:hostel_code" json:"hostel_code"`
	HostelType string    `gorm:"size:10;column:hostel_type" json:"hostel_type"` // BOYS, GIRLS, COED

	HostelCapacity         int `gorm:"not null;default:0;column:hostel_capacity" json:"hostel_capacity"`
	HostelCurrentOccupancy int `gorm:"not null;default:0;column:hostel_current_occupancy" json:"hostel_current_occupancy"`
}

func (HostelModel) TableName() string { return "hostels" }

type RoomModel struct {
	RoomID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:room_id" json:"room_id"`
	RoomHostelID uuid.UUID `gorm:"type:uuid;not null;column:room_hostel_id;uniqueIndex:uq_hostel_room" json:"room_hostel_id"`
	RoomNumber   string    `gorm:"size:20;not null;column:room_number;uniqueIndex:uq_hostel_room" json:"room_number"`
	RoomFloor    int       `gorm:"column:room_floor" json:"room_floor"`
	RoomCapacity int       `gorm:"not null;default:2;column:room_capacity" json:"room_capacity"`
}

func (RoomModel) TableName() string { return "rooms" }

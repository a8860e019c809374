package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"index" json:"property_id"`
	RoomNumber string `gorm:"column:room_number;size:10;not null" json:"room_number"`
	RoomType   string `gorm:"column:room_type;type:text" json:"room_type"`

	Size         int            `json:"size"`
	Beds         string         `gorm:"type:text" json:"beds"`
	BathroomType string         `gorm:"column:bathroom_type;type:text" json:"bathroom_type"`
	Amenities    datatypes.JSON `json:"amenities,omitempty"`
	Price        float64        `json:"price"`
	Status       RoomStatus     `gorm:"type:varchar(20);default:'available'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Type      string         `gorm:"type:text" json:"type"`
	Rating    int            `json:"rating"`
	Languages datatypes.JSON `json:"languages,omitempty"`
	Address   string         `gorm:"type:text" json:"address"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	CreatedAt time.Time      `json:"created_at"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"-"`
}

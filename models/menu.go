package models

import (
	"time"

	"gorm.io/datatypes"
)

type Menu struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Items []MenuItem `gorm:"foreignKey:MenuID" json:"items"`
}

type MenuItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MenuID      uint           `gorm:"index" json:"menu_id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	ImageURL    string         `gorm:"column:image_url;type:text" json:"image_url"`
	Category    string         `gorm:"type:text" json:"category"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Available   bool           `gorm:"default:true" json:"available"`
	CreatedAt   time.Time      `json:"created_at"`

	Menu Menu `gorm:"foreignKey:MenuID" json:"-"`
}

package models

import "time"

type RestaurantTable struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableNumber int         `gorm:"column:table_number;not null" json:"table_number"`
	Seats       int         `gorm:"not null" json:"seats"`
	Status      TableStatus `gorm:"type:varchar(20);default:'available'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

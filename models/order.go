package models

import "time"

// Order belongs to either a restaurant table or a room (room-service
// orders carry no table). TotalAmount is computed once at creation
// from the menu prices in effect at that moment and never recomputed.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderSource   string      `gorm:"column:order_source;type:text;not null" json:"order_source"`
	TableID       *uint       `gorm:"index" json:"table_id,omitempty"`
	RoomID        *uint       `gorm:"index" json:"room_id,omitempty"`
	Status        OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TotalAmount   float64     `gorm:"column:total_amount;default:0" json:"total_amount"`
	PaymentMethod string      `gorm:"column:payment_method;size:50" json:"payment_method,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`

	Table *RestaurantTable `gorm:"foreignKey:TableID" json:"-"`
	Room  *Room            `gorm:"foreignKey:RoomID" json:"-"`
	Items []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	OrderID             uint      `gorm:"index;not null" json:"order_id"`
	ItemID              uint      `gorm:"column:item_id;not null" json:"item_id"`
	Quantity            int       `gorm:"not null" json:"quantity"`
	SpecialInstructions string    `gorm:"column:special_instructions;type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`

	MenuItem MenuItem `gorm:"foreignKey:ItemID" json:"menu_item,omitempty"`
}

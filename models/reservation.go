package models

import "time"

// Reservation dates are kept as plain ISO DATE strings ("2006-01-02"),
// the same shape the API exchanges. Availability is gated by the
// room's status flag only; overlapping stays are not checked.
type Reservation struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	GuestName     string            `gorm:"type:text;not null" json:"guest_name"`
	ContactNumber string            `gorm:"column:contact_number;type:text" json:"contact_number"`
	Source        string            `gorm:"type:text" json:"source"`
	CheckIn       string            `gorm:"column:check_in;type:date;not null" json:"check_in"`
	CheckOut      string            `gorm:"column:check_out;type:date;not null" json:"check_out"`
	RoomID        uint              `gorm:"index" json:"room_id"`
	Status        ReservationStatus `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	TotalPrice    float64           `gorm:"column:total_price" json:"total_price"`
	CreatedAt     time.Time         `json:"created_at"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

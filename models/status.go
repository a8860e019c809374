package models

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus marks writes carrying a status value outside the
// accepted set for the entity.
var ErrUnknownStatus = errors.New("unknown status value")

// Status values are persisted as plain strings but only the values
// below are accepted on writes. Transitions are deliberately not
// restricted (staff need to be able to move an order backwards to fix
// a mistake), only the value set is.

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomBooked    RoomStatus = "booked"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
)

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked-in"
	ReservationCheckedOut ReservationStatus = "checked-out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("order status %q: %w", s, ErrUnknownStatus)
}

func ParseTableStatus(s string) (TableStatus, error) {
	switch TableStatus(s) {
	case TableAvailable, TableOccupied, TableReserved:
		return TableStatus(s), nil
	}
	return "", fmt.Errorf("table status %q: %w", s, ErrUnknownStatus)
}

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomBooked:
		return RoomStatus(s), nil
	}
	return "", fmt.Errorf("room status %q: %w", s, ErrUnknownStatus)
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("reservation status %q: %w", s, ErrUnknownStatus)
}

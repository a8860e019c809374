package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"property-backend/models"
	"property-backend/utils"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("check_in must be before check_out")
)

// Mutable reservation columns for partial updates.
var reservationUpdateFields = []string{
	"guest_name", "contact_number", "source", "check_in", "check_out", "status", "total_price",
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationInput struct {
	GuestName     string  `json:"guest_name" binding:"required"`
	ContactNumber string  `json:"contact_number"`
	Source        string  `json:"source"`
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      string  `json:"check_out" binding:"required"`
	RoomID        uint    `json:"room_id" binding:"required"`
	TotalPrice    float64 `json:"total_price"`
}

const dateLayout = "2006-01-02"

func validateDateRange(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return fmt.Errorf("invalid check_in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return fmt.Errorf("invalid check_out date %q: %w", checkOut, err)
	}
	if !in.Before(out) {
		return ErrInvalidDateRange
	}
	return nil
}

// Create inserts a reservation against an available room and flips the
// room to booked. The availability check and the flip are a single
// guarded UPDATE inside the transaction, so of two concurrent requests
// for the same room exactly one wins; the loser rolls back untouched.
// Overlapping date ranges are intentionally not checked: the status
// flag is the only gate.
func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	if err := validateDateRange(input.CheckIn, input.CheckOut); err != nil {
		return models.Reservation{}, err
	}

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}

		result := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", input.RoomID, models.RoomAvailable).
			Update("status", models.RoomBooked)
		if result.Error != nil {
			return fmt.Errorf("failed to update room status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		reservation = models.Reservation{
			GuestName:     input.GuestName,
			ContactNumber: input.ContactNumber,
			Source:        input.Source,
			CheckIn:       input.CheckIn,
			CheckOut:      input.CheckOut,
			RoomID:        input.RoomID,
			Status:        models.ReservationConfirmed,
			TotalPrice:    input.TotalPrice,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

func (s *ReservationService) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Preload("Room").
		Preload("Room.Property").
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Room").
		Preload("Room.Property").
		First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reservation{}, ErrReservationNotFound
	}
	return reservation, err
}

// Update applies a partial update from an allow-listed field set.
func (s *ReservationService) Update(id uint, payload map[string]interface{}) (models.Reservation, error) {
	updates, err := utils.BuildUpdates(payload, reservationUpdateFields...)
	if err != nil {
		return models.Reservation{}, err
	}
	if raw, ok := updates["status"]; ok {
		status, ok := raw.(string)
		if !ok {
			return models.Reservation{}, fmt.Errorf("status must be a string: %w", models.ErrUnknownStatus)
		}
		if _, err := models.ParseReservationStatus(status); err != nil {
			return models.Reservation{}, err
		}
	}

	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrReservationNotFound
		}
		return models.Reservation{}, err
	}

	if err := s.DB.Model(&reservation).Updates(updates).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}

	err = s.DB.Preload("Room").First(&reservation, id).Error
	return reservation, err
}

// CalendarRange lists reservations overlapping [start, end].
func (s *ReservationService) CalendarRange(start, end string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Preload("Room").
		Where("check_in <= ? AND check_out >= ?", end, start).
		Order("check_in").
		Find(&reservations).Error
	return reservations, err
}

// Checkout marks a reservation checked-out and releases its room. The
// room goes back to available regardless of other reservations; the
// flag tracks the most recent action only.
func (s *ReservationService) Checkout(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := tx.Model(&reservation).Update("status", models.ReservationCheckedOut).Error; err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

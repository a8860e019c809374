package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"property-backend/models"
)

func seedReservation(t *testing.T, db *gorm.DB, roomID uint, checkIn, checkOut string, status models.ReservationStatus) {
	t.Helper()
	reservation := models.Reservation{
		GuestName: "Guest",
		Source:    "Walk-in",
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomID:    roomID,
		Status:    status,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("failed to seed reservation: %v", err)
	}
}

func TestKPIs(t *testing.T) {
	db := openTestDB(t)
	svc := NewDashboardService(db)

	day := time.Now().Format(dateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	// 2 of 5 rooms occupied
	seedRoom(t, db, models.RoomBooked, 150.00)
	seedRoom(t, db, models.RoomBooked, 100.00)
	room := seedRoom(t, db, models.RoomAvailable, 100.00)
	seedRoom(t, db, models.RoomAvailable, 100.00)
	seedRoom(t, db, models.RoomAvailable, 100.00)

	seedReservation(t, db, room.ID, day, tomorrow, models.ReservationConfirmed)
	seedReservation(t, db, room.ID, yesterday, day, models.ReservationCheckedIn)

	report, err := svc.KPIs()
	if err != nil {
		t.Fatalf("KPIs returned error: %v", err)
	}
	if report.Arrivals != 1 {
		t.Errorf("arrivals = %d, want 1", report.Arrivals)
	}
	if report.Departures != 1 {
		t.Errorf("departures = %d, want 1", report.Departures)
	}
	if report.TotalRooms != 5 {
		t.Errorf("totalRooms = %d, want 5", report.TotalRooms)
	}
	if report.BookedRooms != 2 {
		t.Errorf("bookedRooms = %d, want 2", report.BookedRooms)
	}
	if report.OccupancyPercentage != 40 {
		t.Errorf("occupancyPercentage = %d, want 40", report.OccupancyPercentage)
	}
}

func TestKPIsNoRooms(t *testing.T) {
	db := openTestDB(t)
	svc := NewDashboardService(db)

	report, err := svc.KPIs()
	if err != nil {
		t.Fatalf("KPIs returned error: %v", err)
	}
	if report.OccupancyPercentage != 0 {
		t.Errorf("occupancyPercentage = %d, want 0 with no rooms", report.OccupancyPercentage)
	}
}

func TestReservationsByCategory(t *testing.T) {
	db := openTestDB(t)
	svc := NewDashboardService(db)
	room := seedRoom(t, db, models.RoomAvailable, 100.00)

	day := time.Now().Format(dateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	// one arrival, one departure in house, one stayover in house
	seedReservation(t, db, room.ID, day, tomorrow, models.ReservationConfirmed)
	seedReservation(t, db, room.ID, yesterday, day, models.ReservationCheckedIn)
	seedReservation(t, db, room.ID, yesterday, tomorrow, models.ReservationCheckedIn)

	cases := []struct {
		category string
		want     int
	}{
		{"arrivals", 1},
		{"departures", 1},
		{"stayovers", 1},
		{"inhouse", 2},
	}
	for _, tc := range cases {
		got, err := svc.ReservationsByCategory(tc.category)
		if err != nil {
			t.Errorf("%s returned error: %v", tc.category, err)
			continue
		}
		if len(got) != tc.want {
			t.Errorf("%s = %d reservations, want %d", tc.category, len(got), tc.want)
		}
	}

	if _, err := svc.ReservationsByCategory("leaving-soon"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v, want ErrUnknownCategory", err)
	}
}

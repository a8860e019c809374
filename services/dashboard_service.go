package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"property-backend/models"
)

var ErrUnknownCategory = errors.New("unknown reservation category")

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// KPIReport mirrors the dashboard widget payload.
type KPIReport struct {
	Arrivals            int64 `json:"arrivals"`
	Departures          int64 `json:"departures"`
	OccupancyPercentage int   `json:"occupancyPercentage"`
	TotalRooms          int64 `json:"totalRooms"`
	BookedRooms         int64 `json:"bookedRooms"`
}

func today() string {
	return time.Now().Format(dateLayout)
}

// KPIs counts today's arrivals and departures and computes the
// occupancy percentage. With zero rooms the percentage is 0.
func (s *DashboardService) KPIs() (KPIReport, error) {
	day := today()
	var report KPIReport

	if err := s.DB.Model(&models.Reservation{}).
		Where("check_in = ?", day).
		Count(&report.Arrivals).Error; err != nil {
		return KPIReport{}, err
	}
	if err := s.DB.Model(&models.Reservation{}).
		Where("check_out = ?", day).
		Count(&report.Departures).Error; err != nil {
		return KPIReport{}, err
	}
	if err := s.DB.Model(&models.Room{}).Count(&report.TotalRooms).Error; err != nil {
		return KPIReport{}, err
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status <> ?", models.RoomAvailable).
		Count(&report.BookedRooms).Error; err != nil {
		return KPIReport{}, err
	}

	if report.TotalRooms > 0 {
		report.OccupancyPercentage = int(math.Round(float64(report.BookedRooms) / float64(report.TotalRooms) * 100))
	}
	return report, nil
}

// ReservationsByCategory lists today's arrivals, departures, stayovers
// or in-house reservations. ISO date strings compare lexicographically,
// so plain string comparison is correct here.
func (s *DashboardService) ReservationsByCategory(category string) ([]models.Reservation, error) {
	day := today()
	query := s.DB.Preload("Room")

	switch category {
	case "arrivals":
		query = query.Where("check_in = ?", day)
	case "departures":
		query = query.Where("check_out = ?", day)
	case "stayovers":
		query = query.Where("check_in < ? AND check_out > ?", day, day)
	case "inhouse":
		query = query.Where("status = ?", models.ReservationCheckedIn)
	default:
		return nil, ErrUnknownCategory
	}

	var reservations []models.Reservation
	err := query.Find(&reservations).Error
	return reservations, err
}

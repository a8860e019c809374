package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"property-backend/models"
	"property-backend/utils"
)

var ErrPropertyNotFound = errors.New("property not found")

var roomUpdateFields = []string{
	"room_number", "room_type", "size", "beds", "bathroom_type", "amenities", "price", "status",
}

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

type CreatePropertyInput struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type"`
	Rating    int      `json:"rating"`
	Languages []string `json:"languages"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

type CreateRoomInput struct {
	PropertyID   uint     `json:"property_id" binding:"required"`
	RoomNumber   string   `json:"room_number" binding:"required"`
	RoomType     string   `json:"room_type"`
	Size         int      `json:"size"`
	Beds         string   `json:"beds"`
	BathroomType string   `json:"bathroom_type"`
	Amenities    []string `json:"amenities"`
	Price        float64  `json:"price"`
}

// RoomView carries the owning property's name next to each room.
type RoomView struct {
	models.Room
	PropertyName string `json:"property_name"`
}

func (s *PropertyService) ListProperties() ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (s *PropertyService) CreateProperty(input CreatePropertyInput) (models.Property, error) {
	property := models.Property{
		Name:      input.Name,
		Type:      input.Type,
		Rating:    input.Rating,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if len(input.Languages) > 0 {
		languages, err := utils.ToJSON(input.Languages)
		if err != nil {
			return models.Property{}, fmt.Errorf("failed to encode languages: %w", err)
		}
		property.Languages = languages
	}

	if err := s.DB.Create(&property).Error; err != nil {
		return models.Property{}, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (s *PropertyService) ListRooms() ([]RoomView, error) {
	var rooms []models.Room
	err := s.DB.Preload("Property").Order("created_at DESC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, RoomView{Room: room, PropertyName: room.Property.Name})
	}
	return views, nil
}

func (s *PropertyService) CreateRoom(input CreateRoomInput) (models.Room, error) {
	var property models.Property
	if err := s.DB.First(&property, input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrPropertyNotFound
		}
		return models.Room{}, err
	}

	room := models.Room{
		PropertyID:   input.PropertyID,
		RoomNumber:   input.RoomNumber,
		RoomType:     input.RoomType,
		Size:         input.Size,
		Beds:         input.Beds,
		BathroomType: input.BathroomType,
		Price:        input.Price,
		Status:       models.RoomAvailable,
	}
	if len(input.Amenities) > 0 {
		amenities, err := utils.ToJSON(input.Amenities)
		if err != nil {
			return models.Room{}, fmt.Errorf("failed to encode amenities: %w", err)
		}
		room.Amenities = amenities
	}

	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

// UpdateRoom applies a partial update from an allow-listed field set.
func (s *PropertyService) UpdateRoom(id uint, payload map[string]interface{}) (models.Room, error) {
	updates, err := utils.BuildUpdates(payload, roomUpdateFields...)
	if err != nil {
		return models.Room{}, err
	}
	if raw, ok := updates["status"]; ok {
		status, ok := raw.(string)
		if !ok {
			return models.Room{}, fmt.Errorf("status must be a string: %w", models.ErrUnknownStatus)
		}
		if _, err := models.ParseRoomStatus(status); err != nil {
			return models.Room{}, err
		}
	}
	if raw, ok := updates["amenities"]; ok {
		amenities, err := utils.ToJSON(raw)
		if err != nil {
			return models.Room{}, fmt.Errorf("failed to encode amenities: %w", err)
		}
		updates["amenities"] = amenities
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, err
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room: %w", err)
	}

	err = s.DB.First(&room, id).Error
	return room, err
}

func (s *PropertyService) DeleteRoom(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

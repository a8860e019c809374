package services

import (
	"errors"
	"testing"

	"property-backend/models"
	"property-backend/utils"
)

func TestCreatePropertyAndRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db)

	property, err := svc.CreateProperty(CreatePropertyInput{
		Name:      "Seaside Inn",
		Type:      "Hotel",
		Rating:    4,
		Languages: []string{"en", "fr"},
		Address:   "1 Beach Road",
	})
	if err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}

	room, err := svc.CreateRoom(CreateRoomInput{
		PropertyID: property.ID,
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Amenities:  []string{"wifi", "minibar"},
		Price:      150.00,
	})
	if err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if room.Status != models.RoomAvailable {
		t.Errorf("new room status = %q, want %q", room.Status, models.RoomAvailable)
	}

	views, err := svc.ListRooms()
	if err != nil {
		t.Fatalf("ListRooms returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("room views = %d, want 1", len(views))
	}
	if views[0].PropertyName != "Seaside Inn" {
		t.Errorf("property_name = %q, want Seaside Inn", views[0].PropertyName)
	}
}

func TestCreateRoomRequiresProperty(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db)

	_, err := svc.CreateRoom(CreateRoomInput{PropertyID: 999, RoomNumber: "101"})
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("CreateRoom error = %v, want ErrPropertyNotFound", err)
	}
}

func TestUpdateRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db)
	room := seedRoom(t, db, models.RoomAvailable, 150.00)

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{
		"price":  175.00,
		"status": "booked",
	})
	if err != nil {
		t.Fatalf("UpdateRoom returned error: %v", err)
	}
	if updated.Price != 175.00 {
		t.Errorf("price = %v, want 175.00", updated.Price)
	}
	if updated.Status != models.RoomBooked {
		t.Errorf("status = %q, want %q", updated.Status, models.RoomBooked)
	}
	if updated.RoomNumber != "101" {
		t.Errorf("room_number = %q, want unchanged", updated.RoomNumber)
	}

	if _, err := svc.UpdateRoom(room.ID, map[string]interface{}{"status": "haunted"}); !errors.Is(err, models.ErrUnknownStatus) {
		t.Errorf("bad status error = %v, want ErrUnknownStatus", err)
	}
	if _, err := svc.UpdateRoom(room.ID, map[string]interface{}{"property_id": 2}); !errors.Is(err, utils.ErrUnknownField) {
		t.Errorf("unknown field error = %v, want ErrUnknownField", err)
	}
	if _, err := svc.UpdateRoom(999, map[string]interface{}{"price": 1.0}); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("missing id error = %v, want ErrRoomNotFound", err)
	}
}

func TestDeleteRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db)
	room := seedRoom(t, db, models.RoomAvailable, 150.00)

	if err := svc.DeleteRoom(room.ID); err != nil {
		t.Fatalf("DeleteRoom returned error: %v", err)
	}
	if err := svc.DeleteRoom(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("second delete error = %v, want ErrRoomNotFound", err)
	}
}

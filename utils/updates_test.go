package utils

import (
	"errors"
	"testing"
)

func TestBuildUpdatesFiltersByAllowList(t *testing.T) {
	updates, err := BuildUpdates(
		map[string]interface{}{"guest_name": "Jane", "status": "confirmed"},
		"guest_name", "status", "source",
	)
	if err != nil {
		t.Fatalf("BuildUpdates returned error: %v", err)
	}
	if len(updates) != 2 {
		t.Errorf("updates = %d fields, want 2", len(updates))
	}
	if updates["guest_name"] != "Jane" {
		t.Errorf("guest_name = %v, want Jane", updates["guest_name"])
	}
}

func TestBuildUpdatesRejectsEmptyPayload(t *testing.T) {
	if _, err := BuildUpdates(map[string]interface{}{}, "guest_name"); !errors.Is(err, ErrEmptyUpdate) {
		t.Errorf("error = %v, want ErrEmptyUpdate", err)
	}
	if _, err := BuildUpdates(nil, "guest_name"); !errors.Is(err, ErrEmptyUpdate) {
		t.Errorf("nil payload error = %v, want ErrEmptyUpdate", err)
	}
}

func TestBuildUpdatesRejectsUnknownField(t *testing.T) {
	_, err := BuildUpdates(map[string]interface{}{"id": 42}, "guest_name")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("error = %v, want ErrUnknownField", err)
	}
	// the offending field is named in the message
	if got := err.Error(); got != `field "id": field is not updatable` {
		t.Errorf("error message = %q", got)
	}
}

package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyUpdate  = errors.New("update contains no fields")
	ErrUnknownField = errors.New("field is not updatable")
)

// BuildUpdates filters a partial-update payload against an explicit
// allow-list of mutable columns. Unknown fields and empty field sets
// are rejected; a SET clause is never built from raw caller input.
func BuildUpdates(payload map[string]interface{}, allowed ...string) (map[string]interface{}, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyUpdate
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, field := range allowed {
		allowedSet[field] = true
	}

	updates := make(map[string]interface{}, len(payload))
	for field, value := range payload {
		if !allowedSet[field] {
			return nil, fmt.Errorf("field %q: %w", field, ErrUnknownField)
		}
		updates[field] = value
	}
	return updates, nil
}

package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ToJSON marshals a value into a datatypes.JSON column value.
func ToJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

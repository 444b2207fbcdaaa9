package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Placeholder is rendered for fields that are missing, null or malformed
const Placeholder = "-"

// Field is a scalar JSON value of unknown type. The backend sends some
// columns as numbers (uuid_label, secseal) and others as strings, and any
// of them may be null or absent.
type Field struct {
	value string
	valid bool
}

// NewField returns a present field holding s
func NewField(s string) Field {
	return Field{value: s, valid: true}
}

// UnmarshalJSON accepts strings, numbers and booleans. Null, objects and
// arrays leave the field empty instead of failing the whole record.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = Field{}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*f = NewField(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return nil
		}
		*f = NewField(strconv.FormatBool(b))
	case 'n', '{', '[':
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		*f = NewField(n.String())
	}
	return nil
}

// MarshalJSON writes the field back as a string, or null when empty
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Valid reports whether the backend sent a usable value
func (f Field) Valid() bool {
	return f.valid
}

// Raw returns the value without placeholder substitution
func (f Field) Raw() string {
	return f.value
}

// String returns the value, or Placeholder when the field is empty
func (f Field) String() string {
	if !f.valid {
		return Placeholder
	}
	return f.value
}

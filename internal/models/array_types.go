package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

// StringList is an ordered TEXT[] column (itinerary, inclusions, images, ...).
// It always encodes as a JSON array and is stored as an empty array, never NULL.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.Array([]string{}).Value()
	}
	return pq.Array([]string(l)).Value()
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	slice := (*[]string)(l)
	return pq.Array(slice).Scan(src)
}

// MarshalJSON implements json.Marshaler
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

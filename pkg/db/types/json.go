package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a collection persisted as a JSON text column. Scanning a
// NULL or empty column yields an empty slice, never nil collections leaking
// into scoring code.
type StringList []string

// Value marshals the list into JSON for the store.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes the JSON text column into the list.
func (l *StringList) Scan(value any) error {
	raw, err := rawBytes("string list", value)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	result := StringList{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	if result == nil {
		result = StringList{}
	}
	*l = result
	return nil
}

// Contains reports whether the list holds the exact value.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

// StringMap is a key-value map persisted as a JSON text column.
type StringMap map[string]string

// Value marshals the map into JSON for the store.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes the JSON text column into the map.
func (m *StringMap) Scan(value any) error {
	raw, err := rawBytes("string map", value)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*m = StringMap{}
		return nil
	}
	result := StringMap{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	if result == nil {
		result = StringMap{}
	}
	*m = result
	return nil
}

// Clone returns an independent copy of the map, never nil.
func (m StringMap) Clone() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// JSONMap is a loosely-typed metrics payload persisted as a JSON text column.
type JSONMap map[string]any

// Value marshals the payload into JSON for the store.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes the JSON text column into the payload.
func (m *JSONMap) Scan(value any) error {
	raw, err := rawBytes("json map", value)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*m = JSONMap{}
		return nil
	}
	result := JSONMap{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	if result == nil {
		result = JSONMap{}
	}
	*m = result
	return nil
}

func rawBytes(kind string, value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%s: unsupported scan type %T", kind, value)
	}
}

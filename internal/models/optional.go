package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field for partial updates. It distinguishes a key
// omitted from the payload (Set false), a key explicitly set to null
// (Set true, Valid false) and a key carrying a value (Set and Valid true).
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON records presence. The decoder only invokes it for keys that
// appear in the payload, so an untouched Optional means the key was omitted.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when the field was set to null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

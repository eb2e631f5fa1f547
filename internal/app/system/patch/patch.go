// Package patch models partial-update request fields with three states:
// absent from the request body, present with a value, or present as an
// explicit JSON null. Plain pointer fields cannot distinguish the last two,
// which matters for updates that clear a relation rather than leave it alone.
package patch

import "encoding/json"

// Field is an explicitly tagged optional for partial-update requests.
//
// The zero value means the field was absent from the request body.
// encoding/json only invokes UnmarshalJSON for keys that appear in the
// document, so Present is set exactly when the caller supplied the field.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a Field carrying the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Clear returns a Field representing an explicit null.
func Clear[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

// IsSet reports whether the field was supplied with a non-null value.
func (f Field[T]) IsSet() bool {
	return f.Present && !f.Null
}

// IsClear reports whether the field was supplied as an explicit null.
func (f Field[T]) IsClear() bool {
	return f.Present && f.Null
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON implements json.Marshaler. Absent fields marshal as null;
// Field is intended for request decoding, so this exists mainly so log and
// test output stays readable.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

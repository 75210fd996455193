package model

import "encoding/json"

// Opt is a tri-state optional for patch fields on nullable columns. It
// distinguishes a field that was absent from the request body (Set false)
// from an explicit JSON null (Set true, Valid false) from a value
// (Set true, Valid true). A plain pointer cannot represent the null case,
// so a client could never clear a stored value with it.
type Opt[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// OptValue returns an Opt carrying v.
func OptValue[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Valid: true, Value: v}
}

// OptNull returns an Opt carrying an explicit null.
func OptNull[T any]() Opt[T] {
	return Opt[T]{Set: true}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
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

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero reports whether the field was absent, so `omitzero` drops it
// from marshaled patches.
func (o Opt[T]) IsZero() bool {
	return !o.Set
}

// Ptr returns the value as a pointer, nil for an explicit null.
func (o Opt[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

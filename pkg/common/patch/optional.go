// Package patch holds the field type used by partial-update payloads.
package patch

import (
	"bytes"

	"github.com/cloudwego/hertz/pkg/common/json"
)

var null = []byte("null")

// Optional is a JSON field that remembers whether it was sent at all.
//
// Three states are possible after decoding:
//   - absent:  Set == false
//   - null:    Set == true, Null == true
//   - a value: Set == true, Null == false
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns an Optional carrying v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was explicitly sent as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether a non-null value was sent.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Ptr returns the value as a pointer, nil for null or absent.
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// ApplyTo overwrites *dst when the field was sent. Null clears it.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	*dst = o.Ptr()
}

// Validatable returns the value seen by the struct validator: a *T that is
// nil unless a value was sent, so "omitempty" rules skip absent and null fields.
func (o Optional[T]) Validatable() any {
	return o.Ptr()
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), null) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return null, nil
	}
	return json.Marshal(o.Value)
}

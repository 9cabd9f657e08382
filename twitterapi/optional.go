package twitterapi

import "encoding/json"

// Optional holds an attribute the API only returns when it was asked for.
// The zero value is absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a value the API returned.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// None is an attribute the API did not return.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the API returned the attribute.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// MustGet returns the value and panics when it is absent.
func (o Optional[T]) MustGet() T {
	if !o.set {
		panic("twitterapi: MustGet on absent value")
	}
	return o.value
}

// OrElse returns the value, or def when it is absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// MarshalJSON renders an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Presence tells apart a list that was never fetched from one the API
// returned empty.
type Presence int

const (
	NotFetched Presence = iota
	Empty
	Populated
)

func (p Presence) String() string {
	switch p {
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "not_fetched"
	}
}

func PresenceOf[T any](list Optional[[]T]) Presence {
	items, ok := list.Get()
	switch {
	case !ok:
		return NotFetched
	case len(items) == 0:
		return Empty
	default:
		return Populated
	}
}

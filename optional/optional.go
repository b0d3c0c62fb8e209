// Package optional holds a value that may be absent and resolves it to a
// caller-supplied default instead of failing.
package optional

// Optional is either empty or holds exactly one value. The zero value is empty.
type Optional[T any] struct {
	value T
	ok    bool
}

func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// From adapts a comma-ok lookup such as a map read.
func From[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

func (o Optional[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// OrElseGet calls fn only when the value is absent.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return Empty[T]()
}

// Map transforms a present value; an empty input stays empty and fn is not called.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.ok {
		return Empty[U]()
	}
	return Of(fn(o.value))
}

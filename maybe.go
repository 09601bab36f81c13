// Package csharpx provides a Maybe optional-value type: a container that
// either holds exactly one value of a given type (Just) or holds none
// (Nothing), together with combinators for transforming, chaining, and
// safely extracting that value, and an Either companion for
// two-alternative results.
package csharpx

import "fmt"

// Maybe represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers. Instances are
// immutable: the variant is chosen at construction and never changes.
// The zero Maybe is Nothing.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Just creates a Maybe containing a value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, hasValue: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{hasValue: false}
}

// Return wraps value in a Maybe, treating the type's zero value as
// absent: Return(0) is Nothing, Return(5) is Just(5). This conflates
// "explicitly set to the zero value" with "unset"; callers that need to
// tell them apart must use Just and Nothing directly.
func Return[T comparable](value T) Maybe[T] {
	var zero T
	if value == zero {
		return Nothing[T]()
	}
	return Just(value)
}

// MatchJust returns the contained value and true if Just, or the zero
// value and false if Nothing. It never panics and has no side effects.
// Every other combinator is built on this primitive.
func (m Maybe[T]) MatchJust() (T, bool) {
	return m.value, m.hasValue
}

// IsJust returns true if the Maybe contains a value.
func (m Maybe[T]) IsJust() bool {
	return m.hasValue
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.hasValue
}

// String renders the Maybe as "Just(v)" or "Nothing".
func (m Maybe[T]) String() string {
	if v, ok := m.MatchJust(); ok {
		return fmt.Sprintf("Just(%v)", v)
	}
	return "Nothing"
}

// Map applies a transformation function to the contained value if
// present, wrapping the result. Nothing passes through unchanged and fn
// is never invoked.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if v, ok := m.MatchJust(); ok {
		return Just(fn(v))
	}
	return Nothing[U]()
}

// Bind applies a function that returns a Maybe, flattening one level of
// nesting. Nothing passes through unchanged and fn is never invoked.
func Bind[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if v, ok := m.MatchJust(); ok {
		return fn(v)
	}
	return Nothing[U]()
}

// MapOrDefault returns fn applied to the contained value if present, or
// noneValue otherwise, without constructing an intermediate Maybe.
func MapOrDefault[T, U any](m Maybe[T], fn func(T) U, noneValue U) U {
	if v, ok := m.MatchJust(); ok {
		return fn(v)
	}
	return noneValue
}

// Merge combines two Maybe values into a Maybe of a Pair. The result is
// Just iff both inputs are Just; it is Nothing if either is Nothing.
func Merge[T1, T2 any](first Maybe[T1], second Maybe[T2]) Maybe[Pair[T1, T2]] {
	v1, ok1 := first.MatchJust()
	v2, ok2 := second.MatchJust()
	if ok1 && ok2 {
		return Just(NewPair(v1, v2))
	}
	return Nothing[Pair[T1, T2]]()
}

// Match executes exactly one of two functions based on the variant and
// returns the result. Both branches must be supplied.
func Match[T, U any](m Maybe[T], onJust func(T) U, onNothing func() U) U {
	if v, ok := m.MatchJust(); ok {
		return onJust(v)
	}
	return onNothing()
}

// MatchPair destructures a Maybe of a Pair before dispatch, executing
// exactly one of two functions and returning the result.
func MatchPair[T1, T2, U any](m Maybe[Pair[T1, T2]], onJust func(T1, T2) U, onNothing func() U) U {
	if p, ok := m.MatchJust(); ok {
		return onJust(p.Unpack())
	}
	return onNothing()
}

// Match executes exactly one of two actions based on the variant.
func (m Maybe[T]) Match(onJust func(T), onNothing func()) {
	if v, ok := m.MatchJust(); ok {
		onJust(v)
	} else {
		onNothing()
	}
}

// Do invokes action with the contained value exactly once if present;
// it does nothing on Nothing.
func (m Maybe[T]) Do(action func(T)) {
	if v, ok := m.MatchJust(); ok {
		action(v)
	}
}

// DoPair destructures a Maybe of a Pair, invoking action with both
// elements exactly once if present.
func DoPair[T1, T2 any](m Maybe[Pair[T1, T2]], action func(T1, T2)) {
	if p, ok := m.MatchJust(); ok {
		action(p.Unpack())
	}
}

// EmptyValueError signals a forced extraction from Nothing. It is the
// only failure the library raises.
type EmptyValueError struct{}

func (EmptyValueError) Error() string {
	return "maybe holds no value"
}

// FromJust returns the contained value if present, or the type's zero
// value otherwise. It never fails; absence becomes a silent fallback.
func (m Maybe[T]) FromJust() T {
	v, _ := m.MatchJust()
	return v
}

// FromJustOrFail returns the contained value if present; on Nothing it
// panics with failure, or with EmptyValueError if failure is nil. This
// is the only combinator that can fail.
func (m Maybe[T]) FromJustOrFail(failure error) T {
	if v, ok := m.MatchJust(); ok {
		return v
	}
	if failure == nil {
		failure = EmptyValueError{}
	}
	panic(failure)
}

// FromEither projects an Either onto a Maybe, keeping the left
// alternative's payload and discarding the right alternative entirely.
func FromEither[L, R any](e Either[L, R]) Maybe[L] {
	if e.IsLeft() {
		return Just(e.LeftValue())
	}
	return Nothing[L]()
}

// Filter returns the Maybe unchanged if it is Just and the predicate
// holds; otherwise Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if v, ok := m.MatchJust(); ok && predicate(v) {
		return m
	}
	return Nothing[T]()
}

// ToSlice converts the Maybe to a slice of zero or one element.
func (m Maybe[T]) ToSlice() []T {
	if v, ok := m.MatchJust(); ok {
		return []T{v}
	}
	return []T{}
}

// FromPtr creates a Maybe from a pointer, mapping nil to Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// ToPtr converts the Maybe to a pointer, mapping Nothing to nil.
func (m Maybe[T]) ToPtr() *T {
	if v, ok := m.MatchJust(); ok {
		return &v
	}
	return nil
}

// Justs collects the payloads of the Just elements, preserving order.
func Justs[T any](ms []Maybe[T]) []T {
	result := make([]T, 0, len(ms))
	for _, m := range ms {
		if v, ok := m.MatchJust(); ok {
			result = append(result, v)
		}
	}
	return result
}

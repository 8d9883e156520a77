// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

// Package peek adapts single-pass producers into forward-only iterators with
// a non-consuming existence test and monotonic random access.
package peek

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrExhausted is returned when a value is requested past the end of
	// the sequence.
	ErrExhausted = errors.New("iterator exhausted")
	// ErrOutOfOrder is returned when a position that has already been read
	// or skipped is requested.
	ErrOutOfOrder = errors.New("position already passed")
)

// Producer is a forward-only, single-pass source of values. Produce returns
// false once the source has ended. It is not called again after returning
// false or an error.
type Producer[T any] interface {
	Produce() (T, bool, error)
}

// ProducerFunc adapts a function to a Producer.
type ProducerFunc[T any] func() (T, bool, error)

func (f ProducerFunc[T]) Produce() (T, bool, error) {
	return f()
}

// FromSlice returns a Producer yielding the elements of vs in order.
func FromSlice[T any](vs []T) Producer[T] {
	i := 0
	return ProducerFunc[T](func() (T, bool, error) {
		if i >= len(vs) {
			var zero T
			return zero, false, nil
		}
		v := vs[i]
		i++
		return v, true, nil
	})
}

// Iterator wraps a Producer. An Iterator has a single consumer and is not
// safe for concurrent use.
//
// Once Next or At fails the Iterator is invalid and every later call returns
// the same error.
type Iterator[T any] struct {
	producer Producer[T]
	// consumed is the number of values handed out or skipped.
	consumed int
	// head holds a value pulled by HasMore and not yet handed out.
	head   T
	cached bool
	ended  bool
	err    error
}

// New returns an Iterator reading from p.
func New[T any](p Producer[T]) *Iterator[T] {
	return &Iterator[T]{producer: p}
}

// pull returns the cached value if there is one, otherwise the next value
// from the producer.
func (it *Iterator[T]) pull() (v T, ok bool, err error) {
	if it.cached {
		v, it.head, it.cached = it.head, *new(T), false
		return v, true, nil
	}
	if it.ended {
		return v, false, nil
	}
	v, ok, err = it.producer.Produce()
	if err != nil || !ok {
		it.ended = true
	}
	return v, ok, err
}

// Next returns the next value.
func (it *Iterator[T]) Next() (T, error) {
	return it.At(it.consumed)
}

// At returns the value at position i, counted from the start of the whole
// sequence, discarding any values before it. Positions before the current
// one cannot be requested.
func (it *Iterator[T]) At(i int) (T, error) {
	var zero T
	if it.err != nil {
		return zero, it.err
	}
	if i < it.consumed {
		it.err = fmt.Errorf("cannot get value %d: %w", i, ErrOutOfOrder)
		return zero, it.err
	}
	for {
		v, ok, err := it.pull()
		if err != nil {
			it.err = err
			return zero, err
		}
		if !ok {
			it.err = fmt.Errorf("cannot get value %d: %w", i, ErrExhausted)
			return zero, it.err
		}
		it.consumed++
		if it.consumed > i {
			return v, nil
		}
	}
}

// HasMore reports whether a call to Next would return a value. It pulls at
// most one value from the producer and keeps it for the following Next or At.
func (it *Iterator[T]) HasMore() bool {
	if it.err != nil {
		return false
	}
	if it.cached {
		return true
	}
	v, ok, err := it.pull()
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		return false
	}
	it.head, it.cached = v, true
	return true
}

// Consumed returns the number of values handed out or skipped so far.
func (it *Iterator[T]) Consumed() int {
	return it.consumed
}

// Err returns the error that stopped iteration, if any. Reaching the end of
// the sequence is not an error.
func (it *Iterator[T]) Err() error {
	if errors.Is(it.err, ErrExhausted) {
		return nil
	}
	return it.err
}

// All returns an iterator over the remaining values. Err should be checked
// once the loop is done.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasMore() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

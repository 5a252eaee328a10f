// Copyright 2018-2019 The logrange Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package divide

import (
	"io"
	"iter"
)

type (
	// PortionsMut can iterate over a slice in n non-overlapping mutable
	// portions, starting at the beginning of the slice. The emitted
	// portions alias the original storage, so modifications made through a
	// portion are visible in the divided slice. No two portions emitted by
	// one PortionsMut ever share an element, which makes them safe to hand
	// out to concurrently running goroutines. The PortionsMut itself must
	// be driven by one goroutine only and is not restartable.
	PortionsMut[T any] struct {
		v []T
		n int
	}
)

// DivideMut - returns an iterator over the slice v in n non-overlapping
// mutable portions. The portion sizes are computed exactly as for Divide.
// Every emitted portion has its capacity clamped to its length, so growing
// a portion with append reallocates instead of overwriting the neighbour.
//
// Will panic with ErrZeroPortions if n < 1.
func DivideMut[T any](v []T, n int) *PortionsMut[T] {
	if n < 1 {
		panic(ErrZeroPortions)
	}
	return &PortionsMut[T]{v: v, n: n}
}

// Get returns the current portion. It returns io.EOF in the error after
// all n portions have been consumed by Next().
func (p *PortionsMut[T]) Get() ([]T, error) {
	if p.End() {
		return nil, io.EOF
	}
	// PortionSize never exceeds len(p.v), so the emitted front portion and
	// the remainder kept for the following calls never overlap.
	sz := PortionSize(len(p.v), p.n)
	return p.v[:sz:sz], nil
}

// Next switches to the next portion. Has no effect if the end is reached.
func (p *PortionsMut[T]) Next() {
	if p.End() {
		return
	}
	p.v = p.v[PortionSize(len(p.v), p.n):]
	p.n--
}

// End returns whether all the portions were emitted.
func (p *PortionsMut[T]) End() bool {
	return p.n == 0
}

// Len - returns the number of portions that are not consumed yet
func (p *PortionsMut[T]) Len() int {
	return p.n
}

// All returns the not yet consumed portions as an iterator usable in a
// range loop. It drains the same cursor, so the PortionsMut stays
// exhausted after the loop completes.
func (p *PortionsMut[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for !p.End() {
			v, _ := p.Get()
			if !yield(v) {
				return
			}
			p.Next()
		}
	}
}

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
	// Portions can iterate over a slice in n non-overlapping read-only
	// portions, starting at the beginning of the slice. It keeps the not
	// yet consumed remainder of the slice and the number of portions still
	// to be emitted. The iteration is forward-only, a new Portions must be
	// created to walk the slice again.
	Portions[T any] struct {
		v []T
		n int
	}
)

// Divide - returns an iterator over the slice v in n non-overlapping
// read-only portions. The portions are emitted in ascending offset order
// and their sizes never increase: the first len(v)%n portions contain
// ceil(len(v)/n) elements, the rest contain floor(len(v)/n). If n exceeds
// len(v), the trailing portions are empty, but they are emitted anyway, so
// the iterator always produces exactly n portions.
//
// Will panic with ErrZeroPortions if n < 1.
func Divide[T any](v []T, n int) *Portions[T] {
	if n < 1 {
		panic(ErrZeroPortions)
	}
	return &Portions[T]{v: v, n: n}
}

// Get returns the current portion. It returns io.EOF in the error after
// all n portions have been consumed by Next().
func (p *Portions[T]) Get() (View[T], error) {
	if p.End() {
		return View[T]{}, io.EOF
	}
	return View[T]{v: p.v[:PortionSize(len(p.v), p.n)]}, nil
}

// Next switches to the next portion. Has no effect if the end is reached.
func (p *Portions[T]) Next() {
	if p.End() {
		return
	}
	p.v = p.v[PortionSize(len(p.v), p.n):]
	p.n--
}

// End returns whether all the portions were emitted.
func (p *Portions[T]) End() bool {
	return p.n == 0
}

// Len - returns the number of portions that are not consumed yet
func (p *Portions[T]) Len() int {
	return p.n
}

// All returns the not yet consumed portions as an iterator usable in a
// range loop. It drains the same cursor, so the Portions stays exhausted
// after the loop completes.
func (p *Portions[T]) All() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for !p.End() {
			v, _ := p.Get()
			if !yield(v) {
				return
			}
			p.Next()
		}
	}
}

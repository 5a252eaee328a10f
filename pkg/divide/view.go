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
	"iter"
)

type (
	// View - a read-only window over a contiguous range of the divided
	// slice. The View doesn't copy the elements, it aliases the original
	// storage, but it exposes no way to modify it. Many Views over the same
	// data may be alive at the same time.
	View[T any] struct {
		v []T
	}
)

// Len - returns the number of elements in the view
func (v View[T]) Len() int {
	return len(v.v)
}

// At - returns the element at the index i, counting from the beginning of
// the view. Will panic if the index is out of the view bounds.
func (v View[T]) At(i int) T {
	return v.v[i]
}

// Slice returns a copy of the viewed range. The copy is made to keep the
// original slice unreachable for modifications through the View.
func (v View[T]) Slice() []T {
	c := make([]T, len(v.v))
	copy(c, v.v)
	return c
}

// All returns an iterator over the (index, element) pairs of the view,
// in ascending index order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.v {
			if !yield(i, e) {
				return
			}
		}
	}
}

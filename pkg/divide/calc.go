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

// divide package allows to split a slice onto a number of non-overlapping
// portions. The portions are contiguous sub-slices which follow one after
// another, so being concatenated in the emission order they form the
// original slice. The elements are distributed between the portions as
// evenly as possible - if the slice length is not evenly divisible by the
// number of portions, the first portions receive one element more than the
// others. If the slice is shorter than the number of portions requested,
// the trailing portions are empty.
//
// Two flavors are provided - Divide, which emits read-only views over the
// slice (see View), and DivideMut, which emits plain sub-slices, so the
// caller can modify the portions independently, handing them out to
// different goroutines for instance.
package divide

// PortionSize - returns the size of the next portion when remaining
// elements must be spread over count portions. The result is the ceiling
// of remaining/count, never exceeding remaining.
//
// Recomputing the ceiling on every step, instead of fixing quotient and
// remainder up front, assigns the surplus elements to the earliest
// portions: exactly remaining%count portions (the first ones) receive
// ceil(remaining/count) elements, all the others receive
// floor(remaining/count).
//
// count must be positive, the function will panic (division by zero)
// otherwise.
func PortionSize(remaining, count int) int {
	// the ceiling is taken without the remaining+count-1 trick, which
	// overflows for huge counts and could produce a negative size
	sz := remaining / count
	if remaining%count != 0 {
		sz++
	}
	return sz
}

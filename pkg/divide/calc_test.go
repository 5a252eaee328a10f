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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortionSize(t *testing.T) {
	assert.Equal(t, 2, PortionSize(6, 3))
	assert.Equal(t, 3, PortionSize(9, 4))
	assert.Equal(t, 2, PortionSize(6, 4))
	assert.Equal(t, 1, PortionSize(2, 3))
	assert.Equal(t, 1, PortionSize(1, 100))

	assert.Equal(t, 0, PortionSize(0, 1))
	assert.Equal(t, 0, PortionSize(0, 5))

	assert.Equal(t, 7, PortionSize(7, 1))
}

func TestPortionSizeHugeCount(t *testing.T) {
	// the naive ceil formula (remaining+count-1)/count overflows here
	// and yields a negative size
	assert.Equal(t, 1, PortionSize(2, math.MaxInt))
	assert.Equal(t, 1, PortionSize(100, math.MaxInt-50))
	assert.Equal(t, 0, PortionSize(0, math.MaxInt))
	assert.Equal(t, 1, PortionSize(math.MaxInt, math.MaxInt))
	assert.Equal(t, math.MaxInt, PortionSize(math.MaxInt, 1))
}

func TestPortionSizeSpreadsSurplus(t *testing.T) {
	// walking the full division step by step must release exactly
	// remaining%count oversized portions, all of them first
	for l := 0; l <= 50; l++ {
		for n := 1; n <= 10; n++ {
			remaining, prev := l, l+1
			big := 0
			for cnt := n; cnt > 0; cnt-- {
				sz := PortionSize(remaining, cnt)
				assert.True(t, sz <= prev, "sizes must not increase: l=%d n=%d", l, n)
				if sz == l/n+1 && l%n != 0 {
					big++
				}
				remaining -= sz
				prev = sz
			}
			assert.Equal(t, 0, remaining, "l=%d n=%d", l, n)
			if l%n != 0 {
				assert.Equal(t, l%n, big, "l=%d n=%d", l, n)
			}
		}
	}
}

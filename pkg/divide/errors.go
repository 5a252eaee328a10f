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
	"github.com/pkg/errors"
)

var (
	// ErrZeroPortions is the value Divide and DivideMut panic with when the
	// requested number of portions is not positive. It is a programmer
	// error, not a condition the caller is supposed to recover from.
	ErrZeroPortions = errors.New("cannot divide a slice into zero portions")
)

// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package backed

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
)

// Order is the memory layout of a rank-2 buffer: row-major stores each row
// contiguously, column-major each column. Rank-1 buffers are always
// row-major.
type Order int8

const (
	RowMajor Order = iota
	ColMajor
	// KeepOrder is accepted only by Ravel and means "traverse in whatever
	// order the buffer is already stored in".
	KeepOrder
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	case KeepOrder:
		return "keep-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Shape lists the axis lengths of an array. Supported ranks are 1 and 2.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the element count, the product over all axes. ok is false
// when an axis is negative or the product overflows int.
func (s Shape) Size() (size int, ok bool) {
	size = 1
	for _, n := range s {
		if n < 0 {
			return 0, false
		}
		if size, ok = overflow.Mul(size, n); !ok {
			return 0, false
		}
	}
	return size, true
}

// Equal reports whether both shapes have the same rank and axis lengths.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, n := range s {
		if n != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

func validateShape(s Shape) error {
	if r := s.Rank(); r < 1 || r > 2 {
		return fmt.Errorf("%w: backed: rank %d shape %v, supported ranks are 1 and 2", ErrInvalid, r, s)
	}
	if _, ok := s.Size(); !ok {
		return fmt.Errorf("%w: backed: shape %v does not describe a representable size", ErrInvalid, s)
	}
	return nil
}

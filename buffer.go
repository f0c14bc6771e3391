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

	"github.com/backed-go/backed/internal/debug"
)

// Buffer is the single contiguous storage behind an array: a flat slice of
// raw elements plus the shape and memory order that give it structure.
//
// NewBuffer takes ownership of the value slice; callers that keep using the
// slice afterwards must pass a copy. Buffers handed out by Array.Buffer are
// deep copies and safe to reuse.
type Buffer[T Elem] struct {
	values []T
	shape  Shape
	order  Order
}

// NewBuffer wraps values in a buffer of the given shape and memory order.
// len(values) must equal the shape's size. Rank-1 buffers normalize to
// row-major whatever order says.
func NewBuffer[T Elem](values []T, shape Shape, order Order) (Buffer[T], error) {
	if err := validateShape(shape); err != nil {
		return Buffer[T]{}, err
	}
	if order != RowMajor && order != ColMajor {
		return Buffer[T]{}, fmt.Errorf("%w: backed: buffer order must be RowMajor or ColMajor, got %s", ErrInvalid, order)
	}
	size, _ := shape.Size()
	if len(values) != size {
		return Buffer[T]{}, fmt.Errorf("%w: backed: %d values do not fill shape %v (size %d)",
			ErrInvalid, len(values), shape, size)
	}
	if shape.Rank() == 1 {
		order = RowMajor
	}
	return Buffer[T]{values: values, shape: shape.Clone(), order: order}, nil
}

// NewVectorBuffer wraps values in a rank-1 buffer.
func NewVectorBuffer[T Elem](values []T) Buffer[T] {
	return Buffer[T]{values: values, shape: Shape{len(values)}, order: RowMajor}
}

// Len returns the axis-0 length: the element count at rank 1, the row count
// at rank 2.
func (b Buffer[T]) Len() int { return b.shape[0] }

// Rank returns the number of axes.
func (b Buffer[T]) Rank() int { return b.shape.Rank() }

// Size returns the total element count.
func (b Buffer[T]) Size() int { return len(b.values) }

// Shape returns an independent copy of the shape.
func (b Buffer[T]) Shape() Shape { return b.shape.Clone() }

// Order returns the memory layout.
func (b Buffer[T]) Order() Order { return b.order }

// At returns the raw element at row i, column j of a rank-2 buffer.
func (b Buffer[T]) At(i, j int) T {
	debug.Assert(b.Rank() == 2, "backed: Buffer.At on rank-%d buffer", b.Rank())
	return b.values[b.memIndex(i, j)]
}

// Values returns a defensive copy of the raw storage in memory order.
func (b Buffer[T]) Values() []T {
	return append([]T(nil), b.values...)
}

func (b Buffer[T]) clone() Buffer[T] {
	return Buffer[T]{values: append([]T(nil), b.values...), shape: b.shape.Clone(), order: b.order}
}

// memIndex maps the logical position (i, j) of a rank-2 buffer to its flat
// storage offset.
func (b Buffer[T]) memIndex(i, j int) int {
	rows, cols := b.shape[0], b.shape[1]
	debug.Assert(i >= 0 && i < rows && j >= 0 && j < cols,
		"backed: position (%d, %d) outside %dx%d", i, j, rows, cols)
	if b.order == ColMajor {
		return j*rows + i
	}
	return i*cols + j
}

// flatMemIndex maps a flat logical row-major position to its storage
// offset. For rank-1 and row-major buffers the two coincide.
func (b Buffer[T]) flatMemIndex(p int) int {
	if b.Rank() == 1 || b.order == RowMajor {
		return p
	}
	cols := b.shape[1]
	return b.memIndex(p/cols, p%cols)
}

// logicalValues returns a copy of the elements in flat logical row-major
// order, reordering column-major storage as needed.
func (b Buffer[T]) logicalValues() []T {
	if b.Rank() == 1 || b.order == RowMajor {
		return append([]T(nil), b.values...)
	}
	rows, cols := b.shape[0], b.shape[1]
	out := make([]T, len(b.values))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = b.values[j*rows+i]
		}
	}
	return out
}

// colMajorValues returns a copy of the elements in flat column-major
// traversal order.
func (b Buffer[T]) colMajorValues() []T {
	if b.Rank() == 1 || b.order == ColMajor {
		return append([]T(nil), b.values...)
	}
	rows, cols := b.shape[0], b.shape[1]
	out := make([]T, len(b.values))
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[j*rows+i] = b.values[i*cols+j]
		}
	}
	return out
}

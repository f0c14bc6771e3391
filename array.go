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
	"strings"
	"unsafe"
)

// MissingValueStr is the token String renders at missing positions.
const MissingValueStr = "(missing)"

// Interface is the type-erased view of an array, the argument type of
// Equals and the unit arrowio exchanges.
type Interface interface {
	Len() int
	Rank() int
	Shape() Shape
	Size() int
	NBytes() int
	DTypeName() string
	String() string
}

// Array couples one Buffer of raw elements with the DType that gives them
// meaning. T is the raw storage type, V the boxed value type, D the dtype.
//
// The shape is fixed at construction; operations that change it return new
// arrays. The only in-place mutators are Set and PutMask. Arrays are not
// synchronized: concurrent readers are fine, a writer needs external
// locking. No operation returns an array aliasing another's storage.
type Array[T Elem, V any, D DType[T, V]] struct {
	dtype  D
	buf    Buffer[T]
	nbytes int
}

// New wraps values in an array of the given shape, row-major, taking
// ownership of the slice.
func New[T Elem, V any, D DType[T, V]](dtype D, values []T, shape Shape) (*Array[T, V, D], error) {
	buf, err := NewBuffer(values, shape, RowMajor)
	if err != nil {
		return nil, err
	}
	return newArray(dtype, buf), nil
}

// NewVector wraps values in a rank-1 array, taking ownership of the slice.
func NewVector[T Elem, V any, D DType[T, V]](dtype D, values []T) *Array[T, V, D] {
	return newArray(dtype, NewVectorBuffer(values))
}

func newArray[T Elem, V any, D DType[T, V]](dtype D, buf Buffer[T]) *Array[T, V, D] {
	return &Array[T, V, D]{dtype: dtype, buf: buf, nbytes: nbytesOf(buf.values)}
}

// FromBackingData produces a new array of the receiver's dtype around buf,
// taking ownership of it. Every transforming operation funnels its result
// through here, so the dtype instance always carries over.
func (a *Array[T, V, D]) FromBackingData(buf Buffer[T]) *Array[T, V, D] {
	if buf.shape.Rank() == 0 {
		panic("backed: FromBackingData on a zero-value Buffer, use NewBuffer")
	}
	return newArray(a.dtype, buf)
}

// DType returns the dtype instance.
func (a *Array[T, V, D]) DType() D { return a.dtype }

// DTypeName returns the dtype identity string.
func (a *Array[T, V, D]) DTypeName() string { return a.dtype.Name() }

// Len returns the axis-0 length: elements at rank 1, rows at rank 2.
func (a *Array[T, V, D]) Len() int { return a.buf.Len() }

// Rank returns the number of axes, 1 or 2.
func (a *Array[T, V, D]) Rank() int { return a.buf.Rank() }

// Size returns the total element count.
func (a *Array[T, V, D]) Size() int { return a.buf.Size() }

// Shape returns an independent copy of the shape.
func (a *Array[T, V, D]) Shape() Shape { return a.buf.Shape() }

// Order returns the memory layout of the backing buffer.
func (a *Array[T, V, D]) Order() Order { return a.buf.Order() }

// NBytes returns the storage footprint in bytes, computed at construction.
// String-backed arrays count content bytes.
func (a *Array[T, V, D]) NBytes() int { return a.nbytes }

// Value returns the boxed element at position i of a rank-1 array.
// Negative positions are not accepted here; use Get for reverse indexing.
func (a *Array[T, V, D]) Value(i int) V {
	if a.Rank() != 1 {
		panic(fmt.Sprintf("backed: Value on rank-%d array, use ValueAt or Row", a.Rank()))
	}
	return a.dtype.Box(a.buf.values[i])
}

// ValueAt returns the boxed element at row i, column j of a rank-2 array.
func (a *Array[T, V, D]) ValueAt(i, j int) V {
	if a.Rank() != 2 {
		panic(fmt.Sprintf("backed: ValueAt on rank-%d array", a.Rank()))
	}
	return a.dtype.Box(a.buf.At(i, j))
}

// Row returns row i of a rank-2 array as a new rank-1 array.
func (a *Array[T, V, D]) Row(i int) *Array[T, V, D] {
	if a.Rank() != 2 {
		panic(fmt.Sprintf("backed: Row on rank-%d array", a.Rank()))
	}
	cols := a.buf.shape[1]
	out := make([]T, cols)
	for j := 0; j < cols; j++ {
		out[j] = a.buf.At(i, j)
	}
	return a.FromBackingData(NewVectorBuffer(out))
}

// Buffer returns a deep copy of the backing buffer. The copy satisfies the
// round trip a.FromBackingData(a.Buffer()) without aliasing live storage.
func (a *Array[T, V, D]) Buffer() Buffer[T] { return a.buf.clone() }

// Values returns the boxed elements in flat logical row-major order.
func (a *Array[T, V, D]) Values() []V {
	raw := a.buf.logicalValues()
	out := make([]V, len(raw))
	for i, r := range raw {
		out[i] = a.dtype.Box(r)
	}
	return out
}

// Copy returns an array with freshly copied storage, same shape and order.
func (a *Array[T, V, D]) Copy() *Array[T, V, D] {
	return a.FromBackingData(a.buf.clone())
}

// String renders the boxed elements bracketed, rank-2 arrays as nested
// rows, missing positions as MissingValueStr.
func (a *Array[T, V, D]) String() string {
	var o strings.Builder
	o.WriteString("[")
	if a.Rank() == 1 {
		a.renderLane(&o, a.Len(), func(j int) T { return a.buf.values[j] })
	} else {
		cols := a.buf.shape[1]
		for i := 0; i < a.Len(); i++ {
			if i > 0 {
				o.WriteString(" ")
			}
			o.WriteString("[")
			a.renderLane(&o, cols, func(j int) T { return a.buf.At(i, j) })
			o.WriteString("]")
		}
	}
	o.WriteString("]")
	return o.String()
}

func (a *Array[T, V, D]) renderLane(o *strings.Builder, n int, at func(int) T) {
	for j := 0; j < n; j++ {
		if j > 0 {
			o.WriteString(" ")
		}
		raw := at(j)
		if a.dtype.IsMissing(raw) {
			o.WriteString(MissingValueStr)
		} else {
			fmt.Fprintf(o, "%v", a.dtype.Box(raw))
		}
	}
}

// axisLen returns the length along a normalized axis.
func (a *Array[T, V, D]) axisLen(axis int) int {
	return a.buf.shape[axis]
}

// normalizeAxis resolves a possibly negative axis against the rank.
func (a *Array[T, V, D]) normalizeAxis(axis int) (int, error) {
	r := a.Rank()
	if axis < -r || axis >= r {
		return 0, fmt.Errorf("%w: backed: axis %d out of range for rank %d", ErrInvalid, axis, r)
	}
	if axis < 0 {
		axis += r
	}
	return axis, nil
}

// normalizePosition resolves a possibly negative position against length n.
func normalizePosition(i, n int) (int, error) {
	if i < -n || i >= n {
		return 0, fmt.Errorf("%w: backed: position %d out of range [-%d, %d)", ErrIndex, i, n, n)
	}
	if i < 0 {
		i += n
	}
	return i, nil
}

func nbytesOf[T Elem](values []T) int {
	if ss, ok := any(values).([]string); ok {
		n := 0
		for _, s := range ss {
			n += len(s)
		}
		return n
	}
	var z T
	return len(values) * int(unsafe.Sizeof(z))
}

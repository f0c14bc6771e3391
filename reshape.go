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

import "fmt"

// Reshape rechunks the flat logical row-major element sequence into shape.
// The new shape must describe the same total size; the result is row-major.
func (a *Array[T, V, D]) Reshape(shape Shape) (*Array[T, V, D], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	size, _ := shape.Size()
	if size != a.Size() {
		return nil, fmt.Errorf("%w: backed: cannot reshape %d elements into shape %v", ErrInvalid, a.Size(), shape)
	}
	return a.FromBackingData(Buffer[T]{values: a.buf.logicalValues(), shape: shape.Clone(), order: RowMajor}), nil
}

// Ravel returns a rank-1 copy traversed in the given order: RowMajor walks
// rows first, ColMajor columns first, KeepOrder the buffer's own storage
// sequence.
func (a *Array[T, V, D]) Ravel(order Order) *Array[T, V, D] {
	var values []T
	switch {
	case a.Rank() == 1 || order == KeepOrder:
		values = a.buf.Values()
	case order == RowMajor:
		values = a.buf.logicalValues()
	case order == ColMajor:
		values = a.buf.colMajorValues()
	default:
		panic(fmt.Sprintf("backed: Ravel order %s", order))
	}
	return a.FromBackingData(NewVectorBuffer(values))
}

// Transpose returns the axes reversed. Rank 1 is a plain copy; rank 2
// flips the shape and the memory order without reordering elements, so the
// cost is one buffer copy.
func (a *Array[T, V, D]) Transpose() *Array[T, V, D] {
	if a.Rank() == 1 {
		return a.Copy()
	}
	order := ColMajor
	if a.buf.order == ColMajor {
		order = RowMajor
	}
	return a.FromBackingData(Buffer[T]{
		values: a.buf.Values(),
		shape:  Shape{a.buf.shape[1], a.buf.shape[0]},
		order:  order,
	})
}

// SwapAxes exchanges two axes. Equal axes yield a copy; on rank-2 arrays
// distinct axes are a transpose.
func (a *Array[T, V, D]) SwapAxes(axis1, axis2 int) (*Array[T, V, D], error) {
	a1, err := a.normalizeAxis(axis1)
	if err != nil {
		return nil, err
	}
	a2, err := a.normalizeAxis(axis2)
	if err != nil {
		return nil, err
	}
	if a1 == a2 {
		return a.Copy(), nil
	}
	return a.Transpose(), nil
}

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

// Equals reports deep equality with other: the same concrete array
// instantiation, the same dtype identity, the same shape, and positionally
// equal elements, where two missing markers count as equal and missing
// against present does not. Memory order does not participate, so an array
// equals its double transpose.
func (a *Array[T, V, D]) Equals(other Interface) bool {
	o, ok := other.(*Array[T, V, D])
	if !ok || o == nil {
		return false
	}
	if a.dtype.Name() != o.dtype.Name() {
		return false
	}
	if !a.buf.shape.Equal(o.buf.shape) {
		return false
	}
	av, ov := a.buf.values, o.buf.values
	if a.buf.order != o.buf.order {
		av, ov = a.buf.logicalValues(), o.buf.logicalValues()
	}
	for i := range av {
		amiss, omiss := a.dtype.IsMissing(av[i]), o.dtype.IsMissing(ov[i])
		if amiss != omiss {
			return false
		}
		if !amiss && av[i] != ov[i] {
			return false
		}
	}
	return true
}

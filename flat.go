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

// FlatApply lifts an operation written for rank-1 arrays over any rank.
// Rank-1 input goes straight to op. Rank-2 input is raveled in its own
// memory order, run through op, and the result is rewrapped with the
// original shape and order, so elements land exactly where they started.
// op must preserve the element count; a result of any other size is
// ErrInvalid.
func FlatApply[T Elem, V any, D DType[T, V]](a *Array[T, V, D], op func(*Array[T, V, D]) (*Array[T, V, D], error)) (*Array[T, V, D], error) {
	if a.Rank() == 1 {
		return op(a)
	}
	shape, order := a.Shape(), a.Order()
	res, err := op(a.Ravel(KeepOrder))
	if err != nil {
		return nil, err
	}
	if res.Rank() != 1 || res.Size() != a.Size() {
		return nil, fmt.Errorf("%w: backed: flat op produced shape %v from %d elements",
			ErrInvalid, res.Shape(), a.Size())
	}
	buf, err := NewBuffer(res.buf.Values(), shape, order)
	if err != nil {
		return nil, err
	}
	return a.FromBackingData(buf), nil
}

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

/*
Package backed provides typed, missing-value-aware arrays backed by one
flat buffer of machine scalars.

An Array couples raw storage (integers, floats or strings) with a DType
that owns the element semantics: how a raw element boxes into a value,
which raw encodes "missing", and how caller-supplied values coerce on
every write path. The array layer itself stays generic; it moves raw
elements around and asks the dtype whenever meaning is needed. Concrete
dtypes live in the extensions package.

Arrays are rank 1 or 2 and their shape is fixed at construction. All
operations return new arrays except Set and PutMask, which write in
place. Every transforming operation funnels its result through
FromBackingData, so derived arrays always carry their parent's dtype.

	a := extensions.NewFloatVector([]float64{1, math.NaN(), 3})
	b, _ := a.FillMissing(backed.FillOptions{Value: 2.0})
	fmt.Println(b) // [1 2 3]

Errors wrap the package sentinels ErrInvalid, ErrType, ErrIndex and
ErrNotImplemented; match them with errors.Is. Validation always completes
before the first write, so a failed operation never leaves an array half
mutated.

Arrays are not synchronized. Any number of goroutines may read one array;
a writer needs external locking.
*/
package backed

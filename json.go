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
	"github.com/goccy/go-json"
)

// GetOneForMarshal returns the JSON-marshalable form of the element at
// flat logical row-major position i: nil for missing, the boxed value
// otherwise.
func (a *Array[T, V, D]) GetOneForMarshal(i int) interface{} {
	raw := a.buf.values[a.buf.flatMemIndex(i)]
	if a.dtype.IsMissing(raw) {
		return nil
	}
	return a.dtype.Box(raw)
}

// MarshalJSON renders rank-1 arrays as a list and rank-2 arrays as a list
// of row lists, with missing positions as null.
func (a *Array[T, V, D]) MarshalJSON() ([]byte, error) {
	if a.Rank() == 1 {
		vals := make([]interface{}, a.Size())
		for i := range vals {
			vals[i] = a.GetOneForMarshal(i)
		}
		return json.Marshal(vals)
	}
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	out := make([][]interface{}, rows)
	for i := 0; i < rows; i++ {
		row := make([]interface{}, cols)
		for j := 0; j < cols; j++ {
			row[j] = a.GetOneForMarshal(i*cols + j)
		}
		out[i] = row
	}
	return json.Marshal(out)
}

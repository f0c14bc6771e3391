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

package kernels_test

import (
	"testing"

	"github.com/backed-go/backed/kernels"
	"github.com/stretchr/testify/assert"
)

func TestTake(t *testing.T) {
	values := []int64{10, 20, 30, 40}

	tests := []struct {
		name      string
		indices   []int
		allowFill bool
		fill      int64
		want      []int64
	}{
		{"identity", []int{0, 1, 2, 3}, false, 0, []int64{10, 20, 30, 40}},
		{"reorder", []int{3, 0, 2}, false, 0, []int64{40, 10, 30}},
		{"repeat index", []int{1, 1, 1}, false, 0, []int64{20, 20, 20}},
		{"empty indices", []int{}, false, 0, []int64{}},
		{"fill sentinel", []int{0, -1, 3}, true, -99, []int64{10, -99, 40}},
		{"all fill", []int{-1, -1}, true, 7, []int64{7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.Take(values, tt.indices, tt.allowFill, tt.fill)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTakeDoesNotAliasSource(t *testing.T) {
	values := []float64{1, 2, 3}
	got := kernels.Take(values, []int{0, 1, 2}, false, 0)
	got[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, values)
}

func TestTakeRows(t *testing.T) {
	// 3x2 row-major
	values := []int32{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name      string
		indices   []int
		allowFill bool
		fill      int32
		want      []int32
	}{
		{"reorder", []int{2, 0}, false, 0, []int32{5, 6, 1, 2}},
		{"duplicate", []int{1, 1}, false, 0, []int32{3, 4, 3, 4}},
		{"fill row", []int{0, -1, 2}, true, -1, []int32{1, 2, -1, -1, 5, 6}},
		{"empty", []int{}, false, 0, []int32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.TakeRows(values, 3, 2, tt.indices, tt.allowFill, tt.fill)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTakeCols(t *testing.T) {
	// 2x3 row-major
	values := []int32{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name      string
		indices   []int
		allowFill bool
		fill      int32
		want      []int32
	}{
		{"reorder", []int{2, 0}, false, 0, []int32{3, 1, 6, 4}},
		{"widen", []int{0, 0, 1, 1}, false, 0, []int32{1, 1, 2, 2, 4, 4, 5, 5}},
		{"fill column", []int{1, -1}, true, 9, []int32{2, 9, 5, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.TakeCols(values, 2, 3, tt.indices, tt.allowFill, tt.fill)
			assert.Equal(t, tt.want, got)
		})
	}
}

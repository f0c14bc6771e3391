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

func TestShift(t *testing.T) {
	values := []int64{1, 2, 3, 4}

	tests := []struct {
		name    string
		periods int
		want    []int64
	}{
		{"zero", 0, []int64{1, 2, 3, 4}},
		{"forward one", 1, []int64{-9, 1, 2, 3}},
		{"forward two", 2, []int64{-9, -9, 1, 2}},
		{"backward one", -1, []int64{2, 3, 4, -9}},
		{"backward three", -3, []int64{4, -9, -9, -9}},
		{"forward full", 4, []int64{-9, -9, -9, -9}},
		{"backward past end", -5, []int64{-9, -9, -9, -9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.Shift(values, tt.periods, int64(-9))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []int64{1, 2, 3, 4}, values, "source must be untouched")
		})
	}
}

func TestShiftEmpty(t *testing.T) {
	assert.Empty(t, kernels.Shift([]float64{}, 3, 0))
}

func TestShiftRows(t *testing.T) {
	// 3x2 row-major
	values := []int32{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name    string
		periods int
		want    []int32
	}{
		{"zero", 0, []int32{1, 2, 3, 4, 5, 6}},
		{"down one", 1, []int32{0, 0, 1, 2, 3, 4}},
		{"up one", -1, []int32{3, 4, 5, 6, 0, 0}},
		{"down past end", 3, []int32{0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.ShiftRows(values, 3, 2, tt.periods, int32(0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftCols(t *testing.T) {
	// 2x3 row-major
	values := []int32{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name    string
		periods int
		want    []int32
	}{
		{"zero", 0, []int32{1, 2, 3, 4, 5, 6}},
		{"right one", 1, []int32{0, 1, 2, 0, 4, 5}},
		{"left two", -2, []int32{3, 0, 0, 6, 0, 0}},
		{"right past end", 4, []int32{0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kernels.ShiftCols(values, 2, 3, tt.periods, int32(0))
			assert.Equal(t, tt.want, got)
		})
	}
}

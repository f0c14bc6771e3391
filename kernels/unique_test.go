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
	"math"
	"testing"

	"github.com/backed-go/backed/kernels"
	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		mask   []bool
		want   []int64
	}{
		{"no duplicates", []int64{3, 1, 2}, nil, []int64{3, 1, 2}},
		{"first appearance wins", []int64{2, 1, 2, 3, 1}, nil, []int64{2, 1, 3}},
		{"all same", []int64{5, 5, 5}, nil, []int64{5}},
		{"empty", []int64{}, nil, []int64{}},
		{"missing collapses", []int64{1, -1, 2, -1, 1}, []bool{false, true, false, true, false}, []int64{1, -1, 2}},
		{"leading missing", []int64{-1, -1, 4}, []bool{true, true, false}, []int64{-1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernels.Unique(tt.values, tt.mask))
		})
	}
}

func TestUniqueCollapsesNaN(t *testing.T) {
	nan := math.NaN()
	values := []float64{1, nan, 2, nan, nan}
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = math.IsNaN(v)
	}

	got := kernels.Unique(values, mask)
	assert.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 2.0, got[2])
}

func TestValueCounts(t *testing.T) {
	values := []string{"b", "a", "b", "c", "b", "a"}
	got, counts := kernels.ValueCounts(values, nil)

	assert.Equal(t, []string{"b", "a", "c"}, got, "first-appearance order")
	assert.Equal(t, []int64{3, 2, 1}, counts)
}

func TestValueCountsWithMissing(t *testing.T) {
	values := []float64{1, math.NaN(), 1, math.NaN(), 2}
	mask := []bool{false, true, false, true, false}

	got, counts := kernels.ValueCounts(values, mask)
	assert.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 2.0, got[2])
	assert.Equal(t, []int64{2, 2, 1}, counts)
}

func TestValueCountsEmpty(t *testing.T) {
	got, counts := kernels.ValueCounts([]int32{}, nil)
	assert.Empty(t, got)
	assert.Empty(t, counts)
}

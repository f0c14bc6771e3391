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

package backed_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONVector(t *testing.T) {
	a := newIntVector(1, missingInt, 3)

	got, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null, 3]`, string(got))
}

func TestMarshalJSONMatrix(t *testing.T) {
	a := newIntMatrix(t, 2, 2, 1, 2, missingInt, 4)

	got, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1, 2], [null, 4]]`, string(got))
}

func TestMarshalJSONColMajor(t *testing.T) {
	a := newIntMatrix(t, 2, 2, 1, 2, 3, 4)
	tr := a.Transpose()

	got, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1, 3], [2, 4]]`, string(got), "rows render logically whatever the storage order")
}

func TestGetOneForMarshal(t *testing.T) {
	a := newIntVector(5, missingInt)

	assert.Equal(t, int64(5), a.GetOneForMarshal(0))
	assert.Nil(t, a.GetOneForMarshal(1))
}

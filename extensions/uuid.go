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

package extensions

import (
	"fmt"

	"github.com/backed-go/backed"
	"github.com/google/uuid"
)

// UUIDType stores canonical RFC 4122 text as the raw element and boxes it
// as uuid.UUID. The empty string marks missing and boxes to uuid.Nil;
// uuid.Nil coerces back to missing on the way in.
type UUIDType struct{}

// NewUUIDType returns the UUID dtype.
func NewUUIDType() *UUIDType { return &UUIDType{} }

// UUIDArray is the array instantiation backed by UUIDType.
type UUIDArray = backed.Array[string, uuid.UUID, *UUIDType]

// Name returns "uuid".
func (*UUIDType) Name() string { return "uuid" }

// Box parses raw into a uuid.UUID. Missing, and raw text that does not
// parse, box to uuid.Nil.
func (*UUIDType) Box(raw string) uuid.UUID {
	if raw == "" {
		return uuid.Nil
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return u
}

// IsMissing reports whether raw is the empty string.
func (*UUIDType) IsMissing(raw string) bool { return raw == "" }

func (*UUIDType) coerce(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case uuid.UUID:
		if t == uuid.Nil {
			return "", nil
		}
		return t.String(), nil
	case string:
		if t == "" {
			return "", nil
		}
		u, err := uuid.Parse(t)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a valid UUID: %v", backed.ErrType, t, err)
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("%w: cannot coerce %T into uuid", backed.ErrType, v)
	}
}

// ValidateScalar accepts nil, uuid.UUID and UUID text in any form Parse
// accepts; text is canonicalized.
func (dt *UUIDType) ValidateScalar(v any) (string, error) { return dt.coerce(v) }

// ValidateFill accepts the same inputs as ValidateScalar.
func (dt *UUIDType) ValidateFill(v any) (string, error) { return dt.coerce(v) }

// ValidateSet accepts the same inputs as ValidateScalar.
func (dt *UUIDType) ValidateSet(v any) (string, error) { return dt.coerce(v) }

// ValidateSearch accepts the same inputs as ValidateScalar. Probes compare
// against the canonical text, so order is lexicographic on that form.
func (dt *UUIDType) ValidateSearch(v any) (string, error) { return dt.coerce(v) }

// NewUUIDVector builds a rank-1 UUID array from ids. uuid.Nil elements are
// missing.
func NewUUIDVector(ids []uuid.UUID) *UUIDArray {
	raw := make([]string, len(ids))
	for i, u := range ids {
		if u != uuid.Nil {
			raw[i] = u.String()
		}
	}
	return backed.NewVector[string, uuid.UUID](NewUUIDType(), raw)
}

// NewUUIDStrings builds a rank-1 UUID array from text, canonicalizing each
// element. Empty strings are missing; unparseable text is ErrType.
func NewUUIDStrings(raws []string) (*UUIDArray, error) {
	dt := NewUUIDType()
	out := make([]string, len(raws))
	for i, s := range raws {
		c, err := dt.coerce(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return backed.NewVector[string, uuid.UUID](dt, out), nil
}

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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalid marks structural misuse: bad shapes, bad axes,
	// contradictory options.
	ErrInvalid = errors.New("invalid")
	// ErrType marks values that cannot be coerced into an element of the
	// receiving dtype.
	ErrType = errors.New("type error")
	// ErrIndex marks positions outside the addressable range.
	ErrIndex = errors.New("index error")
	// ErrNotImplemented marks operations the receiving dtype or rank does
	// not support.
	ErrNotImplemented = errors.New("not implemented")
)

// MismatchError reports a concatenation over arrays whose dtype identities
// disagree. It lists every distinct identity encountered, in first-seen
// order, and matches ErrType through errors.Is.
type MismatchError struct {
	Names []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: backed: arrays to concatenate must share one dtype, got %s",
		ErrType, strings.Join(e.Names, ", "))
}

func (e *MismatchError) Unwrap() error { return ErrType }

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

// Package kernels implements the raw-buffer primitives the array layer is
// built on: gather with optional fill, order-stable deduplication, value
// counting, axis-aware shifting, and forward/backward propagation of valid
// values into missing positions.
//
// Kernels operate on plain slices and know nothing about element semantics;
// a caller that needs missing-value awareness passes a boolean mask. Inputs
// are expected to be validated by the caller. Kernels assert their
// preconditions (see internal/debug) instead of re-checking them.
package kernels

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

// Package arrowio exchanges rank-1 arrays of the extension dtypes with
// Apache Arrow in memory. Missing positions map to Arrow validity: a
// missing element becomes a null and a null becomes the dtype's missing
// marker. Categories travel as string dictionaries that keep the full
// category list and its order, so the dtype identity survives a round
// trip even when some categories are unused.
//
// Conversions allocate through memory.DefaultAllocator. The caller owns
// every returned Arrow array and releases it when done.
package arrowio

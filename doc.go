// Copyright 2025 vstl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vstl provides the shared type constraints and the SIMD dispatch
// layer for the vectorized sorted-slice algorithms in the set and bound
// subpackages.
//
// The algorithm packages ship two implementations of every operation: a
// lane-partitioned kernel whose inner loop is free of cross-lane
// dependencies (the shape wide vector units and autovectorizers want), and
// a plain linear reference with identical observable semantics. Which one a
// public function binds to is decided once, at package init, from the CPU
// features detected here:
//
//	if vstl.HasSIMD() { ... lane-partitioned path ... }
//
// Setting the VSTL_NO_SIMD environment variable to any value that does not
// parse as false forces the scalar path regardless of CPU capabilities,
// which is useful for testing and debugging.
package vstl

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

// Package set provides set algebra and merge algorithms over sorted slices:
// intersection, union, difference, stable two-way and multi-way merges
// (with optional companion value slices), and deduplication utilities
// (Unique, Separate, IsUnique).
//
// Inputs must already be sorted in the direction the function documents;
// this is not checked. All functions treat their inputs as read-only and
// return freshly allocated results, except the MultiMerge family, which
// consumes its input lists.
//
// # Execution model
//
// Every operation exists in two forms with identical observable semantics.
// The lane-partitioned Base* form splits the left input into many
// independent lanes, aligns a window of the right input to each lane with
// batched binary searches, and advances all lanes in lock-step through a
// two-finger merge body with no cross-lane dependencies, then compacts the
// per-lane output regions into one contiguous result. The scalar form is
// the ordinary linear algorithm and doubles as the reference oracle in
// tests. Public functions bind to one form at package init based on
// vstl.HasSIMD().
//
// # Duplicate semantics
//
// Slices are treated as multisets. For each value v with count l in the
// left input and r in the right, Intersect emits min(l, r) copies, Union
// emits max(l, r), and Difference emits max(0, l-r). Merge keeps all l+r
// copies and is stable: equal keys from the left input precede those from
// the right.
package set

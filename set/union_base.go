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

package set

import (
	"slices"

	"github.com/efocht/vstl"
)

// BaseUnion is the lane-partitioned form of Union.
func BaseUnion[T vstl.Ordered](left, right []T) []T {
	if len(left) == 0 {
		return slices.Clone(right)
	}
	if len(right) == 0 {
		return slices.Clone(left)
	}
	st := partitionSetOp(left, right, false)
	scratch := make([]T, len(left)+len(right))
	unionKernel(left, right, scratch, st)
	return compactWithTails(scratch, left, right, st)
}

// unionKernel: equal heads emit the left element and advance both cursors,
// otherwise the smaller head is emitted and advanced. One element is
// written every iteration per active lane.
func unionKernel[T vstl.Ordered](left, right, scratch []T, st *laneState) {
	for {
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				l := left[st.leftIdx[j]]
				r := right[st.rightIdx[j]]
				eq := l == r
				lt := l < r
				if eq || lt {
					scratch[st.outIdx[j]] = l
					st.leftIdx[j]++
				} else {
					scratch[st.outIdx[j]] = r
					st.rightIdx[j]++
				}
				st.outIdx[j]++
				if eq {
					st.rightIdx[j]++
				}
				if st.leftIdx[j] == st.leftStop[j] ||
					st.rightIdx[j] == st.rightStop[j] {
					st.valid[j] = false
				}
			}
		}
		anyValid := false
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				anyValid = true
			}
		}
		if !anyValid {
			break
		}
	}
}

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

// BaseDifference is the lane-partitioned form of Difference.
func BaseDifference[T vstl.Ordered](left, right []T) []T {
	if len(left) == 0 {
		return []T{}
	}
	if len(right) == 0 {
		return slices.Clone(left)
	}
	st := partitionSetOp(left, right, true)
	scratch := make([]T, len(left))
	differenceKernel(left, right, scratch, st)
	return compactWithLeftTail(scratch, left, st)
}

// differenceKernel: equal heads cancel each other (advance both, emit
// nothing), a smaller left head is emitted, a smaller right head is
// dropped.
func differenceKernel[T vstl.Ordered](left, right, scratch []T, st *laneState) {
	for {
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				l := left[st.leftIdx[j]]
				r := right[st.rightIdx[j]]
				eq := l == r
				lt := l < r
				switch {
				case eq:
					st.leftIdx[j]++
					st.rightIdx[j]++
				case lt:
					scratch[st.outIdx[j]] = l
					st.outIdx[j]++
					st.leftIdx[j]++
				default:
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

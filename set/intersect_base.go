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

import "github.com/efocht/vstl"

// BaseIntersect is the lane-partitioned form of Intersect.
func BaseIntersect[T vstl.Ordered](left, right []T) []T {
	if len(left) == 0 || len(right) == 0 {
		return []T{}
	}
	st := partitionIntersect(left, right)
	scratch := make([]T, len(left))
	intersectKernel(left, right, scratch, st)
	return compactWritten(scratch, st)
}

// intersectKernel advances all lanes in lock-step. Per active lane and
// iteration: equal heads emit the element and advance both cursors, a
// smaller left head advances left, a smaller right head advances right.
// A lane retires when either window empties.
func intersectKernel[T vstl.Ordered](left, right, scratch []T, st *laneState) {
	for {
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				l := left[st.leftIdx[j]]
				r := right[st.rightIdx[j]]
				eq := l == r
				lt := l < r
				if eq {
					scratch[st.outIdx[j]] = l
					st.outIdx[j]++
				}
				if eq || lt {
					st.leftIdx[j]++
				}
				if eq || !lt {
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

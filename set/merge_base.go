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

// BaseMerge is the lane-partitioned form of Merge.
func BaseMerge[T vstl.Ordered](left, right []T) []T {
	if len(left) == 0 {
		return slices.Clone(right)
	}
	if len(right) == 0 {
		return slices.Clone(left)
	}
	st := partitionMerge(left, right, false)
	out := make([]T, len(left)+len(right))
	mergeKernel(left, right, out, st, false)
	appendMergeTails(out, left, right, st)
	return out
}

// BaseMergeDesc is the lane-partitioned form of MergeDesc.
func BaseMergeDesc[T vstl.Ordered](left, right []T) []T {
	if len(left) == 0 {
		return slices.Clone(right)
	}
	if len(right) == 0 {
		return slices.Clone(left)
	}
	st := partitionMerge(left, right, true)
	out := make([]T, len(left)+len(right))
	mergeKernel(left, right, out, st, true)
	appendMergeTails(out, left, right, st)
	return out
}

// mergeKernel writes one element per active lane per iteration, taking the
// left head on ties so the merge is stable.
func mergeKernel[T vstl.Ordered](left, right, out []T, st *laneState, desc bool) {
	for {
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				l := left[st.leftIdx[j]]
				r := right[st.rightIdx[j]]
				takeLeft := l <= r
				if desc {
					takeLeft = l >= r
				}
				if takeLeft {
					out[st.outIdx[j]] = l
					st.leftIdx[j]++
				} else {
					out[st.outIdx[j]] = r
					st.rightIdx[j]++
				}
				st.outIdx[j]++
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

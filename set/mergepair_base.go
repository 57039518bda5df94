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

// BaseMergePair is the lane-partitioned form of MergePair. Key/value
// lengths must already match per side.
func BaseMergePair[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V) {
	if len(leftKey) == 0 {
		return slices.Clone(rightKey), slices.Clone(rightVal)
	}
	if len(rightKey) == 0 {
		return slices.Clone(leftKey), slices.Clone(leftVal)
	}
	st := partitionMerge(leftKey, rightKey, false)
	outKey := make([]T, len(leftKey)+len(rightKey))
	outVal := make([]V, len(leftVal)+len(rightVal))
	mergePairKernel(leftKey, leftVal, rightKey, rightVal, outKey, outVal, st, false)
	appendMergePairTails(outKey, outVal, leftKey, rightKey, leftVal, rightVal, st)
	return outKey, outVal
}

// BaseMergePairDesc is the lane-partitioned form of MergePairDesc.
func BaseMergePairDesc[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V) {
	if len(leftKey) == 0 {
		return slices.Clone(rightKey), slices.Clone(rightVal)
	}
	if len(rightKey) == 0 {
		return slices.Clone(leftKey), slices.Clone(leftVal)
	}
	st := partitionMerge(leftKey, rightKey, true)
	outKey := make([]T, len(leftKey)+len(rightKey))
	outVal := make([]V, len(leftVal)+len(rightVal))
	mergePairKernel(leftKey, leftVal, rightKey, rightVal, outKey, outVal, st, true)
	appendMergePairTails(outKey, outVal, leftKey, rightKey, leftVal, rightVal, st)
	return outKey, outVal
}

// mergePairKernel is mergeKernel carrying the companion value of whichever
// side the key was taken from.
func mergePairKernel[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V, outKey []T, outVal []V, st *laneState, desc bool) {
	for {
		for j := 0; j < setLanes; j++ {
			if st.valid[j] {
				l := leftKey[st.leftIdx[j]]
				r := rightKey[st.rightIdx[j]]
				takeLeft := l <= r
				if desc {
					takeLeft = l >= r
				}
				if takeLeft {
					outKey[st.outIdx[j]] = l
					outVal[st.outIdx[j]] = leftVal[st.leftIdx[j]]
					st.leftIdx[j]++
				} else {
					outKey[st.outIdx[j]] = r
					outVal[st.outIdx[j]] = rightVal[st.rightIdx[j]]
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

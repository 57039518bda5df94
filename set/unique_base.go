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

// keyLaneState holds the per-lane cursors for the single-input scans
// (Unique, Separate, IsUnique). The element each lane last saw lives in a
// separate slice because it is generic over the key type.
type keyLaneState struct {
	valid   []bool
	keyIdx  []int
	keyStop []int
	outIdx  []int
	outSave []int
}

// partitionKeys splits key into lanes for the change-detection scans.
// Lane 0 starts at index 1: the first element has no predecessor and is
// handled by the caller (pre-emitted for Unique, pre-recorded for
// Separate). Every other lane seeds its comparison state from the element
// just before its window, so changes on lane boundaries are still seen
// exactly once. Returns the lane state, the per-lane seed values, and the
// longest lane window (the fixed trip count of the scan loop).
func partitionKeys[T vstl.Ordered](key []T) (*keyLaneState, []T, int) {
	n := len(key)
	st := &keyLaneState{
		valid:   make([]bool, setLanes),
		keyIdx:  make([]int, setLanes),
		keyStop: make([]int, setLanes),
		outIdx:  make([]int, setLanes),
		outSave: make([]int, setLanes),
	}
	cur := make([]T, setLanes)
	each := laneStride(n)

	st.valid[0] = true
	st.keyIdx[0] = 1
	st.outIdx[0] = 1
	st.outSave[0] = 0
	cur[0] = key[0]
	for i := 1; i < setLanes; i++ {
		pos := each * i
		if pos < n {
			st.valid[i] = true
			st.keyIdx[i] = pos
			st.outIdx[i] = pos
			st.outSave[i] = pos
			cur[i] = key[pos-1]
		} else {
			st.keyIdx[i] = n
			st.outIdx[i] = n
			st.outSave[i] = n
		}
	}
	for i := 0; i < setLanes-1; i++ {
		st.keyStop[i] = st.keyIdx[i+1]
	}
	st.keyStop[setLanes-1] = n
	// lane 0 was advanced past index 0 by hand; it may already be done
	if st.keyIdx[0] == st.keyStop[0] {
		st.valid[0] = false
	}

	maxSize := 0
	for i := 0; i < setLanes; i++ {
		if size := st.keyStop[i] - st.keyIdx[i]; size > maxSize {
			maxSize = size
		}
	}
	return st, cur, maxSize
}

// BaseUnique is the lane-partitioned form of Unique.
func BaseUnique[T vstl.Ordered](key []T) []T {
	n := len(key)
	if n == 0 {
		return []T{}
	}
	st, cur, maxSize := partitionKeys(key)
	scratch := make([]T, n)
	scratch[0] = key[0]
	for j := 0; j < maxSize; j++ {
		for i := 0; i < setLanes; i++ {
			if st.valid[i] {
				v := key[st.keyIdx[i]]
				if v != cur[i] {
					scratch[st.outIdx[i]] = v
					st.outIdx[i]++
					cur[i] = v
				}
				st.keyIdx[i]++
				if st.keyIdx[i] == st.keyStop[i] {
					st.valid[i] = false
				}
			}
		}
	}
	total := 0
	for i := 0; i < setLanes; i++ {
		total += st.outIdx[i] - st.outSave[i]
	}
	ret := make([]T, total)
	curPos := 0
	for i := 0; i < setLanes; i++ {
		curPos += copy(ret[curPos:], scratch[st.outSave[i]:st.outIdx[i]])
	}
	return ret
}

// BaseSeparate is the lane-partitioned form of Separate.
func BaseSeparate[T vstl.Ordered](key []T) []int {
	n := len(key)
	if n == 0 {
		return []int{0}
	}
	st, cur, maxSize := partitionKeys(key)
	scratch := make([]int, n)
	for j := 0; j < maxSize; j++ {
		for i := 0; i < setLanes; i++ {
			if st.valid[i] {
				v := key[st.keyIdx[i]]
				if v != cur[i] {
					scratch[st.outIdx[i]] = st.keyIdx[i]
					st.outIdx[i]++
					cur[i] = v
				}
				st.keyIdx[i]++
				if st.keyIdx[i] == st.keyStop[i] {
					st.valid[i] = false
				}
			}
		}
	}
	total := 0
	for i := 0; i < setLanes; i++ {
		total += st.outIdx[i] - st.outSave[i]
	}
	ret := make([]int, total+1)
	curPos := 0
	for i := 0; i < setLanes; i++ {
		curPos += copy(ret[curPos:], scratch[st.outSave[i]:st.outIdx[i]])
	}
	ret[curPos] = n
	return ret
}

// BaseIsUnique is the lane-partitioned form of IsUnique. The scan exits as
// soon as any lane has seen a repeat.
func BaseIsUnique[T vstl.Ordered](key []T) bool {
	n := len(key)
	if n == 0 {
		return true
	}
	st, cur, maxSize := partitionKeys(key)
	unique := make([]bool, setLanes)
	for i := range unique {
		unique[i] = true
	}
	for j := 0; j < maxSize; j++ {
		for i := 0; i < setLanes; i++ {
			if st.valid[i] {
				v := key[st.keyIdx[i]]
				if v != cur[i] {
					cur[i] = v
				} else {
					unique[i] = false
				}
				st.keyIdx[i]++
				if st.keyIdx[i] == st.keyStop[i] {
					st.valid[i] = false
				}
			}
		}
		for i := 0; i < setLanes; i++ {
			if !unique[i] {
				return false
			}
		}
	}
	return true
}

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
	"github.com/efocht/vstl"
	"github.com/efocht/vstl/bound"
)

// setLanes is the number of independent lanes a kernel advances per
// iteration. The historical vector target ran 768 lanes as three 256-wide
// register groups; the portable kernels here run one loop over all lanes,
// which is semantically identical.
const setLanes = 768

// laneState holds the per-lane cursors for a kernel run, one array per
// field. Keeping the layout structure-of-arrays is what lets the inner
// loops update all lanes without cross-lane dependencies.
type laneState struct {
	valid     []bool
	leftIdx   []int
	leftStop  []int
	rightIdx  []int
	rightStop []int
	outIdx    []int
	outSave   []int
}

func newLaneState() *laneState {
	return &laneState{
		valid:     make([]bool, setLanes),
		leftIdx:   make([]int, setLanes),
		leftStop:  make([]int, setLanes),
		rightIdx:  make([]int, setLanes),
		rightStop: make([]int, setLanes),
		outIdx:    make([]int, setLanes),
		outSave:   make([]int, setLanes),
	}
}

// laneStride returns the left-window length per lane. The stride is bumped
// to the next odd number when even; odd strides avoid memory-bank conflicts
// on wide-vector hardware and are harmless elsewhere.
func laneStride(n int) int {
	each := (n + setLanes - 1) / setLanes
	if each%2 == 0 {
		each++
	}
	return each
}

// splitLeft assigns the tentative left windows: lane i covers
// [i*each, (i+1)*each). Lanes past the end of left are marked invalid with
// their left cursor parked at len(left).
func splitLeft[T vstl.Ordered](st *laneState, left []T) {
	n := len(left)
	each := laneStride(n)
	for i := 0; i < setLanes; i++ {
		pos := each * i
		if pos < n {
			st.valid[i] = true
			st.leftIdx[i] = pos
		} else {
			st.valid[i] = false
			st.leftIdx[i] = n
		}
	}
}

// extendEqualRuns moves each lane's start forward past elements equal to
// the last element of the previous lane's window, so no equal-key run is
// split across two lanes. Without this, union and difference would emit
// wrong counts for runs straddling a lane boundary, and intersection would
// overcount when the right side has fewer copies than the left.
func extendEqualRuns[T vstl.Ordered](st *laneState, left []T) {
	n := len(left)
	for i := 0; i < setLanes-1; i++ {
		if !st.valid[i] {
			continue
		}
		last := left[st.leftIdx[i+1]-1]
		for st.leftIdx[i+1] < n && left[st.leftIdx[i+1]] == last {
			st.leftIdx[i+1]++
		}
	}
	// A run reaching the end of left can push a suffix of lanes all the way
	// to n; retire them now so the start probe never loads left[n].
	for i := 0; i < setLanes; i++ {
		if st.leftIdx[i] == n {
			st.valid[i] = false
		}
	}
}

// probeRightStarts aligns each lane's right window start to the first right
// element not ordered before the lane's first left key.
func probeRightStarts[T vstl.Ordered](st *laneState, left, right []T, desc bool) {
	starts := make([]T, setLanes)
	for i := 0; i < setLanes; i++ {
		if st.valid[i] {
			starts[i] = left[st.leftIdx[i]]
		}
	}
	if desc {
		bound.LowerBoundDesc(right, starts, st.rightIdx)
	} else {
		bound.LowerBound(right, starts, st.rightIdx)
	}
}

// invalidateExhaustedRight marks lanes whose right probe ran off the end,
// and parks the right cursor of every inactive lane at len(right) so its
// right window (and tail) is empty.
func invalidateExhaustedRight(st *laneState, rightLen int) {
	for i := 0; i < setLanes; i++ {
		if st.rightIdx[i] == rightLen {
			st.valid[i] = false
		}
		if !st.valid[i] {
			st.rightIdx[i] = rightLen
		}
	}
}

// tileStops makes lane windows tile both inputs: lane i stops where lane
// i+1 starts, and the last lane stops at the input ends. With right
// windows tiling right, concatenating lane outputs in lane order preserves
// global order.
func tileStops(st *laneState, leftLen, rightLen int) {
	for i := 0; i < setLanes-1; i++ {
		st.leftStop[i] = st.leftIdx[i+1]
		st.rightStop[i] = st.rightIdx[i+1]
	}
	st.leftStop[setLanes-1] = leftLen
	st.rightStop[setLanes-1] = rightLen
}

// partitionIntersect builds the lane state for intersection. Right windows
// are found with lower/upper bound probes on the lane's first and last left
// key; they are disjoint but need not cover right, since right elements
// with no left partner never reach the output.
func partitionIntersect[T vstl.Ordered](left, right []T) *laneState {
	leftLen, rightLen := len(left), len(right)
	st := newLaneState()
	splitLeft(st, left)
	extendEqualRuns(st, left)
	for i := 0; i < setLanes; i++ {
		st.outIdx[i] = st.leftIdx[i]
		st.outSave[i] = st.leftIdx[i]
	}
	probeRightStarts(st, left, right, false)
	invalidateExhaustedRight(st, rightLen)

	// Right window ends: one past the last right element equal to the
	// lane's last left key.
	lasts := make([]T, setLanes)
	for i := 0; i < setLanes-1; i++ {
		if st.valid[i] {
			lasts[i] = left[st.leftIdx[i+1]-1]
		}
	}
	lasts[setLanes-1] = left[leftLen-1]
	bound.UpperBound(right, lasts, st.rightStop)
	for i := 0; i < setLanes; i++ {
		if !st.valid[i] {
			st.rightStop[i] = rightLen
		}
	}
	for i := 0; i < setLanes-1; i++ {
		st.leftStop[i] = st.leftIdx[i+1]
	}
	st.leftStop[setLanes-1] = leftLen
	st.rightStop[setLanes-1] = rightLen

	for i := 0; i < setLanes; i++ {
		if st.leftIdx[i] == st.leftStop[i] || st.rightIdx[i] == st.rightStop[i] {
			st.valid[i] = false
		}
	}
	return st
}

// partitionSetOp builds the lane state shared by union and difference:
// equal-key runs never split across lanes, right windows tile right, and
// lane 0 starts at the very beginning of right so nothing is skipped.
// diff selects the output layout: difference reserves each lane's region
// at its left-window start (output can never exceed the left window, and
// the unconsumed left tail is gathered from the same region); union
// reserves the sum of both windows via an exclusive prefix sum.
func partitionSetOp[T vstl.Ordered](left, right []T, diff bool) *laneState {
	leftLen, rightLen := len(left), len(right)
	st := newLaneState()
	splitLeft(st, left)
	extendEqualRuns(st, left)
	probeRightStarts(st, left, right, false)
	st.rightIdx[0] = 0
	invalidateExhaustedRight(st, rightLen)

	if diff {
		for i := 0; i < setLanes; i++ {
			st.outIdx[i] = st.leftIdx[i]
			st.outSave[i] = st.leftIdx[i]
		}
	} else {
		for i := 1; i < setLanes; i++ {
			st.outIdx[i] = st.outIdx[i-1] +
				(st.leftIdx[i] - st.leftIdx[i-1]) +
				(st.rightIdx[i] - st.rightIdx[i-1])
			st.outSave[i] = st.outIdx[i]
		}
	}

	tileStops(st, leftLen, rightLen)
	for i := 0; i < setLanes; i++ {
		if st.leftIdx[i] == st.leftStop[i] || st.rightIdx[i] == st.rightStop[i] {
			st.valid[i] = false
		}
	}
	return st
}

// partitionMerge builds the lane state for the merge family. Merge keeps
// every element, so lanes need no equal-key alignment: stability alone
// fixes the order of equal keys. Kernel output and tails land in one
// exact-size buffer, with lane regions placed by prefix sum.
func partitionMerge[T vstl.Ordered](left, right []T, desc bool) *laneState {
	leftLen, rightLen := len(left), len(right)
	st := newLaneState()
	splitLeft(st, left)
	probeRightStarts(st, left, right, desc)
	st.rightIdx[0] = 0
	invalidateExhaustedRight(st, rightLen)

	for i := 1; i < setLanes; i++ {
		st.outIdx[i] = st.outIdx[i-1] +
			(st.leftIdx[i] - st.leftIdx[i-1]) +
			(st.rightIdx[i] - st.rightIdx[i-1])
		st.outSave[i] = st.outIdx[i]
	}

	tileStops(st, leftLen, rightLen)
	for i := 0; i < setLanes; i++ {
		if st.rightIdx[i] == st.rightStop[i] {
			st.valid[i] = false
		}
	}
	return st
}

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

package bound

import (
	"math/bits"

	"github.com/efocht/vstl"
)

// The Base probes run all bisections in lock-step: one outer iteration
// advances every probe by one step, and the inner loop is free of
// cross-probe dependencies. State is kept as one array per field so the
// body stays in structure-of-arrays form.
//
// The trip count is fixed at bits.Len(len(hay)): each step shrinks a
// probe's window to at most half, so every window is empty by then and
// exhausted probes are simply masked out.

// BaseLowerBound is the lane-parallel form of LowerBound.
func BaseLowerBound[T vstl.Ordered](hay, needles []T, out []int) {
	n := len(hay)
	w := len(needles)
	low := make([]int, w)
	size := make([]int, w)
	for i := range size {
		size[i] = n
	}
	for step := bits.Len(uint(n)); step > 0; step-- {
		for i := 0; i < w; i++ {
			if size[i] > 0 {
				half := size[i] >> 1
				if hay[low[i]+half] < needles[i] {
					low[i] += half + 1
					size[i] -= half + 1
				} else {
					size[i] = half
				}
			}
		}
	}
	copy(out[:w], low)
}

// BaseUpperBound is the lane-parallel form of UpperBound.
func BaseUpperBound[T vstl.Ordered](hay, needles []T, out []int) {
	n := len(hay)
	w := len(needles)
	low := make([]int, w)
	size := make([]int, w)
	for i := range size {
		size[i] = n
	}
	for step := bits.Len(uint(n)); step > 0; step-- {
		for i := 0; i < w; i++ {
			if size[i] > 0 {
				half := size[i] >> 1
				if hay[low[i]+half] <= needles[i] {
					low[i] += half + 1
					size[i] -= half + 1
				} else {
					size[i] = half
				}
			}
		}
	}
	copy(out[:w], low)
}

// BaseLowerBoundDesc is the lane-parallel form of LowerBoundDesc.
func BaseLowerBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	n := len(hay)
	w := len(needles)
	low := make([]int, w)
	size := make([]int, w)
	for i := range size {
		size[i] = n
	}
	for step := bits.Len(uint(n)); step > 0; step-- {
		for i := 0; i < w; i++ {
			if size[i] > 0 {
				half := size[i] >> 1
				if hay[low[i]+half] > needles[i] {
					low[i] += half + 1
					size[i] -= half + 1
				} else {
					size[i] = half
				}
			}
		}
	}
	copy(out[:w], low)
}

// BaseUpperBoundDesc is the lane-parallel form of UpperBoundDesc.
func BaseUpperBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	n := len(hay)
	w := len(needles)
	low := make([]int, w)
	size := make([]int, w)
	for i := range size {
		size[i] = n
	}
	for step := bits.Len(uint(n)); step > 0; step-- {
		for i := 0; i < w; i++ {
			if size[i] > 0 {
				half := size[i] >> 1
				if hay[low[i]+half] >= needles[i] {
					low[i] += half + 1
					size[i] -= half + 1
				} else {
					size[i] = half
				}
			}
		}
	}
	copy(out[:w], low)
}

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

// Package bound provides batched binary-search probes over a sorted slice.
//
// Each function answers many probes at once: for every needle it reports a
// boundary index into hay. The batch form exists for the partitioners in
// the set package, which probe one needle per lane; all probes advance one
// bisection step per iteration, so the loop body carries no cross-probe
// dependencies.
package bound

import "github.com/efocht/vstl"

// useLanes binds the probe implementations to the lane-parallel or the
// scalar path, once, at package init.
var useLanes = vstl.HasSIMD()

// LowerBound stores in out[i] the smallest index j with hay[j] >= needles[i],
// or len(hay) if there is none. hay must be sorted ascending.
func LowerBound[T vstl.Ordered](hay, needles []T, out []int) {
	if len(out) < len(needles) {
		panic("bound: out slice too short")
	}
	if useLanes {
		BaseLowerBound(hay, needles, out)
		return
	}
	scalarLowerBound(hay, needles, out)
}

// UpperBound stores in out[i] the smallest index j with hay[j] > needles[i],
// or len(hay) if there is none. hay must be sorted ascending.
func UpperBound[T vstl.Ordered](hay, needles []T, out []int) {
	if len(out) < len(needles) {
		panic("bound: out slice too short")
	}
	if useLanes {
		BaseUpperBound(hay, needles, out)
		return
	}
	scalarUpperBound(hay, needles, out)
}

// LowerBoundDesc stores in out[i] the smallest index j with
// hay[j] <= needles[i], or len(hay) if there is none. hay must be sorted
// descending.
func LowerBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	if len(out) < len(needles) {
		panic("bound: out slice too short")
	}
	if useLanes {
		BaseLowerBoundDesc(hay, needles, out)
		return
	}
	scalarLowerBoundDesc(hay, needles, out)
}

// UpperBoundDesc stores in out[i] the smallest index j with
// hay[j] < needles[i], or len(hay) if there is none. hay must be sorted
// descending.
func UpperBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	if len(out) < len(needles) {
		panic("bound: out slice too short")
	}
	if useLanes {
		BaseUpperBoundDesc(hay, needles, out)
		return
	}
	scalarUpperBoundDesc(hay, needles, out)
}

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
	"sort"

	"github.com/efocht/vstl"
)

// Scalar reference probes: one ordinary binary search per needle.

func scalarLowerBound[T vstl.Ordered](hay, needles []T, out []int) {
	for i, v := range needles {
		out[i] = sort.Search(len(hay), func(j int) bool { return hay[j] >= v })
	}
}

func scalarUpperBound[T vstl.Ordered](hay, needles []T, out []int) {
	for i, v := range needles {
		out[i] = sort.Search(len(hay), func(j int) bool { return hay[j] > v })
	}
}

func scalarLowerBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	for i, v := range needles {
		out[i] = sort.Search(len(hay), func(j int) bool { return hay[j] <= v })
	}
}

func scalarUpperBoundDesc[T vstl.Ordered](hay, needles []T, out []int) {
	for i, v := range needles {
		out[i] = sort.Search(len(hay), func(j int) bool { return hay[j] < v })
	}
}

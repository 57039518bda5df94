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
	"math/rand"
	"slices"
	"testing"
)

func benchInputs(n int) (left, right []int64) {
	rng := rand.New(rand.NewSource(1))
	left = make([]int64, n)
	right = make([]int64, n)
	for i := range left {
		left[i] = rng.Int63n(int64(n))
		right[i] = rng.Int63n(int64(n))
	}
	slices.Sort(left)
	slices.Sort(right)
	return left, right
}

func BenchmarkIntersect_Lanes_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BaseIntersect(left, right)
	}
}

func BenchmarkIntersect_Scalar_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scalarIntersect(left, right)
	}
}

func BenchmarkUnion_Lanes_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BaseUnion(left, right)
	}
}

func BenchmarkUnion_Scalar_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scalarUnion(left, right)
	}
}

func BenchmarkMerge_Lanes_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BaseMerge(left, right)
	}
}

func BenchmarkMerge_Scalar_100000(b *testing.B) {
	left, right := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scalarMerge(left, right)
	}
}

func BenchmarkUnique_Lanes_100000(b *testing.B) {
	left, _ := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BaseUnique(left)
	}
}

func BenchmarkUnique_Scalar_100000(b *testing.B) {
	left, _ := benchInputs(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scalarUnique(left)
	}
}

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

func TestUniqueBasic(t *testing.T) {
	got := Unique([]int64{7, 7, 7, 8, 9, 9})
	want := []int64{7, 8, 9}
	if !slices.Equal(got, want) {
		t.Errorf("Unique = %v, want %v", got, want)
	}
}

func TestSeparateBasic(t *testing.T) {
	got := Separate([]int64{7, 7, 7, 8, 9, 9})
	want := []int{0, 3, 4, 6}
	if !slices.Equal(got, want) {
		t.Errorf("Separate = %v, want %v", got, want)
	}
}

func TestIsUniqueBasic(t *testing.T) {
	if IsUnique([]int64{7, 7, 7, 8, 9, 9}) {
		t.Error("IsUnique = true for input with runs")
	}
	if !IsUnique([]int64{7, 8, 9}) {
		t.Error("IsUnique = false for distinct input")
	}
}

func TestUniqueEmpty(t *testing.T) {
	if got := Unique[int64](nil); len(got) != 0 {
		t.Errorf("Unique(empty) = %v, want empty", got)
	}
	if got := Separate[int64](nil); !slices.Equal(got, []int{0}) {
		t.Errorf("Separate(empty) = %v, want [0]", got)
	}
	if !IsUnique[int64](nil) {
		t.Error("IsUnique(empty) = false, want true")
	}
}

func TestUniqueSingle(t *testing.T) {
	if got := Unique([]int32{42}); !slices.Equal(got, []int32{42}) {
		t.Errorf("Unique([42]) = %v", got)
	}
	if got := Separate([]int32{42}); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Separate([42]) = %v, want [0 1]", got)
	}
	if !IsUnique([]int32{42}) {
		t.Error("IsUnique([42]) = false")
	}
}

// TestSeparateRoundTrip checks the run-delimiting contract: indices are
// strictly increasing, end with len(key), keys change exactly at each
// index, and runs between adjacent indices are constant.
func TestSeparateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, n := range testSizes {
		key := sortedRandom(rng, n, 30)
		sep := Separate(key)
		if len(sep) < 1 || sep[len(sep)-1] != len(key) {
			t.Fatalf("n=%d: Separate must end with len(key), got %v", n, sep[len(sep)-1:])
		}
		if n == 0 {
			continue
		}
		if sep[0] != 0 {
			t.Fatalf("n=%d: Separate must start with 0", n)
		}
		for j := 1; j < len(sep); j++ {
			if sep[j] <= sep[j-1] {
				t.Fatalf("n=%d: Separate indices not strictly increasing: %v", n, sep)
			}
			if j < len(sep)-1 && key[sep[j]] == key[sep[j-1]] {
				t.Fatalf("n=%d: no key change at index %d", n, sep[j])
			}
			for k := sep[j-1] + 1; k < sep[j]; k++ {
				if key[k] != key[sep[j-1]] {
					t.Fatalf("n=%d: run [%d,%d) not constant", n, sep[j-1], sep[j])
				}
			}
		}

		uniq := Unique(key)
		if len(uniq) != len(sep)-1 {
			t.Errorf("n=%d: len(Unique) = %d, want %d runs", n, len(uniq), len(sep)-1)
		}
		for j := 0; j+1 < len(sep); j++ {
			if uniq[j] != key[sep[j]] {
				t.Errorf("n=%d: Unique[%d] = %d, want %d", n, j, uniq[j], key[sep[j]])
			}
		}

		if got, want := IsUnique(key), len(uniq) == len(key); got != want {
			t.Errorf("n=%d: IsUnique = %v, want %v", n, got, want)
		}
	}
}

// TestUniqueLaneMatchesScalar cross-checks the scan kernels against the
// linear reference.
func TestUniqueLaneMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for _, n := range testSizes {
		for _, domain := range []int64{2, 97, 1 << 30} {
			key := sortedRandom(rng, n, domain)
			if got, want := BaseUnique(key), scalarUnique(key); !slices.Equal(got, want) {
				t.Errorf("n=%d domain=%d: BaseUnique disagrees with scalar", n, domain)
			}
			if got, want := BaseSeparate(key), scalarSeparate(key); !slices.Equal(got, want) {
				t.Errorf("n=%d domain=%d: BaseSeparate disagrees with scalar", n, domain)
			}
			if got, want := BaseIsUnique(key), scalarIsUnique(key); got != want {
				t.Errorf("n=%d domain=%d: BaseIsUnique = %v, scalar = %v", n, domain, got, want)
			}
		}
	}
}

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
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestMergePairBasic(t *testing.T) {
	keys, vals, err := MergePair(
		[]int64{1, 3, 5}, []string{"a", "b", "c"},
		[]int64{2, 3, 4}, []string{"x", "y", "z"},
	)
	if err != nil {
		t.Fatalf("MergePair: %v", err)
	}
	wantKeys := []int64{1, 2, 3, 3, 4, 5}
	wantVals := []string{"a", "x", "b", "y", "z", "c"}
	if !slices.Equal(keys, wantKeys) {
		t.Errorf("keys = %v, want %v", keys, wantKeys)
	}
	if !slices.Equal(vals, wantVals) {
		t.Errorf("vals = %v, want %v", vals, wantVals)
	}
}

func TestMergePairDescBasic(t *testing.T) {
	keys, vals, err := MergePairDesc(
		[]int32{5, 3, 1}, []int{50, 30, 10},
		[]int32{4, 3}, []int{40, 31},
	)
	if err != nil {
		t.Fatalf("MergePairDesc: %v", err)
	}
	wantKeys := []int32{5, 4, 3, 3, 1}
	wantVals := []int{50, 40, 30, 31, 10}
	if !slices.Equal(keys, wantKeys) {
		t.Errorf("keys = %v, want %v", keys, wantKeys)
	}
	if !slices.Equal(vals, wantVals) {
		t.Errorf("vals = %v, want %v", vals, wantVals)
	}
}

func TestMergePairSizeMismatch(t *testing.T) {
	_, _, err := MergePair([]int64{1, 2}, []string{"a"}, nil, nil)
	var mismatch *SizeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want SizeMismatchError", err)
	}
	if mismatch.Side != "left" {
		t.Errorf("Side = %q, want \"left\"", mismatch.Side)
	}

	_, _, err = MergePair[int64, string](nil, nil, []int64{1}, []string{"a", "b"})
	if !errors.As(err, &mismatch) || mismatch.Side != "right" {
		t.Errorf("err = %v, want right-side SizeMismatchError", err)
	}
}

func TestMergePairEmptySides(t *testing.T) {
	keys, vals, err := MergePair([]int64{1, 2}, []string{"a", "b"}, nil, nil)
	if err != nil {
		t.Fatalf("MergePair: %v", err)
	}
	if !slices.Equal(keys, []int64{1, 2}) || !slices.Equal(vals, []string{"a", "b"}) {
		t.Errorf("got %v/%v, want left side unchanged", keys, vals)
	}
}

// TestMergePairStability tags every element with its origin and checks the
// merged value order: within an equal-key run, all left values precede all
// right values and each side keeps its own order.
func TestMergePairStability(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	leftKey := sortedRandom(rng, 3000, 20)
	rightKey := sortedRandom(rng, 2800, 20)
	leftVal := make([]int, len(leftKey))
	rightVal := make([]int, len(rightKey))
	for i := range leftVal {
		leftVal[i] = i // left origins are non-negative
	}
	for i := range rightVal {
		rightVal[i] = ^i // right origins are negative
	}

	keys, vals, err := MergePair(leftKey, leftVal, rightKey, rightVal)
	if err != nil {
		t.Fatalf("MergePair: %v", err)
	}
	if !slices.IsSorted(keys) {
		t.Fatal("merged keys not sorted")
	}
	for start := 0; start < len(keys); {
		end := start
		for end < len(keys) && keys[end] == keys[start] {
			end++
		}
		seenRight := false
		prevLeft, prevRight := -1, -1
		for _, v := range vals[start:end] {
			if v >= 0 {
				if seenRight {
					t.Fatalf("key %d: left value after right value", keys[start])
				}
				if v <= prevLeft {
					t.Fatalf("key %d: left values out of order", keys[start])
				}
				prevLeft = v
			} else {
				seenRight = true
				if ^v <= prevRight {
					t.Fatalf("key %d: right values out of order", keys[start])
				}
				prevRight = ^v
			}
		}
		start = end
	}
}

// TestMergePairLaneMatchesScalar cross-checks the pair kernels against the
// scalar reference.
func TestMergePairLaneMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	for _, n := range testSizes {
		keyLeft := sortedRandom(rng, n, 12)
		keyRight := sortedRandom(rng, rng.Intn(2*n+2), 12)
		valLeft := make([]int, len(keyLeft))
		valRight := make([]int, len(keyRight))
		for i := range valLeft {
			valLeft[i] = i
		}
		for i := range valRight {
			valRight[i] = ^i
		}

		gotK, gotV := BaseMergePair(keyLeft, valLeft, keyRight, valRight)
		wantK, wantV := scalarMergePair(keyLeft, valLeft, keyRight, valRight)
		if !slices.Equal(gotK, wantK) || !slices.Equal(gotV, wantV) {
			t.Errorf("n=%d: BaseMergePair disagrees with scalar", n)
		}

		descKL := slices.Clone(keyLeft)
		descKR := slices.Clone(keyRight)
		slices.Reverse(descKL)
		slices.Reverse(descKR)
		descVL := slices.Clone(valLeft)
		descVR := slices.Clone(valRight)
		slices.Reverse(descVL)
		slices.Reverse(descVR)

		gotK, gotV = BaseMergePairDesc(descKL, descVL, descKR, descVR)
		wantK, wantV = scalarMergePairDesc(descKL, descVL, descKR, descVR)
		if !slices.Equal(gotK, wantK) || !slices.Equal(gotV, wantV) {
			t.Errorf("n=%d: BaseMergePairDesc disagrees with scalar", n)
		}
	}
}

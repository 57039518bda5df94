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

// Linear reference implementations. These are bound to the public API when
// vstl.HasSIMD() is false, and serve as the oracle the lane-partitioned
// kernels are tested against.

func scalarIntersect[T vstl.Ordered](left, right []T) []T {
	out := make([]T, 0, min(len(left), len(right)))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			i++
		case right[j] < left[i]:
			j++
		default:
			out = append(out, left[i])
			i++
			j++
		}
	}
	return out
}

func scalarUnion[T vstl.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			out = append(out, left[i])
			i++
		case right[j] < left[i]:
			out = append(out, right[j])
			j++
		default:
			out = append(out, left[i])
			i++
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

func scalarDifference[T vstl.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			out = append(out, left[i])
			i++
		case right[j] < left[i]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, left[i:]...)
	return out
}

func scalarMerge[T vstl.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

func scalarMergeDesc[T vstl.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] >= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

func scalarMergePair[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V) {
	outKey := make([]T, 0, len(leftKey)+len(rightKey))
	outVal := make([]V, 0, len(leftVal)+len(rightVal))
	i, j := 0, 0
	for i < len(leftKey) && j < len(rightKey) {
		if leftKey[i] <= rightKey[j] {
			outKey = append(outKey, leftKey[i])
			outVal = append(outVal, leftVal[i])
			i++
		} else {
			outKey = append(outKey, rightKey[j])
			outVal = append(outVal, rightVal[j])
			j++
		}
	}
	outKey = append(outKey, leftKey[i:]...)
	outVal = append(outVal, leftVal[i:]...)
	outKey = append(outKey, rightKey[j:]...)
	outVal = append(outVal, rightVal[j:]...)
	return outKey, outVal
}

func scalarMergePairDesc[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V) {
	outKey := make([]T, 0, len(leftKey)+len(rightKey))
	outVal := make([]V, 0, len(leftVal)+len(rightVal))
	i, j := 0, 0
	for i < len(leftKey) && j < len(rightKey) {
		if leftKey[i] >= rightKey[j] {
			outKey = append(outKey, leftKey[i])
			outVal = append(outVal, leftVal[i])
			i++
		} else {
			outKey = append(outKey, rightKey[j])
			outVal = append(outVal, rightVal[j])
			j++
		}
	}
	outKey = append(outKey, leftKey[i:]...)
	outVal = append(outVal, leftVal[i:]...)
	outKey = append(outKey, rightKey[j:]...)
	outVal = append(outVal, rightVal[j:]...)
	return outKey, outVal
}

func scalarUnique[T vstl.Ordered](key []T) []T {
	if len(key) == 0 {
		return []T{}
	}
	out := make([]T, 0, len(key))
	cur := key[0]
	out = append(out, cur)
	for _, v := range key[1:] {
		if v != cur {
			cur = v
			out = append(out, v)
		}
	}
	return out
}

func scalarSeparate[T vstl.Ordered](key []T) []int {
	if len(key) == 0 {
		return []int{0}
	}
	out := make([]int, 0, len(key)+1)
	out = append(out, 0)
	cur := key[0]
	for i := 1; i < len(key); i++ {
		if key[i] != cur {
			cur = key[i]
			out = append(out, i)
		}
	}
	out = append(out, len(key))
	return out
}

func scalarIsUnique[T vstl.Ordered](key []T) bool {
	for i := 1; i < len(key); i++ {
		if key[i] == key[i-1] {
			return false
		}
	}
	return true
}

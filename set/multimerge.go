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

// MultiMerge merges a list of ascending sorted slices into one, by
// iterative doubling: pass 1 merges neighbors, pass 2 merges pairs of
// pairs, and so on, for O(N log P) total work. The input list is consumed;
// entries are nilled out as they are absorbed.
func MultiMerge[T vstl.Ordered](parts [][]T) []T {
	return multiMerge(parts, Merge[T])
}

// MultiMergeDesc is MultiMerge for descending sorted slices.
func MultiMergeDesc[T vstl.Ordered](parts [][]T) []T {
	return multiMerge(parts, MergeDesc[T])
}

func multiMerge[T vstl.Ordered](parts [][]T, merge func(left, right []T) []T) []T {
	way := len(parts)
	if way == 0 {
		return []T{}
	}
	for step := 1; step < way; step *= 2 {
		for i := 0; i+step < way; i += step * 2 {
			parts[i] = merge(parts[i], parts[i+step])
			parts[i+step] = nil
		}
	}
	out := parts[0]
	parts[0] = nil
	return out
}

// MultiMergePair merges a list of ascending sorted key slices with their
// companion value lists, as a recursive pairwise tree: the list is split
// in half, each half merged recursively, and the two results merged with
// MergePair. The input lists are consumed. Returns the first
// SizeMismatchError encountered, if any.
func MultiMergePair[T vstl.Ordered, V any](keys [][]T, vals [][]V) ([]T, []V, error) {
	return multiMergePair(keys, vals, MergePair[T, V])
}

// MultiMergePairDesc is MultiMergePair for descending sorted keys.
func MultiMergePairDesc[T vstl.Ordered, V any](keys [][]T, vals [][]V) ([]T, []V, error) {
	return multiMergePair(keys, vals, MergePairDesc[T, V])
}

func multiMergePair[T vstl.Ordered, V any](keys [][]T, vals [][]V,
	merge func([]T, []V, []T, []V) ([]T, []V, error)) ([]T, []V, error) {
	if len(keys) != len(vals) {
		panic("set: key and value part counts differ")
	}
	switch p := len(keys); p {
	case 0:
		return []T{}, []V{}, nil
	case 1:
		k, v := keys[0], vals[0]
		keys[0], vals[0] = nil, nil
		return k, v, nil
	case 2:
		k, v, err := merge(keys[0], vals[0], keys[1], vals[1])
		keys[0], vals[0] = nil, nil
		keys[1], vals[1] = nil, nil
		return k, v, err
	default:
		half := (p + 1) / 2
		leftKey, leftVal, err := multiMergePair(keys[:half], vals[:half], merge)
		if err != nil {
			return nil, nil, err
		}
		rightKey, rightVal, err := multiMergePair(keys[half:], vals[half:], merge)
		if err != nil {
			return nil, nil, err
		}
		return merge(leftKey, leftVal, rightKey, rightVal)
	}
}

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
	"fmt"

	"github.com/efocht/vstl"
)

// useLanes binds the public API to the lane-partitioned or the scalar
// path, once, at package init.
var useLanes = vstl.HasSIMD()

// SizeMismatchError reports a key slice and its companion value slice
// having different lengths in a pair merge.
type SizeMismatchError struct {
	Side   string // "left" or "right"
	Keys   int
	Values int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("set: %s key/value length mismatch: %d keys, %d values",
		e.Side, e.Keys, e.Values)
}

func checkPair[T, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) error {
	if len(leftKey) != len(leftVal) {
		return &SizeMismatchError{Side: "left", Keys: len(leftKey), Values: len(leftVal)}
	}
	if len(rightKey) != len(rightVal) {
		return &SizeMismatchError{Side: "right", Keys: len(rightKey), Values: len(rightVal)}
	}
	return nil
}

// Intersect returns the multiset intersection of two ascending sorted
// slices: each value appears min(left count, right count) times.
func Intersect[T vstl.Ordered](left, right []T) []T {
	if useLanes {
		return BaseIntersect(left, right)
	}
	return scalarIntersect(left, right)
}

// Union returns the multiset union of two ascending sorted slices: each
// value appears max(left count, right count) times.
func Union[T vstl.Ordered](left, right []T) []T {
	if useLanes {
		return BaseUnion(left, right)
	}
	return scalarUnion(left, right)
}

// Difference returns the multiset difference of two ascending sorted
// slices: each value appears max(0, left count - right count) times.
func Difference[T vstl.Ordered](left, right []T) []T {
	if useLanes {
		return BaseDifference(left, right)
	}
	return scalarDifference(left, right)
}

// Merge merges two ascending sorted slices into one ascending sorted slice
// of length len(left)+len(right). The merge is stable: equal keys from
// left precede those from right.
func Merge[T vstl.Ordered](left, right []T) []T {
	if useLanes {
		return BaseMerge(left, right)
	}
	return scalarMerge(left, right)
}

// MergeDesc is Merge for descending sorted inputs.
func MergeDesc[T vstl.Ordered](left, right []T) []T {
	if useLanes {
		return BaseMergeDesc(left, right)
	}
	return scalarMergeDesc(left, right)
}

// MergePair merges two ascending sorted key slices together with their
// companion value slices. Ordering and stability are on keys only; each
// value travels with its key. Returns a SizeMismatchError if a side's key
// and value lengths differ.
func MergePair[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V, error) {
	if err := checkPair(leftKey, leftVal, rightKey, rightVal); err != nil {
		return nil, nil, err
	}
	if useLanes {
		k, v := BaseMergePair(leftKey, leftVal, rightKey, rightVal)
		return k, v, nil
	}
	k, v := scalarMergePair(leftKey, leftVal, rightKey, rightVal)
	return k, v, nil
}

// MergePairDesc is MergePair for descending sorted keys.
func MergePairDesc[T vstl.Ordered, V any](leftKey []T, leftVal []V, rightKey []T, rightVal []V) ([]T, []V, error) {
	if err := checkPair(leftKey, leftVal, rightKey, rightVal); err != nil {
		return nil, nil, err
	}
	if useLanes {
		k, v := BaseMergePairDesc(leftKey, leftVal, rightKey, rightVal)
		return k, v, nil
	}
	k, v := scalarMergePairDesc(leftKey, leftVal, rightKey, rightVal)
	return k, v, nil
}

// Unique returns the distinct values of an ascending sorted slice, first
// occurrence per run, in input order.
func Unique[T vstl.Ordered](key []T) []T {
	if useLanes {
		return BaseUnique(key)
	}
	return scalarUnique(key)
}

// Separate returns the indices at which a new value begins in a sorted
// slice, starting with 0 and ending with len(key); adjacent pairs delimit
// runs of equal keys. An empty input yields [0].
func Separate[T vstl.Ordered](key []T) []int {
	if useLanes {
		return BaseSeparate(key)
	}
	return scalarSeparate(key)
}

// IsUnique reports whether no two adjacent elements of a sorted slice are
// equal.
func IsUnique[T vstl.Ordered](key []T) bool {
	if useLanes {
		return BaseIsUnique(key)
	}
	return scalarIsUnique(key)
}

// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

// mkqCutoff is the small-range threshold at or below which multikey quicksort
// delegates to insertion sort. It is a var, not a const, so tests can
// lower it to exercise the partitioning code on small inputs.
var mkqCutoff = 16

// MultikeyQuicksort sorts keys lexicographically using three-way radix
// quicksort (Bentley & Sedgewick). It is not stable.
func MultikeyQuicksort[K Bytes](keys []K) {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	mkqSort(keys, idx, 0, len(idx), 0)
	applyPermutation(keys, idx)
}

// mkqSort sorts idx[a:b] into keys, by lexicographic order starting at byte
// position depth. idx entries already agree on every byte before depth.
// Partitioning is a three-way (Dutch national flag) radix split on the
// byte at depth, with a median-of-three pivot.
func mkqSort[K Bytes](keys []K, idx []int, a, b, depth int) {
	for {
		n := b - a
		if n <= 1 {
			return
		}
		if n <= mkqCutoff {
			insertionSortAt(keys, idx, a, b, depth)
			return
		}

		pivot := medianOfThreeAt(keys, idx, a, a+n/2, b-1, depth)

		// Three-way partition: idx[a:lt] < pivot, idx[lt:gt] == pivot, idx[gt:b] > pivot.
		lt, i, gt := a, a, b
		for i < gt {
			c := byteAt(keys[idx[i]], depth)
			switch {
			case c < pivot:
				idx[lt], idx[i] = idx[i], idx[lt]
				lt++
				i++
			case c > pivot:
				gt--
				idx[i], idx[gt] = idx[gt], idx[i]
			default:
				i++
			}
		}

		mkqSort(keys, idx, a, lt, depth)
		// The "<" partition recurses by direct call; the ">" partition
		// is handled by looping back to the top with a=gt instead of
		// recursing, so only the "<" and "=" recursions add to the call
		// stack on each outer iteration.
		if pivot == eos {
			// Every key in [lt, gt) has length exactly depth, so they
			// are already fully equal. Recursing at depth+1 would
			// compare eos to eos forever.
			a = gt
			continue
		}
		mkqSort(keys, idx, lt, gt, depth+1)
		a = gt
	}
}

// medianOfThreeAt returns the pivot byte value (0..255, or eos) among the
// bytes of keys[idx[a]], keys[idx[m]], keys[idx[c]] at position depth.
func medianOfThreeAt[K Bytes](keys []K, idx []int, a, m, c, depth int) int {
	va := byteAt(keys[idx[a]], depth)
	vm := byteAt(keys[idx[m]], depth)
	vc := byteAt(keys[idx[c]], depth)
	if va > vm {
		va, vm = vm, va
	}
	if vm > vc {
		vm = vc
		if va > vm {
			vm = va
		}
	}
	return vm
}

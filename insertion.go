// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

// insertionSortAt sorts the indices idx[a:b] into keys, comparing from byte
// position depth onward. It is the small-range cutoff for multikey
// quicksort and is also used directly for funnelsort's base case.
func insertionSortAt[K Bytes](keys []K, idx []int, a, b, depth int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && lessAt(keys, idx[j], idx[j-1], depth); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}

// lessAt reports whether key i sorts before key j when compared from byte
// position depth onward (not from position 0 — the caller guarantees both
// keys already agree on [0, depth)).
func lessAt[K Bytes](keys []K, i, j, depth int) bool {
	ki, kj := keys[i], keys[j]
	for d := depth; ; d++ {
		a, b := byteAt(ki, d), byteAt(kj, d)
		if a != b {
			return a < b
		}
		if a == eos {
			return false // equal in full: ki and kj have the same length and bytes
		}
	}
}

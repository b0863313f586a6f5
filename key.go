// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package strsort implements cache-aware and cache-oblivious string sorting:
// a burst-trie sorter (Burstsort), a cache-oblivious merge sorter (lazy
// funnelsort), and the multikey quicksort that underlies both.
package strsort

// Bytes is the set of key types the sorters accept: anything that behaves
// like a string or a byte slice. Sorters are written once, generically, over
// this constraint instead of through a Len/Less/Swap/Key interface, so the
// inner loop indexes key bytes directly rather than going through method
// dispatch.
type Bytes interface {
	~string | ~[]byte
}

// eos is the end-of-string sentinel returned by byteAt once the requested
// depth runs past the end of the key. It must compare less than every
// real byte value (0..255) so that a prefix sorts before any string it is
// a prefix of; -1 gives that ordering for free under ordinary integer
// comparison.
const eos = -1

// byteAt returns the unsigned byte value of k at position d, or eos if d is
// at or past len(k).
func byteAt[K Bytes](k K, d int) int {
	if d >= len(k) {
		return eos
	}
	return int(k[d])
}

// less reports whether a sorts strictly before b under unsigned
// lexicographic byte comparison (the library's global ordering).
func less[K Bytes](a, b K) bool {
	for d := 0; ; d++ {
		x, y := byteAt(a, d), byteAt(b, d)
		if x != y {
			return x < y
		}
		if x == eos {
			return false
		}
	}
}

// IsSorted reports whether keys is already in non-decreasing lexicographic
// order.
func IsSorted[K Bytes](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if less(keys[i], keys[i-1]) {
			return false
		}
	}
	return true
}

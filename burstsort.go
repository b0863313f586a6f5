// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import "github.com/twotwotwo/strsort/internal/burst"

// Burstsort reorders keys into lexicographic order using a burst trie
// (section 4.3): every key is inserted into a fresh trie, the trie is
// traversed in lexicographic slot order, each bucket is sorted in place
// with multikey quicksort at its trie depth, and the result is written
// back into keys.
func Burstsort[K Bytes](keys []K) {
	burstsortWith(keys, burst.DefaultOptions())
}

// RedesignedBurstsort is the "redesigned" tuning (section 4.2): a smaller
// burst threshold and the ASCII/high-byte branch split, otherwise
// identical in behavior and output to Burstsort.
func RedesignedBurstsort[K Bytes](keys []K) {
	burstsortWith(keys, burst.RedesignedOptions())
}

func burstsortWith[K Bytes](keys []K, opt burst.Options) {
	n := len(keys)
	if n < 2 {
		return
	}
	trie := buildTrie(keys, opt)
	order := make([]int, 0, n)
	trie.Traverse(func(idx []int, depth int) {
		if len(idx) > 1 {
			mkqSort(keys, idx, 0, len(idx), depth)
		}
		order = append(order, idx...)
	})
	if len(order) != n {
		invariantViolation("burst trie traversal did not yield every key")
	}
	applyPermutation(keys, order)
}

// buildTrie inserts every key into a fresh trie, byte access going through
// the package's own byteAt/eos convention.
func buildTrie[K Bytes](keys []K, opt burst.Options) *burst.Trie {
	at := func(i, depth int) int { return byteAt(keys[i], depth) }
	trie := burst.New(at, opt)
	for i := range keys {
		trie.Insert(i)
	}
	return trie
}

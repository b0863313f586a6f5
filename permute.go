// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

// applyPermutation reorders keys in place so that keys[i] becomes the key
// formerly at order[i], for every i. order must be a permutation of
// [0, len(keys)). Bursting and funnel-merging both produce such a
// permutation of indices rather than copying key bytes around (per the
// "cores borrow read-only views ... never modify key bytes" contract), so
// this is the one point where the caller's slice is actually rewritten.
func applyPermutation[K Bytes](keys []K, order []int) {
	out := make([]K, len(keys))
	for i, src := range order {
		out[i] = keys[src]
	}
	copy(keys, out)
}

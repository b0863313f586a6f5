// Copyright 2015 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package index builds an implicit B-tree summary over an already-sorted
// slice of keys, to speed up membership lookups against large sorted
// output without a full binary search over the whole slice.
//
// Index works against a Bytes-generic key view (a single byteKey helper
// folds either string or []byte keys into a uint64 prefix) rather than a
// sort.Interface-wrapped Data field, since the core sorters in this module
// sort plain []K slices directly and never produce a sort.Interface.
package index

import "sort"

// levelBits and pageSize control the fan-out of Summary, the implicit
// B-tree; 6 keeps each page within a handful of cache lines.
const levelBits = 6
const pageSize = 1 << levelBits

// Bytes mirrors the core package's key constraint; duplicated here (rather
// than imported) to keep this package free of a dependency on the root
// package, which itself may want to use this package for a --lookup-style
// feature.
type Bytes interface {
	~string | ~[]byte
}

// Index is a sorted-array lookup aid over keys: a uint64 prefix of each
// key, plus an optional implicit-B-tree Summary built by Summarize.
type Index[K Bytes] struct {
	Keys    []K
	prefix  []uint64
	Summary []uint64
}

// New builds an Index over keys, which the caller must already have
// sorted (e.g. with Burstsort or LazyFunnelsort). It does not sort keys
// itself: sorting and indexing are separate concerns here.
func New[K Bytes](keys []K) *Index[K] {
	prefix := make([]uint64, len(keys))
	for i, k := range keys {
		prefix[i] = byteKey(k)
	}
	idx := &Index[K]{Keys: keys, prefix: prefix}
	idx.Summarize()
	return idx
}

// byteKey folds the first 8 bytes of a key into a uint64, preserving
// lexicographic order among keys that differ within their first 8 bytes
// (ties are broken by an exact comparison downstream).
func byteKey[K Bytes](key K) uint64 {
	k := uint64(0)
	for j := 0; j < 8 && j < len(key); j++ {
		k ^= uint64(key[j]) << uint(56-8*j)
	}
	return k
}

// Summarize makes an implicit B-tree to speed lookups, using a few percent
// overhead on top of the prefix array already held by Index.
func (idx *Index[K]) Summarize() {
	l := len(idx.prefix)
	sl := l>>levelBits + l>>levelBits*2 + l>>levelBits*3 + l>>((levelBits*4)-1)
	summary := make([]uint64, 0, sl)
	summarizing := idx.prefix
	for len(summarizing) > pageSize {
		start := len(summary)
		for i := 0; i < len(summarizing); i += pageSize {
			summary = append(summary, summarizing[i])
		}
		summarizing = summary[start:]
	}
	idx.Summary = summary
}

// Find returns the position of the first item >= key, or len(idx.Keys) if
// there is none.
func (idx *Index[K]) Find(key K) int {
	k := byteKey(key)
	a, b := idx.findPrefixRange(k)
	return a + sort.Search(b-a, func(i int) bool {
		return !less(idx.Keys[a+i], key)
	})
}

// FindRange returns the range [a, b) of idx.Keys equal to key. An empty
// range means key is absent; a and b then both equal the position where
// key would be inserted.
func (idx *Index[K]) FindRange(key K) (a, b int) {
	k := byteKey(key)
	pa, pb := idx.findPrefixRange(k)
	a = pa + sort.Search(pb-pa, func(i int) bool {
		return !less(idx.Keys[pa+i], key)
	})
	b = a + sort.Search(len(idx.Keys)-a, func(i int) bool {
		return less(key, idx.Keys[a+i])
	})
	return a, b
}

// less is the same unsigned lexicographic order the root package's sorters
// produce; duplicated locally to avoid an import cycle back to the root
// package (which would need this package for --lookup).
func less[K Bytes](a, b K) bool {
	for d := 0; ; d++ {
		var x, y int
		if d >= len(a) {
			x = -1
		} else {
			x = int(a[d])
		}
		if d >= len(b) {
			y = -1
		} else {
			y = int(b[d])
		}
		if x != y {
			return x < y
		}
		if x == -1 {
			return false
		}
	}
}

// findPrefixRange finds a range [a,b) of idx.prefix equal to the uint64
// prefix key, using the Summary when present and a binary sort.Search
// otherwise. It can return an empty range at the insertion point.
func (idx *Index[K]) findPrefixRange(key uint64) (a, b int) {
	a = idx.findUint64(key)
	if a == len(idx.prefix) || idx.prefix[a] != key {
		return a, a
	}
	if key == ^uint64(0) {
		b = len(idx.prefix)
	} else {
		b = idx.findUint64(key + 1)
	}
	return a, b
}

func (idx *Index[K]) findUint64(key uint64) int {
	if idx.Summary != nil {
		return idx.findUint64Summary(key)
	}
	return sort.Search(len(idx.prefix), func(i int) bool { return idx.prefix[i] >= key })
}

func (idx *Index[K]) findUint64Summary(key uint64) int {
	summary := idx.Summary
	keys := idx.prefix

	levels, l := 0, len(keys)
	for l > 0 {
		levels++
		l >>= levelBits
	}
	levels--

	levelNum := levels
	levelEnd := len(summary)
	offset := 0
	for levelNum > 0 {
		thisLevelBits := uint(levelBits * levelNum)
		levelLen := len(keys) >> thisLevelBits
		if len(keys) > levelLen<<thisLevelBits {
			levelLen++
		}
		level := summary[levelEnd-levelLen : levelEnd]

		pageEnd := offset + pageSize
		if pageEnd > len(level) {
			pageEnd = len(level)
		}
		page := level[offset:pageEnd]

		i := 0
		for i < len(page) && page[i] < key {
			i++
		}
		if i > 0 {
			i--
		}

		offset += i
		offset <<= levelBits
		levelEnd -= levelLen
		levelNum--
	}

	pageEnd := offset + pageSize
	if pageEnd > len(keys) {
		pageEnd = len(keys)
	}
	page := keys[offset:pageEnd]
	i := 0
	for i < len(page) && page[i] < key {
		i++
	}
	return offset + i
}

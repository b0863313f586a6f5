// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package burst implements the dynamic burst trie at the heart of
// Burstsort: an append-only bucket at every leaf, lazily replaced by an
// internal node (and fresh child buckets) once the bucket overflows a
// burst threshold.
//
// The trie is deliberately not generic over key type: it never looks at a
// key directly, only at the caller-supplied ByteAt function, so the same
// code serves strings and []byte alike without any interface dispatch in
// the insert/burst hot path.
package burst

// ByteAt returns the byte value (0..255) at position depth of the key at
// index i, or a negative sentinel once depth is past the key's length.
// Matches the strsort package's byteAt/eos convention one level up.
type ByteAt func(i, depth int) int

// slots is the trie fanout: 256 byte values plus one "ended here" slot.
const slots = 257

// endedSlot is the index of the "ended here" slot: keys whose length
// equals the current depth land here, and -- per the burst trie's
// documented invariant that this slot is "itself a single-level bucket" --
// it is never subject to bursting (see (*Trie).Insert).
const endedSlot = 0

func slotIndex(c int) int { return c + 1 }

type kind uint8

const (
	empty kind = iota
	bucketKind
	internalKind
)

// child is a tagged union: exactly one of b or n is meaningful, selected by
// kind. Using a tag byte instead of an interface keeps the descend loop a
// plain switch with no method dispatch.
type child struct {
	kind kind
	b    *bucket
	n    *node
}

type node struct {
	children [slots]child
}

// bucket is an append-only overflow leaf: key indices that agree on every
// byte before depth.
type bucket struct {
	keys  []int
	depth int
}

// Options tunes the trie's burst behavior. All fields have working
// defaults (see DefaultOptions / RedesignedOptions); the exact numbers are
// a tuning contract, not a correctness one.
type Options struct {
	// Threshold is the bucket size at which a burst fires.
	Threshold int
	// InitialCap seeds each new bucket's backing array, to cut down on
	// append's own growth reallocations during the build phase.
	InitialCap int
	// ASCIIFastPath requests the "redesigned" variant's branch-predictable
	// split between 7-bit-clean bytes and the 128..255 range. It computes
	// the identical slot index either way -- see (*Trie).slotFor --
	// since folding the alphabet for real would require bucket depth
	// bookkeeping to stop advancing on folded dispatches, which this
	// implementation avoids for correctness simplicity (recorded as an
	// Open Question resolution in DESIGN.md).
	ASCIIFastPath bool
}

// DefaultOptions is the standard Burstsort tuning: T=8192, matching the
// low end of the typical 8,192-32,768 range for burst tries.
func DefaultOptions() Options {
	return Options{Threshold: 8192, InitialCap: 16}
}

// RedesignedOptions bursts earlier into smaller, more cache-friendly
// buckets, and takes the ASCII fast path.
func RedesignedOptions() Options {
	return Options{Threshold: 2048, InitialCap: 16, ASCIIFastPath: true}
}

// Trie is a burst trie over key indices 0..n-1, where n is implied by the
// range of indices ever passed to Insert. Keys themselves are never
// touched directly; the ByteAt passed to New supplies byte access.
type Trie struct {
	root *node
	at   ByteAt
	opt  Options
}

// New creates an empty trie. at must be stable for the lifetime of the
// trie (the same index must always report the same bytes).
func New(at ByteAt, opt Options) *Trie {
	if opt.Threshold <= 0 {
		opt.Threshold = 8192
	}
	if opt.InitialCap <= 0 {
		opt.InitialCap = 16
	}
	return &Trie{at: at, opt: opt}
}

func (t *Trie) slotFor(c int) int {
	if t.opt.ASCIIFastPath {
		if c >= 0 && c < 128 {
			return c + 1 // fast path: 7-bit clean
		}
		return slotIndex(c) // slow path: eos or byte 128..255 -- same formula
	}
	return slotIndex(c)
}

// Insert adds key index i to the trie, descending from the root and
// bursting any bucket that reaches the burst threshold.
func (t *Trie) Insert(i int) {
	if t.root == nil {
		t.root = &node{}
	}
	cur := t.root
	depth := 0
	for {
		c := t.at(i, depth)
		idx := t.slotFor(c)
		sl := &cur.children[idx]
		switch sl.kind {
		case empty:
			sl.kind = bucketKind
			bd := depth + 1
			if idx == endedSlot {
				// A key lands in the ended slot because it has exactly
				// depth bytes (it hit eos at depth), not depth+1: the
				// bucket must record the depth its keys actually agree
				// up to, not one past it.
				bd = depth
			}
			sl.b = &bucket{keys: make([]int, 1, t.opt.InitialCap), depth: bd}
			sl.b.keys[0] = i
			return
		case bucketKind:
			sl.b.keys = append(sl.b.keys, i)
			// The ended slot never bursts: once a key is fully consumed
			// there is no further character to discriminate on, so
			// bursting it would recreate the same bucket forever -- the
			// hazard an all-duplicate-keys input would otherwise hit.
			if idx != endedSlot && len(sl.b.keys) >= t.opt.Threshold {
				t.burst(cur, idx)
			}
			return
		case internalKind:
			cur = sl.n
			depth++
		}
	}
}

// burst replaces the overflowing bucket at parent.children[idx] with a
// fresh internal node, redistributing its keys one character deeper.
// Bursting is not recursive: a freshly created child bucket that itself
// starts over threshold (pathological input) simply bursts on its next
// insertion.
func (t *Trie) burst(parent *node, idx int) {
	old := parent.children[idx].b
	d := old.depth
	nn := &node{}
	for _, i := range old.keys {
		c := t.at(i, d)
		idx2 := t.slotFor(c)
		sl2 := &nn.children[idx2]
		if sl2.kind == empty {
			sl2.kind = bucketKind
			bd := d + 1
			if idx2 == endedSlot {
				bd = d
			}
			sl2.b = &bucket{keys: make([]int, 0, t.opt.InitialCap), depth: bd}
		}
		sl2.b.keys = append(sl2.b.keys, i)
	}
	parent.children[idx] = child{kind: internalKind, n: nn}
}

// Traverse visits every bucket in lexicographic slot order: within a node,
// the ended slot first, then bytes 0..255 ascending, descending fully into
// any internal child before moving to the next sibling slot. Concatenating
// buckets in this order -- once each bucket is internally sorted -- yields
// a globally sorted key sequence.
func (t *Trie) Traverse(visit func(keys []int, depth int)) {
	if t.root == nil {
		return
	}
	traverseNode(t.root, visit)
}

func traverseNode(n *node, visit func(keys []int, depth int)) {
	for i := 0; i < slots; i++ {
		c := &n.children[i]
		switch c.kind {
		case bucketKind:
			visit(c.b.keys, c.b.depth)
		case internalKind:
			traverseNode(c.n, visit)
		}
	}
}

// BucketRef is one bucket's key indices and depth, as collected by
// Buckets: enough for the parallel dispatcher to compute a prefix sum of
// output offsets before any bucket is sorted, without copying key data.
type BucketRef struct {
	Keys  []int
	Depth int
}

// Buckets collects every bucket reference in traversal order. It is a
// convenience wrapper around Traverse for callers (like the parallel
// dispatcher) that need the whole list up front rather than a streaming
// visitor.
func (t *Trie) Buckets() []BucketRef {
	var out []BucketRef
	t.Traverse(func(keys []int, depth int) {
		out = append(out, BucketRef{Keys: keys, Depth: depth})
	})
	return out
}

// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import (
	"context"
	"math"

	"github.com/twotwotwo/strsort/internal/funnel"
	"github.com/twotwotwo/strsort/internal/pool"
)

// funnelBaseCase is the size at or below which LazyFunnelsort falls back to
// insertion sort instead of partitioning further.
const funnelBaseCase = 400

// funnelMinOffload is the smallest block size worth submitting to a
// worker in LazyFunnelsortThreaded; smaller blocks are sorted inline on
// the caller's goroutine rather than paying goroutine scheduling overhead
// on them.
var funnelMinOffload = 10000

// LazyFunnelsort sorts keys lexicographically with a cache-oblivious
// recursive k-way merge: at or below funnelBaseCase elements it
// insertion-sorts directly; otherwise it splits into k = ceil(cbrt(n))
// contiguous blocks, recursively sorts each, and merges them with a lazy
// k-merger (internal/funnel) built over the van Emde Boas buffer schedule.
func LazyFunnelsort[K Bytes](keys []K) {
	n := len(keys)
	if n < 2 {
		return
	}
	idx := identityPerm(n)
	sorted := funnelsortIdx(keys, idx)
	applyPermutation(keys, sorted)
}

// LazyFunnelsortThreaded is LazyFunnelsort with the top level's block
// sorts dispatched onto a worker pool; the k-merger drain always runs on
// the caller's goroutine, since merging is inherently sequential in this
// design. If p is nil, a pool sized to
// runtime.GOMAXPROCS(0) is created for the call. Returns ErrInterrupted if
// any block sort is canceled.
func LazyFunnelsortThreaded[K Bytes](keys []K, p *pool.Pool) error {
	n := len(keys)
	if n < 2 {
		return nil
	}
	if p == nil {
		p = pool.New(context.Background(), 0)
	}
	idx := identityPerm(n)
	sorted, err := funnelsortIdxParallel(keys, idx, p)
	if err != nil {
		return err
	}
	applyPermutation(keys, sorted)
	return nil
}

func identityPerm(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// funnelBlocks splits idx into k = ceil(cbrt(len(idx))) contiguous,
// roughly-equal blocks.
func funnelBlocks(idx []int) [][]int {
	n := len(idx)
	k := int(math.Ceil(math.Cbrt(float64(n))))
	if k < 1 {
		k = 1
	}
	blockSize := (n + k - 1) / k
	blocks := make([][]int, 0, k)
	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		blocks = append(blocks, idx[start:end])
	}
	return blocks
}

// funnelLess builds the funnel.Less comparator over the caller's key
// slice, reusing the package's own unsigned lexicographic byte order.
func funnelLess[K Bytes](keys []K) funnel.Less {
	return func(i, j int) bool { return less(keys[i], keys[j]) }
}

// funnelsortIdx recursively sorts idx (indices into keys) and returns a
// freshly allocated slice holding the resulting order; idx itself is left
// untouched below the base case, where a copy is sorted in place.
func funnelsortIdx[K Bytes](keys []K, idx []int) []int {
	n := len(idx)
	if n <= funnelBaseCase {
		out := append([]int(nil), idx...)
		insertionSortAt(keys, out, 0, n, 0)
		return out
	}

	blocks := funnelBlocks(idx)
	leaves := make([]funnel.Source, len(blocks))
	for i, blk := range blocks {
		leaves[i] = funnel.NewRun(funnelsortIdx(keys, blk))
	}
	root := funnel.Build(leaves, funnelLess(keys))
	return funnel.Drain(root, n)
}

// funnelsortIdxParallel is funnelsortIdx with the one top-level call's
// block sorts dispatched onto p when a block is large enough to be worth
// offloading; every recursion below that first split runs serially on
// whichever goroutine (caller's or a worker's) started it. Only the
// recursive block sorts are parallelized here, not the sibling mergers.
func funnelsortIdxParallel[K Bytes](keys []K, idx []int, p *pool.Pool) ([]int, error) {
	n := len(idx)
	if n <= funnelBaseCase {
		out := append([]int(nil), idx...)
		insertionSortAt(keys, out, 0, n, 0)
		return out, nil
	}

	blocks := funnelBlocks(idx)
	results := make([][]int, len(blocks))
	for i, blk := range blocks {
		i, blk := i, blk
		if len(blk) >= funnelMinOffload {
			p.Go(func(ctx context.Context) error {
				results[i] = funnelsortIdx(keys, blk)
				return nil
			})
		} else {
			results[i] = funnelsortIdx(keys, blk)
		}
	}
	if err := p.Wait(); err != nil {
		return nil, wrapInterrupted(err)
	}

	leaves := make([]funnel.Source, len(results))
	for i, r := range results {
		leaves[i] = funnel.NewRun(r)
	}
	root := funnel.Build(leaves, funnelLess(keys))
	return funnel.Drain(root, n), nil
}

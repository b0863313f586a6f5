// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import (
	"context"

	"github.com/twotwotwo/strsort/internal/burst"
	"github.com/twotwotwo/strsort/internal/pool"
)

// BurstsortParallel is Burstsort with its leaf-sort phase dispatched onto
// a worker pool. The build and traversal phases stay
// single-threaded (the trie is mutated during build); each bucket's
// multikey-quicksort sort is an independent unit of work writing into its
// own disjoint slice of a pre-allocated output-order buffer, so workers
// never contend with each other or need to wait for emit.
//
// If p is nil, a pool sized to runtime.GOMAXPROCS(0) is created for the
// duration of the call. If any unit of work is interrupted (p's context
// canceled), BurstsortParallel returns ErrInterrupted and keys may be
// left partially reordered.
func BurstsortParallel[K Bytes](keys []K, p *pool.Pool) error {
	return burstsortParallelWith(keys, p, burst.DefaultOptions())
}

// RedesignedBurstsortParallel is the parallel dispatcher over the
// "redesigned" trie tuning.
func RedesignedBurstsortParallel[K Bytes](keys []K, p *pool.Pool) error {
	return burstsortParallelWith(keys, p, burst.RedesignedOptions())
}

func burstsortParallelWith[K Bytes](keys []K, p *pool.Pool, opt burst.Options) error {
	n := len(keys)
	if n < 2 {
		return nil
	}
	if p == nil {
		p = pool.New(context.Background(), 0)
	}

	trie := buildTrie(keys, opt)
	buckets := trie.Buckets()

	// Single-threaded prefix sum: every worker's output range is known
	// before any worker runs, so "wait then emit" and "each worker writes
	// its own slice" are the same thing.
	order := make([]int, n)
	offset := 0
	for _, b := range buckets {
		dst := order[offset : offset+len(b.Keys)]
		offset += len(b.Keys)
		copy(dst, b.Keys)
		if len(b.Keys) > 1 {
			depth := b.Depth
			p.Go(func(ctx context.Context) error {
				mkqSort(keys, dst, 0, len(dst), depth)
				return nil
			})
		}
	}
	if offset != n {
		invariantViolation("burst trie traversal did not yield every key")
	}

	if err := p.Wait(); err != nil {
		return wrapInterrupted(err)
	}
	applyPermutation(keys, order)
	return nil
}

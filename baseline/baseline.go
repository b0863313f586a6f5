// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package baseline collects simple textbook comparison sorts: peripheral to
// the library's two cache-aware cores, but named explicitly as
// CLI-selectable algorithms. None of them
// are used by Burstsort, redesigned Burstsort, multikey quicksort, or
// funnelsort — those all have their own depth-aware, byte-level sorting
// code; this package exists purely for cmd/strsortbench's algorithm menu
// and its own benchmarking/comparison tests.
//
// Every sort here takes a plain sort.Interface, the same shape the
// teacher's own qsort.go used before this module moved its core sorters to
// a depth-aware Bytes-generic comparator. That shape is kept here
// deliberately: these are full-key, whole-slice comparator sorts with no
// notion of trie depth, so there is nothing to generalize away from
// sort.Interface the way insertion.go's insertionSortAt had to be.
package baseline

import "sort"

// Insertion sorts data[a:b] in place.
func Insertion(data sort.Interface, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// BinaryInsertion sorts data[a:b] by binary-searching each element's
// insertion point instead of the linear backward scan Insertion does,
// trading comparisons for swaps: it still performs O(n^2) swaps but only
// O(n log n) comparisons.
func BinaryInsertion(data sort.Interface, a, b int) {
	for i := a + 1; i < b; i++ {
		lo, hi := a, i
		for lo < hi {
			mid := lo + (hi-lo)/2
			if data.Less(i, mid) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		for j := i; j > lo; j-- {
			data.Swap(j, j-1)
		}
	}
}

// Gnome sorts data[a:b]. A gnome only ever needs to look at its two
// neighbors, stepping back after a swap and forward otherwise; in effect
// insertion sort expressed as a single walking index with no inner loop.
func Gnome(data sort.Interface, a, b int) {
	i := a
	for i < b {
		if i == a || !data.Less(i, i-1) {
			i++
		} else {
			data.Swap(i, i-1)
			i--
		}
	}
}

// combGap is the shrink-factor-1.3 gap sequence comb sort uses to outrun
// bubble sort's quadratic worst case on data with small values far from
// their sorted position ("turtles").
func combGap(gap int) int {
	gap = gap * 10 / 13
	if gap < 1 {
		return 1
	}
	return gap
}

// Comb sorts data[a:b] with the classic shrink-factor-1.3 gap sequence,
// finishing with a gap-1 (bubble) pass.
func Comb(data sort.Interface, a, b int) {
	n := b - a
	gap := n
	swapped := true
	for gap != 1 || swapped {
		gap = combGap(gap)
		swapped = false
		for i := a; i+gap < b; i++ {
			if data.Less(i+gap, i) {
				data.Swap(i, i+gap)
				swapped = true
			}
		}
	}
}

// HybridComb is Comb sort down to a small gap, then a final Insertion
// pass: comb sort's large-gap passes remove most inversions cheaply,
// after which insertion sort's near-sorted-data speed finishes the job
// without comb sort's worst-case gap-1 thrashing.
func HybridComb(data sort.Interface, a, b int) {
	n := b - a
	gap := n
	for gap > 8 {
		gap = combGap(gap)
		for i := a; i+gap < b; i++ {
			if data.Less(i+gap, i) {
				data.Swap(i, i+gap)
			}
		}
	}
	Insertion(data, a, b)
}

// siftDown restores the heap property on data[lo,hi), rooted at first.
func siftDown(data sort.Interface, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && data.Less(first+child, first+child+1) {
			child++
		}
		if !data.Less(first+root, first+child) {
			return
		}
		data.Swap(first+root, first+child)
		root = child
	}
}

// Heap sorts data[a:b] in place.
func Heap(data sort.Interface, a, b int) {
	first := a
	lo := 0
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(data, i, hi, first)
	}
	for i := hi - 1; i >= 0; i-- {
		data.Swap(first, first+i)
		siftDown(data, lo, i, first)
	}
}

// shellGaps is the Ciura gap sequence, which outperforms the classic
// Knuth 3x+1 sequence on most practical sizes. Only these fixed gaps are
// used: no gaps wider than 701 are generated for larger inputs.
var shellGaps = []int{701, 301, 132, 57, 23, 10, 4, 1}

// Shell sorts data[a:b] in place using the Ciura gap sequence.
func Shell(data sort.Interface, a, b int) {
	n := b - a
	for _, gap := range shellGaps {
		if gap >= n {
			continue
		}
		for i := a + gap; i < b; i++ {
			for j := i; j-gap >= a && data.Less(j, j-gap); j -= gap {
				data.Swap(j, j-gap)
			}
		}
	}
}

// Selection sorts data[a:b] in place, repeatedly swapping the minimum of
// the unsorted remainder into place.
func Selection(data sort.Interface, a, b int) {
	for i := a; i < b-1; i++ {
		min := i
		for j := i + 1; j < b; j++ {
			if data.Less(j, min) {
				min = j
			}
		}
		if min != i {
			data.Swap(i, min)
		}
	}
}

// medianOfThree returns the middle of three indices.
func medianOfThree(data sort.Interface, a, b, c int) int {
	c0, c1 := data.Less(a, b), data.Less(a, c)
	if c0 != c1 {
		return a
	}
	c2 := data.Less(b, c)
	if c1 != c2 {
		return c
	}
	return b
}

// quickPartition is a Lomuto-style single-pivot partition around
// medianOfThree(a, (a+b)/2, b-1), returning the pivot's final index.
func quickPartition(data sort.Interface, a, b int) int {
	m := a + (b-a)/2
	p := medianOfThree(data, a, m, b-1)
	data.Swap(p, b-1)
	store := a
	for i := a; i < b-1; i++ {
		if data.Less(i, b-1) {
			data.Swap(i, store)
			store++
		}
	}
	data.Swap(store, b-1)
	return store
}

// Quick sorts data[a:b] with plain recursive quicksort: median-of-three
// pivot, no depth guard. Unlike Introsort below, it has no worst-case
// fallback, which is the point of keeping it as a separate baseline (it
// demonstrates the failure mode Introsort and DualPivotQuick exist to avoid).
func Quick(data sort.Interface, a, b int) {
	if b-a <= 1 {
		return
	}
	if b-a <= 12 {
		Insertion(data, a, b)
		return
	}
	p := quickPartition(data, a, b)
	Quick(data, a, p)
	Quick(data, p+1, b)
}

// DualPivotQuick sorts data[a:b] using a Yaroslavskiy-style dual-pivot
// partition (the algorithm behind java.util.Arrays.sort for primitives):
// two pivots split the range into three parts in one partitioning pass
// instead of single-pivot quicksort's two passes to reach a three-way
// split.
func DualPivotQuick(data sort.Interface, a, b int) {
	if b-a <= 1 {
		return
	}
	if b-a <= 12 {
		Insertion(data, a, b)
		return
	}
	if data.Less(b-1, a) {
		data.Swap(a, b-1)
	}
	p1, p2 := a, b-1 // after the swap above, data[p1] <= data[p2]

	less, great := p1+1, p2-1
	k := less
	for k <= great {
		switch {
		case data.Less(k, p1):
			data.Swap(k, less)
			less++
			k++
		case data.Less(p2, k):
			for k < great && data.Less(p2, great) {
				great--
			}
			data.Swap(k, great)
			great--
			if data.Less(k, p1) {
				data.Swap(k, less)
				less++
			}
			k++
		default:
			k++
		}
	}
	less--
	great++
	data.Swap(p1, less)
	data.Swap(p2, great)

	DualPivotQuick(data, a, less)
	DualPivotQuick(data, less+1, great)
	DualPivotQuick(data, great+1, b)
}

// Introsort sorts data[a:b]: quicksort down to small ranges (finished
// with Insertion), falling back to Heap once recursion depth exceeds
// 2*ceil(lg(n+1)) to bound the worst case at O(n log n).
func Introsort(data sort.Interface, a, b int) {
	n := b - a
	maxDepth := 0
	for i := n; i > 0; i >>= 1 {
		maxDepth++
	}
	maxDepth *= 2
	introsort(data, a, b, maxDepth)
}

func introsort(data sort.Interface, a, b, maxDepth int) {
	for b-a > 7 {
		if maxDepth == 0 {
			Heap(data, a, b)
			return
		}
		maxDepth--
		mlo, mhi := doPivot(data, a, b)
		if mlo-a < b-mhi {
			introsort(data, a, mlo, maxDepth)
			a = mhi
		} else {
			introsort(data, mhi, b, maxDepth)
			b = mlo
		}
	}
	if b-a > 1 {
		Insertion(data, a, b)
	}
}

// doPivot is the three-way (Dutch-flag) partition used by Introsort: it
// returns the range [mlo,mhi) that now holds
// values equal to the chosen pivot, so introsort only recurses on the
// strictly-less and strictly-greater sides.
func doPivot(data sort.Interface, lo, hi int) (midlo, midhi int) {
	m := lo + (hi-lo)/2
	m1, m2, m3 := lo, m, hi-1
	if hi-lo > 40 {
		s := (hi - lo) / 8
		m1 = medianOfThree(data, lo, lo+s, lo+2*s)
		m2 = medianOfThree(data, m, m-s, m+s)
		m3 = medianOfThree(data, hi-1, hi-1-s, hi-1-2*s)
	}
	data.Swap(lo, medianOfThree(data, m1, m2, m3))

	pivot := lo
	a, b, c, d := lo+1, lo+1, hi, hi
	for {
		for b < c {
			if data.Less(b, pivot) {
				b++
			} else if !data.Less(pivot, b) {
				data.Swap(a, b)
				a++
				b++
			} else {
				break
			}
		}
		for b < c {
			if data.Less(pivot, c-1) {
				c--
			} else if !data.Less(c-1, pivot) {
				data.Swap(c-1, d-1)
				c--
				d--
			} else {
				break
			}
		}
		if b >= c {
			break
		}
		data.Swap(b, c-1)
		b++
		c--
	}

	n := min(b-a, a-lo)
	swapRange(data, lo, b-n, n)
	n = min(hi-d, d-c)
	swapRange(data, c, hi-n, n)

	return lo + b - a, hi - (d - c)
}

func swapRange(data sort.Interface, a, b, n int) {
	for i := 0; i < n; i++ {
		data.Swap(a+i, b+i)
	}
}

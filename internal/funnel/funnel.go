// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package funnel implements the binary buffered merge node and the
// recursive lazy k-merger ("funnel") built from it.
//
// Neither type here knows anything about key bytes: both work purely over
// int indices plus a caller-supplied Less comparator, the same way
// internal/burst works purely over a ByteAt function. That keeps the
// merge machinery reusable across string and []byte keys without
// generics leaking into this package.
package funnel

import "math"

// Less reports whether index i sorts strictly before index j in the
// caller's key slice.
type Less func(i, j int) bool

// Source produces a non-decreasing sequence of indices on demand. Fill
// writes up to len(buf) elements into buf and returns how many it wrote;
// returning fewer than len(buf) means the source is now exhausted and
// will return 0 on every subsequent call.
type Source interface {
	Fill(buf []int) int
}

// run is a leaf source: a pre-sorted slice of indices (typically produced
// by a recursive block sort), read out with a cursor.
type run struct {
	data []int
	pos  int
}

// NewRun wraps an already-sorted slice of indices as a funnel leaf.
func NewRun(sorted []int) Source { return &run{data: sorted} }

func (r *run) Fill(buf []int) int {
	n := copy(buf, r.data[r.pos:])
	r.pos += n
	return n
}

// merger is a binary buffered merge node: it owns input
// buffers for its left and right children, sized per the cache-oblivious
// schedule at construction, and lazily refills whichever side runs dry.
type merger struct {
	less        Less
	left, right Source
	lbuf, rbuf   []int
	lpos, rpos   int
	llen, rlen   int
	ldone, rdone bool
}

func newMerger(less Less, left, right Source, lbufSize, rbufSize int) *merger {
	return &merger{
		less: less, left: left, right: right,
		lbuf: make([]int, lbufSize), rbuf: make([]int, rbufSize),
	}
}

func (m *merger) refillLeft() {
	if m.ldone || m.lpos < m.llen {
		return
	}
	m.llen = m.left.Fill(m.lbuf)
	m.lpos = 0
	if m.llen < len(m.lbuf) {
		m.ldone = true
	}
}

func (m *merger) refillRight() {
	if m.rdone || m.rpos < m.rlen {
		return
	}
	m.rlen = m.right.Fill(m.rbuf)
	m.rpos = 0
	if m.rlen < len(m.rbuf) {
		m.rdone = true
	}
}

// Fill implements Source: it drains the smaller of the two current heads
// repeatedly, recursively refilling whichever input buffer empties, until
// buf is full or both children are exhausted.
func (m *merger) Fill(buf []int) int {
	n := 0
	for n < len(buf) {
		m.refillLeft()
		m.refillRight()
		lhas := m.lpos < m.llen
		rhas := m.rpos < m.rlen
		if !lhas && !rhas {
			break
		}
		if lhas && (!rhas || m.less(m.lbuf[m.lpos], m.rbuf[m.rpos])) {
			buf[n] = m.lbuf[m.lpos]
			m.lpos++
		} else {
			buf[n] = m.rbuf[m.rpos]
			m.rpos++
		}
		n++
	}
	return n
}

// bufSize is the cache-oblivious buffer-size schedule: a subtree covering
// m leaves gets a buffer of ceil(m^1.5) elements, the van Emde Boas
// recurrence applied self-similarly at every binary split so it works for
// any k, not just perfect squares. A single leaf (m<=1) gets a
// one-element buffer.
func bufSize(m int) int {
	if m <= 1 {
		return 1
	}
	return int(math.Ceil(math.Pow(float64(m), 1.5)))
}

// Build constructs a k-merger over leaves: a binary tree of
// merger nodes, built by recursively halving the leaf list, with each
// internal node's two input buffers sized by bufSize applied to the
// number of leaves under that side.
func Build(leaves []Source, less Less) Source {
	k := len(leaves)
	switch {
	case k == 0:
		panic("funnel: Build requires at least one leaf")
	case k == 1:
		return leaves[0]
	}
	mid := k / 2
	left := Build(leaves[:mid], less)
	right := Build(leaves[mid:], less)
	return newMerger(less, left, right, bufSize(mid), bufSize(k-mid))
}

// Drain pulls exactly n elements out of s (the root of a k-merger built
// over leaves totaling n elements) into a freshly allocated slice.
func Drain(s Source, n int) []int {
	out := make([]int, n)
	pos := 0
	for pos < n {
		c := s.Fill(out[pos:])
		if c == 0 {
			panic("funnel: source exhausted before producing the expected element count")
		}
		pos += c
	}
	return out
}

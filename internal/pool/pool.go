// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pool provides the bounded worker pool shared by the parallel
// Burstsort and funnelsort engines: a blocking Go (submit) and a draining
// Wait that surfaces the first worker error or cancellation.
//
// Built over golang.org/x/sync/errgroup rather than a hand-rolled
// chan+sync.WaitGroup pool so that a worker's error has a real propagation
// path back to the caller.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds concurrency to a fixed number of workers and collects the
// first error from any submitted unit of work.
type Pool struct {
	g   *errgroup.Group
	sem chan struct{}
	ctx context.Context
}

// New creates a pool with the given concurrency limit. A limit <= 0 uses
// runtime.GOMAXPROCS(0) as the available hardware parallelism.
func New(ctx context.Context, limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	return &Pool{g: g, sem: make(chan struct{}, limit), ctx: ctx}
}

// Limit reports the pool's configured concurrency.
func (p *Pool) Limit() int { return cap(p.sem) }

// Go submits a unit of work. It blocks until a worker slot is free (or the
// pool's context is already done, in which case it returns immediately
// without running fn and Wait reports the context's error). fn's error, if
// any, is captured by the eventual
// Wait call; the first such error wins, and the pool's context is then
// canceled so other in-flight units can notice and stop cooperatively.
func (p *Pool) Go(fn func(ctx context.Context) error) {
	select {
	case p.sem <- struct{}{}:
	case <-p.ctx.Done():
		p.g.Go(p.ctx.Err)
		return
	}
	p.g.Go(func() error {
		defer func() { <-p.sem }()
		select {
		case <-p.ctx.Done():
			return p.ctx.Err()
		default:
		}
		return fn(p.ctx)
	})
}

// Wait blocks until every submitted unit has completed, returning the
// first non-nil error (or context cancellation) encountered, if any.
func (p *Pool) Wait() error {
	return p.g.Wait()
}

// Context returns the pool's context, canceled once any submitted unit
// fails.
func (p *Pool) Context() context.Context { return p.ctx }

// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twotwotwo/strsort/internal/pool"
)

func TestPoolRunsAllSubmittedWork(t *testing.T) {
	p := pool.New(context.Background(), 4)
	var n atomic.Int64
	for i := 0; i < 1000; i++ {
		p.Go(func(ctx context.Context) error {
			n.Add(1)
			return nil
		})
	}
	require.NoError(t, p.Wait())
	require.EqualValues(t, 1000, n.Load())
}

func TestPoolLimitsConcurrency(t *testing.T) {
	const limit = 3
	p := pool.New(context.Background(), limit)
	require.Equal(t, limit, p.Limit())

	var cur, max atomic.Int64
	for i := 0; i < 50; i++ {
		p.Go(func(ctx context.Context) error {
			c := cur.Add(1)
			for {
				m := max.Load()
				if c <= m || max.CompareAndSwap(m, c) {
					break
				}
			}
			cur.Add(-1)
			return nil
		})
	}
	require.NoError(t, p.Wait())
	require.LessOrEqual(t, max.Load(), int64(limit))
}

func TestPoolWaitSurfacesFirstError(t *testing.T) {
	p := pool.New(context.Background(), 2)
	sentinel := errors.New("boom")
	p.Go(func(ctx context.Context) error { return sentinel })
	err := p.Wait()
	require.Error(t, err)
}

func TestPoolDefaultLimitUsesGOMAXPROCS(t *testing.T) {
	p := pool.New(context.Background(), 0)
	require.Greater(t, p.Limit(), 0)
}

func TestPoolNilContextDefaultsToBackground(t *testing.T) {
	p := pool.New(nil, 1)
	require.NotNil(t, p.Context())
	require.NoError(t, p.Wait())
}

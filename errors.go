// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import "github.com/pkg/errors"

// ErrInterrupted is returned by the parallel sort entry points when a worker
// was canceled before finishing its unit of work. The caller's slice may be
// left partially reordered; see package docs on the parallel entry points.
var ErrInterrupted = errors.New("strsort: sort interrupted")

// wrapInterrupted wraps a worker-pool error (from pool.Pool.Wait) as
// ErrInterrupted, attaching the underlying cause's message via
// github.com/pkg/errors while errors.Is(err, ErrInterrupted) keeps
// working. Only the message is kept, not the cause error value itself.
func wrapInterrupted(cause error) error {
	return errors.Wrap(ErrInterrupted, cause.Error())
}

// invariantViolation panics with a message describing a condition the
// library itself should never produce: a programmer error, not a
// recoverable runtime condition, so it panics rather than returning an
// error.
func invariantViolation(msg string) {
	panic("strsort: invariant violation: " + msg)
}

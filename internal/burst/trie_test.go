// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package burst

import (
	"math/rand"
	"testing"
	"time"
)

func makeKeys(n int, r *rand.Rand, alphabet string, maxLen int) []string {
	out := make([]string, n)
	for i := range out {
		l := r.Intn(maxLen + 1)
		b := make([]byte, l)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}

func byteAtFor(keys []string) ByteAt {
	return func(i, depth int) int {
		if depth >= len(keys[i]) {
			return -1
		}
		return int(keys[i][depth])
	}
}

func TestInsertEveryKeyRetrievable(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	keys := makeKeys(5000, r, "abc", 10)
	tr := New(byteAtFor(keys), Options{Threshold: 32, InitialCap: 4})
	for i := range keys {
		tr.Insert(i)
	}

	seen := make(map[int]bool, len(keys))
	tr.Traverse(func(idx []int, depth int) {
		for _, i := range idx {
			if seen[i] {
				t.Fatalf("key %d visited twice", i)
			}
			seen[i] = true
		}
	})
	for i := range keys {
		if !seen[i] {
			t.Fatalf("key %d (%q) not retrievable after construction", i, keys[i])
		}
	}
}

func TestBurstIncreasesDepthAndEmptiesOldBucket(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	// Small alphabet with long shared prefixes forces several bursts.
	keys := makeKeys(2000, r, "ab", 20)
	tr := New(byteAtFor(keys), Options{Threshold: 16, InitialCap: 4})
	for i := range keys {
		tr.Insert(i)
	}

	tr.Traverse(func(idx []int, depth int) {
		if len(idx) > 16 {
			// Only an ended-here bucket may grow past the threshold: it
			// never bursts, and every key in it has length exactly depth.
			for _, i := range idx {
				if len(keys[i]) != depth {
					t.Fatalf("bucket at depth %d holds %d keys, exceeding the burst threshold: burst should have fired", depth, len(idx))
				}
			}
		}
		for _, i := range idx {
			if len(keys[i]) < depth {
				t.Fatalf("key %q at depth %d is shorter than its own depth", keys[i], depth)
			}
		}
	})
}

func TestAllDuplicateKeysDoNotBurstForever(t *testing.T) {
	keys := make([]string, 50000)
	for i := range keys {
		keys[i] = "aaaaaaaaaaaaaaaaaaaa"
	}
	tr := New(byteAtFor(keys), Options{Threshold: 8, InitialCap: 4})
	done := make(chan struct{})
	go func() {
		for i := range keys {
			tr.Insert(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Insert did not terminate on all-duplicate input: the ended-here slot must not burst")
	}

	count := 0
	tr.Traverse(func(idx []int, depth int) { count += len(idx) })
	if count != len(keys) {
		t.Fatalf("traversal yielded %d keys, want %d", count, len(keys))
	}
}

func TestTraverseOrderEndedBeforeChildren(t *testing.T) {
	keys := []string{"a", "ab", "ac"}
	// Threshold 2 makes the root's 'a' bucket burst on the second insert,
	// so "a" moves to the ended-here slot of the new depth-1 node.
	tr := New(byteAtFor(keys), Options{Threshold: 2, InitialCap: 4})
	for i := range keys {
		tr.Insert(i)
	}
	var order []int
	tr.Traverse(func(idx []int, depth int) {
		order = append(order, idx...)
	})
	// "a" (index 0) ends at depth 1 and must be emitted before "ab"/"ac"
	// (indices 1, 2), which live in character-indexed children.
	if len(order) != 3 || order[0] != 0 {
		t.Fatalf("expected ended-here key first, got order %v", order)
	}
}

// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import (
	"math/rand"
	"sort"
	"testing"
)

func TestLazyFunnelsortConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"basic", []string{"banana", "apple", "cherry"}, []string{"apple", "banana", "cherry"}},
		{"empty-first", []string{"", "a", "", ""}, []string{"", "", "", "a"}},
		{"prefix-before-extension", []string{"ab", "abc", "a"}, []string{"a", "ab", "abc"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keys := append([]string(nil), c.in...)
			LazyFunnelsort(keys)
			for i := range c.want {
				if keys[i] != c.want[i] {
					t.Fatalf("got %v, want %v", keys, c.want)
				}
			}
		})
	}
}

func TestLazyFunnelsortBelowBaseCase(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	keys := randomStrings(funnelBaseCase-1, r)
	want := append([]string(nil), keys...)
	sort.Strings(want)
	LazyFunnelsort(keys)
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("mismatch at %d below base case: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestLazyFunnelsortAboveBaseCase(t *testing.T) {
	r := rand.New(rand.NewSource(37))
	keys := randomStrings(5000, r)
	want := append([]string(nil), keys...)
	sort.Strings(want)
	LazyFunnelsort(keys)
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestLazyFunnelsortEmptyAndSingleton(t *testing.T) {
	empty := []string{}
	LazyFunnelsort(empty)
	if len(empty) != 0 {
		t.Fatal("empty input should remain empty")
	}
	single := []string{"only"}
	LazyFunnelsort(single)
	if len(single) != 1 || single[0] != "only" {
		t.Fatal("singleton input should remain unchanged")
	}
}

func TestLazyFunnelsortIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	keys := randomStrings(3000, r)
	LazyFunnelsort(keys)
	once := append([]string(nil), keys...)
	LazyFunnelsort(keys)
	for i := range once {
		if keys[i] != once[i] {
			t.Fatalf("sort(sort(x)) != sort(x) at %d", i)
		}
	}
}

func TestLazyFunnelsortThreadedMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	keys := randomStrings(20000, r)

	serial := append([]string(nil), keys...)
	LazyFunnelsort(serial)

	par := append([]string(nil), keys...)
	if err := LazyFunnelsortThreaded(par, nil); err != nil {
		t.Fatalf("LazyFunnelsortThreaded returned error: %v", err)
	}
	for i := range serial {
		if par[i] != serial[i] {
			t.Fatalf("parallel/serial mismatch at %d: got %q, want %q", i, par[i], serial[i])
		}
	}
}

func TestLazyFunnelsortThreadedOffloadsBlocks(t *testing.T) {
	// funnelMinOffload defaults high enough (10000) that ordinary test
	// sizes never submit a block to the pool; lower it here so this test
	// actually exercises p.Go/p.Wait instead of the inline fallback.
	old := funnelMinOffload
	funnelMinOffload = 50
	defer func() { funnelMinOffload = old }()

	r := rand.New(rand.NewSource(47))
	keys := randomStrings(20000, r)

	serial := append([]string(nil), keys...)
	LazyFunnelsort(serial)

	par := append([]string(nil), keys...)
	if err := LazyFunnelsortThreaded(par, nil); err != nil {
		t.Fatalf("LazyFunnelsortThreaded returned error: %v", err)
	}
	for i := range serial {
		if par[i] != serial[i] {
			t.Fatalf("parallel/serial mismatch at %d: got %q, want %q", i, par[i], serial[i])
		}
	}
}

func TestLazyFunnelsortDuplicates(t *testing.T) {
	keys := make([]string, 5000)
	for i := range keys {
		keys[i] = "same-key-for-every-element"
	}
	LazyFunnelsort(keys)
	for _, k := range keys {
		if k != "same-key-for-every-element" {
			t.Fatal("duplicate-heavy input was corrupted")
		}
	}
}

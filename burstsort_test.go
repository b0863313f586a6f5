// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/twotwotwo/strsort/internal/pool"
)

func TestBurstsortConcreteScenarios(t *testing.T) {
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
			Burstsort(keys)
			for i := range c.want {
				if keys[i] != c.want[i] {
					t.Fatalf("got %v, want %v", keys, c.want)
				}
			}
		})
	}
}

func TestBurstsortAllEqualDoesNotLoop(t *testing.T) {
	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	}
	Burstsort(keys)
	for _, k := range keys {
		if len(k) != 100 {
			t.Fatal("key corrupted during sort")
		}
	}
}

func TestBurstsortRandomMatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	keys := randomStrings(5000, r)
	want := append([]string(nil), keys...)
	sort.Strings(want)
	Burstsort(keys)
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestRedesignedBurstsortMatchesStandard(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	keys := randomStrings(5000, r)
	want := append([]string(nil), keys...)
	Burstsort(want)
	RedesignedBurstsort(keys)
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("redesigned mismatch at %d: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestBurstsortHighByteKeys(t *testing.T) {
	// Exercises the redesigned variant's ASCII/high-byte branch split
	// with bytes above 127, which must still sort correctly relative to
	// ASCII bytes and to each other.
	keys := []string{
		string([]byte{0xff, 0x01}),
		string([]byte{0x01}),
		string([]byte{0x80}),
		string([]byte{0x7f}),
	}
	want := append([]string(nil), keys...)
	sort.Strings(want)
	RedesignedBurstsort(keys)
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestBurstsortIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	keys := randomStrings(1000, r)
	Burstsort(keys)
	once := append([]string(nil), keys...)
	Burstsort(keys)
	for i := range once {
		if keys[i] != once[i] {
			t.Fatalf("sort(sort(x)) != sort(x) at %d", i)
		}
	}
}

func TestBurstsortEmptyAndSingleton(t *testing.T) {
	empty := []string{}
	Burstsort(empty)
	if len(empty) != 0 {
		t.Fatal("empty input should remain empty")
	}

	single := []string{"only"}
	Burstsort(single)
	if len(single) != 1 || single[0] != "only" {
		t.Fatal("singleton input should remain unchanged")
	}
}

func TestBurstsortParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	keys := randomStrings(20000, r)

	serial := append([]string(nil), keys...)
	Burstsort(serial)

	par := append([]string(nil), keys...)
	if err := BurstsortParallel(par, pool.New(nil, 4)); err != nil {
		t.Fatalf("BurstsortParallel returned error: %v", err)
	}
	for i := range serial {
		if par[i] != serial[i] {
			t.Fatalf("parallel/serial mismatch at %d: got %q, want %q", i, par[i], serial[i])
		}
	}
}

func TestRedesignedBurstsortParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	keys := randomStrings(20000, r)

	serial := append([]string(nil), keys...)
	RedesignedBurstsort(serial)

	par := append([]string(nil), keys...)
	if err := RedesignedBurstsortParallel(par, nil); err != nil {
		t.Fatalf("RedesignedBurstsortParallel returned error: %v", err)
	}
	for i := range serial {
		if par[i] != serial[i] {
			t.Fatalf("parallel/serial mismatch at %d: got %q, want %q", i, par[i], serial[i])
		}
	}
}

func TestBurstsortBytesKeys(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	strs := randomStrings(2000, r)
	keys := make([][]byte, len(strs))
	for i, s := range strs {
		keys[i] = []byte(s)
	}
	Burstsort(keys)
	for i := 1; i < len(keys); i++ {
		if string(keys[i]) < string(keys[i-1]) {
			t.Fatalf("[]byte keys not sorted at %d", i)
		}
	}
}

// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package strsort

import "testing"

func TestByteAt(t *testing.T) {
	k := "ab"
	cases := []struct {
		depth int
		want  int
	}{
		{0, 'a'},
		{1, 'b'},
		{2, eos},
		{100, eos},
	}
	for _, c := range cases {
		if got := byteAt(k, c.depth); got != c.want {
			t.Errorf("byteAt(%q, %d) = %d, want %d", k, c.depth, got, c.want)
		}
	}
}

func TestLessPrefixBeforeExtension(t *testing.T) {
	if !less("a", "ab") {
		t.Error("expected \"a\" < \"ab\"")
	}
	if less("ab", "a") {
		t.Error("expected !(\"ab\" < \"a\")")
	}
	if less("a", "a") {
		t.Error("expected !(\"a\" < \"a\")")
	}
}

func TestLessEmptyFirst(t *testing.T) {
	if !less("", "a") {
		t.Error("expected \"\" < \"a\"")
	}
	if less("a", "") {
		t.Error("expected !(\"a\" < \"\")")
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]string{"a", "b", "c"}) {
		t.Error("expected sorted slice to report sorted")
	}
	if IsSorted([]string{"b", "a"}) {
		t.Error("expected unsorted slice to report unsorted")
	}
	if !IsSorted([]string{}) {
		t.Error("expected empty slice to report sorted")
	}
}

func TestByteAtBytesKey(t *testing.T) {
	k := []byte("xy")
	if byteAt(k, 0) != 'x' || byteAt(k, 1) != 'y' || byteAt(k, 2) != eos {
		t.Error("byteAt over []byte keys should behave like string keys")
	}
}

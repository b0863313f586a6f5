// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package baseline

// KeySlice adapts a slice of strings or byte slices to sort.Interface for
// the comparator sorts in this package, comparing whole keys lexically by
// unsigned byte value (the same global order the core package's sorters
// produce, but expressed here as Len/Less/Swap since that's the shape
// every sort in this package expects).
type KeySlice[K ~string | ~[]byte] []K

func (s KeySlice[K]) Len() int      { return len(s) }
func (s KeySlice[K]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s KeySlice[K]) Less(i, j int) bool {
	a, b := s[i], s[j]
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

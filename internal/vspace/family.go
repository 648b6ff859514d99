// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vspace

import "fmt"

// Slot indexes the basis of a fixed-size indexed family of spaces:
// slot position in the family plus a basis index of the element space.
type Slot[B comparable] struct {
	Index int
	At    B
}

// Family builds the n-fold product of a single element space, the indexed
// generalization of Product: vectors are slices of fixed length n, and the
// basis is every (slot, element-basis) combination.
//
// The element space's additive structure lifts slot-wise, which is the only
// closure property the construction needs.
func Family[S Float, V any, B comparable](n int, elem Space[S, V, B]) Space[S, []V, Slot[B]] {
	if n < 0 {
		panic(fmt.Sprintf("vspace: negative family size %d", n))
	}
	zero := make([]V, n)
	for i := range zero {
		zero[i] = elem.Zero
	}
	basis := make([]Slot[B], 0, n*len(elem.Basis))
	for i := 0; i < n; i++ {
		for _, b := range elem.Basis {
			basis = append(basis, Slot[B]{Index: i, At: b})
		}
	}
	return Space[S, []V, Slot[B]]{
		Zero:  zero,
		Basis: basis,
		Add: func(x, y []V) []V {
			if len(x) != n || len(y) != n {
				panic(fmt.Sprintf("vspace: family size mismatch: %d, %d, want %d", len(x), len(y), n))
			}
			out := make([]V, n)
			for i := range out {
				out[i] = elem.Add(x[i], y[i])
			}
			return out
		},
		Scale: func(s S, v []V) []V {
			if len(v) != n {
				panic(fmt.Sprintf("vspace: family size mismatch: %d, want %d", len(v), n))
			}
			out := make([]V, n)
			for i := range out {
				out[i] = elem.Scale(s, v[i])
			}
			return out
		},
		Decompose: func(v []V) []Coord[Slot[B], S] {
			if len(v) != n {
				panic(fmt.Sprintf("vspace: family size mismatch: %d, want %d", len(v), n))
			}
			var out []Coord[Slot[B], S]
			for i, vi := range v {
				for _, c := range elem.Decompose(vi) {
					out = append(out, Coord[Slot[B], S]{Slot[B]{i, c.Basis}, c.Coeff})
				}
			}
			return out
		},
		BasisValue: func(s Slot[B]) []V {
			out := make([]V, n)
			for i := range out {
				out[i] = elem.Zero
			}
			out[s.Index] = elem.BasisValue(s.At)
			return out
		},
	}
}

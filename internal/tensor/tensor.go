// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/catad-ml/catad/internal/vspace"
)

// Prod is the basis index of a tensor product: a pair of factor indices.
type Prod[BA, BB comparable] struct {
	A BA
	B BB
}

// T is a tensor-product vector: a sparse coefficient table keyed by basis
// pairs. Keys are unique; a missing key means coefficient zero.
type T[S vspace.Float, BA, BB comparable] struct {
	Coeffs map[Prod[BA, BB]]S
}

func fresh[S vspace.Float, BA, BB comparable](n int) T[S, BA, BB] {
	return T[S, BA, BB]{Coeffs: make(map[Prod[BA, BB]]S, n)}
}

// Space builds the tensor product a ⊗ b. Its basis is the cross product of
// both factors' bases.
//
// The zero vector materializes an entry for EVERY basis pair: addition is a
// union-with-sum over the tables, and a dense zero guarantees it never
// silently drops a dimension whose coefficient happens to be absent on one
// side.
func Space[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) vspace.Space[S, T[S, BA, BB], Prod[BA, BB]] {
	basis := make([]Prod[BA, BB], 0, len(a.Basis)*len(b.Basis))
	for _, ba := range a.Basis {
		for _, bb := range b.Basis {
			basis = append(basis, Prod[BA, BB]{ba, bb})
		}
	}
	zero := fresh[S, BA, BB](len(basis))
	for _, p := range basis {
		zero.Coeffs[p] = 0
	}
	return vspace.Space[S, T[S, BA, BB], Prod[BA, BB]]{
		Zero:  zero,
		Basis: basis,
		Add: func(x, y T[S, BA, BB]) T[S, BA, BB] {
			out := fresh[S, BA, BB](len(x.Coeffs) + len(y.Coeffs))
			for p, c := range x.Coeffs {
				out.Coeffs[p] = c
			}
			for p, c := range y.Coeffs {
				out.Coeffs[p] += c
			}
			return out
		},
		Scale: func(s S, v T[S, BA, BB]) T[S, BA, BB] {
			out := fresh[S, BA, BB](len(v.Coeffs))
			for p, c := range v.Coeffs {
				out.Coeffs[p] = s * c
			}
			return out
		},
		// Decompose reports exactly the stored entries, walked in basis order
		// so results are deterministic. BasisValue therefore decomposes to a
		// singleton while Zero decomposes densely.
		Decompose: func(v T[S, BA, BB]) []vspace.Coord[Prod[BA, BB], S] {
			out := make([]vspace.Coord[Prod[BA, BB], S], 0, len(v.Coeffs))
			for _, p := range basis {
				if c, ok := v.Coeffs[p]; ok {
					out = append(out, vspace.Coord[Prod[BA, BB], S]{Basis: p, Coeff: c})
				}
			}
			return out
		},
		BasisValue: func(p Prod[BA, BB]) T[S, BA, BB] {
			out := fresh[S, BA, BB](1)
			out.Coeffs[p] = 1
			return out
		},
	}
}

// Pure embeds a pair of factor vectors as their tensor: the outer product of
// their decompositions.
func Pure[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB], va VA, vb VB,
) T[S, BA, BB] {
	da := a.Decompose(va)
	db := b.Decompose(vb)
	out := fresh[S, BA, BB](len(da) * len(db))
	for _, ca := range da {
		for _, cb := range db {
			out.Coeffs[Prod[BA, BB]{ca.Basis, cb.Basis}] = ca.Coeff * cb.Coeff
		}
	}
	return out
}

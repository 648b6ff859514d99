// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vspace

// Pair is the vector representation of a product space.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Either is a tagged union of two basis index types. It is the basis of a
// product space: the product's basis is the disjoint union of the factors'
// bases. Both sides must be comparable so Either itself stays comparable.
type Either[L, R comparable] struct {
	left    L
	right   R
	isRight bool
}

// Left injects a left basis index.
func Left[L, R comparable](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right injects a right basis index.
func Right[L, R comparable](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Left returns the left index and whether this is a left tag.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the right index and whether this is a right tag.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// Product builds the pairwise product of two spaces: vectors are Pairs,
// the basis is the tagged union of both bases, and decomposition is the
// concatenation of both factors' decompositions.
func Product[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Space[S, Pair[VA, VB], Either[BA, BB]] {
	basis := make([]Either[BA, BB], 0, len(a.Basis)+len(b.Basis))
	for _, ba := range a.Basis {
		basis = append(basis, Left[BA, BB](ba))
	}
	for _, bb := range b.Basis {
		basis = append(basis, Right[BA, BB](bb))
	}
	return Space[S, Pair[VA, VB], Either[BA, BB]]{
		Zero:  Pair[VA, VB]{a.Zero, b.Zero},
		Basis: basis,
		Add: func(x, y Pair[VA, VB]) Pair[VA, VB] {
			return Pair[VA, VB]{a.Add(x.Fst, y.Fst), b.Add(x.Snd, y.Snd)}
		},
		Scale: func(s S, v Pair[VA, VB]) Pair[VA, VB] {
			return Pair[VA, VB]{a.Scale(s, v.Fst), b.Scale(s, v.Snd)}
		},
		Decompose: func(v Pair[VA, VB]) []Coord[Either[BA, BB], S] {
			da := a.Decompose(v.Fst)
			db := b.Decompose(v.Snd)
			out := make([]Coord[Either[BA, BB], S], 0, len(da)+len(db))
			for _, c := range da {
				out = append(out, Coord[Either[BA, BB], S]{Left[BA, BB](c.Basis), c.Coeff})
			}
			for _, c := range db {
				out = append(out, Coord[Either[BA, BB], S]{Right[BA, BB](c.Basis), c.Coeff})
			}
			return out
		},
		BasisValue: func(e Either[BA, BB]) Pair[VA, VB] {
			if l, ok := e.Left(); ok {
				return Pair[VA, VB]{a.BasisValue(l), b.Zero}
			}
			r, _ := e.Right()
			return Pair[VA, VB]{a.Zero, b.BasisValue(r)}
		},
	}
}

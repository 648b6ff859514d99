// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linmap

import "github.com/catad-ml/catad/internal/vspace"

// Coproduct (sum) structure. The coproduct of vector spaces is the same Pair
// as the product, so injections pad with zero and Jam folds both slots.

// Inl injects a vector into the left slot of a sum.
func Inl[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Map[S, VA, BA, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	cod := vspace.Product(a, b)
	return Map[S, VA, BA, vspace.Pair[VA, VB], vspace.Either[BA, BB]]{
		Dom: a,
		Cod: cod,
		OnBasis: func(ba BA) vspace.Pair[VA, VB] {
			return vspace.Pair[VA, VB]{Fst: a.BasisValue(ba), Snd: b.Zero}
		},
	}
}

// Inr injects a vector into the right slot of a sum.
func Inr[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Map[S, VB, BB, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	cod := vspace.Product(a, b)
	return Map[S, VB, BB, vspace.Pair[VA, VB], vspace.Either[BA, BB]]{
		Dom: b,
		Cod: cod,
		OnBasis: func(bb BB) vspace.Pair[VA, VB] {
			return vspace.Pair[VA, VB]{Fst: a.Zero, Snd: b.BasisValue(bb)}
		},
	}
}

// Jam merges both slots of a sum by addition: Jam = Join(id, id).
func Jam[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) Map[S, vspace.Pair[VA, VA], vspace.Either[BA, BA], VA, BA] {
	return Map[S, vspace.Pair[VA, VA], vspace.Either[BA, BA], VA, BA]{
		Dom: vspace.Product(a, a),
		Cod: a,
		OnBasis: func(e vspace.Either[BA, BA]) VA {
			if l, ok := e.Left(); ok {
				return a.BasisValue(l)
			}
			r, _ := e.Right()
			return a.BasisValue(r)
		},
	}
}

// Join merges two maps sharing a codomain: Join(f, g) = [f, g].
func Join[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Map[S, A, BA, C, BC], g Map[S, B, BB, C, BC],
) Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC] {
	return Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC]{
		Dom: vspace.Product(f.Dom, g.Dom),
		Cod: f.Cod,
		OnBasis: func(e vspace.Either[BA, BB]) C {
			if l, ok := e.Left(); ok {
				return f.OnBasis(l)
			}
			r, _ := e.Right()
			return g.OnBasis(r)
		},
	}
}

// Unjoin splits a map out of a sum into its two components, equivalent to
// pre-composing the injections.
func Unjoin[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	a vspace.Space[S, A, BA], b vspace.Space[S, B, BB],
	h Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC],
) (Map[S, A, BA, C, BC], Map[S, B, BB, C, BC]) {
	left := Map[S, A, BA, C, BC]{
		Dom:     a,
		Cod:     h.Cod,
		OnBasis: func(ba BA) C { return h.OnBasis(vspace.Left[BA, BB](ba)) },
	}
	right := Map[S, B, BB, C, BC]{
		Dom:     b,
		Cod:     h.Cod,
		OnBasis: func(bb BB) C { return h.OnBasis(vspace.Right[BA, BB](bb)) },
	}
	return left, right
}

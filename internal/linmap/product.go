// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linmap

import "github.com/catad-ml/catad/internal/vspace"

// Product structure. Linear maps have biproducts: the product and coproduct
// of two spaces coincide as Pair, so projections/injections below are all
// defined by case analysis on the tagged-union basis.

// Exl projects the left factor out of a product.
func Exl[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Map[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VA, BA] {
	return Map[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VA, BA]{
		Dom: vspace.Product(a, b),
		Cod: a,
		OnBasis: func(e vspace.Either[BA, BB]) VA {
			if l, ok := e.Left(); ok {
				return a.BasisValue(l)
			}
			return a.Zero
		},
	}
}

// Exr projects the right factor out of a product.
func Exr[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Map[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VB, BB] {
	return Map[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VB, BB]{
		Dom: vspace.Product(a, b),
		Cod: b,
		OnBasis: func(e vspace.Either[BA, BB]) VB {
			if r, ok := e.Right(); ok {
				return b.BasisValue(r)
			}
			return b.Zero
		},
	}
}

// Dup duplicates a vector into both slots of a product.
func Dup[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) Map[S, VA, BA, vspace.Pair[VA, VA], vspace.Either[BA, BA]] {
	return Map[S, VA, BA, vspace.Pair[VA, VA], vspace.Either[BA, BA]]{
		Dom: a,
		Cod: vspace.Product(a, a),
		OnBasis: func(ba BA) vspace.Pair[VA, VA] {
			return vspace.Pair[VA, VA]{Fst: a.BasisValue(ba), Snd: a.BasisValue(ba)}
		},
	}
}

// Fork pairs two maps sharing a domain: Fork(f, g) = ⟨f, g⟩.
func Fork[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Map[S, A, BA, B, BB], g Map[S, A, BA, C, BC],
) Map[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]] {
	return Map[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]]{
		Dom: f.Dom,
		Cod: vspace.Product(f.Cod, g.Cod),
		OnBasis: func(ba BA) vspace.Pair[B, C] {
			return vspace.Pair[B, C]{Fst: f.OnBasis(ba), Snd: g.OnBasis(ba)}
		},
	}
}

// Unfork splits a map into a product back into its two components,
// equivalent to post-composing the projections. The factor spaces are passed
// explicitly since they cannot be recovered from the product space value.
func Unfork[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	b vspace.Space[S, B, BB], c vspace.Space[S, C, BC],
	h Map[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]],
) (Map[S, A, BA, B, BB], Map[S, A, BA, C, BC]) {
	fst := Map[S, A, BA, B, BB]{
		Dom:     h.Dom,
		Cod:     b,
		OnBasis: func(ba BA) B { return h.OnBasis(ba).Fst },
	}
	snd := Map[S, A, BA, C, BC]{
		Dom:     h.Dom,
		Cod:     c,
		OnBasis: func(ba BA) C { return h.OnBasis(ba).Snd },
	}
	return fst, snd
}

// Cross is the parallel composition f × g on a product.
func Cross[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable, D any, BD comparable](
	f Map[S, A, BA, C, BC], g Map[S, B, BB, D, BD],
) Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], vspace.Pair[C, D], vspace.Either[BC, BD]] {
	cod := vspace.Product(f.Cod, g.Cod)
	return Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], vspace.Pair[C, D], vspace.Either[BC, BD]]{
		Dom: vspace.Product(f.Dom, g.Dom),
		Cod: cod,
		OnBasis: func(e vspace.Either[BA, BB]) vspace.Pair[C, D] {
			if l, ok := e.Left(); ok {
				return vspace.Pair[C, D]{Fst: f.OnBasis(l), Snd: g.Cod.Zero}
			}
			r, _ := e.Right()
			return vspace.Pair[C, D]{Fst: f.Cod.Zero, Snd: g.OnBasis(r)}
		},
	}
}

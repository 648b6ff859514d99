// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward

import (
	"fmt"

	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// D is a forward-mode differentiable map: evaluating it at a point returns
// the value together with the exact derivative at that point, bundled as a
// linear map. Composition threads both through the chain rule, so any
// morphism assembled from the combinators in this package carries the exact
// (never finite-differenced) derivative of its value function.
type D[S vspace.Float, A any, BA comparable, B any, BB comparable] struct {
	F func(A) (B, linmap.Map[S, A, BA, B, BB])
}

// At evaluates the map, returning the value and the local derivative.
func (d D[S, A, BA, B, BB]) At(a A) (B, linmap.Map[S, A, BA, B, BB]) {
	return d.F(a)
}

// Value evaluates the map and discards the derivative.
func (d D[S, A, BA, B, BB]) Value(a A) B {
	b, _ := d.F(a)
	return b
}

// Linear lifts a linear map: its derivative everywhere is the map itself.
func Linear[S vspace.Float, A any, BA comparable, B any, BB comparable](
	m linmap.Map[S, A, BA, B, BB],
) D[S, A, BA, B, BB] {
	return D[S, A, BA, B, BB]{F: func(a A) (B, linmap.Map[S, A, BA, B, BB]) {
		return m.Apply(a), m
	}}
}

// Const is the constant map at c; its derivative is the zero map.
func Const[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], cod vspace.Space[S, B, BB], c B,
) D[S, A, BA, B, BB] {
	zero := linmap.Zero(dom, cod)
	return D[S, A, BA, B, BB]{F: func(A) (B, linmap.Map[S, A, BA, B, BB]) {
		return c, zero
	}}
}

// Identity is the identity differentiable map on sp.
func Identity[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA],
) D[S, A, BA, A, BA] {
	return Linear(linmap.Identity(sp))
}

// Compose chains two differentiable maps: values compose, and the local
// derivatives compose in the same order (the chain rule).
func Compose[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	g D[S, B, BB, C, BC], f D[S, A, BA, B, BB],
) D[S, A, BA, C, BC] {
	return D[S, A, BA, C, BC]{F: func(a A) (C, linmap.Map[S, A, BA, C, BC]) {
		b, df := f.F(a)
		c, dg := g.F(b)
		return c, linmap.Compose(dg, df)
	}}
}

// Exl is the left projection; its derivative is the projection itself.
func Exl[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) D[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VA, BA] {
	return Linear(linmap.Exl(a, b))
}

// Exr is the right projection.
func Exr[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) D[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VB, BB] {
	return Linear(linmap.Exr(a, b))
}

// Dup duplicates its input.
func Dup[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) D[S, VA, BA, vspace.Pair[VA, VA], vspace.Either[BA, BA]] {
	return Linear(linmap.Dup(a))
}

// Fork pairs two maps sharing a domain; the derivative of a pairing is the
// pairing of the derivatives.
func Fork[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f D[S, A, BA, B, BB], g D[S, A, BA, C, BC],
) D[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]] {
	return D[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]]{
		F: func(a A) (vspace.Pair[B, C], linmap.Map[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]]) {
			b, df := f.F(a)
			c, dg := g.F(a)
			return vspace.Pair[B, C]{Fst: b, Snd: c}, linmap.Fork(df, dg)
		},
	}
}

// Cross runs two maps in parallel over a product.
func Cross[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable, D2 any, BD comparable](
	f D[S, A, BA, C, BC], g D[S, B, BB, D2, BD],
) D[S, vspace.Pair[A, B], vspace.Either[BA, BB], vspace.Pair[C, D2], vspace.Either[BC, BD]] {
	return D[S, vspace.Pair[A, B], vspace.Either[BA, BB], vspace.Pair[C, D2], vspace.Either[BC, BD]]{
		F: func(p vspace.Pair[A, B]) (vspace.Pair[C, D2], linmap.Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], vspace.Pair[C, D2], vspace.Either[BC, BD]]) {
			c, df := f.F(p.Fst)
			d, dg := g.F(p.Snd)
			return vspace.Pair[C, D2]{Fst: c, Snd: d}, linmap.Cross(df, dg)
		},
	}
}

// Inl injects into the left slot of a sum.
func Inl[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) D[S, VA, BA, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	return Linear(linmap.Inl(a, b))
}

// Inr injects into the right slot of a sum.
func Inr[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) D[S, VB, BB, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	return Linear(linmap.Inr(a, b))
}

// Jam merges a sum by addition.
func Jam[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) D[S, vspace.Pair[VA, VA], vspace.Either[BA, BA], VA, BA] {
	return Linear(linmap.Jam(a))
}

// Join merges two maps sharing a codomain: (f ▽ g)(a, b) = f(a) + g(b).
func Join[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f D[S, A, BA, C, BC], g D[S, B, BB, C, BC],
) D[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC] {
	return D[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC]{
		F: func(p vspace.Pair[A, B]) (C, linmap.Map[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC]) {
			c1, df := f.F(p.Fst)
			c2, dg := g.F(p.Snd)
			return df.Cod.Add(c1, c2), linmap.Join(df, dg)
		},
	}
}

// CrossN runs n maps slot-wise over an indexed family, the per-slot
// generalization of Cross.
func CrossN[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], cod vspace.Space[S, B, BB],
	fs ...D[S, A, BA, B, BB],
) D[S, []A, vspace.Slot[BA], []B, vspace.Slot[BB]] {
	return D[S, []A, vspace.Slot[BA], []B, vspace.Slot[BB]]{
		F: func(vs []A) ([]B, linmap.Map[S, []A, vspace.Slot[BA], []B, vspace.Slot[BB]]) {
			if len(vs) != len(fs) {
				panic(fmt.Sprintf("forward: family size mismatch: %d, want %d", len(vs), len(fs)))
			}
			out := make([]B, len(fs))
			derivs := make([]linmap.Map[S, A, BA, B, BB], len(fs))
			for i, f := range fs {
				out[i], derivs[i] = f.F(vs[i])
			}
			return out, linmap.CrossN(dom, cod, derivs...)
		},
	}
}

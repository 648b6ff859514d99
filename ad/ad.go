// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ad

import (
	"github.com/catad-ml/catad/internal/forward"
	"github.com/catad-ml/catad/vector"
)

// Forward-mode public API.

// D is a forward-mode differentiable map carrying value and exact derivative.
type D[S vector.Float, A any, BA comparable, B any, BB comparable] = forward.D[S, A, BA, B, BB]

// Scalar1 is a differentiable map on scalars.
type Scalar1[S vector.Float] = forward.Scalar1[S]

// Scalar2 is a differentiable map from a scalar pair to a scalar.
type Scalar2[S vector.Float] = forward.Scalar2[S]

// Linear lifts a linear map; its derivative everywhere is the map itself.
func Linear[S vector.Float, A any, BA comparable, B any, BB comparable](
	m vector.Map[S, A, BA, B, BB],
) D[S, A, BA, B, BB] {
	return forward.Linear(m)
}

// Const is the constant differentiable map at c.
func Const[S vector.Float, A any, BA comparable, B any, BB comparable](
	dom vector.Space[S, A, BA], cod vector.Space[S, B, BB], c B,
) D[S, A, BA, B, BB] {
	return forward.Const(dom, cod, c)
}

// Identity is the identity differentiable map on sp.
func Identity[S vector.Float, A any, BA comparable](sp vector.Space[S, A, BA]) D[S, A, BA, A, BA] {
	return forward.Identity(sp)
}

// Compose chains differentiable maps by the chain rule.
func Compose[S vector.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	g D[S, B, BB, C, BC], f D[S, A, BA, B, BB],
) D[S, A, BA, C, BC] {
	return forward.Compose(g, f)
}

// Exl is the differentiable left projection.
func Exl[S vector.Float, VA any, BA comparable, VB any, BB comparable](
	a vector.Space[S, VA, BA], b vector.Space[S, VB, BB],
) D[S, vector.Pair[VA, VB], vector.Either[BA, BB], VA, BA] {
	return forward.Exl(a, b)
}

// Exr is the differentiable right projection.
func Exr[S vector.Float, VA any, BA comparable, VB any, BB comparable](
	a vector.Space[S, VA, BA], b vector.Space[S, VB, BB],
) D[S, vector.Pair[VA, VB], vector.Either[BA, BB], VB, BB] {
	return forward.Exr(a, b)
}

// Dup duplicates its input differentiably.
func Dup[S vector.Float, VA any, BA comparable](
	a vector.Space[S, VA, BA],
) D[S, VA, BA, vector.Pair[VA, VA], vector.Either[BA, BA]] {
	return forward.Dup(a)
}

// Fork pairs two differentiable maps sharing a domain.
func Fork[S vector.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f D[S, A, BA, B, BB], g D[S, A, BA, C, BC],
) D[S, A, BA, vector.Pair[B, C], vector.Either[BB, BC]] {
	return forward.Fork(f, g)
}

// Jam merges a sum by addition.
func Jam[S vector.Float, VA any, BA comparable](
	a vector.Space[S, VA, BA],
) D[S, vector.Pair[VA, VA], vector.Either[BA, BA], VA, BA] {
	return forward.Jam(a)
}

// Numeric primitives, each paired with its closed-form derivative.

// Negate is x ↦ -x.
func Negate[S vector.Float]() Scalar1[S] { return forward.Negate[S]() }

// Add is (a, b) ↦ a + b.
func Add[S vector.Float]() Scalar2[S] { return forward.Add[S]() }

// Mul is (a, b) ↦ a·b with derivative (da, db) ↦ b·da + a·db.
func Mul[S vector.Float]() Scalar2[S] { return forward.Mul[S]() }

// Sin is x ↦ sin x.
func Sin[S vector.Float]() Scalar1[S] { return forward.Sin[S]() }

// Cos is x ↦ cos x.
func Cos[S vector.Float]() Scalar1[S] { return forward.Cos[S]() }

// Exp is x ↦ eˣ.
func Exp[S vector.Float]() Scalar1[S] { return forward.Exp[S]() }

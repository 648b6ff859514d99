// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward

import (
	"math"

	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// Numeric primitives over the scalar space. Each pairs the primitive's value
// with its closed-form local derivative.

// Scalar1 is a differentiable map on the scalar space of S.
type Scalar1[S vspace.Float] = D[S, S, vspace.Unit, S, vspace.Unit]

// Scalar2 is a differentiable map from a pair of scalars to a scalar.
type Scalar2[S vspace.Float] = D[S, vspace.Pair[S, S], vspace.Either[vspace.Unit, vspace.Unit], S, vspace.Unit]

// Negate is x ↦ -x with constant derivative -1.
func Negate[S vspace.Float]() Scalar1[S] {
	return Linear(linmap.Scalar(vspace.Scalar[S](), -1))
}

// Add is (a, b) ↦ a + b; its derivative is Jam, summing both perturbations.
func Add[S vspace.Float]() Scalar2[S] {
	return Linear(linmap.Jam(vspace.Scalar[S]()))
}

// Mul is (a, b) ↦ a·b; the derivative at (a, b) is the linear map
// (da, db) ↦ b·da + a·db, expressed as a merge of two scalings.
func Mul[S vspace.Float]() Scalar2[S] {
	sp := vspace.Scalar[S]()
	return Scalar2[S]{
		F: func(p vspace.Pair[S, S]) (S, linmap.Map[S, vspace.Pair[S, S], vspace.Either[vspace.Unit, vspace.Unit], S, vspace.Unit]) {
			a, b := p.Fst, p.Snd
			return a * b, linmap.Join(linmap.Scalar(sp, b), linmap.Scalar(sp, a))
		},
	}
}

func scalar1[S vspace.Float](f, df func(float64) float64) Scalar1[S] {
	sp := vspace.Scalar[S]()
	return Scalar1[S]{
		F: func(x S) (S, linmap.Map[S, S, vspace.Unit, S, vspace.Unit]) {
			return S(f(float64(x))), linmap.Scalar(sp, S(df(float64(x))))
		},
	}
}

// Sin is x ↦ sin x with derivative cos x.
func Sin[S vspace.Float]() Scalar1[S] {
	return scalar1[S](math.Sin, math.Cos)
}

// Cos is x ↦ cos x with derivative -sin x.
func Cos[S vspace.Float]() Scalar1[S] {
	return scalar1[S](math.Cos, func(x float64) float64 { return -math.Sin(x) })
}

// Exp is x ↦ eˣ; the derivative equals the value.
func Exp[S vspace.Float]() Scalar1[S] {
	return scalar1[S](math.Exp, math.Exp)
}

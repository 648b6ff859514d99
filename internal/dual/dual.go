// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// Dual is a linear functional on A: an element of A's dual space.
type Dual[S vspace.Float, A any, BA comparable] struct {
	Fn linmap.Map[S, A, BA, S, vspace.Unit]
}

// At evaluates the functional on a vector.
func (d Dual[S, A, BA]) At(v A) S { return d.Fn.Apply(v) }

// Space returns the dual space of sp. It shares sp's basis index type: the
// dual basis element at b is the functional extracting b's coefficient.
// Addition is pointwise sum of functionals; scaling multiplies outputs.
func Space[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA],
) vspace.Space[S, Dual[S, A, BA], BA] {
	scalar := vspace.Scalar[S]()
	basisFn := func(b BA) Dual[S, A, BA] {
		return Dual[S, A, BA]{Fn: linmap.New(sp, scalar, func(b2 BA) S {
			if b2 == b {
				return 1
			}
			return 0
		})}
	}
	return vspace.Space[S, Dual[S, A, BA], BA]{
		Zero:  Dual[S, A, BA]{Fn: linmap.Zero(sp, scalar)},
		Basis: sp.Basis,
		Add: func(x, y Dual[S, A, BA]) Dual[S, A, BA] {
			return Dual[S, A, BA]{Fn: linmap.Add(x.Fn, y.Fn)}
		},
		Scale: func(s S, v Dual[S, A, BA]) Dual[S, A, BA] {
			return Dual[S, A, BA]{Fn: linmap.Scale(s, v.Fn)}
		},
		Decompose: func(d Dual[S, A, BA]) []vspace.Coord[BA, S] {
			out := make([]vspace.Coord[BA, S], 0, len(sp.Basis))
			for _, b := range sp.Basis {
				out = append(out, vspace.Coord[BA, S]{Basis: b, Coeff: d.At(sp.BasisValue(b))})
			}
			return out
		},
		BasisValue: basisFn,
	}
}

// ToDual sends a vector to the functional pairing against it: the inner
// product in sp's basis coordinates.
func ToDual[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA], v A,
) Dual[S, A, BA] {
	return Dual[S, A, BA]{Fn: linmap.New(sp, vspace.Scalar[S](), func(b BA) S {
		return vspace.Coefficient(sp, v, b)
	})}
}

// FromDual reconstructs the vector a functional pairs against. Inverse of
// ToDual for finite-dimensional spaces.
func FromDual[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA], d Dual[S, A, BA],
) A {
	v := sp.Zero
	for _, b := range sp.Basis {
		v = sp.Add(v, sp.Scale(d.At(sp.BasisValue(b)), sp.BasisValue(b)))
	}
	return v
}

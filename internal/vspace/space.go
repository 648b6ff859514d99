// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vspace

// Float is a constraint for the scalar field of a vector space.
type Float interface {
	~float32 | ~float64
}

// Coord pairs a basis index with its coefficient in a decomposition.
type Coord[B comparable, S Float] struct {
	Basis B
	Coeff S
}

// Space describes a finite-dimensional vector space over the scalar field S,
// with vector representation V and basis index type B.
//
// A Space is a plain dictionary of operations: it is passed alongside vector
// values wherever structure is needed, since Go has no instance resolution.
//
// Laws:
//   - Decompose(BasisValue(b)) is the indicator at b (coefficient 1 at b,
//     0 elsewhere).
//   - Decompose is linear, and reassembling its output recovers the vector:
//     Σ Scale(c.Coeff, BasisValue(c.Basis)) == v.
//   - Basis enumerates every basis index exactly once, in a fixed order.
//
// Decompositions are sparse: an index absent from the result has coefficient
// zero, and the zero vector may decompose to an empty slice. Consumers must
// default missing coefficients to 0.
type Space[S Float, V any, B comparable] struct {
	Zero       V
	Basis      []B
	Add        func(V, V) V
	Scale      func(S, V) V
	Decompose  func(V) []Coord[B, S]
	BasisValue func(B) V
}

// Dim returns the dimension of the space.
func (sp Space[S, V, B]) Dim() int { return len(sp.Basis) }

// Coefficient looks up the coefficient of basis index b in v's decomposition,
// defaulting to 0 when absent.
func Coefficient[S Float, V any, B comparable](sp Space[S, V, B], v V, b B) S {
	for _, c := range sp.Decompose(v) {
		if c.Basis == b {
			return c.Coeff
		}
	}
	return 0
}

// Recompose rebuilds a vector from an explicit decomposition.
func Recompose[S Float, V any, B comparable](sp Space[S, V, B], coords []Coord[B, S]) V {
	v := sp.Zero
	for _, c := range coords {
		v = sp.Add(v, sp.Scale(c.Coeff, sp.BasisValue(c.Basis)))
	}
	return v
}

// Unit is the basis index of a one-dimensional scalar space.
type Unit struct{}

// Scalar returns the one-dimensional space of S over itself.
func Scalar[S Float]() Space[S, S, Unit] {
	return Space[S, S, Unit]{
		Zero:  0,
		Basis: []Unit{{}},
		Add:   func(x, y S) S { return x + y },
		Scale: func(s, v S) S { return s * v },
		Decompose: func(v S) []Coord[Unit, S] {
			return []Coord[Unit, S]{{Basis: Unit{}, Coeff: v}}
		},
		BasisValue: func(Unit) S { return 1 },
	}
}

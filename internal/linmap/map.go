// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linmap

import "github.com/catad-ml/catad/internal/vspace"

// Map is a linear map from A to B, represented intensionally by its action
// on A's basis. There is no matrix storage: applying the map decomposes the
// input and recombines the per-basis images linearly, and composition is
// plain function composition evaluated lazily.
type Map[S vspace.Float, A any, BA comparable, B any, BB comparable] struct {
	Dom     vspace.Space[S, A, BA]
	Cod     vspace.Space[S, B, BB]
	OnBasis func(BA) B
}

// New builds a linear map from its action on basis elements.
func New[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], cod vspace.Space[S, B, BB], onBasis func(BA) B,
) Map[S, A, BA, B, BB] {
	return Map[S, A, BA, B, BB]{Dom: dom, Cod: cod, OnBasis: onBasis}
}

// Apply evaluates the map on an arbitrary vector by linear combination over
// the vector's decomposition. An empty decomposition yields the codomain's
// zero vector.
func (m Map[S, A, BA, B, BB]) Apply(v A) B {
	out := m.Cod.Zero
	for _, c := range m.Dom.Decompose(v) {
		out = m.Cod.Add(out, m.Cod.Scale(c.Coeff, m.OnBasis(c.Basis)))
	}
	return out
}

// Identity returns the identity map on sp.
func Identity[S vspace.Float, A any, BA comparable](sp vspace.Space[S, A, BA]) Map[S, A, BA, A, BA] {
	return Map[S, A, BA, A, BA]{Dom: sp, Cod: sp, OnBasis: sp.BasisValue}
}

// Compose returns g ∘ f. The composite's action is computed on demand; no
// eager matrix multiply happens here.
func Compose[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	g Map[S, B, BB, C, BC], f Map[S, A, BA, B, BB],
) Map[S, A, BA, C, BC] {
	return Map[S, A, BA, C, BC]{
		Dom:     f.Dom,
		Cod:     g.Cod,
		OnBasis: func(ba BA) C { return g.Apply(f.OnBasis(ba)) },
	}
}

// Zero returns the zero map from dom to cod.
func Zero[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], cod vspace.Space[S, B, BB],
) Map[S, A, BA, B, BB] {
	return Map[S, A, BA, B, BB]{Dom: dom, Cod: cod, OnBasis: func(BA) B { return cod.Zero }}
}

// Add returns the pointwise sum of two maps with the same domain and
// codomain. Linear maps form a vector space under Add and Scale.
func Add[S vspace.Float, A any, BA comparable, B any, BB comparable](
	f, g Map[S, A, BA, B, BB],
) Map[S, A, BA, B, BB] {
	return Map[S, A, BA, B, BB]{
		Dom:     f.Dom,
		Cod:     f.Cod,
		OnBasis: func(ba BA) B { return f.Cod.Add(f.OnBasis(ba), g.OnBasis(ba)) },
	}
}

// Scale returns the map s·f.
func Scale[S vspace.Float, A any, BA comparable, B any, BB comparable](
	s S, f Map[S, A, BA, B, BB],
) Map[S, A, BA, B, BB] {
	return Map[S, A, BA, B, BB]{
		Dom:     f.Dom,
		Cod:     f.Cod,
		OnBasis: func(ba BA) B { return f.Cod.Scale(s, f.OnBasis(ba)) },
	}
}

// Scalar returns the endo-map v ↦ s·v on sp, the scalar action of the field.
func Scalar[S vspace.Float, A any, BA comparable](sp vspace.Space[S, A, BA], s S) Map[S, A, BA, A, BA] {
	return Map[S, A, BA, A, BA]{
		Dom:     sp,
		Cod:     sp,
		OnBasis: func(ba BA) A { return sp.Scale(s, sp.BasisValue(ba)) },
	}
}

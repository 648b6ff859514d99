// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"github.com/catad-ml/catad/internal/linmap"
)

// Linear-map combinators, re-exported from the internal implementation.

// NewMap builds a linear map from its action on basis elements.
func NewMap[S Float, A any, BA comparable, B any, BB comparable](
	dom Space[S, A, BA], cod Space[S, B, BB], onBasis func(BA) B,
) Map[S, A, BA, B, BB] {
	return linmap.New(dom, cod, onBasis)
}

// Identity returns the identity map on sp.
func Identity[S Float, A any, BA comparable](sp Space[S, A, BA]) Map[S, A, BA, A, BA] {
	return linmap.Identity(sp)
}

// Compose returns g ∘ f.
func Compose[S Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	g Map[S, B, BB, C, BC], f Map[S, A, BA, B, BB],
) Map[S, A, BA, C, BC] {
	return linmap.Compose(g, f)
}

// Exl projects the left factor out of a product.
func Exl[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Map[S, Pair[VA, VB], Either[BA, BB], VA, BA] {
	return linmap.Exl(a, b)
}

// Exr projects the right factor out of a product.
func Exr[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Map[S, Pair[VA, VB], Either[BA, BB], VB, BB] {
	return linmap.Exr(a, b)
}

// Dup duplicates a vector into both slots of a product.
func Dup[S Float, VA any, BA comparable](
	a Space[S, VA, BA],
) Map[S, VA, BA, Pair[VA, VA], Either[BA, BA]] {
	return linmap.Dup(a)
}

// Fork pairs two maps sharing a domain.
func Fork[S Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Map[S, A, BA, B, BB], g Map[S, A, BA, C, BC],
) Map[S, A, BA, Pair[B, C], Either[BB, BC]] {
	return linmap.Fork(f, g)
}

// Inl injects into the left slot of a sum.
func Inl[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Map[S, VA, BA, Pair[VA, VB], Either[BA, BB]] {
	return linmap.Inl(a, b)
}

// Inr injects into the right slot of a sum.
func Inr[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Map[S, VB, BB, Pair[VA, VB], Either[BA, BB]] {
	return linmap.Inr(a, b)
}

// Jam merges both slots of a sum by addition.
func Jam[S Float, VA any, BA comparable](
	a Space[S, VA, BA],
) Map[S, Pair[VA, VA], Either[BA, BA], VA, BA] {
	return linmap.Jam(a)
}

// Join merges two maps sharing a codomain.
func Join[S Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Map[S, A, BA, C, BC], g Map[S, B, BB, C, BC],
) Map[S, Pair[A, B], Either[BA, BB], C, BC] {
	return linmap.Join(f, g)
}

// ScaleBy returns the endo-map v ↦ s·v on sp.
func ScaleBy[S Float, A any, BA comparable](sp Space[S, A, BA], s S) Map[S, A, BA, A, BA] {
	return linmap.Scalar(sp, s)
}

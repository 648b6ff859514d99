// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"github.com/catad-ml/catad/internal/dual"
	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/tensor"
	"github.com/catad-ml/catad/internal/vspace"
)

// Type aliases for the public API.

// Float is the constraint on scalar fields.
type Float = vspace.Float

// Space describes a finite-dimensional vector space; see the package docs.
type Space[S Float, V any, B comparable] = vspace.Space[S, V, B]

// Coord pairs a basis index with a coefficient in a decomposition.
type Coord[B comparable, S Float] = vspace.Coord[B, S]

// Unit is the basis index of a scalar space.
type Unit = vspace.Unit

// Pair is the vector representation of a product space.
type Pair[A, B any] = vspace.Pair[A, B]

// Either is the tagged-union basis of a product space.
type Either[L, R comparable] = vspace.Either[L, R]

// Slot is the basis of an indexed family.
type Slot[B comparable] = vspace.Slot[B]

// Map is an intensional linear map.
type Map[S Float, A any, BA comparable, B any, BB comparable] = linmap.Map[S, A, BA, B, BB]

// Dual is a linear functional, an element of a dual space.
type Dual[S Float, A any, BA comparable] = dual.Dual[S, A, BA]

// Tensor is a tensor-product vector: a sparse basis-pair coefficient table.
type Tensor[S Float, BA, BB comparable] = tensor.T[S, BA, BB]

// TensorBasis is the basis index of a tensor product.
type TensorBasis[BA, BB comparable] = tensor.Prod[BA, BB]

// Space constructors.

// Scalar returns the one-dimensional space of S over itself.
func Scalar[S Float]() Space[S, S, Unit] { return vspace.Scalar[S]() }

// Product builds the pairwise product of two spaces.
func Product[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Space[S, Pair[VA, VB], Either[BA, BB]] {
	return vspace.Product(a, b)
}

// Family builds the n-fold product of one element space.
func Family[S Float, V any, B comparable](n int, elem Space[S, V, B]) Space[S, []V, Slot[B]] {
	return vspace.Family(n, elem)
}

// Left injects a left basis index into a product basis.
func Left[L, R comparable](l L) Either[L, R] { return vspace.Left[L, R](l) }

// Right injects a right basis index into a product basis.
func Right[L, R comparable](r R) Either[L, R] { return vspace.Right[L, R](r) }

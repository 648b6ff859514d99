// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"github.com/catad-ml/catad/internal/dual"
	"github.com/catad-ml/catad/internal/tensor"
)

// Dual-space and tensor-product operations.

// DualSpace returns the space of linear functionals on sp.
func DualSpace[S Float, A any, BA comparable](sp Space[S, A, BA]) Space[S, Dual[S, A, BA], BA] {
	return dual.Space(sp)
}

// ToDual sends a vector to the functional pairing against it.
func ToDual[S Float, A any, BA comparable](sp Space[S, A, BA], v A) Dual[S, A, BA] {
	return dual.ToDual(sp, v)
}

// FromDual inverts ToDual for finite-dimensional spaces.
func FromDual[S Float, A any, BA comparable](sp Space[S, A, BA], d Dual[S, A, BA]) A {
	return dual.FromDual(sp, d)
}

// ToDualMap transposes a linear map structurally.
func ToDualMap[S Float, A any, BA comparable, B any, BB comparable](
	f Map[S, A, BA, B, BB],
) Map[S, Dual[S, B, BB], BB, Dual[S, A, BA], BA] {
	return dual.ToDualMap(f)
}

// FromDualMap inverts ToDualMap given the original spaces.
func FromDualMap[S Float, A any, BA comparable, B any, BB comparable](
	a Space[S, A, BA], b Space[S, B, BB],
	g Map[S, Dual[S, B, BB], BB, Dual[S, A, BA], BA],
) Map[S, A, BA, B, BB] {
	return dual.FromDualMap(a, b, g)
}

// TensorSpace builds the tensor product a ⊗ b.
func TensorSpace[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB],
) Space[S, Tensor[S, BA, BB], TensorBasis[BA, BB]] {
	return tensor.Space(a, b)
}

// TensorOf embeds two factor vectors as their outer product.
func TensorOf[S Float, VA any, BA comparable, VB any, BB comparable](
	a Space[S, VA, BA], b Space[S, VB, BB], va VA, vb VB,
) Tensor[S, BA, BB] {
	return tensor.Pure(a, b, va, vb)
}

// HomSpace returns the space of linear maps from b to c.
func HomSpace[S Float, VB any, BB comparable, VC any, BC comparable](
	b Space[S, VB, BB], c Space[S, VC, BC],
) Space[S, Map[S, VB, BB, VC, BC], TensorBasis[BB, BC]] {
	return tensor.Hom(b, c)
}

// Curry converts a map out of a tensor product into a map into a Hom space.
func Curry[S Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable](
	a Space[S, VA, BA], b Space[S, VB, BB], c Space[S, VC, BC],
	f Map[S, Tensor[S, BA, BB], TensorBasis[BA, BB], VC, BC],
) Map[S, VA, BA, Map[S, VB, BB, VC, BC], TensorBasis[BB, BC]] {
	return tensor.Curry(a, b, c, f)
}

// Uncurry inverts Curry.
func Uncurry[S Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable](
	a Space[S, VA, BA], b Space[S, VB, BB], c Space[S, VC, BC],
	g Map[S, VA, BA, Map[S, VB, BB, VC, BC], TensorBasis[BB, BC]],
) Map[S, Tensor[S, BA, BB], TensorBasis[BA, BB], VC, BC] {
	return tensor.Uncurry(a, b, c, g)
}

// MapTensor is the product of maps f ⊗ g on tensor products.
func MapTensor[S Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable, VD any, BD comparable](
	f Map[S, VA, BA, VC, BC], g Map[S, VB, BB, VD, BD],
) Map[S, Tensor[S, BA, BB], TensorBasis[BA, BB], Tensor[S, BC, BD], TensorBasis[BC, BD]] {
	return tensor.MapTensor(f, g)
}

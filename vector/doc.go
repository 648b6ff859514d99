// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the public API for the vector-space representation
// layer: finite-dimensional spaces with explicit basis decomposition,
// intensional linear maps, dual spaces, and tensor products.
//
// # Overview
//
// A Space is a dictionary of operations (zero, add, scale, decompose,
// basis value) describing one finite-dimensional vector space. Spaces
// compose: Scalar is the one-dimensional space of the field over itself,
// Product pairs two spaces with a tagged-union basis, and Family is the
// n-fold indexed generalization.
//
// A Map is a linear map represented by its action on basis elements alone.
// Applying a Map decomposes the input and recombines images linearly, so
// there is no matrix storage and composition costs nothing until a vector
// arrives.
//
// # Basic Usage
//
//	r := vector.Scalar[float64]()
//	r2 := vector.Product(r, r)
//
//	// f(a, b) = 2a + 3b as a linear map
//	f := vector.Join(vector.ScaleBy(r, 2), vector.ScaleBy(r, 3))
//	y := f.Apply(vector.Pair[float64, float64]{Fst: 2, Snd: 1}) // 7
//
// # Duals and Tensors
//
// ToDual/FromDual convert between a vector and the functional pairing
// against it; ToDualMap/FromDualMap transpose a linear map structurally.
// TensorSpace builds a ⊗ b with basis-pair keys, with Curry/Uncurry
// witnessing Hom(a⊗b, c) ≅ Hom(a, Hom(b, c)).
package vector

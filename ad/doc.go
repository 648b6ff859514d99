// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides the public API for the composable automatic
// differentiation categories.
//
// # Overview
//
// D is the forward-mode category: a differentiable map evaluates to its
// value paired with the exact local derivative (a vector.Map), and
// composition applies the chain rule. Cont is the continuation-passing
// encoding of a morphism, from which reverse mode is derived; Cotangent is
// its specialization to a concrete dual representation, mapping output
// cotangents back to input cotangents. Dual is the naive transpose category
// (biproduct base categories only), and Begin is the producer-side mirror of
// Cont.
//
// # Forward Mode
//
//	sq := ad.Compose(ad.Mul[float64](), ad.Dup(vector.Scalar[float64]()))
//	y, deriv := sq.At(3.0)       // y = 9
//	dy := deriv.Apply(1.0)       // dy/dx = 6
//
// # Reverse Mode
//
// Evaluate an expression at D to obtain its derivative as a linear map,
// embed that map into Cont with the scalar answer space, and apply
// AsCotangent: pulling the unit cotangent back through the result yields
// the gradient.
package ad

// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// ToDualMap transposes a linear map: the dual of f sends a functional φ on
// f's codomain to φ ∘ f. On basis functionals this is exactly the structural
// transpose of f's basis-indexed action table, not a numerical inverse.
func ToDualMap[S vspace.Float, A any, BA comparable, B any, BB comparable](
	f linmap.Map[S, A, BA, B, BB],
) linmap.Map[S, Dual[S, B, BB], BB, Dual[S, A, BA], BA] {
	domDual := Space(f.Cod)
	codDual := Space(f.Dom)
	return linmap.New(domDual, codDual, func(bb BB) Dual[S, A, BA] {
		phi := domDual.BasisValue(bb)
		return Dual[S, A, BA]{Fn: linmap.Compose(phi.Fn, f)}
	})
}

// FromDualMap recovers a linear map from its transpose. The original domain
// and codomain spaces are passed explicitly. Inverse of ToDualMap.
func FromDualMap[S vspace.Float, A any, BA comparable, B any, BB comparable](
	a vspace.Space[S, A, BA], b vspace.Space[S, B, BB],
	g linmap.Map[S, Dual[S, B, BB], BB, Dual[S, A, BA], BA],
) linmap.Map[S, A, BA, B, BB] {
	return linmap.New(a, b, func(ba BA) B {
		av := a.BasisValue(ba)
		out := b.Zero
		for _, bb := range b.Basis {
			out = b.Add(out, b.Scale(g.OnBasis(bb).At(av), b.BasisValue(bb)))
		}
		return out
	})
}

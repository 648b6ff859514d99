// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ad

import (
	"github.com/catad-ml/catad/internal/reverse"
	"github.com/catad-ml/catad/vector"
)

// Reverse-mode public API.

// Cont is the continuation-passing encoding of a morphism over a base
// category; KBR and KAR are the base morphism types consuming the codomain
// and domain respectively.
type Cont[KBR, KAR any] = reverse.Cont[KBR, KAR]

// ContOf is Cont over linear maps with the scalar answer space.
type ContOf[S vector.Float, A any, BA comparable, B any, BB comparable] = reverse.ContOf[S, A, BA, B, BB]

// Dual is the naive transpose category. Sound only over biproduct base
// categories; see Cotangent for the faithful form.
type Dual[KBA any] = reverse.Dual[KBA]

// Cotangent represents a morphism in reverse mode as a cotangent pullback.
type Cotangent[S vector.Float, A any, BA comparable, B any, BB comparable] = reverse.Cotangent[S, A, BA, B, BB]

// Begin is the producer-side mirror of Cont.
type Begin[KRA, KRB any] = reverse.Begin[KRA, KRB]

// Embed lifts a base morphism into the continuation transform.
func Embed[KAB, KBR, KAR any](compose func(KBR, KAB) KAR, f KAB) Cont[KBR, KAR] {
	return reverse.Embed(compose, f)
}

// ComposeCont chains transformed morphisms.
func ComposeCont[KCR, KBR, KAR any](g Cont[KCR, KBR], f Cont[KBR, KAR]) Cont[KCR, KAR] {
	return reverse.Compose(g, f)
}

// AsCotangent specializes a continuation-form morphism to its cotangent
// representation through the scalar pairing.
func AsCotangent[S vector.Float, A any, BA comparable, B any, BB comparable](
	a vector.Space[S, A, BA], b vector.Space[S, B, BB],
	f ContOf[S, A, BA, B, BB],
) Cotangent[S, A, BA, B, BB] {
	return reverse.AsCotangent(a, b, f)
}

// BeginEmbed lifts a base morphism into the producer transform.
func BeginEmbed[KAB, KRA, KRB any](compose func(KAB, KRA) KRB, f KAB) Begin[KRA, KRB] {
	return reverse.BeginEmbed(compose, f)
}

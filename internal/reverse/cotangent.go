// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

import (
	"github.com/catad-ml/catad/internal/dual"
	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// Fn is the base-morphism type used by the reverse-mode specialization: a
// linear map into the one-dimensional scalar space, i.e. a represented
// consumer of A with scalar answers.
type Fn[S vspace.Float, A any, BA comparable] = linmap.Map[S, A, BA, S, vspace.Unit]

// ContOf is Cont instantiated over linear maps with the scalar answer space:
// a transformer of scalar-valued consumers, the form AsCotangent consumes.
type ContOf[S vspace.Float, A any, BA comparable, B any, BB comparable] = Cont[Fn[S, B, BB], Fn[S, A, BA]]

// Cotangent represents a morphism a→b in reverse mode: a linear map pulling
// b-cotangents back to a-cotangents, obtained from the continuation form by
// conjugating with the scalar pairing (dot on the way in, undot on the way
// out). It is the faithful reverse-mode form; unlike Dual it does not assume
// the base product is a biproduct.
//
// Representation invariant: the wrapped map must equal
// undot ∘ f.F ∘ dot for the continuation form f of some real morphism.
type Cotangent[S vspace.Float, A any, BA comparable, B any, BB comparable] struct {
	F linmap.Map[S, B, BB, A, BA]
}

// Pull maps a cotangent of the codomain back to a cotangent of the domain.
func (c Cotangent[S, A, BA, B, BB]) Pull(v B) A { return c.F.Apply(v) }

// Dot pairs a vector against the space's basis: the canonical conversion
// from a vector to a scalar-valued consumer.
func Dot[S vspace.Float, A any, BA comparable](sp vspace.Space[S, A, BA], v A) Fn[S, A, BA] {
	return dual.ToDual(sp, v).Fn
}

// Undot inverts Dot, recovering the vector a consumer pairs against.
func Undot[S vspace.Float, A any, BA comparable](sp vspace.Space[S, A, BA], k Fn[S, A, BA]) A {
	return dual.FromDual(sp, dual.Dual[S, A, BA]{Fn: k})
}

// AsCotangent is the canonical embedding of a continuation-form morphism:
// AsCotangent(f) = Undot ∘ f ∘ Dot. Every combinator below is equal to
// AsCotangent applied to the corresponding Cont combinator; the direct
// definitions only skip the round trip through consumers.
func AsCotangent[S vspace.Float, A any, BA comparable, B any, BB comparable](
	a vspace.Space[S, A, BA], b vspace.Space[S, B, BB],
	f ContOf[S, A, BA, B, BB],
) Cotangent[S, A, BA, B, BB] {
	return Cotangent[S, A, BA, B, BB]{F: linmap.New(b, a, func(bb BB) A {
		return Undot(a, f.F(Dot(b, b.BasisValue(bb))))
	})}
}

// IdentityC equals AsCotangent(Identity()).
func IdentityC[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA],
) Cotangent[S, A, BA, A, BA] {
	return Cotangent[S, A, BA, A, BA]{F: linmap.Identity(sp)}
}

// ComposeC equals AsCotangent(Compose(gᶜ, fᶜ)): cotangents flow backwards,
// so the representations compose in reverse.
func ComposeC[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	g Cotangent[S, B, BB, C, BC], f Cotangent[S, A, BA, B, BB],
) Cotangent[S, A, BA, C, BC] {
	return Cotangent[S, A, BA, C, BC]{F: linmap.Compose(f.F, g.F)}
}

// ExlC equals AsCotangent(Embed(exl)): pulling a cotangent back through a
// projection pads the dropped factor with zero, i.e. the base injection.
func ExlC[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Cotangent[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VA, BA] {
	return Cotangent[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VA, BA]{F: linmap.Inl(a, b)}
}

// ExrC equals AsCotangent(Embed(exr)).
func ExrC[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Cotangent[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VB, BB] {
	return Cotangent[S, vspace.Pair[VA, VB], vspace.Either[BA, BB], VB, BB]{F: linmap.Inr(a, b)}
}

// DupC equals AsCotangent(Embed(dup)): the pullback of duplication sums the
// two incoming cotangents.
func DupC[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) Cotangent[S, VA, BA, vspace.Pair[VA, VA], vspace.Either[BA, BA]] {
	return Cotangent[S, VA, BA, vspace.Pair[VA, VA], vspace.Either[BA, BA]]{F: linmap.Jam(a)}
}

// ForkC equals AsCotangent(Fork(...)) and merges the pulled-back cotangents.
func ForkC[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Cotangent[S, A, BA, B, BB], g Cotangent[S, A, BA, C, BC],
) Cotangent[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]] {
	return Cotangent[S, A, BA, vspace.Pair[B, C], vspace.Either[BB, BC]]{F: linmap.Join(f.F, g.F)}
}

// InlC equals AsCotangent(Embed(inl)).
func InlC[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Cotangent[S, VA, BA, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	return Cotangent[S, VA, BA, vspace.Pair[VA, VB], vspace.Either[BA, BB]]{F: linmap.Exl(a, b)}
}

// InrC equals AsCotangent(Embed(inr)).
func InrC[S vspace.Float, VA any, BA comparable, VB any, BB comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB],
) Cotangent[S, VB, BB, vspace.Pair[VA, VB], vspace.Either[BA, BB]] {
	return Cotangent[S, VB, BB, vspace.Pair[VA, VB], vspace.Either[BA, BB]]{F: linmap.Exr(a, b)}
}

// JamC equals AsCotangent(Embed(jam)): the pullback of a merge duplicates
// the cotangent into both slots.
func JamC[S vspace.Float, VA any, BA comparable](
	a vspace.Space[S, VA, BA],
) Cotangent[S, vspace.Pair[VA, VA], vspace.Either[BA, BA], VA, BA] {
	return Cotangent[S, vspace.Pair[VA, VA], vspace.Either[BA, BA], VA, BA]{F: linmap.Dup(a)}
}

// JoinC equals AsCotangent of the corresponding merge.
func JoinC[S vspace.Float, A any, BA comparable, B any, BB comparable, C any, BC comparable](
	f Cotangent[S, A, BA, C, BC], g Cotangent[S, B, BB, C, BC],
) Cotangent[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC] {
	return Cotangent[S, vspace.Pair[A, B], vspace.Either[BA, BB], C, BC]{F: linmap.Fork(f.F, g.F)}
}

// ScaleC equals AsCotangent(Embed(scale)); scaling is its own transpose.
func ScaleC[S vspace.Float, A any, BA comparable](
	sp vspace.Space[S, A, BA], s S,
) Cotangent[S, A, BA, A, BA] {
	return Cotangent[S, A, BA, A, BA]{F: linmap.Scalar(sp, s)}
}

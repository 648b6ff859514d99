// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

// Cont is the continuation-passing encoding of a morphism a→b over some base
// category with a fixed answer object r: it transforms a consumer of b
// (a base morphism b→r, here of type KBR) into a consumer of a (type KAR).
//
// Go cannot abstract over the base category as a type constructor, so each
// combinator takes the base operations it needs as explicit parameters
// (dictionary passing). KBR and KAR are the Go types of the two base
// morphisms involved.
//
// Representation invariant: a Cont value must be the image of some real base
// morphism f under Embed, i.e. behave as k ↦ k ∘ f. This is enforced by
// construction only; it is never checked at run time.
type Cont[KBR, KAR any] struct {
	F func(KBR) KAR
}

// Embed lifts a base morphism f: a→b into the transform by right-composition
// with the base category's compose. The functor laws
// Embed(id) == Identity and Embed(g∘f) == Compose(Embed(g), Embed(f))
// follow from associativity of the base compose.
func Embed[KAB, KBR, KAR any](compose func(KBR, KAB) KAR, f KAB) Cont[KBR, KAR] {
	return Cont[KBR, KAR]{F: func(k KBR) KAR { return compose(k, f) }}
}

// Identity is the identity on consumers.
func Identity[KAR any]() Cont[KAR, KAR] {
	return Cont[KAR, KAR]{F: func(k KAR) KAR { return k }}
}

// Compose chains two transformed morphisms. The underlying transformers
// compose in reverse: consuming (g∘f)'s output means transforming the
// continuation through g first, then f.
func Compose[KCR, KBR, KAR any](g Cont[KCR, KBR], f Cont[KBR, KAR]) Cont[KCR, KAR] {
	return Cont[KCR, KAR]{F: func(k KCR) KAR { return f.F(g.F(k)) }}
}

// Cross combines two transformed morphisms over a product domain/codomain.
//
// Product structure at this level is built from the base category's SUM
// structure: a continuation on (c, d) is split into continuations on c and d
// by the base unjoin, and the two transformed consumers are merged back by
// the base join. The swap is forced by the encoding (the transform runs
// against the direction of the original morphisms) and must not be
// "corrected" to the base product operators.
func Cross[KCDR, KCR, KDR, KABR, KAR, KBR any](
	unjoin func(KCDR) (KCR, KDR),
	join func(KAR, KBR) KABR,
	f Cont[KCR, KAR], g Cont[KDR, KBR],
) Cont[KCDR, KABR] {
	return Cont[KCDR, KABR]{F: func(k KCDR) KABR {
		kc, kd := unjoin(k)
		return join(f.F(kc), g.F(kd))
	}}
}

// Fork pairs two transformed morphisms sharing a domain, derived as
// Cross(f, g) ∘ Embed(dup) with dup the base category's diagonal.
func Fork[KCDR, KCR, KDR, KAR, KAAR, KDUP any](
	unjoin func(KCDR) (KCR, KDR),
	join func(KAR, KAR) KAAR,
	compose func(KAAR, KDUP) KAR,
	dup KDUP,
	f Cont[KCR, KAR], g Cont[KDR, KAR],
) Cont[KCDR, KAR] {
	return Compose(Cross(unjoin, join, f, g), Embed(compose, dup))
}

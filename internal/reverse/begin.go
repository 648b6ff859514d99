// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

// Begin is the mirror image of Cont: instead of transforming consumers of
// the output, it transforms producers of the input. With a fixed start
// object r, a morphism a→b becomes a transformer from base morphisms r→a
// (type KRA) to base morphisms r→b (type KRB).
//
// Same representation invariant as Cont: values must be images of real base
// morphisms under BeginEmbed, enforced by construction.
type Begin[KRA, KRB any] struct {
	F func(KRA) KRB
}

// BeginEmbed lifts a base morphism f: a→b by left-composition: a producer of
// a becomes a producer of b by running f afterwards.
func BeginEmbed[KAB, KRA, KRB any](compose func(KAB, KRA) KRB, f KAB) Begin[KRA, KRB] {
	return Begin[KRA, KRB]{F: func(src KRA) KRB { return compose(f, src) }}
}

// BeginIdentity is the identity on producers.
func BeginIdentity[KRA any]() Begin[KRA, KRA] {
	return Begin[KRA, KRA]{F: func(src KRA) KRA { return src }}
}

// BeginCompose chains in the order of the original morphisms, without the
// reversal Cont needs, because producers already flow forwards.
func BeginCompose[KRA, KRB, KRC any](g Begin[KRB, KRC], f Begin[KRA, KRB]) Begin[KRA, KRC] {
	return Begin[KRA, KRC]{F: func(src KRA) KRC { return g.F(f.F(src)) }}
}

// BeginCross combines two transformed morphisms over products. Because Begin
// models transformations from a fixed source, its product handling stays
// aligned with the base category's own PRODUCT structure: a producer of
// (a, b) is split by the base unfork and the results are re-paired by the
// base fork. Sum structure plays no role here, in contrast to Cont.
func BeginCross[KRAB, KRA, KRB, KRCD, KRC, KRD any](
	unfork func(KRAB) (KRA, KRB),
	fork func(KRC, KRD) KRCD,
	f Begin[KRA, KRC], g Begin[KRB, KRD],
) Begin[KRAB, KRCD] {
	return Begin[KRAB, KRCD]{F: func(src KRAB) KRCD {
		sa, sb := unfork(src)
		return fork(f.F(sa), g.F(sb))
	}}
}

// BeginFork pairs two transformed morphisms sharing a domain, derived as
// BeginCross(f, g) ∘ BeginEmbed(dup).
func BeginFork[KRA, KRAA, KRB, KRC, KRBC, KDUP any](
	compose func(KDUP, KRA) KRAA,
	dup KDUP,
	unfork func(KRAA) (KRA, KRA),
	fork func(KRB, KRC) KRBC,
	f Begin[KRA, KRB], g Begin[KRA, KRC],
) Begin[KRA, KRBC] {
	return BeginCompose(BeginCross(unfork, fork, f, g), BeginEmbed(compose, dup))
}

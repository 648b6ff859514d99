// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

// Dual is the naive transpose category: a morphism a→b is represented by a
// base morphism b→a (the Go type KBA), composition reverses, and product
// structure swaps with sum structure.
//
// Precondition: this wrapper is only sound when the base category's product
// is a true biproduct, so that injections and projections of a product are
// related by the very morphisms the swap relies on. Linear maps satisfy it;
// an arbitrary base category does not, and nothing here checks it. Callers
// that cannot assume a biproduct must use Cotangent instead, which routes
// through the scalar pairing explicitly.
type Dual[KBA any] struct {
	F KBA
}

// DualIdentity wraps the base identity.
func DualIdentity[KAA any](id KAA) Dual[KAA] { return Dual[KAA]{F: id} }

// DualCompose transposes composition: (g ∘ f)ᵀ = fᵀ ∘ gᵀ, so the underlying
// representations compose through the base category in reverse order.
func DualCompose[KBA, KCB, KCA any](
	compose func(KBA, KCB) KCA, g Dual[KCB], f Dual[KBA],
) Dual[KCA] {
	return Dual[KCA]{F: compose(f.F, g.F)}
}

// DualExl wraps the base LEFT INJECTION: the transpose of a projection is
// the corresponding injection.
func DualExl[K any](inl K) Dual[K] { return Dual[K]{F: inl} }

// DualExr wraps the base right injection.
func DualExr[K any](inr K) Dual[K] { return Dual[K]{F: inr} }

// DualDup wraps the base MERGE: the transpose of duplication sums both slots.
func DualDup[K any](jam K) Dual[K] { return Dual[K]{F: jam} }

// DualFork merges transposed components: ⟨f, g⟩ᵀ = [fᵀ, gᵀ].
func DualFork[KBA, KCA, KBCA any](join func(KBA, KCA) KBCA, f Dual[KBA], g Dual[KCA]) Dual[KBCA] {
	return Dual[KBCA]{F: join(f.F, g.F)}
}

// DualInl wraps the base left projection.
func DualInl[K any](exl K) Dual[K] { return Dual[K]{F: exl} }

// DualInr wraps the base right projection.
func DualInr[K any](exr K) Dual[K] { return Dual[K]{F: exr} }

// DualJam wraps the base duplication.
func DualJam[K any](dup K) Dual[K] { return Dual[K]{F: dup} }

// DualJoin splits into transposed components: [f, g]ᵀ = ⟨fᵀ, gᵀ⟩.
func DualJoin[KAB, KAC, KABC any](fork func(KAB, KAC) KABC, f Dual[KAB], g Dual[KAC]) Dual[KABC] {
	return Dual[KABC]{F: fork(f.F, g.F)}
}

// DualScale wraps the base scalar action; scaling is self-transpose.
func DualScale[K any](scale K) Dual[K] { return Dual[K]{F: scale} }

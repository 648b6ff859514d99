// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linmap

import "github.com/catad-ml/catad/internal/vspace"

// Indexed-family structure: the n-ary analogues of the pairwise operators,
// aligned with vspace.Family. Each follows the same per-slot rule as its
// binary counterpart.

// FamilyAt projects slot i out of an n-fold family.
func FamilyAt[S vspace.Float, V any, B comparable](
	n int, elem vspace.Space[S, V, B], i int,
) Map[S, []V, vspace.Slot[B], V, B] {
	return Map[S, []V, vspace.Slot[B], V, B]{
		Dom: vspace.Family(n, elem),
		Cod: elem,
		OnBasis: func(s vspace.Slot[B]) V {
			if s.Index == i {
				return elem.BasisValue(s.At)
			}
			return elem.Zero
		},
	}
}

// FamilyIn injects a vector into slot i of an n-fold family.
func FamilyIn[S vspace.Float, V any, B comparable](
	n int, elem vspace.Space[S, V, B], i int,
) Map[S, V, B, []V, vspace.Slot[B]] {
	fam := vspace.Family(n, elem)
	return Map[S, V, B, []V, vspace.Slot[B]]{
		Dom:     elem,
		Cod:     fam,
		OnBasis: func(b B) []V { return fam.BasisValue(vspace.Slot[B]{Index: i, At: b}) },
	}
}

// ForkN pairs n maps sharing a domain into a family-valued map. The codomain
// element space is passed explicitly so the empty family is well formed.
func ForkN[S vspace.Float, A any, BA comparable, B any, BB comparable](
	cod vspace.Space[S, B, BB], fs ...Map[S, A, BA, B, BB],
) Map[S, A, BA, []B, vspace.Slot[BB]] {
	if len(fs) == 0 {
		panic("linmap: ForkN needs a shared domain; supply at least one map")
	}
	return Map[S, A, BA, []B, vspace.Slot[BB]]{
		Dom: fs[0].Dom,
		Cod: vspace.Family(len(fs), cod),
		OnBasis: func(ba BA) []B {
			out := make([]B, len(fs))
			for i, f := range fs {
				out[i] = f.OnBasis(ba)
			}
			return out
		},
	}
}

// JoinN merges n maps sharing a codomain into a map out of a family.
func JoinN[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], fs ...Map[S, A, BA, B, BB],
) Map[S, []A, vspace.Slot[BA], B, BB] {
	if len(fs) == 0 {
		panic("linmap: JoinN needs a shared codomain; supply at least one map")
	}
	return Map[S, []A, vspace.Slot[BA], B, BB]{
		Dom:     vspace.Family(len(fs), dom),
		Cod:     fs[0].Cod,
		OnBasis: func(s vspace.Slot[BA]) B { return fs[s.Index].OnBasis(s.At) },
	}
}

// CrossN applies n maps slot-wise across a family: the block-diagonal map.
func CrossN[S vspace.Float, A any, BA comparable, B any, BB comparable](
	dom vspace.Space[S, A, BA], cod vspace.Space[S, B, BB],
	fs ...Map[S, A, BA, B, BB],
) Map[S, []A, vspace.Slot[BA], []B, vspace.Slot[BB]] {
	codFam := vspace.Family(len(fs), cod)
	return Map[S, []A, vspace.Slot[BA], []B, vspace.Slot[BB]]{
		Dom: vspace.Family(len(fs), dom),
		Cod: codFam,
		OnBasis: func(s vspace.Slot[BA]) []B {
			out := make([]B, len(fs))
			for i := range out {
				out[i] = cod.Zero
			}
			out[s.Index] = fs[s.Index].OnBasis(s.At)
			return out
		},
	}
}

// JamN folds every slot of an n-fold family by addition.
func JamN[S vspace.Float, V any, B comparable](
	n int, elem vspace.Space[S, V, B],
) Map[S, []V, vspace.Slot[B], V, B] {
	return Map[S, []V, vspace.Slot[B], V, B]{
		Dom:     vspace.Family(n, elem),
		Cod:     elem,
		OnBasis: func(s vspace.Slot[B]) V { return elem.BasisValue(s.At) },
	}
}

// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

// Hom builds the space of linear maps from b to c. Its basis index is a
// (domain basis, codomain basis) pair: the basis map at (bb, bc) sends bb to
// c's basis vector at bc and every other domain basis index to zero.
func Hom[S vspace.Float, VB any, BB comparable, VC any, BC comparable](
	b vspace.Space[S, VB, BB], c vspace.Space[S, VC, BC],
) vspace.Space[S, linmap.Map[S, VB, BB, VC, BC], Prod[BB, BC]] {
	basis := make([]Prod[BB, BC], 0, len(b.Basis)*len(c.Basis))
	for _, bb := range b.Basis {
		for _, bc := range c.Basis {
			basis = append(basis, Prod[BB, BC]{bb, bc})
		}
	}
	return vspace.Space[S, linmap.Map[S, VB, BB, VC, BC], Prod[BB, BC]]{
		Zero:  linmap.Zero(b, c),
		Basis: basis,
		Add: func(x, y linmap.Map[S, VB, BB, VC, BC]) linmap.Map[S, VB, BB, VC, BC] {
			return linmap.Add(x, y)
		},
		Scale: func(s S, m linmap.Map[S, VB, BB, VC, BC]) linmap.Map[S, VB, BB, VC, BC] {
			return linmap.Scale(s, m)
		},
		Decompose: func(m linmap.Map[S, VB, BB, VC, BC]) []vspace.Coord[Prod[BB, BC], S] {
			var out []vspace.Coord[Prod[BB, BC], S]
			for _, bb := range b.Basis {
				for _, cc := range c.Decompose(m.OnBasis(bb)) {
					out = append(out, vspace.Coord[Prod[BB, BC], S]{
						Basis: Prod[BB, BC]{bb, cc.Basis},
						Coeff: cc.Coeff,
					})
				}
			}
			return out
		},
		BasisValue: func(p Prod[BB, BC]) linmap.Map[S, VB, BB, VC, BC] {
			return linmap.New(b, c, func(bb BB) VC {
				if bb == p.A {
					return c.BasisValue(p.B)
				}
				return c.Zero
			})
		},
	}
}

// Curry turns a map out of a tensor product into a map into a Hom space:
// the adjunction Hom(a⊗b, c) ≅ Hom(a, Hom(b, c)). The factor spaces are
// passed explicitly.
func Curry[S vspace.Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB], c vspace.Space[S, VC, BC],
	f linmap.Map[S, T[S, BA, BB], Prod[BA, BB], VC, BC],
) linmap.Map[S, VA, BA, linmap.Map[S, VB, BB, VC, BC], Prod[BB, BC]] {
	return linmap.New(a, Hom(b, c), func(ba BA) linmap.Map[S, VB, BB, VC, BC] {
		return linmap.New(b, c, func(bb BB) VC {
			return f.OnBasis(Prod[BA, BB]{ba, bb})
		})
	})
}

// Uncurry inverts Curry.
func Uncurry[S vspace.Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable](
	a vspace.Space[S, VA, BA], b vspace.Space[S, VB, BB], c vspace.Space[S, VC, BC],
	g linmap.Map[S, VA, BA, linmap.Map[S, VB, BB, VC, BC], Prod[BB, BC]],
) linmap.Map[S, T[S, BA, BB], Prod[BA, BB], VC, BC] {
	return linmap.New(Space(a, b), c, func(p Prod[BA, BB]) VC {
		return g.OnBasis(p.A).OnBasis(p.B)
	})
}

// MapTensor is the product of maps f ⊗ g: on a basis pair it forms the outer
// product of f's and g's per-basis decompositions, so each input pair costs
// O(|basis of f.Cod| · |basis of g.Cod|).
func MapTensor[S vspace.Float, VA any, BA comparable, VB any, BB comparable, VC any, BC comparable, VD any, BD comparable](
	f linmap.Map[S, VA, BA, VC, BC], g linmap.Map[S, VB, BB, VD, BD],
) linmap.Map[S, T[S, BA, BB], Prod[BA, BB], T[S, BC, BD], Prod[BC, BD]] {
	return linmap.New(Space(f.Dom, g.Dom), Space(f.Cod, g.Cod), func(p Prod[BA, BB]) T[S, BC, BD] {
		return Pure(f.Cod, g.Cod, f.OnBasis(p.A), g.OnBasis(p.B))
	})
}

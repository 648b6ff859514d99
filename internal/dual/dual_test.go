// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catad-ml/catad/internal/linmap"
	"github.com/catad-ml/catad/internal/vspace"
)

const eps = 1e-12

type (
	unit = vspace.Unit
	pr   = vspace.Pair[float64, float64]
)

var (
	r  = vspace.Scalar[float64]()
	r2 = vspace.Product(r, r)
)

// TestDualRoundTrip checks FromDual ∘ ToDual == id on R².
func TestDualRoundTrip(t *testing.T) {
	for _, v := range []pr{
		{Fst: 0, Snd: 0},
		{Fst: 1, Snd: 2},
		{Fst: -3.5, Snd: 0.25},
	} {
		got := FromDual(r2, ToDual(r2, v))
		assert.InDelta(t, v.Fst, got.Fst, eps)
		assert.InDelta(t, v.Snd, got.Snd, eps)
	}
}

// TestDualPairing checks that ToDual produces the coordinate inner product.
func TestDualPairing(t *testing.T) {
	d := ToDual(r2, pr{Fst: 2, Snd: 3})
	assert.InDelta(t, 2.0*4+3.0*5, d.At(pr{Fst: 4, Snd: 5}), eps)
}

// TestDualSpaceStructure checks that the dual space is itself a vector
// space with pointwise structure and the shared basis.
func TestDualSpaceStructure(t *testing.T) {
	ds := Space(r2)
	require.Equal(t, r2.Dim(), ds.Dim())

	x := ToDual(r2, pr{Fst: 1, Snd: 2})
	y := ToDual(r2, pr{Fst: 10, Snd: 20})
	v := pr{Fst: 1, Snd: 1}

	sum := ds.Add(x, y)
	assert.InDelta(t, x.At(v)+y.At(v), sum.At(v), eps)

	scaled := ds.Scale(3, x)
	assert.InDelta(t, 3*x.At(v), scaled.At(v), eps)

	// Basis functional extracts the matching coefficient.
	phi := ds.BasisValue(ds.Basis[1])
	assert.InDelta(t, 2.0, phi.At(pr{Fst: 1, Snd: 2}), eps)

	// Round trip through the dual space's own decomposition.
	back := vspace.Recompose(ds, ds.Decompose(x))
	assert.InDelta(t, x.At(v), back.At(v), eps)
}

// TestDualMapRoundTrip preserves the worked regression: f(a, b) = 2a + 3b,
// f(2, 1) == 7, exactly through a ToDualMap/FromDualMap round trip.
func TestDualMapRoundTrip(t *testing.T) {
	f := linmap.Join(linmap.Scalar(r, 2), linmap.Scalar(r, 3))
	require.InDelta(t, 7.0, f.Apply(pr{Fst: 2, Snd: 1}), eps)

	g := FromDualMap(r2, r, ToDualMap(f))
	assert.InDelta(t, 7.0, g.Apply(pr{Fst: 2, Snd: 1}), eps)

	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: 0, Snd: 1}, {Fst: -4, Snd: 2.5}} {
		assert.InDelta(t, f.Apply(v), g.Apply(v), eps)
	}
}

// TestToDualMapTransposes checks the transpose on a non-symmetric map
// R² → R²: the dual's action table is the original's, flipped.
func TestToDualMapTransposes(t *testing.T) {
	// h(x, y) = (2x + 3y, 5y)
	h := linmap.Fork(
		linmap.Join(linmap.Scalar(r, 2), linmap.Scalar(r, 3)),
		linmap.Join(linmap.Zero(r, r), linmap.Scalar(r, 5)),
	)
	ht := ToDualMap(h)

	// Pulling the functional ⟨(1, 0), ·⟩ back through h pairs against the
	// first row of h, i.e. the vector (2, 3).
	phi := ToDual(r2, pr{Fst: 1, Snd: 0})
	pulled := ht.Apply(phi)
	assert.InDelta(t, 2.0, pulled.At(pr{Fst: 1, Snd: 0}), eps)
	assert.InDelta(t, 3.0, pulled.At(pr{Fst: 0, Snd: 1}), eps)

	back := FromDualMap(r2, r2, ht)
	for _, v := range []pr{{Fst: 1, Snd: 2}, {Fst: -1, Snd: 4}} {
		want := h.Apply(v)
		got := back.Apply(v)
		assert.InDelta(t, want.Fst, got.Fst, eps)
		assert.InDelta(t, want.Snd, got.Snd, eps)
	}
}

// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package forward

import (
	"math"
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

// TestPrimitiveDerivatives checks every numeric primitive against its
// closed-form derivative at sample points.
func TestPrimitiveDerivatives(t *testing.T) {
	for _, x := range []float64{-1.2, 0, 0.5, 2} {
		y, d := Sin[float64]().At(x)
		assert.InDelta(t, math.Sin(x), y, eps)
		assert.InDelta(t, math.Cos(x), d.Apply(1), eps)

		y, d = Cos[float64]().At(x)
		assert.InDelta(t, math.Cos(x), y, eps)
		assert.InDelta(t, -math.Sin(x), d.Apply(1), eps)

		y, d = Exp[float64]().At(x)
		assert.InDelta(t, math.Exp(x), y, eps)
		assert.InDelta(t, math.Exp(x), d.Apply(1), eps)

		y, d = Negate[float64]().At(x)
		assert.InDelta(t, -x, y, eps)
		assert.InDelta(t, -1.0, d.Apply(1), eps)
	}
}

// TestAddDerivative checks d(a+b) sums both perturbations.
func TestAddDerivative(t *testing.T) {
	y, d := Add[float64]().At(pr{Fst: 3, Snd: 4})
	assert.InDelta(t, 7.0, y, eps)
	assert.InDelta(t, 1.0, d.Apply(pr{Fst: 1, Snd: 0}), eps)
	assert.InDelta(t, 1.0, d.Apply(pr{Fst: 0, Snd: 1}), eps)
	assert.InDelta(t, 5.0, d.Apply(pr{Fst: 2, Snd: 3}), eps)
}

// TestMulDerivative checks d(a·b) is (da, db) ↦ b·da + a·db.
func TestMulDerivative(t *testing.T) {
	y, d := Mul[float64]().At(pr{Fst: 3, Snd: 4})
	assert.InDelta(t, 12.0, y, eps)
	assert.InDelta(t, 4.0, d.Apply(pr{Fst: 1, Snd: 0}), eps)
	assert.InDelta(t, 3.0, d.Apply(pr{Fst: 0, Snd: 1}), eps)
	assert.InDelta(t, 4.0*2+3.0*5, d.Apply(pr{Fst: 2, Snd: 5}), eps)
}

// TestChainRule checks composition on x ↦ exp(x²).
func TestChainRule(t *testing.T) {
	sq := Compose(Mul[float64](), Dup(r))
	f := Compose(Exp[float64](), sq)

	x := 1.5
	y, d := f.At(x)
	assert.InDelta(t, math.Exp(x*x), y, eps)
	assert.InDelta(t, 2*x*math.Exp(x*x), d.Apply(1), 1e-10)
}

// TestForkAndProjections checks the product structure of D on
// f(x) = (sin x, x·x).
func TestForkAndProjections(t *testing.T) {
	sq := Compose(Mul[float64](), Dup(r))
	f := Fork(Sin[float64](), sq)

	x := 0.7
	v, d := f.At(x)
	assert.InDelta(t, math.Sin(x), v.Fst, eps)
	assert.InDelta(t, x*x, v.Snd, eps)

	dv := d.Apply(1)
	assert.InDelta(t, math.Cos(x), dv.Fst, eps)
	assert.InDelta(t, 2*x, dv.Snd, eps)

	// exl ∘ ⟨f, g⟩ == f, including the derivative part.
	left := Compose(Exl(r, r), f)
	lv, ld := left.At(x)
	assert.InDelta(t, math.Sin(x), lv, eps)
	assert.InDelta(t, math.Cos(x), ld.Apply(1), eps)

	right := Compose(Exr(r, r), f)
	rv, rd := right.At(x)
	assert.InDelta(t, x*x, rv, eps)
	assert.InDelta(t, 2*x, rd.Apply(1), eps)
}

// TestCategoryLaws checks the identity laws through values and derivatives.
func TestCategoryLaws(t *testing.T) {
	f := Compose(Mul[float64](), Dup(r))

	lhs := Compose(f, Identity(r))
	rhs := Compose(Identity(r), f)
	for _, x := range []float64{-2, 0.5, 3} {
		fv, fd := f.At(x)
		lv, ld := lhs.At(x)
		rv, rd := rhs.At(x)
		assert.InDelta(t, fv, lv, eps)
		assert.InDelta(t, fv, rv, eps)
		assert.InDelta(t, fd.Apply(1), ld.Apply(1), eps)
		assert.InDelta(t, fd.Apply(1), rd.Apply(1), eps)
	}
}

// TestSinTimesX checks the product rule on f(x) = x·sin x.
func TestSinTimesX(t *testing.T) {
	f := Compose(Mul[float64](), Fork(Identity(r), Sin[float64]()))
	x := 2.0
	y, d := f.At(x)
	assert.InDelta(t, x*math.Sin(x), y, eps)
	assert.InDelta(t, math.Sin(x)+x*math.Cos(x), d.Apply(1), 1e-10)
}

// TestJoinSums checks (f ▽ g)(a, b) = f(a) + g(b) with merged derivative.
func TestJoinSums(t *testing.T) {
	f := Join(Sin[float64](), Exp[float64]())
	v := pr{Fst: 0.3, Snd: 0.9}
	y, d := f.At(v)
	assert.InDelta(t, math.Sin(0.3)+math.Exp(0.9), y, eps)
	assert.InDelta(t, math.Cos(0.3)*2+math.Exp(0.9)*5, d.Apply(pr{Fst: 2, Snd: 5}), 1e-10)
}

// TestCross checks parallel composition over a product domain.
func TestCross(t *testing.T) {
	f := Cross(Sin[float64](), Exp[float64]())
	v, d := f.At(pr{Fst: 0.2, Snd: 0.4})
	assert.InDelta(t, math.Sin(0.2), v.Fst, eps)
	assert.InDelta(t, math.Exp(0.4), v.Snd, eps)

	dv := d.Apply(pr{Fst: 1, Snd: 2})
	assert.InDelta(t, math.Cos(0.2), dv.Fst, eps)
	assert.InDelta(t, 2*math.Exp(0.4), dv.Snd, eps)
}

// TestCrossN checks the slot-wise family extension.
func TestCrossN(t *testing.T) {
	f := CrossN(r, r, Sin[float64](), Exp[float64](), Negate[float64]())
	vs, d := f.At([]float64{0.1, 0.2, 0.3})
	require.Len(t, vs, 3)
	assert.InDelta(t, math.Sin(0.1), vs[0], eps)
	assert.InDelta(t, math.Exp(0.2), vs[1], eps)
	assert.InDelta(t, -0.3, vs[2], eps)

	dv := d.Apply([]float64{1, 1, 1})
	assert.InDelta(t, math.Cos(0.1), dv[0], eps)
	assert.InDelta(t, math.Exp(0.2), dv[1], eps)
	assert.InDelta(t, -1.0, dv[2], eps)

	require.Panics(t, func() { f.At([]float64{0.1, 0.2}) })
}

// TestConst has a zero derivative everywhere.
func TestConst(t *testing.T) {
	c := Const(r2, r, 42.0)
	y, d := c.At(pr{Fst: 1, Snd: 2})
	assert.InDelta(t, 42.0, y, eps)
	assert.InDelta(t, 0.0, d.Apply(pr{Fst: 3, Snd: 4}), eps)
}

// TestLinearDerivativeIsSelf checks that a lifted linear map is its own
// derivative at every point.
func TestLinearDerivativeIsSelf(t *testing.T) {
	m := linmap.Join(linmap.Scalar(r, 2), linmap.Scalar(r, 3))
	f := Linear(m)
	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: 2, Snd: 1}, {Fst: -1, Snd: 4}} {
		y, d := f.At(v)
		assert.InDelta(t, m.Apply(v), y, eps)
		probe := pr{Fst: 1, Snd: 1}
		assert.InDelta(t, m.Apply(probe), d.Apply(probe), eps)
	}
}

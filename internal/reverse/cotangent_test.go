// Copyright 2026 Catad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reverse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catad-ml/catad/internal/forward"
	"github.com/catad-ml/catad/internal/linmap"
)

func assertPairNear(t *testing.T, want, got pr) {
	t.Helper()
	assert.InDelta(t, want.Fst, got.Fst, eps)
	assert.InDelta(t, want.Snd, got.Snd, eps)
}

func TestDotUndotRoundTrip(t *testing.T) {
	v := pr{Fst: 2.5, Snd: -1}
	k := Dot(r2, v)
	assert.InDelta(t, 2.5, k.Apply(pr{Fst: 1, Snd: 0}), eps)
	assert.InDelta(t, -1.0, k.Apply(pr{Fst: 0, Snd: 1}), eps)
	assertPairNear(t, v, Undot(r2, k))
}

// TestAsCotangentTransposes checks that the pullback of f(a, b) = 2a + 3b
// carries a scalar cotangent to its gradient contribution.
func TestAsCotangentTransposes(t *testing.T) {
	cot := AsCotangent(r2, r, Embed(compose2R, twoThree()))
	assertPairNear(t, pr{Fst: 2, Snd: 3}, cot.Pull(1))
	assertPairNear(t, pr{Fst: 4, Snd: 6}, cot.Pull(2))
}

// The combinator tests below all take the same shape: build the morphism in
// continuation form, push it through AsCotangent, and check the direct
// combinator computes the same pullback.

func TestIdentityCAgrees(t *testing.T) {
	via := AsCotangent(r2, r2, Identity[m2R]())
	direct := IdentityC(r2)
	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: 0, Snd: 1}, {Fst: 2, Snd: -3}} {
		assertPairNear(t, via.Pull(v), direct.Pull(v))
	}
}

func TestComposeCAgrees(t *testing.T) {
	fm := twoThree()
	gm := linmap.Scalar(r, 4)
	fc := AsCotangent(r2, r, Embed(compose2R, fm))
	gc := AsCotangent(r, r, Embed(composeRR, gm))

	via := AsCotangent(r2, r, Compose(Embed(composeRR, gm), Embed(compose2R, fm)))
	direct := ComposeC(gc, fc)
	for _, s := range []float64{1, -0.5} {
		assertPairNear(t, via.Pull(s), direct.Pull(s))
	}
	assertPairNear(t, pr{Fst: 8, Snd: 12}, direct.Pull(1))
}

func TestExlCAgrees(t *testing.T) {
	via := AsCotangent(r2, r, Embed(compose2R, linmap.Exl(r, r)))
	direct := ExlC(r, r)
	assertPairNear(t, via.Pull(1), direct.Pull(1))
	assertPairNear(t, pr{Fst: 1, Snd: 0}, direct.Pull(1))
}

func TestExrCAgrees(t *testing.T) {
	via := AsCotangent(r2, r, Embed(compose2R, linmap.Exr(r, r)))
	direct := ExrC(r, r)
	assertPairNear(t, via.Pull(1), direct.Pull(1))
	assertPairNear(t, pr{Fst: 0, Snd: 1}, direct.Pull(1))
}

func TestDupCAgrees(t *testing.T) {
	via := AsCotangent(r, r2, Embed(composeR2, linmap.Dup(r)))
	direct := DupC(r)
	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: 2, Snd: 5}} {
		assert.InDelta(t, via.Pull(v), direct.Pull(v), eps)
	}
	assert.InDelta(t, 7.0, direct.Pull(pr{Fst: 2, Snd: 5}), eps)
}

func TestJamCAgrees(t *testing.T) {
	via := AsCotangent(r2, r, Embed(compose2R, linmap.Jam(r)))
	direct := JamC(r)
	assertPairNear(t, via.Pull(1), direct.Pull(1))
	assertPairNear(t, pr{Fst: 1, Snd: 1}, direct.Pull(1))
}

func TestInlCAgrees(t *testing.T) {
	via := AsCotangent(r, r2, Embed(composeR2, linmap.Inl(r, r)))
	direct := InlC(r, r)
	assert.InDelta(t, via.Pull(pr{Fst: 5, Snd: 7}), direct.Pull(pr{Fst: 5, Snd: 7}), eps)
	assert.InDelta(t, 5.0, direct.Pull(pr{Fst: 5, Snd: 7}), eps)
}

func TestInrCAgrees(t *testing.T) {
	via := AsCotangent(r, r2, Embed(composeR2, linmap.Inr(r, r)))
	direct := InrC(r, r)
	assert.InDelta(t, 7.0, direct.Pull(pr{Fst: 5, Snd: 7}), eps)
	assert.InDelta(t, via.Pull(pr{Fst: 5, Snd: 7}), direct.Pull(pr{Fst: 5, Snd: 7}), eps)
}

func TestForkCAgrees(t *testing.T) {
	fm := twoThree()
	gm := linmap.Join(linmap.Scalar(r, -1), linmap.Scalar(r, 5))

	via := AsCotangent(r2, r2, Fork(unjoinRR, join22, compose2D, linmap.Dup(r2),
		Embed(compose2R, fm), Embed(compose2R, gm)))
	direct := ForkC(
		AsCotangent(r2, r, Embed(compose2R, fm)),
		AsCotangent(r2, r, Embed(compose2R, gm)))

	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: 0, Snd: 1}, {Fst: 1, Snd: 2}} {
		assertPairNear(t, via.Pull(v), direct.Pull(v))
	}
	// ⟨2a+3b, -a+5b⟩ pulls (u, v) back to (2u-v, 3u+5v).
	assertPairNear(t, pr{Fst: 0, Snd: 13}, direct.Pull(pr{Fst: 1, Snd: 2}))
}

func TestJoinCAgrees(t *testing.T) {
	cross := Cross(unjoinRR, joinRR,
		Embed(composeRR, linmap.Scalar(r, 2)),
		Embed(composeRR, linmap.Scalar(r, 3)))
	via := AsCotangent(r2, r, Compose(Embed(compose2R, linmap.Jam(r)), cross))
	direct := JoinC(ScaleC(r, 2.0), ScaleC(r, 3.0))

	assertPairNear(t, via.Pull(1), direct.Pull(1))
	assertPairNear(t, pr{Fst: 2, Snd: 3}, direct.Pull(1))
}

func TestScaleCAgrees(t *testing.T) {
	via := AsCotangent(r2, r2, Embed(compose22, linmap.Scalar(r2, 3)))
	direct := ScaleC(r2, 3.0)
	for _, v := range []pr{{Fst: 1, Snd: 0}, {Fst: -2, Snd: 4}} {
		assertPairNear(t, via.Pull(v), direct.Pull(v))
	}
}

// TestGradientOfProduct differentiates (x, y) ↦ x·y forwards and pulls the
// unit cotangent back: ∇(xy) at (3, 4) is (4, 3).
func TestGradientOfProduct(t *testing.T) {
	v, d := forward.Mul[float64]().At(pr{Fst: 3, Snd: 4})
	assert.InDelta(t, 12.0, v, eps)

	cot := AsCotangent(r2, r, Embed(compose2R, d))
	assertPairNear(t, pr{Fst: 4, Snd: 3}, cot.Pull(1))
}

// TestGradientOfMagnitudeSquared runs the full pipeline on
// f(x, y) = x² + y²: forward pass for the value and local derivative, then a
// single reverse sweep for the whole gradient.
func TestGradientOfMagnitudeSquared(t *testing.T) {
	sq := forward.Compose(forward.Mul[float64](), forward.Dup(r))
	magSqr := forward.Compose(forward.Add[float64](), forward.Cross(sq, sq))

	v, d := magSqr.At(pr{Fst: 3, Snd: 4})
	assert.InDelta(t, 25.0, v, eps)

	cot := AsCotangent(r2, r, Embed(compose2R, d))
	assertPairNear(t, pr{Fst: 6, Snd: 8}, cot.Pull(1))
	assertPairNear(t, pr{Fst: 3, Snd: 4}, cot.Pull(0.5))
}

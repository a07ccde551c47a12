package vec

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecNear(a, b Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestRotateRoundTrip(t *testing.T) {
	vectors := []Vector{{1, 0}, {0, 1}, {-3, 7}, {0.001, -42}}
	angles := []float64{0, 0.1, math.Pi / 3, math.Pi, -2.5, 6}
	for _, v := range vectors {
		for _, a := range angles {
			got := v.Rotate(a).Rotate(-a)
			if !vecNear(got, v) {
				t.Errorf("Rotate(%v, %v) round trip = %v, want %v", v, a, got, v)
			}
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := Vector{1, 0}.Rotate(math.Pi / 2)
	if !vecNear(got, Vector{0, 1}) {
		t.Errorf("quarter turn of (1,0) = %v, want (0,1)", got)
	}
}

func TestRotateAround(t *testing.T) {
	got := Vector{2, 1}.RotateAround(math.Pi, Vector{1, 1})
	if !vecNear(got, Vector{0, 1}) {
		t.Errorf("RotateAround = %v, want (0,1)", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{3, -4}
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if !near(n.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}

	_, err = (Vector{}).Normalize()
	if !errors.Is(err, ErrZeroMagnitude) {
		t.Errorf("Normalize of zero vector: err = %v, want ErrZeroMagnitude", err)
	}
	if z := (Vector{}).NormalizeOrZero(); !vecNear(z, Vector{}) {
		t.Errorf("NormalizeOrZero of zero vector = %v, want origin", z)
	}
}

func TestDiv(t *testing.T) {
	got, err := Vector{4, -6}.Div(2)
	if err != nil || !vecNear(got, Vector{2, -3}) {
		t.Errorf("Div = %v, %v", got, err)
	}
	_, err = Vector{1, 1}.Div(0)
	if !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("Div by zero: err = %v, want ErrZeroDivisor", err)
	}
}

func TestAngleSign(t *testing.T) {
	// (1,0) -> (0,1) is a counter-clockwise quarter turn: positive.
	a, err := Vector{1, 0}.Angle(Vector{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !near(a, math.Pi/2) {
		t.Errorf("ccw angle = %v, want +π/2", a)
	}
	// The reverse is clockwise: negative.
	a, err = Vector{0, 1}.Angle(Vector{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if !near(a, -math.Pi/2) {
		t.Errorf("cw angle = %v, want -π/2", a)
	}

	if _, err := (Vector{}).Angle(Vector{1, 0}); !errors.Is(err, ErrZeroMagnitude) {
		t.Errorf("Angle with zero vector: err = %v, want ErrZeroMagnitude", err)
	}
}

func TestAngleClampsNearParallel(t *testing.T) {
	// Nearly identical directions can push cos(θ) past 1 by drift; Angle
	// must not return NaN.
	v := Vector{1e8, 1e8}
	a, err := v.Angle(v)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(a) || !near(a, 0) {
		t.Errorf("self angle = %v, want 0", a)
	}
}

func TestComponents(t *testing.T) {
	v := Vector{3, 4}
	axis := Vector{1, 0}
	par := v.ComponentParallel(axis)
	perp := v.ComponentPerpendicular(axis)
	if !vecNear(par, Vector{3, 0}) {
		t.Errorf("parallel = %v, want (3,0)", par)
	}
	if !vecNear(perp, Vector{0, 4}) {
		t.Errorf("perpendicular = %v, want (0,4)", perp)
	}
	if !vecNear(par.Add(perp), v) {
		t.Errorf("components do not recompose: %v + %v != %v", par, perp, v)
	}
	// Zero axis: nothing to project onto.
	if got := v.ComponentParallel(Vector{}); !vecNear(got, Vector{}) {
		t.Errorf("parallel to zero axis = %v, want origin", got)
	}
}

func TestClampLength(t *testing.T) {
	if got := (Vector{10, 0}).ClampLength(0, 5); !near(got.Length(), 5) {
		t.Errorf("clamped length = %v, want 5", got.Length())
	}
	if got := (Vector{1, 0}).ClampLength(2, 5); !near(got.Length(), 2) {
		t.Errorf("clamped length = %v, want 2", got.Length())
	}
	if got := (Vector{}).ClampLength(2, 5); !vecNear(got, Vector{}) {
		t.Errorf("zero vector clamp = %v, want origin", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp broken")
	}
	if Sign(0.0) != 1 || Sign(-0.5) != -1 || Sign(3.0) != 1 {
		t.Error("Sign broken")
	}
	if !near(Map(5, 0, 10, 0, 100), 50) {
		t.Error("Map broken")
	}
	if !near(Lerp(2.0, 4.0, 0.25), 2.5) {
		t.Error("Lerp broken")
	}
	if !near(Deg2Rad(180), math.Pi) || !near(Rad2Deg(math.Pi), 180) {
		t.Error("degree conversion broken")
	}
}

package camera

import (
	"math"
	"testing"
)

func TestOrbit_AdvanceAccumulates(t *testing.T) {
	o := New(10, 0.3, 6, 2)

	o.Advance(1.0)
	o.Advance(1.0)

	if math.Abs(float64(o.Angle())-0.6) > 1e-5 {
		t.Errorf("expected angle 0.6 after 2s at speed 0.3, got %v", o.Angle())
	}
}

func TestOrbit_ZeroDtHolds(t *testing.T) {
	o := New(10, 0.3, 6, 2)
	o.Advance(0.5)
	before := o.Angle()

	o.Advance(0)

	if o.Angle() != before {
		t.Errorf("expected angle unchanged on zero dt, got %v", o.Angle())
	}
}

func TestOrbit_EyeAtStart(t *testing.T) {
	o := New(10, 0.3, 6, 2)

	x, y, z := o.Eye()

	if math.Abs(float64(x)-10) > 1e-5 {
		t.Errorf("expected x=radius at angle 0, got %v", x)
	}
	if math.Abs(float64(y)-6) > 1e-5 {
		t.Errorf("expected y=height at angle 0, got %v", y)
	}
	if math.Abs(float64(z)) > 1e-5 {
		t.Errorf("expected z=0 at angle 0, got %v", z)
	}
}

func TestOrbit_EyeQuarterTurn(t *testing.T) {
	o := New(10, 1.0, 6, 2)
	o.Advance(float32(math.Pi / 2))

	x, y, z := o.Eye()

	if math.Abs(float64(x)) > 1e-4 {
		t.Errorf("expected x~0 at quarter turn, got %v", x)
	}
	if math.Abs(float64(z)-10) > 1e-4 {
		t.Errorf("expected z~radius at quarter turn, got %v", z)
	}

	wantY := 6 + math.Sin(math.Pi/4)*2
	if math.Abs(float64(y)-wantY) > 1e-4 {
		t.Errorf("expected y %v at quarter turn, got %v", wantY, y)
	}
}

func TestOrbit_BobStaysBounded(t *testing.T) {
	o := New(10, 1.0, 6, 2)

	for i := 0; i < 1000; i++ {
		o.Advance(0.1)
		_, y, _ := o.Eye()
		if y < 4-1e-4 || y > 8+1e-4 {
			t.Fatalf("eye height %v outside [4, 8] at angle %v", y, o.Angle())
		}
	}
}

package math3d

import (
	"math"
	"testing"
)

func TestQuaternionIdentityRotateVector(t *testing.T) {
	q := QuaternionIdentity()
	v := V3(1, 2, 3)
	got := q.RotateVector(v)
	if got != v {
		t.Errorf("identity rotation = %v, want %v", got, v)
	}
}

func TestQuaternionRotateVector90DegreesAroundY(t *testing.T) {
	q := QuaternionFromAxisAngle(V3(0, 1, 0), math.Pi/2)
	got := q.RotateVector(V3(1, 0, 0))
	want := V3(0, 0, -1)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("rotated = %v, want %v", got, want)
	}
}

func TestQuaternionNormalizePreservesDirection(t *testing.T) {
	q := NewQuaternion(0, 0, 0, 2)
	n := q.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}
	if n != QuaternionIdentity() {
		t.Errorf("normalized = %v, want %v (same direction as q)", n, QuaternionIdentity())
	}
}

func TestColorClampIdempotent(t *testing.T) {
	c := NewColor(1.5, -0.2, 0.5)
	once := c.Clamp()
	twice := once.Clamp()
	if once != twice {
		t.Errorf("clamp not idempotent: %v != %v", once, twice)
	}
	if once.R != 1 || once.G != 0 || once.B != 0.5 {
		t.Errorf("clamp = %v, want {1 0 0.5}", once)
	}
}

func TestColorToRGBA8Rounding(t *testing.T) {
	c := NewColor(1, 0, 0)
	rgba := c.ToRGBA8()
	if rgba.R != 255 {
		t.Errorf("R = %d, want 255", rgba.R)
	}
	if rgba.G != 0 {
		t.Errorf("G = %d, want 0", rgba.G)
	}
	if rgba.A != 0 {
		t.Errorf("A = %d, want 0", rgba.A)
	}
}

func TestColorToRGBA8AppliesGamma(t *testing.T) {
	// Linear 0.5 brightens under the sRGB transfer function: it should
	// land well above the naive linear byte value of 128.
	c := NewColor(0.5, 0.5, 0.5)
	rgba := c.ToRGBA8()
	if rgba.R <= 128 {
		t.Errorf("R = %d, want > 128 (gamma-corrected)", rgba.R)
	}
}

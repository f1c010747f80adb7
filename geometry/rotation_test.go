package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func matricesClose(a, b Matrix, tol float64) bool {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if math.Abs(a[r][c]-b[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

func TestRotationMatrixIsOrthonormal(t *testing.T) {
	angles := []float64{0, 1, 30, 45, 90, 135, 180, 270, 359, 360, 720, -45, -90, -360, -1000, 1234.5}

	for _, angle := range angles {
		m := RotationMatrix(angle)

		// M^T * M ~= I
		p := m.Transpose().Mul(m)
		if !matricesClose(p, Identity(), tolerance) {
			t.Fatalf("M^T*M != I for angle %v: %v", angle, p)
		}

		if det := m.Determinant(); math.Abs(det-1) > tolerance {
			t.Fatalf("det(M) = %v for angle %v, want 1", det, angle)
		}

		// Rows are unit length
		for r := 0; r < 2; r++ {
			rowLen := math.Hypot(m[r][0], m[r][1])
			if math.Abs(rowLen-1) > tolerance {
				t.Fatalf("row %d of M(%v) has length %v, want 1", r, angle, rowLen)
			}
		}
	}
}

func TestRotationMatrixZeroIsIdentity(t *testing.T) {
	m := RotationMatrix(0)
	if !matricesClose(m, Identity(), tolerance) {
		t.Fatalf("M(0) = %v, want identity", m)
	}
}

func TestRotationMatrixPeriodicity(t *testing.T) {
	if !matricesClose(RotationMatrix(360), RotationMatrix(0), tolerance) {
		t.Fatalf("M(360) = %v, want M(0) = %v", RotationMatrix(360), RotationMatrix(0))
	}
	if !matricesClose(RotationMatrix(45+720), RotationMatrix(45), 1e-8) {
		t.Fatalf("M(765) = %v, want M(45) = %v", RotationMatrix(45+720), RotationMatrix(45))
	}
	if !matricesClose(RotationMatrix(-315), RotationMatrix(45), 1e-8) {
		t.Fatalf("M(-315) = %v, want M(45) = %v", RotationMatrix(-315), RotationMatrix(45))
	}
}

func TestRotationMatrixComposition(t *testing.T) {
	pairs := [][2]float64{
		{30, 60},
		{45, 45},
		{-45, 90},
		{123, -456},
	}

	for _, pair := range pairs {
		composed := RotationMatrix(pair[0]).Mul(RotationMatrix(pair[1]))
		direct := RotationMatrix(pair[0] + pair[1])
		if !matricesClose(composed, direct, 1e-8) {
			t.Fatalf("M(%v)*M(%v) = %v, want M(%v) = %v", pair[0], pair[1], composed, pair[0]+pair[1], direct)
		}
	}
}

func TestApplyKnownRotations(t *testing.T) {
	cases := []struct {
		angle float64
		in    Vector
		want  Vector
	}{
		{45, Vector{1, 0}, Vector{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{90, Vector{1, 0}, Vector{0, 1}},
		{-45, Vector{0, 1}, Vector{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		{180, Vector{1, 0}, Vector{-1, 0}},
		{0, Vector{3, -2}, Vector{3, -2}},
	}

	for _, tc := range cases {
		got := RotationMatrix(tc.angle).Apply(tc.in)
		if math.Abs(got.X-tc.want.X) > tolerance || math.Abs(got.Y-tc.want.Y) > tolerance {
			t.Fatalf("M(%v)·%v = %v, want %v", tc.angle, tc.in, got, tc.want)
		}
	}
}

func TestApplyPreservesMagnitude(t *testing.T) {
	v := Vector{X: 2.5, Y: -1.25}
	for _, angle := range []float64{0, 17, 45, 90, 200, -33} {
		rotated := RotationMatrix(angle).Apply(v)
		if math.Abs(rotated.Magnitude()-v.Magnitude()) > tolerance {
			t.Fatalf("rotation by %v changed magnitude: %v -> %v", angle, v.Magnitude(), rotated.Magnitude())
		}
	}
}

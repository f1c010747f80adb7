package geometry

import (
	"math"
)

// Matrix is a 2x2 matrix in row-major order:
//
//	| M[0][0]  M[0][1] |
//	| M[1][0]  M[1][1] |
type Matrix [2][2]float64

// Identity returns the 2x2 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0},
		{0, 1},
	}
}

// RotationMatrix builds the rotation matrix for an angle given in degrees,
// using the standard counter-clockwise convention:
//
//	| cosθ  -sinθ |
//	| sinθ   cosθ |
//
// The trig functions are periodic, so angles outside [0, 360) wrap correctly
func RotationMatrix(angleDegrees float64) Matrix {
	angleRadians := angleDegrees * math.Pi / 180

	cosTheta := math.Cos(angleRadians)
	sinTheta := math.Sin(angleRadians)

	return Matrix{
		{cosTheta, -sinTheta},
		{sinTheta, cosTheta},
	}
}

// Apply multiplies the matrix with a vector, returning the transformed vector
func (m Matrix) Apply(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// Mul multiplies this matrix with another matrix (this on the left)
func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = m[r][0]*other[0][c] + m[r][1]*other[1][c]
		}
	}
	return out
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	return Matrix{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Determinant calculates the determinant of the matrix. Rotation matrices
// have determinant 1 (no scaling or reflection)
func (m Matrix) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

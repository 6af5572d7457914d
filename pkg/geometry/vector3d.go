package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Epsilon Precision constant.
// Used for approximate float64 comparisons across the package.
const (
	Epsilon = 1e-9
)

// Vector3D represents a 3D vector or point in cartesian space.
// We use public fields (X, Y, Z) because they are fundamental data, not internal state.
// This is idiomatic in Go and allows for cleaner literal initialization: v := Vector3D{1, 2, 3}
type Vector3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewVector creates a new Vector3D.
// Note: In Go, it's often more idiomatic to simply use `Vector3D{X: x, Y: y, Z: z}` directly,
// avoiding the function call overhead, but this factory is provided for API parity.
func NewVector(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// RandomUnit3D returns a point uniformly distributed on the unit sphere.
// It uses the z = 2u-1 / azimuth = 2*Pi*v construction, which is uniform over
// the sphere surface. A naive spherical-coordinate sample would cluster
// points at the poles.
func RandomUnit3D() Vector3D {
	z := 2*rand.Float64() - 1
	theta := 2 * math.Pi * rand.Float64()
	r := math.Sqrt(1 - z*z)
	return Vector3D{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
		Z: z,
	}
}

// ---------------------------------------------------------------------
// Stringer Interface
// ---------------------------------------------------------------------

// String implements the fmt.Stringer interface.
func (v Vector3D) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// These methods use value receivers and return new Values.
// This ensures immutability and is efficient for small structs.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts the other vector from the current vector.
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul scales the vector by a scalar value.
func (v Vector3D) Mul(scalar float64) Vector3D {
	return Vector3D{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div scales the vector by 1/scalar.
// If scalar is zero it returns a math.Inf vector together with an error.
// Returning Inf is safer than panicking for math libraries; callers that
// guard the zero case can ignore the error entirely.
func (v Vector3D) Div(scalar float64) (Vector3D, error) {
	if scalar == 0 {
		return Vector3D{math.Inf(1), math.Inf(1), math.Inf(1)}, errors.New("vector cannot be divided by zero")
	}
	return Vector3D{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// ---------------------------------------------------------------------
// Vector3D Products
// ---------------------------------------------------------------------

// Dot calculates the dot product of two vectors.
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
// This is faster than Len() as it avoids the square root. Use for comparisons.
func (v Vector3D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len calculates the magnitude (length) of the vector.
func (v Vector3D) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// A vector of exactly zero length is returned unchanged: degenerate
// zero-force accumulations must never propagate NaN into the simulation.
func (v Vector3D) Normalize() Vector3D {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Limit clamps the magnitude of the vector to max, leaving the direction
// unchanged. Vectors already within the limit are returned as-is.
func (v Vector3D) Limit(max float64) Vector3D {
	if v.LenSqr() <= max*max {
		return v
	}
	return v.Normalize().Mul(max)
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector3D) DistanceTo(other Vector3D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector3D) DistanceSquaredTo(other Vector3D) float64 {
	return v.Sub(other).LenSqr()
}

// Lerp (Linear Interpolate) calculates a point between v and target based on t [0, 1].
func (v Vector3D) Lerp(target Vector3D, t float64) Vector3D {
	// Formula: v + (target - v) * t
	return v.Add(target.Sub(v).Mul(t))
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
// This handles floating point inaccuracies.
func (v Vector3D) Eq(other Vector3D) bool {
	return math.Abs(v.X-other.X) <= Epsilon &&
		math.Abs(v.Y-other.Y) <= Epsilon &&
		math.Abs(v.Z-other.Z) <= Epsilon
}

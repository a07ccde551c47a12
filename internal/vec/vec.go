// Package vec provides the immutable 2D vector type shared by every part of
// the engine. All operations return new values; a Vector is never mutated in
// place. Angles are in radians, positive = counter-clockwise, y grows upward.
package vec

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrZeroMagnitude is returned when an operation needs a non-zero vector
// (e.g. Normalize, Angle) and got the zero vector.
var ErrZeroMagnitude = errors.New("vec: zero magnitude")

// ErrZeroDivisor is returned by Div when the divisor is 0.
var ErrZeroDivisor = errors.New("vec: division by zero")

// Vector is a 2D vector. The zero value is the origin.
type Vector struct {
	X, Y float64
}

func (v Vector) String() string {
	return fmt.Sprintf("V(%.2f, %.2f)", v.X, v.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Mult(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div divides the vector by a scalar. Dividing by 0 is an error, not ±Inf.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrZeroDivisor
	}
	return Vector{v.X / s, v.Y / s}, nil
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq is the squared magnitude; cheaper than Length for comparisons.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v, or
// ErrZeroMagnitude for the zero vector. Callers that want a silent zero
// instead use NormalizeOrZero.
func (v Vector) Normalize() (Vector, error) {
	m := v.Length()
	if m == 0 {
		return Vector{}, ErrZeroMagnitude
	}
	return Vector{v.X / m, v.Y / m}, nil
}

// NormalizeOrZero is the permissive variant of Normalize: the zero vector
// normalizes to itself.
func (v Vector) NormalizeOrZero() Vector {
	m := v.Length()
	if m == 0 {
		return Vector{}
	}
	return Vector{v.X / m, v.Y / m}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
// Its sign distinguishes clockwise (negative) from counter-clockwise
// (positive) winding.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Angle returns the signed angle from v to other in (-π, π]. The magnitude
// comes from the dot product, the sign from the cross product. The cosine is
// clamped to [-1, 1] before Acos so floating-point drift cannot produce a
// domain error. Fails with ErrZeroMagnitude if either vector is zero.
func (v Vector) Angle(other Vector) (float64, error) {
	m := v.Length() * other.Length()
	if m == 0 {
		return 0, ErrZeroMagnitude
	}
	cos := Clamp(v.Dot(other)/m, -1, 1)
	return math.Acos(cos) * Sign(v.Cross(other)), nil
}

// Rotate rotates v about the origin. Positive angles rotate
// counter-clockwise.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// RotateAround rotates v about an arbitrary pivot.
func (v Vector) RotateAround(angle float64, pivot Vector) Vector {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// ComponentParallel returns the projection of v onto other. When other is
// the zero vector there is no direction to project onto and the zero vector
// is returned.
func (v Vector) ComponentParallel(other Vector) Vector {
	d := other.LengthSq()
	if d == 0 {
		return Vector{}
	}
	return other.Mult(v.Dot(other) / d)
}

// ComponentPerpendicular returns the rejection of v from other, so that
// v == v.ComponentParallel(other) + v.ComponentPerpendicular(other).
func (v Vector) ComponentPerpendicular(other Vector) Vector {
	return v.Sub(v.ComponentParallel(other))
}

func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

func (v Vector) DistanceSq(other Vector) float64 {
	return v.Sub(other).LengthSq()
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

// ClampLength limits the magnitude of v to [minMag, maxMag], preserving
// direction. The zero vector is returned unchanged.
func (v Vector) ClampLength(minMag, maxMag float64) Vector {
	m := v.Length()
	if m == 0 {
		return v
	}
	if m < minMag {
		return v.Mult(minMag / m)
	}
	if m > maxMag {
		return v.Mult(maxMag / m)
	}
	return v
}

// FromAngle returns the unit vector for the given angle.
func FromAngle(a float64) Vector {
	sin, cos := math.Sincos(a)
	return Vector{cos, sin}
}

func Left(mag float64) Vector {
	return Vector{-mag, 0}
}

func Right(mag float64) Vector {
	return Vector{mag, 0}
}

func Up(mag float64) Vector {
	return Vector{0, mag}
}

func Down(mag float64) Vector {
	return Vector{0, -mag}
}

// Random returns a vector with both components uniform in [-1, 1).
func Random() Vector {
	return Vector{2*rand.Float64() - 1, 2*rand.Float64() - 1}
}

package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tuple is a homogeneous 4-component coordinate.
// Points carry W = 1 and vectors W = 0; nothing enforces this, and the
// arithmetic below combines W like any other component.
type Tuple struct {
	X, Y, Z, W float32
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a tuple with W = 1
func NewPoint(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W = 0
func NewVector(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// TupleFromVec4 converts an mgl32 vector into a Tuple
func TupleFromVec4(v mgl32.Vec4) Tuple {
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Vec4 returns the tuple as an mgl32 vector
func (t Tuple) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{t.X, t.Y, t.Z, t.W}
}

// IsPoint reports whether W is 1
func (t Tuple) IsPoint() bool {
	return IsClose(t.W, 1)
}

// IsVector reports whether W is 0
func (t Tuple) IsVector() bool {
	return IsClose(t.W, 0)
}

// Equals reports whether every component is within Epsilon of its counterpart
func (t Tuple) Equals(other Tuple) bool {
	return IsClose(t.X, other.X) &&
		IsClose(t.Y, other.Y) &&
		IsClose(t.Z, other.Z) &&
		IsClose(t.W, other.W)
}

// Negate returns the component-wise negation
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar, W included
func (t Tuple) Multiply(scalar float32) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
// Fails with ErrDivisionByZero when scalar is exactly zero.
func (t Tuple) Divide(scalar float32) (Tuple, error) {
	if scalar == 0 {
		return Tuple{}, &ArithmeticError{Kind: DivisionByZero, Op: "divide"}
	}
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}, nil
}

// MagnitudeSquared returns the squared length of the (X, Y, Z) part
func (t Tuple) MagnitudeSquared() float32 {
	return t.X*t.X + t.Y*t.Y + t.Z*t.Z
}

// Magnitude returns the Euclidean length of the (X, Y, Z) part; W is ignored
func (t Tuple) Magnitude() float32 {
	return float32(math.Sqrt(float64(t.MagnitudeSquared())))
}

// Normalize returns the tuple scaled to unit magnitude.
// Magnitudes below Epsilon fail with ErrNormalizingZeroVector.
func (t Tuple) Normalize() (Tuple, error) {
	m := t.Magnitude()
	if m < Epsilon {
		return Tuple{}, &ArithmeticError{Kind: NormalizingZeroVector, Op: "normalize"}
	}
	return t.Divide(m)
}

// MustNormalize is Normalize for inputs known to be non-degenerate; it panics otherwise
func (t Tuple) MustNormalize() Tuple {
	n, err := t.Normalize()
	if err != nil {
		panic(fmt.Sprintf("core: %v: %v", err, t))
	}
	return n
}

// Dot returns the 4-component dot product.
// Pass vectors (W = 0) for the geometric 3D dot product; points add a W*W term.
func (t Tuple) Dot(other Tuple) float32 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3D cross product of the (X, Y, Z) parts as a vector
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected around a normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	// r = v - 2(v · n)n
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

func (t Tuple) String() string {
	switch t.W {
	case 1:
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case 0:
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}

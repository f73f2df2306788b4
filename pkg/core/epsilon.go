package core

import "github.com/go-gl/mathgl/mgl32"

// Epsilon is the tolerance for every approximate comparison on tuples and colors
const Epsilon = 1e-5

// IsClose reports whether two scalars differ by less than Epsilon
func IsClose(a, b float32) bool {
	return mgl32.Abs(a-b) < Epsilon
}

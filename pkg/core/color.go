package core

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f32"
)

// Color is a linear RGB color. Channels are not clamped; values outside
// [0, 1] are valid intermediate results.
type Color struct {
	Red, Green, Blue float32
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{Red: r, Green: g, Blue: b}
}

// Equals reports whether every channel is within Epsilon of its counterpart
func (c Color) Equals(other Color) bool {
	return IsClose(c.Red, other.Red) &&
		IsClose(c.Green, other.Green) &&
		IsClose(c.Blue, other.Blue)
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.Red + other.Red, c.Green + other.Green, c.Blue + other.Blue}
}

// Subtract returns the channel-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.Red - other.Red, c.Green - other.Green, c.Blue - other.Blue}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float32) Color {
	return Color{c.Red * scalar, c.Green * scalar, c.Blue * scalar}
}

// MultiplyColor returns the Hadamard product, used to blend light and surface colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.Red * other.Red, c.Green * other.Green, c.Blue * other.Blue}
}

// Clamp returns a color with channels clamped to [lo, hi]
func (c Color) Clamp(lo, hi float32) Color {
	return Color{
		Red:   max(lo, min(hi, c.Red)),
		Green: max(lo, min(hi, c.Green)),
		Blue:  max(lo, min(hi, c.Blue)),
	}
}

// Vec3 packs the channels into an f32 vector
func (c Color) Vec3() f32.Vec3 {
	return f32.Vec3{c.Red, c.Green, c.Blue}
}

// Colorful converts to a go-colorful color without clamping
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.Red), G: float64(c.Green), B: float64(c.Blue)}
}

// Hex returns the clamped color as a "#rrggbb" string
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// ToRGBA returns the clamped color scaled to 8 bits per channel, fully opaque
func (c Color) ToRGBA() color.RGBA {
	cc := c.Clamp(0, 1)
	return color.RGBA{
		R: to8Bit(cc.Red),
		G: to8Bit(cc.Green),
		B: to8Bit(cc.Blue),
		A: 255,
	}
}

func to8Bit(v float32) uint8 {
	return uint8(math.Round(float64(v) * 255))
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.Red, c.Green, c.Blue)
}

package canvas

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

var (
	ErrInvalidDimensions = errors.New("canvas dimensions must be positive")
	ErrOutOfBounds       = errors.New("pixel out of bounds")
)

// Canvas is a fixed-size grid of colors stored in row-major order
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// New creates a width x height canvas with every pixel black
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

// Width returns the number of columns
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows
func (c *Canvas) Height() int {
	return c.height
}

// Contains reports whether (x, y) lies on the canvas
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) index(x, y int) (int, error) {
	if !c.Contains(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return y*c.width + x, nil
}

// PixelAt returns the color at column x, row y
func (c *Canvas) PixelAt(x, y int) (core.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return core.Color{}, err
	}
	return c.pixels[i], nil
}

// WritePixel sets the color at column x, row y
func (c *Canvas) WritePixel(x, y int, col core.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

// PixelRGBA returns the pixel clamped to 8-bit RGBA
func (c *Canvas) PixelRGBA(x, y int) (color.RGBA, error) {
	col, err := c.PixelAt(x, y)
	if err != nil {
		return color.RGBA{}, err
	}
	return col.ToRGBA(), nil
}

// Row returns a copy of row y
func (c *Canvas) Row(y int) ([]core.Color, error) {
	start, err := c.index(0, y)
	if err != nil {
		return nil, err
	}
	row := make([]core.Color, c.width)
	copy(row, c.pixels[start:start+c.width])
	return row, nil
}

// Fill sets every pixel to col
func (c *Canvas) Fill(col core.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

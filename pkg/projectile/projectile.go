package projectile

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// Projectile is a moving point
type Projectile struct {
	Position core.Tuple // point
	Velocity core.Tuple // vector
}

// Environment holds the forces applied on every tick
type Environment struct {
	Gravity core.Tuple // vector
	Wind    core.Tuple // vector
}

// Tick advances the projectile by one time step
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// SimulationConfig contains the launch parameters
type SimulationConfig struct {
	Start      core.Tuple // Launch position (point)
	Direction  core.Tuple // Launch direction (vector), normalized before use
	Speed      float32    // Initial speed along Direction
	Gravity    core.Tuple
	Wind       core.Tuple
	MaxTicks   int        // Upper bound on simulated ticks
	TrailColor core.Color // Color plotted for each position
	TraceTicks bool       // Log every tick, not just the summary
}

// DefaultSimulationConfig returns sensible default values
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Start:      core.NewPoint(0, 1, 0),
		Direction:  core.NewVector(1, 1.8, 0),
		Speed:      11.25, // Fits a 900x550 canvas
		Gravity:    core.NewVector(0, -0.1, 0),
		Wind:       core.NewVector(-0.01, 0, 0),
		MaxTicks:   1000,
		TrailColor: core.NewColor(1, 0.8, 0.6),
	}
}

// Result summarizes a simulation run
type Result struct {
	Ticks    int
	Landed   bool    // Projectile reached y <= 0 before MaxTicks
	Apex     float32 // Highest y reached
	Distance float32 // Final x position
	Plotted  int     // Positions written to the canvas
	Skipped  int     // Positions that fell outside the canvas
}

// Simulate flies a projectile until it lands or MaxTicks is reached,
// plotting each position on c with y = 0 at the bottom row.
func Simulate(config SimulationConfig, c *canvas.Canvas, logger core.Logger) (Result, error) {
	dir, err := config.Direction.Normalize()
	if err != nil {
		return Result{}, fmt.Errorf("launch direction %v: %w", config.Direction, err)
	}

	env := Environment{Gravity: config.Gravity, Wind: config.Wind}
	p := Projectile{Position: config.Start, Velocity: dir.Multiply(config.Speed)}

	result := Result{Apex: p.Position.Y}
	for result.Ticks < config.MaxTicks && p.Position.Y > 0 {
		if plot(c, p.Position, config.TrailColor) {
			result.Plotted++
		} else {
			result.Skipped++
		}

		p = Tick(env, p)
		result.Ticks++
		result.Apex = max(result.Apex, p.Position.Y)

		if config.TraceTicks {
			logger.Printf("Tick %d: position %v velocity %v\n", result.Ticks, p.Position, p.Velocity)
		}
	}

	result.Landed = p.Position.Y <= 0
	result.Distance = p.Position.X

	logger.Printf("Simulated %d ticks (landed: %v), apex %.2f, distance %.2f\n",
		result.Ticks, result.Landed, result.Apex, result.Distance)
	if result.Skipped > 0 {
		logger.Printf("%d positions fell outside the %dx%d canvas\n", result.Skipped, c.Width(), c.Height())
	}

	return result, nil
}

// plot writes pos to the canvas, reporting whether it landed on it
func plot(c *canvas.Canvas, pos core.Tuple, col core.Color) bool {
	x := int(math.Round(float64(pos.X)))
	y := c.Height() - 1 - int(math.Round(float64(pos.Y)))
	return c.WritePixel(x, y, col) == nil
}

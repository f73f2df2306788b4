package projectile

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// recordingLogger implements core.Logger for testing
type recordingLogger struct {
	lines []string
}

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.lines = append(rl.lines, fmt.Sprintf(format, args...))
}

func TestTick(t *testing.T) {
	env := Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
	p := Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1, 0),
	}

	next := Tick(env, p)
	if !next.Position.Equals(core.NewPoint(1, 2, 0)) {
		t.Errorf("Expected position point(1, 2, 0), got %v", next.Position)
	}
	if !next.Velocity.Equals(core.NewVector(0.99, 0.9, 0)) {
		t.Errorf("Expected velocity vector(0.99, 0.9, 0), got %v", next.Velocity)
	}
	if !next.Position.IsPoint() || !next.Velocity.IsVector() {
		t.Errorf("Tick should preserve point/vector kinds: %v, %v", next.Position, next.Velocity)
	}
}

func TestSimulate_Default(t *testing.T) {
	c, err := canvas.New(900, 550)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logger := &recordingLogger{}

	config := DefaultSimulationConfig()
	result, err := Simulate(config, c, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Landed {
		t.Errorf("Expected projectile to land within %d ticks", config.MaxTicks)
	}
	if result.Ticks <= 0 || result.Ticks >= config.MaxTicks {
		t.Errorf("Unexpected tick count %d", result.Ticks)
	}
	if result.Skipped != 0 {
		t.Errorf("Expected the default trajectory to fit the canvas, %d positions skipped", result.Skipped)
	}
	if result.Plotted != result.Ticks {
		t.Errorf("Expected one plotted position per tick, got %d for %d ticks", result.Plotted, result.Ticks)
	}
	if result.Apex <= config.Start.Y || result.Apex >= float32(c.Height()) {
		t.Errorf("Apex %v outside expected range", result.Apex)
	}
	if result.Distance <= 0 || result.Distance >= float32(c.Width()) {
		t.Errorf("Distance %v outside expected range", result.Distance)
	}

	// The launch position sits one row above the bottom
	px, err := c.PixelAt(0, c.Height()-2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !px.Equals(config.TrailColor) {
		t.Errorf("Expected launch pixel to be %v, got %v", config.TrailColor, px)
	}

	if len(logger.lines) != 1 || !strings.HasPrefix(logger.lines[0], "Simulated") {
		t.Errorf("Expected a single summary line, got %q", logger.lines)
	}
}

func TestSimulate_MaxTicks(t *testing.T) {
	c, err := canvas.New(100, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logger := &recordingLogger{}

	config := DefaultSimulationConfig()
	config.MaxTicks = 5
	config.TraceTicks = true

	result, err := Simulate(config, c, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Ticks != 5 {
		t.Errorf("Expected 5 ticks, got %d", result.Ticks)
	}
	if result.Landed {
		t.Error("Projectile should still be airborne after 5 ticks")
	}
	// 5 trace lines plus the summary
	if len(logger.lines) != 6 {
		t.Errorf("Expected 6 log lines, got %d", len(logger.lines))
	}
}

func TestSimulate_OffCanvas(t *testing.T) {
	c, err := canvas.New(10, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result, err := Simulate(DefaultSimulationConfig(), c, &recordingLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Skipped == 0 {
		t.Error("Expected positions outside a 10x10 canvas to be skipped")
	}
	if result.Plotted+result.Skipped != result.Ticks {
		t.Errorf("Plotted %d + skipped %d != ticks %d", result.Plotted, result.Skipped, result.Ticks)
	}
}

func TestSimulate_ZeroDirection(t *testing.T) {
	c, err := canvas.New(10, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	config := DefaultSimulationConfig()
	config.Direction = core.NewVector(0, 0, 0)

	_, err = Simulate(config, c, &recordingLogger{})
	if !errors.Is(err, core.ErrNormalizingZeroVector) {
		t.Errorf("Expected ErrNormalizingZeroVector, got %v", err)
	}
}

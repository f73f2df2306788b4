package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/projectile"
)

func main() {
	// Parse command line flags
	speed := flag.Float64("velocity", 11.25, "Initial projectile speed")
	width := flag.Int("width", 900, "Canvas width in pixels")
	height := flag.Int("height", 550, "Canvas height in pixels")
	maxTicks := flag.Int("max-ticks", 1000, "Maximum number of simulated ticks")
	quiet := flag.Bool("quiet", false, "Only print the summary, not every tick")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Projectile")
		fmt.Println("Usage: projectile [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Fires a projectile under gravity and wind and plots its path on a canvas.")
		return
	}

	config := buildConfig(*speed, *maxTicks, *quiet)

	velocity, err := launchVelocity(config)
	if err != nil {
		fmt.Printf("Error computing launch velocity: %v\n", err)
		return
	}
	fmt.Printf("Launching from %v with velocity %v\n", config.Start, velocity)

	c, err := canvas.New(*width, *height)
	if err != nil {
		fmt.Printf("Error creating canvas: %v\n", err)
		return
	}

	startTime := time.Now()
	result, err := projectile.Simulate(config, c, projectile.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error running simulation: %v\n", err)
		return
	}

	fmt.Printf("Simulation completed in %v\n", time.Since(startTime))
	fmt.Printf("Plotted %d of %d positions, trail color %s\n",
		result.Plotted, result.Plotted+result.Skipped, config.TrailColor.Hex())
}

// buildConfig applies command line overrides to the default simulation
func buildConfig(speed float64, maxTicks int, quiet bool) projectile.SimulationConfig {
	config := projectile.DefaultSimulationConfig()
	config.Speed = float32(speed)
	config.MaxTicks = maxTicks
	config.TraceTicks = !quiet
	return config
}

// launchVelocity is the initial velocity implied by a config
func launchVelocity(config projectile.SimulationConfig) (core.Tuple, error) {
	dir, err := config.Direction.Normalize()
	if err != nil {
		return core.Tuple{}, err
	}
	return dir.Multiply(config.Speed), nil
}

package core

// Logger interface for simulation and rendering output
type Logger interface {
	Printf(format string, args ...interface{})
}

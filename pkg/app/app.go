// Package app defines common runtime contracts shared by the executable
// entrypoints (API server, migration runner).
//
// It lets cmd/* binaries start application components without depending on
// their concrete implementations.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}

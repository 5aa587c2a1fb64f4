package engine

import "errors"

var (
	// ErrKernelNotLoaded indicates no kernel rule set has been loaded.
	ErrKernelNotLoaded = errors.New("kernel not loaded")

	// ErrNilSpec indicates a request carried no domain spec.
	ErrNilSpec = errors.New("no domain spec provided")
)

// Package smoketest drives a running instance through every route and
// verifies the fixed request/response contracts.
package smoketest

import "time"

// Config holds the smoke-check parameters.
type Config struct {
	// BaseURL is the root of the running service, e.g. http://localhost:8000.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Verbose logs every passing check, not only failures.
	Verbose bool
}

// Package lifecycle holds shared constants for startup and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of managed
// resources (database ping, HTTP server drain).
const DefaultTimeout = 10 * time.Second

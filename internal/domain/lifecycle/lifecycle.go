// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks.
const DefaultTimeout = 10 * time.Second

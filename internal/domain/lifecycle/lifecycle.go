// Package lifecycle holds shared timeouts for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop of long-lived components.
const DefaultTimeout = 10 * time.Second

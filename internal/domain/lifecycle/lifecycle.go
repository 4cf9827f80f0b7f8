// Package lifecycle holds shared timing settings for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second

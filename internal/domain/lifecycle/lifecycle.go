// Package lifecycle holds shared timings for component start-up and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart ping and OnStop shutdown hook.
const DefaultTimeout = 10 * time.Second

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by any background loop with a
// start/stop lifecycle. Start must not block; Stop blocks until the
// worker's goroutines have exited.
//
// The client agent's probe loop, connectivity monitor, and sync job all
// satisfy it.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

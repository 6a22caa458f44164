package netmon

// Signal is the platform connectivity primitive the monitor wraps: one
// synchronous snapshot plus a subscribable stream of online/offline events.
//
// The stream may deliver duplicate states; de-duplication is the monitor's
// job, not the signal's.
type Signal interface {
	// Current reports the connectivity state right now. Used once to seed
	// the monitor.
	Current() bool

	// Events returns the channel the signal publishes state changes on.
	// true means online, false means offline.
	Events() <-chan bool
}

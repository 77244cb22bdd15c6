package golog

import "sync"

// reset clears the installed sink so each test can run its own init.
func reset() {
	initOnce = new(sync.Once)
	globalSink = nil
}

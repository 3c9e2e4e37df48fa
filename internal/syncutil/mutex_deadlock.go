// internal/syncutil/mutex_deadlock.go

//go:build deadlock

package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// Mutex reports lock waits longer than the detector timeout.
type Mutex = deadlock.Mutex

func init() {
	// a connect can legitimately hold the lock for the modbus timeout
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// internal/syncutil/mutex_sync.go

//go:build !deadlock

package syncutil

import "sync"

type Mutex = sync.Mutex

// internal/syncutil/doc.go

// Package syncutil picks the mutex used by the transport. Normal builds get
// sync.Mutex; builds tagged deadlock swap in go-deadlock's checked mutex.
package syncutil

package scheduler

import "sync/atomic"

const (
	StatusUnknown = "unknown"
	StatusUp      = "up"
	StatusDown    = "down"
)

// BackendHealth holds the last probe outcome.
type BackendHealth struct {
	status atomic.Value
}

func NewBackendHealth() *BackendHealth {
	h := &BackendHealth{}
	h.status.Store(StatusUnknown)
	return h
}

func (h *BackendHealth) Status() string {
	return h.status.Load().(string)
}

// Set stores status and returns the previous one.
func (h *BackendHealth) Set(status string) string {
	return h.status.Swap(status).(string)
}

package model

import "time"

// TimeRange is a resolved [Start, End) window. It is computed once per request.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

package model

import (
	"encoding/json"
	"time"
)

// LogHit is one normalized log record returned by the search backend.
type LogHit struct {
	Timestamp  time.Time       `json:"timestamp"`
	Message    string          `json:"message"`
	Level      string          `json:"level"`
	Service    string          `json:"service"`
	Host       string          `json:"host,omitempty"`
	Env        string          `json:"env"`
	TraceID    string          `json:"trace_id,omitempty"`
	SpanID     string          `json:"span_id,omitempty"`
	StackTrace string          `json:"stack_trace,omitempty"`
	Labels     json.RawMessage `json:"labels,omitempty"`
}

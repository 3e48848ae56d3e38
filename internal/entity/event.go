package entity

import "time"

type ClassificationEvent struct {
	RequestID      string    `json:"request_id"`
	Kind           Kind      `json:"kind"`
	Label          string    `json:"label"`
	Confidence     float64   `json:"confidence"`
	Source         Source    `json:"source"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
	DurationMs     int64     `json:"duration_ms"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type KindStats struct {
	Total     int64            `json:"total"`
	Remote    int64            `json:"remote"`
	Simulated int64            `json:"simulated"`
	Labels    map[string]int64 `json:"labels"`
}

type Stats struct {
	Disease KindStats `json:"disease"`
	Quality KindStats `json:"quality"`
}

// Package domain defines check outcome events and the ports that record and count them
package domain

import (
	"context"
	"time"

	"postguard/internal/core/risk"

	"github.com/google/uuid"
)

// Event is the outcome of one successful check; content is never stored
type Event struct {
	ID          uuid.UUID
	At          time.Time
	Modality    risk.Modality
	RiskLevel   risk.Level
	Issues      int
	Flagged     int
	ContextUsed bool
}

// Count is the number of checks for one modality and level
type Count struct {
	Modality  risk.Modality `json:"modality"`
	RiskLevel string        `json:"riskLevel"`
	Checks    int64         `json:"checks"`
}

// Sink persists events
type Sink interface {
	Write(ctx context.Context, xs []Event) error
}

// RecorderPort records check outcomes; it never fails the caller
type RecorderPort interface {
	Record(ctx context.Context, ev Event)
}

// SummaryPort counts recorded outcomes since a point in time
type SummaryPort interface {
	Counts(ctx context.Context, since time.Time) ([]Count, error)
}

// Ports exposed by the journal module; Summary is nil without postgres
type Ports struct {
	Recorder RecorderPort
	Summary  SummaryPort
}

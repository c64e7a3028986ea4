package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Operation names recorded by the challenge and certificate flows.
const (
	OpPresent   = "present"
	OpCleanup   = "cleanup"
	OpObtain    = "obtain"
	OpPreflight = "preflight"
)

// Entry represents a persisted audit event for a challenge or certificate
// operation. Challenge token values are never stored.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Operation  string    `json:"operation"`
	Domain     string    `json:"domain"`
	Zone       string    `json:"zone,omitempty"`
	RecordName string    `json:"record_name,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

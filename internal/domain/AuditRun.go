package domain

import "time"

type AuditRunStatus string

const (
	AuditRunStatusSucceeded AuditRunStatus = "succeeded"
	AuditRunStatusFailed    AuditRunStatus = "failed"
)

// AuditRun is the history entry written for every pipeline invocation.
// The sender credential is never part of it.
type AuditRun struct {
	ID                  string         `json:"id"`
	TargetAppIDs        []string       `json:"target_app_ids"`
	ExcludedBlockValues []string       `json:"excluded_block_values"`
	RecipientEmail      string         `json:"recipient_email"`
	SenderEmail         string         `json:"sender_email"`
	Status              AuditRunStatus `json:"status"`
	ErrorMessage        *string        `json:"error_message,omitempty"`
	DurationMs          int64          `json:"duration_ms"`
	CreatedAt           time.Time      `json:"created_at"`
}

type AuditRunFilters struct {
	Since *time.Time
	Limit int
}

package auditing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
)

var (
	// Validation
	ErrMissingAppIDs        = errors.New("at least one publisher app ID is required")
	ErrMissingRecipient     = errors.New("recipient email is required")
	ErrMissingSenderDetails = errors.New("sender email and app password are required")

	// Pipeline
	ErrPipelineFailed = errors.New("analysis pipeline failed")

	// History
	ErrHistoryDisabled = errors.New("run history is not enabled")
	ErrRunNotFound     = errors.New("audit run not found")
	ErrHistoryQuery    = errors.New("error reading run history")
)

var userMessages = map[error]string{
	ErrMissingAppIDs:        "Please enter at least one publisher app ID.",
	ErrMissingRecipient:     "Please enter a recipient email.",
	ErrMissingSenderDetails: "Please enter sender Gmail and Gmail App Password.",
}

// AuditError carries the API code and the text shown to the user.
type AuditError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuditError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

func NewAuditError(err error, code string, details string) *AuditError {
	return &AuditError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	var auditErr *AuditError
	return errors.As(err, &auditErr) && auditErr.Code == apiErrors.ErrMissingRequiredData
}

// UserMessage returns the banner text for an error returned by the service.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for sentinel, msg := range userMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}

	var auditErr *AuditError
	if errors.As(err, &auditErr) && errors.Is(auditErr.Err, ErrPipelineFailed) {
		return "Something went wrong: " + auditErr.Details
	}

	return "Something went wrong: " + err.Error()
}

// Code returns the API error code for err.
func Code(err error) string {
	var auditErr *AuditError
	if errors.As(err, &auditErr) && auditErr.Code != "" {
		return auditErr.Code
	}
	return apiErrors.ErrInternalServer
}

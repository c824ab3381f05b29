package auditing

import (
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
)

// Validate checks the required fields in display order and returns the first
// failure.
func Validate(request *domain.AuditRequest) error {
	switch {
	case request == nil || len(request.TargetAppIDs) == 0:
		return NewAuditError(ErrMissingAppIDs, apiErrors.ErrMissingRequiredData, "")
	case request.RecipientEmail == "":
		return NewAuditError(ErrMissingRecipient, apiErrors.ErrMissingRequiredData, "")
	case request.SenderEmail == "" || request.GmailAppPassword == "":
		return NewAuditError(ErrMissingSenderDetails, apiErrors.ErrMissingRequiredData, "")
	}

	return nil
}

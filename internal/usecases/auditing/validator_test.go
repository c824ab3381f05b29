package auditing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
)

func validRequest() *domain.AuditRequest {
	return &domain.AuditRequest{
		TargetAppIDs:     []string{"632cc7810ca02c6344d51822"},
		RecipientEmail:   "ops@example.com",
		SenderEmail:      "sender@gmail.com",
		GmailAppPassword: "abcd efgh ijkl mnop",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.AuditRequest)
		wantErr error
		message string
	}{
		{
			name:   "complete request",
			mutate: func(r *domain.AuditRequest) {},
		},
		{
			name:   "exclusions are optional",
			mutate: func(r *domain.AuditRequest) { r.ExcludedBlockValues = nil },
		},
		{
			name:    "no app IDs",
			mutate:  func(r *domain.AuditRequest) { r.TargetAppIDs = []string{} },
			wantErr: ErrMissingAppIDs,
			message: "Please enter at least one publisher app ID.",
		},
		{
			name:    "no recipient",
			mutate:  func(r *domain.AuditRequest) { r.RecipientEmail = "" },
			wantErr: ErrMissingRecipient,
			message: "Please enter a recipient email.",
		},
		{
			name:    "no sender",
			mutate:  func(r *domain.AuditRequest) { r.SenderEmail = "" },
			wantErr: ErrMissingSenderDetails,
			message: "Please enter sender Gmail and Gmail App Password.",
		},
		{
			name:    "no app password",
			mutate:  func(r *domain.AuditRequest) { r.GmailAppPassword = "" },
			wantErr: ErrMissingSenderDetails,
			message: "Please enter sender Gmail and Gmail App Password.",
		},
		{
			name: "app IDs checked before recipient",
			mutate: func(r *domain.AuditRequest) {
				r.TargetAppIDs = nil
				r.RecipientEmail = ""
				r.SenderEmail = ""
			},
			wantErr: ErrMissingAppIDs,
			message: "Please enter at least one publisher app ID.",
		},
		{
			name: "recipient checked before sender",
			mutate: func(r *domain.AuditRequest) {
				r.RecipientEmail = ""
				r.GmailAppPassword = ""
			},
			wantErr: ErrMissingRecipient,
			message: "Please enter a recipient email.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(request)

			err := Validate(request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, IsValidation(err))
			assert.Equal(t, apiErrors.ErrMissingRequiredData, Code(err))
			assert.Equal(t, tt.message, UserMessage(err))
		})
	}
}

func TestValidate_NilRequest(t *testing.T) {
	err := Validate(nil)
	assert.ErrorIs(t, err, ErrMissingAppIDs)
}

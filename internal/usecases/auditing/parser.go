package auditing

import (
	"strings"

	"github.com/vfg2006/vx-block-audit/internal/domain"
)

// ParseList splits free text on newlines and commas into trimmed, non-empty
// tokens, in input order. Repeated tokens are kept. Empty input gives an
// empty (non-nil) list.
func ParseList(text string) []string {
	return CleanList(strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	}))
}

// CleanList trims already separated values and drops the empty ones. Values
// are never split, so commas inside an entry survive.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}

	return out
}

// BuildRequest turns the raw sidebar inputs into a pipeline request. It never
// fails; Validate decides whether the request may be submitted. Emails are
// trimmed, so a blank address counts as missing.
func BuildRequest(form *domain.AuditForm) *domain.AuditRequest {
	return &domain.AuditRequest{
		TargetAppIDs:        ParseList(form.AppIDs),
		ExcludedBlockValues: ParseList(form.Exclusions),
		RecipientEmail:      strings.TrimSpace(form.RecipientEmail),
		SenderEmail:         strings.TrimSpace(form.SenderEmail),
		GmailAppPassword:    form.GmailAppPassword,
	}
}

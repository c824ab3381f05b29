package domain

// AuditForm holds the raw sidebar inputs exactly as the user typed them.
type AuditForm struct {
	AppIDs           string
	Exclusions       string
	RecipientEmail   string
	SenderEmail      string
	GmailAppPassword string
}

// AuditRequest is the parsed input handed to the analysis pipeline
type AuditRequest struct {
	TargetAppIDs        []string `json:"target_app_ids"`
	ExcludedBlockValues []string `json:"excluded_block_values"`
	RecipientEmail      string   `json:"recipient_email"`
	SenderEmail         string   `json:"sender_email"`
	GmailAppPassword    string   `json:"-"`
}

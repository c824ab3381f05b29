package domain

// RunRequest is the body sent to the pipeline's run endpoint.
type RunRequest struct {
	TargetAppIDs        []string `json:"target_app_ids"`
	ExcludedBlockValues []string `json:"excluded_block_values"`
	RecipientEmail      string   `json:"recipient_email"`
	SenderEmail         string   `json:"sender_email"`
	GmailAppPassword    string   `json:"gmail_app_password"`
}

// SplitTable is a dataframe serialized with pandas' "split" orientation.
type SplitTable struct {
	Columns []any   `json:"columns"`
	Index   []any   `json:"index,omitempty"`
	Data    [][]any `json:"data"`
}

type RunResponse struct {
	HTMLSummary              string      `json:"html_summary"`
	CombinedBlocksWithSpend  *SplitTable `json:"combined_blocks_with_spend"`
	CombinedBlocksWithGlobal *SplitTable `json:"combined_blocks_with_global"`
	CombinedSummaryOur       *SplitTable `json:"combined_summary_our"`
	CombinedRevMatrix        *SplitTable `json:"combined_rev_matrix"`
	SummaryMetrics           *SplitTable `json:"summary_metrics"`
}

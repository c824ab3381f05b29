package domain

// Dataset keys as returned by the analysis pipeline.
const (
	DatasetBlocksWithSpend  = "combined_blocks_with_spend"
	DatasetBlocksWithGlobal = "combined_blocks_with_global"
	DatasetSummaryOur       = "combined_summary_our"
	DatasetRevMatrix        = "combined_rev_matrix"
	DatasetSummaryMetrics   = "summary_metrics"
)

// AuditResult is the pipeline output. The tables are passed through for display
// without any validation.
type AuditResult struct {
	HTMLSummary              string `json:"html_summary"`
	CombinedBlocksWithSpend  *Table `json:"combined_blocks_with_spend"`
	CombinedBlocksWithGlobal *Table `json:"combined_blocks_with_global"`
	CombinedSummaryOur       *Table `json:"combined_summary_our"`
	CombinedRevMatrix        *Table `json:"combined_rev_matrix"`
	SummaryMetrics           *Table `json:"summary_metrics"`
}

// Dataset returns the table stored under one of the Dataset* keys.
func (r *AuditResult) Dataset(key string) *Table {
	if r == nil {
		return nil
	}

	switch key {
	case DatasetBlocksWithSpend:
		return r.CombinedBlocksWithSpend
	case DatasetBlocksWithGlobal:
		return r.CombinedBlocksWithGlobal
	case DatasetSummaryOur:
		return r.CombinedSummaryOur
	case DatasetRevMatrix:
		return r.CombinedRevMatrix
	case DatasetSummaryMetrics:
		return r.SummaryMetrics
	}

	return nil
}

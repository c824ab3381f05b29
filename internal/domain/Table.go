package domain

// Table is a dataframe in "split" orientation: column names, an optional row
// index and the row values.
type Table struct {
	Columns []string `json:"columns"`
	Index   []any    `json:"index,omitempty"`
	Data    [][]any  `json:"data"`
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Data)
}

func (t *Table) HasIndex() bool {
	return t != nil && len(t.Index) == len(t.Data) && len(t.Index) > 0
}

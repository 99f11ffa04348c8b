package models

// ProductTable is the product reference table. Its schema is not interpreted.
type ProductTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of data rows.
func (t *ProductTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Records returns the rows keyed by column name. Cells beyond the header are dropped
// and missing cells are empty.
func (t *ProductTable) Records() []map[string]string {
	if t == nil {
		return nil
	}
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

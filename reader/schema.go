package reader

import (
	"github.com/vegasq/csvcat/table"
)

// Column types reported by Describe.
const (
	TypeNumber = "number"
	TypeString = "string"
)

// ColumnInfo represents metadata about a single column of a loaded dataset.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Distinct int    `json:"distinct"`
}

// Describe reports every column of ds in header order.
//
// A column is typed as number only if every one of its cells parses as a
// decimal number; anything else is a string column.
func Describe(ds *table.Dataset) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(ds.Header))
	for _, col := range ds.Header {
		infos = append(infos, describeColumn(col, ds.Column(col)))
	}
	return infos
}

func describeColumn(name string, values []string) ColumnInfo {
	typ := TypeNumber
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
		if _, ok := table.ParseNumber(v); !ok {
			typ = TypeString
		}
	}
	if len(values) == 0 {
		typ = TypeString
	}

	return ColumnInfo{
		Name:     name,
		Type:     typ,
		Distinct: len(seen),
	}
}

// SchemaDataset renders column metadata as a dataset so it can be printed by
// any output formatter.
func SchemaDataset(infos []ColumnInfo) *table.Dataset {
	rows := make([]table.Row, len(infos))
	for i, info := range infos {
		rows[i] = table.Row{
			"name":     info.Name,
			"type":     info.Type,
			"distinct": table.FormatNumber(float64(info.Distinct)),
		}
	}
	return table.New([]string{"name", "type", "distinct"}, rows)
}

package models

import (
	"time"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
)

// ColumnRole tells how a column's value is taken from a Row
type ColumnRole int

const (
	RoleGroup ColumnRole = iota
	RoleDate
	RoleFish
	RoleLocation
	RoleValue
)

// Column is one entry of a record set schema
type Column struct {
	Key      string // parameter id for RoleValue columns
	Name     string // header text
	Role     ColumnRole
	Kind     catalog.Kind
	Decimals int // -1 keeps natural precision
}

// Row is one fish (or one sampling location) in a record set.
// Values are keyed by parameter id and hold int, float64 or string.
type Row struct {
	Fish     int            `json:"fish,omitempty"`
	Location string         `json:"location,omitempty"`
	Group    string         `json:"group"`
	Date     time.Time      `json:"date"`
	Values   map[string]any `json:"values"`
}

// RecordSet is the tabular output of one category
type RecordSet struct {
	Category catalog.ID `json:"category"`
	Slug     string     `json:"slug"`
	Sheet    string     `json:"sheet"`
	Columns  []Column   `json:"columns"`
	Rows     []Row      `json:"rows"`
}

// Header returns the column names in schema order
func (rs RecordSet) Header() []string {
	out := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		out[i] = c.Name
	}
	return out
}

// Len returns the number of rows
func (rs RecordSet) Len() int {
	return len(rs.Rows)
}

// Cell projects a row value for the given column
func (rs RecordSet) Cell(row Row, col Column) any {
	switch col.Role {
	case RoleGroup:
		return row.Group
	case RoleDate:
		return row.Date.Format(constants.DateFormat)
	case RoleFish:
		return row.Fish
	case RoleLocation:
		return row.Location
	}
	if v, ok := row.Values[col.Key]; ok {
		return v
	}
	switch col.Kind {
	case catalog.KindScale, catalog.KindCount:
		return 0
	case catalog.KindReal:
		return 0.0
	default:
		return ""
	}
}

// Table projects every row into cells following the column schema
func (rs RecordSet) Table() [][]any {
	out := make([][]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		cells := make([]any, len(rs.Columns))
		for i, col := range rs.Columns {
			cells[i] = rs.Cell(row, col)
		}
		out = append(out, cells)
	}
	return out
}

// Clone returns a deep copy: rows and their values can change without touching the original
func (rs RecordSet) Clone() RecordSet {
	out := rs
	out.Columns = append([]Column{}, rs.Columns...)
	out.Rows = make([]Row, len(rs.Rows))
	for i, row := range rs.Rows {
		out.Rows[i] = row.Clone()
	}
	return out
}

// Clone copies the row including its value map
func (r Row) Clone() Row {
	out := r
	if r.Values != nil {
		out.Values = make(map[string]any, len(r.Values))
		for k, v := range r.Values {
			out.Values[k] = v
		}
	}
	return out
}

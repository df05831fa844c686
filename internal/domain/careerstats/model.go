package careerstats

import (
	"fmt"
	"strings"
)

// Sentinel replaces missing or unusable stat values.
const Sentinel = "n/a"

// NameColumn is the synthetic label column of a stat table.
const NameColumn = "name"

// Document is a decoded player stats response. Only the quick play top heroes
// and career stats sections are interpreted.
type Document struct {
	PlayerID string
	Raw      map[string]any
}

// StatRequest identifies one stat column by section and field,
// e.g. average.deathsAvgPer10Min.
type StatRequest struct {
	Section string
	Field   string
}

func (r StatRequest) Path() string {
	return r.Section + "." + r.Field
}

func (r StatRequest) Validate() error {
	if strings.TrimSpace(r.Section) == "" {
		return fmt.Errorf("stat section is required")
	}
	if strings.TrimSpace(r.Field) == "" {
		return fmt.Errorf("stat field is required")
	}
	return nil
}

// ParseStatRequest parses a section.field path.
func ParseStatRequest(raw string) (StatRequest, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ".", 2)
	if len(parts) != 2 {
		return StatRequest{}, fmt.Errorf("invalid stat %q, expected section.field", raw)
	}
	req := StatRequest{Section: strings.TrimSpace(parts[0]), Field: strings.TrimSpace(parts[1])}
	if err := req.Validate(); err != nil {
		return StatRequest{}, fmt.Errorf("invalid stat %q: %w", raw, err)
	}
	return req, nil
}

// DefaultStatRequests are the columns rendered when none are configured.
func DefaultStatRequests() []StatRequest {
	return []StatRequest{
		{Section: "average", Field: "allDamageDoneAvgPer10Min"},
		{Section: "average", Field: "criticalHitsAvgPer10Min"},
		{Section: "average", Field: "deathsAvgPer10Min"},
		{Section: "average", Field: "eliminationsAvgPer10Min"},
		{Section: "average", Field: "objectiveKillsAvgPer10Min"},
		{Section: "average", Field: "soloKillsAvgPer10Min"},
	}
}

// TopHero is one entry of the provider's top heroes bucket.
type TopHero struct {
	Name              string
	TimePlayedSeconds float64
	Detail            map[string]any
}

type CellStatus string

const (
	CellOK           CellStatus = "ok"
	CellEmpty        CellStatus = "empty"
	CellMissing      CellStatus = "missing"
	CellTypeMismatch CellStatus = "type_mismatch"
)

// Cell is one looked-up stat value. Value holds the raw decoded JSON value
// when Status is CellOK and the sentinel otherwise.
type Cell struct {
	Value  any
	Status CellStatus
}

// Omitted reports whether the legacy columnar shape drops this cell.
func (c Cell) Omitted() bool {
	return c.Status == CellMissing || c.Status == CellTypeMismatch
}

type Row struct {
	Name      string
	LookupKey string
	Cells     []Cell
}

type DiagnosticKind string

const (
	DiagnosticMissing      DiagnosticKind = "missing"
	DiagnosticTypeMismatch DiagnosticKind = "type_mismatch"
)

// Diagnostic reports a stat path that could not be read for a hero.
type Diagnostic struct {
	Hero string
	Path string
	Kind DiagnosticKind
}

func (d Diagnostic) String() string {
	if d.Kind == DiagnosticTypeMismatch {
		return "type error on " + d.Path
	}
	return "key missing: " + d.Path
}

// Table is a row-oriented stat table. Requests fix the column order.
type Table struct {
	Requests    []StatRequest
	Rows        []Row
	Diagnostics []Diagnostic
}

// Headers returns the name column followed by each requested field.
func (t Table) Headers() []string {
	out := make([]string, 0, len(t.Requests)+1)
	out = append(out, NameColumn)
	for _, req := range t.Requests {
		out = append(out, req.Field)
	}
	return out
}

// Column is a named sequence of values.
type Column struct {
	Name   string
	Values []any
}

// Columns pivots the table into columnar form. Missing and type-mismatched
// cells are left out of their column, so columns can differ in length.
// Requests sharing a field name append into the same column.
func (t Table) Columns() []Column {
	headers := t.Headers()
	out := make([]Column, 0, len(headers))
	index := make(map[string]int, len(headers))
	for _, name := range headers {
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = len(out)
		out = append(out, Column{Name: name, Values: make([]any, 0, len(t.Rows))})
	}

	for _, row := range t.Rows {
		out[0].Values = append(out[0].Values, row.Name)
		for i, cell := range row.Cells {
			if cell.Omitted() || i >= len(t.Requests) {
				continue
			}
			col := index[t.Requests[i].Field]
			out[col].Values = append(out[col].Values, cell.Value)
		}
	}

	return out
}

// Records returns one full-width record per row, the name first. Cells that
// hold no value render as the sentinel.
func (t Table) Records() [][]any {
	out := make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]any, 0, len(t.Requests)+1)
		record = append(record, row.Name)
		for i := range t.Requests {
			if i >= len(row.Cells) || row.Cells[i].Omitted() {
				record = append(record, Sentinel)
				continue
			}
			record = append(record, row.Cells[i].Value)
		}
		out = append(out, record)
	}
	return out
}

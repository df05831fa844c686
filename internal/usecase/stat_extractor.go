package usecase

import (
	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
)

// KeyNormalizer maps a hero identifier to the key used in provider documents.
type KeyNormalizer interface {
	LookupKey(name string) string
}

// DiagnosticSink receives lookup diagnostics as they are produced.
type DiagnosticSink func(careerstats.Diagnostic)

type StatExtractor struct {
	keys KeyNormalizer
	sink DiagnosticSink
}

func NewStatExtractor(keys KeyNormalizer, sink DiagnosticSink) *StatExtractor {
	return &StatExtractor{keys: keys, sink: sink}
}

// Extract reads careerStats[hero][section][field] for every hero and request.
// Unreadable paths never stop extraction: they become diagnostics and
// sentinel cells.
func (e *StatExtractor) Extract(requests []careerstats.StatRequest, heroes []string, careerStats map[string]any) careerstats.Table {
	table := careerstats.Table{
		Requests: append([]careerstats.StatRequest(nil), requests...),
		Rows:     make([]careerstats.Row, 0, len(heroes)),
	}

	for _, name := range heroes {
		key := name
		if e.keys != nil {
			key = e.keys.LookupKey(name)
		}

		row := careerstats.Row{
			Name:      name,
			LookupKey: key,
			Cells:     make([]careerstats.Cell, 0, len(requests)),
		}
		if row.Name == "" {
			row.Name = careerstats.Sentinel
		}

		for _, req := range requests {
			cell, kind, failed := lookupStat(careerStats, key, req)
			if failed {
				diag := careerstats.Diagnostic{Hero: name, Path: req.Path(), Kind: kind}
				table.Diagnostics = append(table.Diagnostics, diag)
				if e.sink != nil {
					e.sink(diag)
				}
			}
			row.Cells = append(row.Cells, cell)
		}

		table.Rows = append(table.Rows, row)
	}

	return table
}

func lookupStat(root map[string]any, key string, req careerstats.StatRequest) (careerstats.Cell, careerstats.DiagnosticKind, bool) {
	node := any(root)
	for _, part := range []string{key, req.Section, req.Field} {
		m, ok := node.(map[string]any)
		if !ok {
			return careerstats.Cell{Value: careerstats.Sentinel, Status: careerstats.CellTypeMismatch}, careerstats.DiagnosticTypeMismatch, true
		}
		next, ok := m[part]
		if !ok {
			return careerstats.Cell{Value: careerstats.Sentinel, Status: careerstats.CellMissing}, careerstats.DiagnosticMissing, true
		}
		node = next
	}

	if isFalsy(node) {
		return careerstats.Cell{Value: careerstats.Sentinel, Status: careerstats.CellEmpty}, "", false
	}
	return careerstats.Cell{Value: node, Status: careerstats.CellOK}, "", false
}

func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case int:
		return value == 0
	case int64:
		return value == 0
	case string:
		return value == ""
	case map[string]any:
		return len(value) == 0
	case []any:
		return len(value) == 0
	default:
		return false
	}
}

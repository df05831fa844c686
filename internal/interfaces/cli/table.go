package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/domain/player"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/valyala/bytebufferpool"
)

// TableRenderer writes player stat tables to out. Each table is assembled in
// a pooled buffer and flushed with one write.
type TableRenderer struct {
	out io.Writer
}

func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

func (r *TableRenderer) BeginPlayer(entry player.Entry) error {
	_, err := fmt.Fprintf(r.out, "\nSTATS FOR %s\n", entry.ID)
	return err
}

func (r *TableRenderer) WriteTable(_ player.Entry, table careerstats.Table) error {
	return r.Render(table)
}

// Render writes one row per hero. Cells without a value show the sentinel.
func (r *TableRenderer) Render(table careerstats.Table) error {
	records := table.Records()
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(record))
		for _, value := range record {
			row = append(row, formatValue(value))
		}
		rows = append(rows, row)
	}
	return writeTable(r.out, table.Headers(), rows)
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	tbl := tablewriter.NewTable(buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)

	header := make([]any, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	tbl.Header(header...)

	for _, row := range rows {
		if err := tbl.Append(row); err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}
	if err := tbl.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if _, err := out.Write(buf.B); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return careerstats.Sentinel
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

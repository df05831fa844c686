package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/domain/player"
)

func TestTableRenderer_RendersHeadersAndSentinels(t *testing.T) {
	t.Parallel()

	table := careerstats.Table{
		Requests: []careerstats.StatRequest{
			{Section: "average", Field: "deathsAvgPer10Min"},
			{Section: "average", Field: "healingDoneAvgPer10Min"},
		},
		Rows: []careerstats.Row{
			{Name: "allHeroes", Cells: []careerstats.Cell{
				{Value: 6.25, Status: careerstats.CellOK},
				{Value: "9,120", Status: careerstats.CellOK},
			}},
			{Name: "ana", Cells: []careerstats.Cell{
				{Value: careerstats.Sentinel, Status: careerstats.CellMissing},
				{Value: careerstats.Sentinel, Status: careerstats.CellEmpty},
			}},
		},
	}

	var out bytes.Buffer
	renderer := NewTableRenderer(&out)
	if err := renderer.BeginPlayer(player.Entry{ID: "HarryHook-3986"}); err != nil {
		t.Fatalf("begin player: %v", err)
	}
	if err := renderer.WriteTable(player.Entry{ID: "HarryHook-3986"}, table); err != nil {
		t.Fatalf("write table: %v", err)
	}

	text := out.String()
	if !strings.HasPrefix(text, "\nSTATS FOR HarryHook-3986\n") {
		t.Fatalf("unexpected heading: %q", text)
	}
	for _, want := range []string{"name", "deathsAvgPer10Min", "healingDoneAvgPer10Min", "allHeroes", "6.25", "9,120", "ana", "n/a"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Index(text, "allHeroes") > strings.Index(text, "ana") {
		t.Fatalf("expected allHeroes row before ana:\n%s", text)
	}
}

func TestTableRenderer_HeaderOnlyTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := NewTableRenderer(&out).Render(careerstats.Table{Requests: careerstats.DefaultStatRequests()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "deathsAvgPer10Min") {
		t.Fatalf("expected headers in output:\n%s", out.String())
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   any
		want string
	}{
		"nil":           {in: nil, want: careerstats.Sentinel},
		"string":        {in: "01:02:03", want: "01:02:03"},
		"whole float":   {in: 12.0, want: "12"},
		"fraction":      {in: 0.35, want: "0.35"},
		"int":           {in: 7, want: "7"},
		"bool":          {in: true, want: "true"},
		"nested object": {in: map[string]any{"a": 1.0}, want: "map[a:1]"},
	}

	for name, tc := range cases {
		if got := formatValue(tc.in); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", name, got, tc.want)
		}
	}
}

package annotations

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// VersionRow summarizes one emitted clause version for display.
type VersionRow struct {
	Relation string
	Version  int
	Delta    string
	Levels   int
	Clause   string
}

// RenderVersionTable formats emitted clause versions as a markdown table.
func RenderVersionTable(rows []VersionRow) string {
	if len(rows) == 0 {
		return "_No versions emitted_"
	}

	tableString := &strings.Builder{}

	columns := []string{"relation", "version", "delta atom", "levels", "clause"}
	alignment := make([]tw.Align, len(columns))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(columns)

	for _, row := range rows {
		table.Append([]string{
			row.Relation,
			fmt.Sprintf("%d", row.Version),
			row.Delta,
			fmt.Sprintf("%d", row.Levels),
			row.Clause,
		})
	}

	table.Render()
	tableString.WriteString(fmt.Sprintf("\n_%d versions_\n", len(rows)))

	return tableString.String()
}

// VersionRowsFromEvents extracts version rows from collected events.
func VersionRowsFromEvents(events []Event) []VersionRow {
	var rows []VersionRow
	for _, ev := range events {
		if ev.Name != VersionEmitted {
			continue
		}
		row := VersionRow{}
		if v, ok := ev.Data["relation"].(string); ok {
			row.Relation = v
		}
		if v, ok := ev.Data["version"].(int); ok {
			row.Version = v
		}
		if v, ok := ev.Data["delta"].(string); ok {
			row.Delta = v
		}
		if v, ok := ev.Data["levels"].(int); ok {
			row.Levels = v
		}
		if v, ok := ev.Data["clause"].(string); ok {
			row.Clause = v
		}
		rows = append(rows, row)
	}
	return rows
}

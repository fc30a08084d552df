package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/reqfile/reqfile-cli/internal/manager"
)

// RenderOutdated draws the final result table for the outdated command.
func RenderOutdated(rows []manager.OutdatedRow) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Package", "Constraint", "Latest", "Status"})
	stale := 0
	for _, r := range rows {
		constraint := r.Constraint
		if constraint == "" {
			constraint = "-"
		}
		latest := r.Latest
		if latest == "" {
			latest = "-"
		}
		status := statusCell(r)
		tw.AppendRow(table.Row{r.Name, constraint, latest, status})
		if r.Err == "" && !r.Satisfied {
			stale++
		}
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	if stale > 0 {
		b.WriteString(fmt.Sprintf("%d package(s) have releases outside their declared constraints\n", stale))
	}
	return b.String()
}

func statusCell(r manager.OutdatedRow) string {
	switch {
	case r.Err != "":
		return text.FgRed.Sprint("error: " + r.Err)
	case !r.Satisfied:
		return text.FgYellow.Sprint("outside constraint")
	case r.Cached:
		return text.FgGreen.Sprint("ok (cached)")
	default:
		return text.FgGreen.Sprint("ok")
	}
}

package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/reqfile/reqfile-cli/internal/requirement"
)

func (c *ConsoleUI) RunListImperative(showInstalled bool) error {
	groups := c.m.Tracked()
	byName := map[string]requirement.Requirement{}
	installed := map[string]string{}
	for _, names := range groups {
		for _, n := range names {
			r, err := c.m.Requirement(n)
			if err != nil {
				return err
			}
			byName[n] = r
			if showInstalled {
				installed[n] = c.m.InstalledVersion(n)
			}
		}
	}
	if !showInstalled {
		installed = nil
	}
	fmt.Print(renderList(groups, byName, installed))
	return nil
}

func renderList(groups map[string][]string, byName map[string]requirement.Requirement, installed map[string]string) string {
	var b strings.Builder
	files := make([]string, 0, len(groups))
	for k := range groups {
		files = append(files, k)
	}
	sort.Strings(files)
	for _, f := range files {
		b.WriteString(text.Bold.Sprint(f) + "\n")
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		header := table.Row{"Package", "Extras", "Constraint", "Note"}
		if installed != nil {
			header = table.Row{"Package", "Extras", "Constraint", "Installed", "Note"}
		}
		tw.AppendHeader(header)
		for _, name := range groups[f] {
			r := byName[name]
			extras := strings.Join(r.Extras, ",")
			if extras == "" {
				extras = "-"
			}
			constraint := constraintCell(r)
			note := r.Comment
			if note == "" {
				note = "-"
			}
			if installed != nil {
				v := installed[name]
				if v == "" {
					v = "not installed"
				}
				tw.AppendRow(table.Row{r.Name, extras, constraint, v, note})
			} else {
				tw.AppendRow(table.Row{r.Name, extras, constraint, note})
			}
		}
		b.WriteString(tw.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}

func constraintCell(r requirement.Requirement) string {
	if len(r.Constraints) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(r.Constraints))
	for _, c := range r.Constraints {
		parts = append(parts, c.Op+c.Version)
	}
	return strings.Join(parts, ",")
}

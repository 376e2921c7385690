package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	explorations, err := deps.Explorations.FindExplorations(deps.Ctx, sitegraph.ExplorationFilter{})
	if err != nil {
		return fail(deps, err)
	}

	if len(explorations) == 0 {
		fmt.Fprintln(deps.Stdout, "No explorations found. Use 'sitegraph analyze' to create one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "URL", "Category", "Pages", "Created"})
	for _, e := range explorations {
		t.AppendRow(table.Row{e.ID, e.URL, e.Category, e.PageCount, e.CreatedAt.Format("2006-01-02 15:04")})
	}
	t.AppendFooter(table.Row{"Total", len(explorations)})
	t.Render()
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	e, err := findExploration(deps, c.ID)
	if err != nil {
		return err
	}

	printSummary(deps, e)

	s := e.Structure
	if len(s.Probabilities) > 1 {
		fmt.Fprintln(deps.Stdout, "\nCategory probabilities:")
		for _, p := range s.Probabilities {
			fmt.Fprintf(deps.Stdout, "  %-15s %5.1f%%\n", p.Category, p.Probability*100)
		}
	}

	if s.Hierarchy != nil {
		fmt.Fprintln(deps.Stdout, "\nHierarchy:")
		printTree(deps, s.Hierarchy, 1)
	}
	return nil
}

func printSummary(deps *Dependencies, e *sitegraph.Exploration) {
	s := e.Structure
	fmt.Fprintf(deps.Stdout, "  URL:        %s\n", e.URL)
	fmt.Fprintf(deps.Stdout, "  Pages:      %d (%d edges, crawl %s)\n", e.PageCount, e.EdgeCount, s.StopReason)
	fmt.Fprintf(deps.Stdout, "  Category:   %s (%.2f, %s)\n", e.Category, s.Confidence, s.Strategy)
}

func printTree(deps *Dependencies, n *sitegraph.HierarchyNode, indent int) {
	title := n.Title
	if title == "" {
		title = n.Path
	}
	fmt.Fprintf(deps.Stdout, "%s%s  %s\n", strings.Repeat("  ", indent), title, n.URL)
	for _, child := range n.Children {
		printTree(deps, child, indent+1)
	}
}

package fs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/nao1215/markdown"
)

// ReportFile is the Markdown summary written alongside the JSON files.
const ReportFile = "report.md"

// WriteReport renders a human-readable Markdown summary of e and its test
// batches to w.
func WriteReport(w io.Writer, e *sitegraph.Exploration, batches []*sitegraph.TestBatch) error {
	s := e.Structure
	md := markdown.NewMarkdown(w)

	md.H1("Site exploration: " + e.URL)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Exploration", "`" + e.ID + "`"},
			{"Domain", e.Domain},
			{"Category", fmt.Sprintf("%s (%.2f, %s)", s.Category, s.Confidence, s.Strategy)},
			{"Pages", strconv.Itoa(s.PageCount)},
			{"Edges", strconv.Itoa(s.EdgeCount)},
			{"Crawl", string(s.StopReason)},
			{"Crawled at", s.CrawledAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	if len(s.Probabilities) > 0 {
		md.H2("Category probabilities")
		md.PlainText("")
		rows := make([][]string, 0, len(s.Probabilities))
		for _, p := range s.Probabilities {
			rows = append(rows, []string{string(p.Category), fmt.Sprintf("%.1f%%", p.Probability*100)})
		}
		md.Table(markdown.TableSet{Header: []string{"Category", "Probability"}, Rows: rows})
		md.PlainText("")
	}

	if s.Hierarchy != nil {
		md.H2("Hierarchy")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlight("text"), hierarchyText(s.Hierarchy))
		md.PlainText("")
	}

	for _, b := range batches {
		if len(b.TestCases) == 0 {
			continue
		}
		if b.PageURL == "" {
			md.H2("Site tests")
		} else {
			md.H2("Tests for " + b.PageURL)
		}
		md.PlainText("")
		for _, tc := range b.TestCases {
			md.H3(fmt.Sprintf("%d. %s", tc.ID, tc.Title))
			md.PlainText("")
			if tc.Description != "" {
				md.PlainText(tc.Description)
				md.PlainText("")
			}
			md.BulletList(tc.Steps...)
			md.PlainText("")
			if len(tc.ExpectedResults) > 0 {
				md.PlainText("Expected:")
				md.PlainText("")
				md.BulletList(tc.ExpectedResults...)
				md.PlainText("")
			}
		}
	}

	return md.Build()
}

// hierarchyText draws the discovery tree with two spaces per level.
func hierarchyText(root *sitegraph.HierarchyNode) string {
	var b strings.Builder
	var walk func(n *sitegraph.HierarchyNode, indent int)
	walk = func(n *sitegraph.HierarchyNode, indent int) {
		label := n.Path
		if n.Title != "" {
			label += " (" + n.Title + ")"
		}
		b.WriteString(strings.Repeat("  ", indent) + label + "\n")
		for _, c := range n.Children {
			walk(c, indent+1)
		}
	}
	walk(root, 0)
	return strings.TrimRight(b.String(), "\n")
}

package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	e, err := findExploration(deps, c.ID)
	if err != nil {
		return err
	}

	p, ok := e.Structure.Page(c.URL)
	if !ok {
		return fail(deps, sitegraph.Errorf(sitegraph.ENOTFOUND, "page %q was not discovered by exploration %s", c.URL, e.ID))
	}

	out := deps.Stdout
	fmt.Fprintf(out, "%s\n", p.URL)
	fmt.Fprintf(out, "  Title:    %s\n", p.Title)
	fmt.Fprintf(out, "  Path:     %s\n", p.Path)
	fmt.Fprintf(out, "  Depth:    %d\n", p.Depth)
	if p.Parent != "" {
		fmt.Fprintf(out, "  Parent:   %s\n", p.Parent)
	}
	fmt.Fprintf(out, "  Content:  %d forms, %d images, %d buttons, %d inputs, %d links\n",
		p.Forms, p.Images, p.Buttons, p.Inputs, len(p.Links))
	fmt.Fprintf(out, "  Paths:    %d from the seed\n", len(e.Structure.PathsTo(p.URL)))

	if len(p.Headings) > 0 {
		fmt.Fprintln(out, "\nHeadings:")
		for _, h := range p.Headings {
			fmt.Fprintf(out, "  %s\n", h)
		}
	}

	if children := e.Structure.Children(p.URL); len(children) > 0 {
		fmt.Fprintln(out, "\nChildren:")
		for _, child := range children {
			fmt.Fprintf(out, "  %s  %s\n", child.Title, child.URL)
		}
	}
	return nil
}

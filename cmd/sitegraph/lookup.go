package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/synth"
)

// fail reports err on stderr and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", sitegraph.ErrorMessage(err))
	return err
}

func findExploration(deps *Dependencies, id string) (*sitegraph.Exploration, error) {
	e, err := deps.Explorations.FindExplorationByID(deps.Ctx, id)
	if sitegraph.ErrorCode(err) == sitegraph.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: exploration %q not found. Use 'sitegraph list' to see stored explorations.\n", id)
		return nil, err
	}
	if err != nil {
		return nil, fail(deps, err)
	}
	return e, nil
}

// normalizePage returns the page identity for rawURL; empty stays empty.
func normalizePage(rawURL string) (string, error) {
	if rawURL == "" {
		return "", nil
	}
	return sitegraph.NormalizeURL(rawURL)
}

// loadBatch returns the stored batch for pageURL, synthesizing and storing
// one when none exists or regenerate is set.
func loadBatch(deps *Dependencies, e *sitegraph.Exploration, pageURL string, regenerate bool) (*sitegraph.TestBatch, error) {
	if !regenerate {
		batch, err := deps.TestCases.FindTestBatch(deps.Ctx, e.ID, pageURL)
		if err == nil {
			return batch, nil
		}
		if sitegraph.ErrorCode(err) != sitegraph.ENOTFOUND {
			return nil, err
		}
	}

	var tests []*sitegraph.TestCase
	if pageURL == "" {
		tests = synth.SynthesizeSite(e.Structure)
	} else {
		tests = synth.SynthesizePage(e.Structure, pageURL)
		if len(tests) == 0 {
			return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "page %q was not discovered by exploration %s", pageURL, e.ID)
		}
	}

	batch := &sitegraph.TestBatch{ExplorationID: e.ID, PageURL: pageURL, TestCases: tests}
	if err := deps.TestCases.ReplaceTestBatch(deps.Ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// findTestCase resolves a test case by exploration, optional page and id.
func findTestCase(deps *Dependencies, id, page string, testID int) (*sitegraph.Exploration, string, *sitegraph.TestCase, error) {
	e, err := findExploration(deps, id)
	if err != nil {
		return nil, "", nil, err
	}
	pageURL, err := normalizePage(page)
	if err != nil {
		return nil, "", nil, fail(deps, err)
	}
	batch, err := loadBatch(deps, e, pageURL, false)
	if err != nil {
		return nil, "", nil, fail(deps, err)
	}
	tc, ok := batch.TestCase(testID)
	if !ok {
		return nil, "", nil, fail(deps, sitegraph.Errorf(sitegraph.ENOTFOUND, "test case %d not found. Use 'sitegraph tests %s' to list test cases.", testID, id))
	}
	return e, pageURL, tc, nil
}

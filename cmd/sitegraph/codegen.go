package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
)

// Run executes the codegen command.
func (c *CodegenCmd) Run(deps *Dependencies) error {
	e, pageURL, tc, err := findTestCase(deps, c.ID, c.Page, c.TestID)
	if err != nil {
		return err
	}

	if !c.Force {
		stored, err := deps.TestCases.FindGeneratedCode(deps.Ctx, e.ID, pageURL, tc.ID)
		if err == nil {
			fmt.Fprintln(deps.Stdout, stored.Code)
			return nil
		}
		if sitegraph.ErrorCode(err) != sitegraph.ENOTFOUND {
			return fail(deps, err)
		}
	}

	code, err := deps.CodeGen.GenerateCode(deps.Ctx, tc, e.URL)
	if err != nil {
		return fail(deps, err)
	}

	if err := deps.TestCases.SaveGeneratedCode(deps.Ctx, &sitegraph.GeneratedCode{
		ExplorationID: e.ID,
		PageURL:       pageURL,
		TestCaseID:    tc.ID,
		Code:          code,
	}); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, code)
	return nil
}

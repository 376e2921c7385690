package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitegraph/naivebayes"
)

// Run executes the train command.
func (c *TrainCmd) Run(deps *Dependencies) error {
	model, err := naivebayes.Train(naivebayes.DefaultCorpus(), naivebayes.DefaultOptions())
	if err != nil {
		return fail(deps, err)
	}
	eval := naivebayes.Evaluate(model, naivebayes.EvalCorpus())

	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		return fail(deps, err)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return fail(deps, err)
	}
	if err := model.Save(f); err != nil {
		_ = f.Close()
		return fail(deps, err)
	}
	if err := f.Close(); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Trained on %d samples, %d terms\n", len(naivebayes.DefaultCorpus()), len(model.Vocabulary))
	fmt.Fprintf(deps.Stdout, "Held-out accuracy: %.0f%% (%d/%d)\n", eval.Accuracy*100, eval.Correct, eval.Samples)
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	return nil
}

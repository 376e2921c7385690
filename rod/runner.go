package rod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sitegraph"
)

// DefaultStepTimeout bounds a single action.
const DefaultStepTimeout = 30 * time.Second

// Ensure Runner implements sitegraph.TestRunner at compile time.
var _ sitegraph.TestRunner = (*Runner)(nil)

// Runner executes the declarative actions of a test case in a fresh page.
// Execution stops at the first failing action.
type Runner struct {
	opener      PageOpener
	stepTimeout time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStepTimeout bounds each action. Zero disables the bound.
func WithStepTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.stepTimeout = d
	}
}

// NewRunner creates a Runner that opens pages from opener.
func NewRunner(opener PageOpener, opts ...RunnerOption) *Runner {
	r := &Runner{opener: opener, stepTimeout: DefaultStepTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes tc.Actions in order. A failed action is reported in the
// result, not as an error; errors are reserved for failing to start.
func (r *Runner) Run(ctx context.Context, tc *sitegraph.TestCase) (*sitegraph.RunResult, error) {
	if tc == nil {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "test case required")
	}
	if len(tc.Actions) == 0 {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "test case %d has no executable actions", tc.ID)
	}

	page, err := r.opener.OpenPage(ctx)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	res := &sitegraph.RunResult{TestCaseID: tc.ID, Passed: true}
	for _, action := range tc.Actions {
		begin := time.Now()
		err := r.step(ctx, page, action)
		step := sitegraph.StepResult{Action: action, Duration: time.Since(begin)}
		if err != nil {
			step.Err = err.Error()
			res.Passed = false
		}
		res.Steps = append(res.Steps, step)
		if err != nil {
			break
		}
	}
	return res, nil
}

func (r *Runner) step(ctx context.Context, page Page, action sitegraph.Action) error {
	if r.stepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.stepTimeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- execute(page, action) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func execute(page Page, action sitegraph.Action) error {
	switch action.Kind {
	case sitegraph.ActionNavigate:
		return page.Navigate(action.URL)
	case sitegraph.ActionClick:
		return page.ClickLink(action.URL, action.Text)
	case sitegraph.ActionWait:
		return page.WaitLoad()
	case sitegraph.ActionAssertTitle:
		title, err := page.Title()
		if err != nil {
			return err
		}
		if !strings.Contains(strings.ToLower(title), strings.ToLower(strings.TrimSpace(action.Text))) {
			return fmt.Errorf("title %q does not contain %q", title, action.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}
}

// Close releases the underlying browser.
func (r *Runner) Close() error {
	return r.opener.Close()
}

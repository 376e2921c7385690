package sitegraph

import (
	"context"
	"time"
)

// ActionKind names a declarative browser step.
type ActionKind string

// ActionKind constants.
const (
	ActionNavigate    ActionKind = "navigate"
	ActionClick       ActionKind = "click"
	ActionWait        ActionKind = "wait"
	ActionAssertTitle ActionKind = "assert_title"
)

// Action is the executable form of a navigation step. Click actions carry
// both the link target URL and its page title.
type Action struct {
	Kind ActionKind `json:"kind"`
	URL  string     `json:"url,omitempty"`
	Text string     `json:"text,omitempty"`
}

// TestCase is a synthesized behavioral test scenario. IDs are positional
// within one batch and restart at 1 on every synthesis.
type TestCase struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Steps           []string `json:"steps"`
	ExpectedResults []string `json:"expectedResults"`
	Actions         []Action `json:"actions,omitempty"`
}

// TestBatch is one synthesis run for an exploration. An empty PageURL
// means the batch covers the whole site.
type TestBatch struct {
	ExplorationID string      `json:"explorationId"`
	PageURL       string      `json:"pageUrl,omitempty"`
	TestCases     []*TestCase `json:"testCases"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Validate returns an error if the batch contains invalid fields.
func (b *TestBatch) Validate() error {
	if b.ExplorationID == "" {
		return Errorf(EINVALID, "test batch exploration ID required")
	}
	return nil
}

// TestCase returns the test case with the given id.
func (b *TestBatch) TestCase(id int) (*TestCase, bool) {
	for _, tc := range b.TestCases {
		if tc.ID == id {
			return tc, true
		}
	}
	return nil, false
}

// GeneratedCode is automation source produced for one test case.
type GeneratedCode struct {
	ExplorationID string    `json:"explorationId"`
	PageURL       string    `json:"pageUrl,omitempty"`
	TestCaseID    int       `json:"testCaseId"`
	Code          string    `json:"code"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TestCaseService persists synthesized test batches and generated code.
type TestCaseService interface {
	// ReplaceTestBatch stores batch, replacing any earlier batch for the
	// same exploration and page along with its generated code.
	ReplaceTestBatch(ctx context.Context, batch *TestBatch) error

	// FindTestBatch returns the stored batch.
	// Returns ENOTFOUND if no batch exists.
	FindTestBatch(ctx context.Context, explorationID, pageURL string) (*TestBatch, error)

	// SaveGeneratedCode stores code for a test case, replacing earlier code.
	SaveGeneratedCode(ctx context.Context, code *GeneratedCode) error

	// FindGeneratedCode returns stored code for a test case.
	// Returns ENOTFOUND if none exists.
	FindGeneratedCode(ctx context.Context, explorationID, pageURL string, testCaseID int) (*GeneratedCode, error)
}

// CodeGenerator turns a test case into automation source using an external
// text-generation service.
type CodeGenerator interface {
	GenerateCode(ctx context.Context, tc *TestCase, siteURL string) (string, error)
}

// StepResult is the outcome of one executed action.
type StepResult struct {
	Action   Action        `json:"action"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// RunResult is the outcome of executing a test case in a browser.
type RunResult struct {
	TestCaseID int          `json:"testCaseId"`
	Passed     bool         `json:"passed"`
	Steps      []StepResult `json:"steps"`
}

// TestRunner executes a test case's actions against a live browser.
// Execution stops at the first failing action.
type TestRunner interface {
	Run(ctx context.Context, tc *TestCase) (*RunResult, error)
	Close() error
}

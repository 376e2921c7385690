// Package gemini generates browser automation code for synthesized test
// cases using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/sitegraph"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure CodeGenerator implements sitegraph.CodeGenerator at compile time.
var _ sitegraph.CodeGenerator = (*CodeGenerator)(nil)

// CodeGenerator implements sitegraph.CodeGenerator using Google Gemini.
type CodeGenerator struct {
	client *genai.Client
}

// NewCodeGenerator creates a new CodeGenerator.
func NewCodeGenerator(client *genai.Client) *CodeGenerator {
	return &CodeGenerator{client: client}
}

// GenerateCode asks the model for a runnable script covering tc against
// siteURL and returns the first fenced code block of the answer, or the whole
// answer when it carries no fence.
func (g *CodeGenerator) GenerateCode(ctx context.Context, tc *sitegraph.TestCase, siteURL string) (string, error) {
	if tc == nil || len(tc.Steps) == 0 {
		return "", sitegraph.Errorf(sitegraph.EINVALID, "test case with steps required")
	}
	if siteURL == "" {
		return "", sitegraph.Errorf(sitegraph.EINVALID, "site URL required")
	}
	if g.client == nil {
		return "", sitegraph.Errorf(sitegraph.EUNAVAILABLE, "code generation not configured")
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(tc, siteURL)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitegraph.Errorf(sitegraph.EINTERNAL, "gemini returned nil result")
	}

	code := ExtractCode(result.Text())
	if code == "" {
		return "", sitegraph.Errorf(sitegraph.EINTERNAL, "gemini returned no code")
	}
	return code, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write Python Selenium test scripts. Respond with a single complete script in one fenced code block. Use explicit waits, assert every expected result, and do not invent selectors beyond the link texts and URLs given.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the prompt describing tc with numbered steps and
// expected results.
func BuildUserPrompt(tc *sitegraph.TestCase, siteURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Site: %s\n", siteURL)
	fmt.Fprintf(&sb, "Test: %s\n", tc.Title)
	if tc.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", tc.Description)
	}
	sb.WriteString("\nSteps:\n")
	for i, step := range tc.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	if len(tc.ExpectedResults) > 0 {
		sb.WriteString("\nExpected results:\n")
		for i, res := range tc.ExpectedResults {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, res)
		}
	}
	if len(tc.Actions) > 0 {
		sb.WriteString("\nNavigation:\n")
		for _, a := range tc.Actions {
			switch a.Kind {
			case sitegraph.ActionNavigate:
				fmt.Fprintf(&sb, "- open %s\n", a.URL)
			case sitegraph.ActionClick:
				fmt.Fprintf(&sb, "- click link %q leading to %s\n", a.Text, a.URL)
			case sitegraph.ActionWait:
				sb.WriteString("- wait for the page to load\n")
			case sitegraph.ActionAssertTitle:
				fmt.Fprintf(&sb, "- assert the title is %q\n", a.Text)
			}
		}
	}
	return sb.String()
}

var fence = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \t]*\r?\n(.*?)```")

// ExtractCode returns the body of the first fenced code block in text. Text
// without a fence is returned trimmed.
func ExtractCode(text string) string {
	if m := fence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

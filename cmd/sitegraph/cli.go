package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Explorations sitegraph.ExplorationService
	TestCases    sitegraph.TestCaseService
	Sitemaps     sitegraph.SitemapService
	Crawler      *crawl.Crawler
	Classifier   sitegraph.Classifier
	CodeGen      sitegraph.CodeGenerator
	Runner       sitegraph.TestRunner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"SITEGRAPH_DB" help:"Database path (default sitegraph.db in the XDG data directory)"`
	Model   string `name:"model" env:"SITEGRAPH_MODEL" help:"Trained classifier path"`
	Verbose bool   `short:"v" help:"Log per-request detail to stderr"`

	Analyze  AnalyzeCmd  `cmd:"" help:"Crawl a site and store its structure"`
	List     ListCmd     `cmd:"" help:"List stored explorations"`
	Show     ShowCmd     `cmd:"" help:"Show an exploration's summary and hierarchy"`
	Page     PageCmd     `cmd:"" help:"Show one page of an exploration"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an exploration and its tests"`
	Tests    TestsCmd    `cmd:"" help:"Synthesize test cases for a site or one page"`
	Codegen  CodegenCmd  `cmd:"" help:"Generate automation code for a test case"`
	Run      RunCmd      `cmd:"" help:"Execute a test case in a headless browser"`
	Export   ExportCmd   `cmd:"" help:"Write an exploration and its tests as JSON files with a Markdown report"`
	Coverage CoverageCmd `cmd:"" help:"Compare the crawl against the site's sitemap"`
	Train    TrainCmd    `cmd:"" help:"Train the category classifier on the built-in corpus"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL              string        `arg:"" help:"Seed URL"`
	Reuse            bool          `help:"Reuse the latest stored exploration of this URL"`
	MaxDepth         int           `default:"10" help:"Deepest link depth to fetch"`
	MaxPages         int           `default:"500" help:"Maximum fetch attempts"`
	Concurrency      int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout          time.Duration `default:"30s" help:"Per-request timeout"`
	RPS              float64       `name:"rps" default:"0" help:"Requests per second per domain (0 = unlimited)"`
	InsecureFallback bool          `default:"true" negatable:"" help:"Retry TLS failures without certificate verification"`
	Deadline         time.Duration `default:"0" help:"Overall crawl time limit (0 = none)"`
	MaxPaths         int           `default:"100" help:"Paths enumerated per page (0 = unlimited)"`
	RespectRobots    bool          `help:"Skip URLs disallowed by robots.txt"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Exploration ID"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	ID  string `arg:"" help:"Exploration ID"`
	URL string `arg:"" help:"Page URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Exploration ID"`
	Force bool   `help:"Confirm deletion"`
}

// TestsCmd is the "tests" subcommand.
type TestsCmd struct {
	ID         string `arg:"" help:"Exploration ID"`
	Page       string `help:"Scope tests to one page URL"`
	Regenerate bool   `help:"Synthesize again even if tests are stored"`
}

// CodegenCmd is the "codegen" subcommand.
type CodegenCmd struct {
	ID     string `arg:"" help:"Exploration ID"`
	TestID int    `arg:"" help:"Test case ID"`
	Page   string `help:"Page URL the test case belongs to"`
	Force  bool   `help:"Generate again even if code is stored"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	ID     string `arg:"" help:"Exploration ID"`
	TestID int    `arg:"" help:"Test case ID"`
	Page   string `help:"Page URL the test case belongs to"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Exploration ID"`
	Dir string `arg:"" help:"Output directory"`
}

// CoverageCmd is the "coverage" subcommand.
type CoverageCmd struct {
	ID string `arg:"" help:"Exploration ID"`
}

// TrainCmd is the "train" subcommand.
type TrainCmd struct {
	Out string `required:"" help:"Where to write the trained model"`
}

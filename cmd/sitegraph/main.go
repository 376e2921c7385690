package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/classify"
	"github.com/fwojciec/sitegraph/crawl"
	"github.com/fwojciec/sitegraph/gemini"
	"github.com/fwojciec/sitegraph/goquery"
	sghttp "github.com/fwojciec/sitegraph/http"
	"github.com/fwojciec/sitegraph/naivebayes"
	"github.com/fwojciec/sitegraph/rod"
	sgslog "github.com/fwojciec/sitegraph/slog"
	"github.com/fwojciec/sitegraph/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overridden by --db or SITEGRAPH_DB.
	DBPath string

	// Classifier model path. Overridden by --model or SITEGRAPH_MODEL.
	ModelPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ExplorationService sitegraph.ExplorationService
	TestCaseService    sitegraph.TestCaseService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultPath("sitegraph.db"),
		ModelPath: defaultPath("classifier.sgnb"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitegraph"),
		kong.Description("Crawl a website, model its structure and synthesize tests from it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitegraph --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if cli.Model != "" {
		m.ModelPath = cli.Model
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cmd == "train" {
		return kongCtx.Run(deps)
	}

	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory for %q: %w", m.DBPath, err)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEGRAPH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ExplorationService = sqlite.NewExplorationService(m.DB)
	m.TestCaseService = sqlite.NewTestCaseService(m.DB)
	deps.Explorations = m.ExplorationService
	deps.TestCases = m.TestCaseService

	switch cmd {
	case "analyze":
		m.wireAnalyze(deps, &cli.Analyze)
	case "coverage":
		deps.Sitemaps = sgslog.NewLoggingSitemapService(sghttp.NewSitemapService(nil), deps.Logger)
	case "codegen":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.CodeGen = sgslog.NewLoggingCodeGenerator(gemini.NewCodeGenerator(client), deps.Logger)
	case "run":
		manager, err := rod.NewBrowserManager(rod.WithIgnoreCertErrors(true))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		runner := sgslog.NewLoggingRunner(rod.NewRunner(manager), deps.Logger)
		defer runner.Close()
		deps.Runner = runner
	}

	return kongCtx.Run(deps)
}

func (m *Main) wireAnalyze(deps *Dependencies, c *AnalyzeCmd) {
	fetcher := sghttp.NewFetcher(
		sghttp.WithTimeout(c.Timeout),
		sghttp.WithInsecureFallback(c.InsecureFallback),
		sghttp.WithLogger(deps.Logger),
	)
	limiter := crawl.NewDomainLimiter(c.RPS)
	deps.Crawler = &crawl.Crawler{
		Fetcher:     sgslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractor:   goquery.NewExtractor(),
		RateLimiter: limiter,
		Logger:      deps.Logger,
		MaxDepth:    c.MaxDepth,
		MaxPages:    c.MaxPages,
		Concurrency: c.Concurrency,
	}
	if c.RespectRobots {
		robots := sghttp.NewRobotsChecker(nil, sghttp.DefaultUserAgent)
		deps.Crawler.Robots = robots
		if seed, err := sitegraph.NormalizeURL(c.URL); err == nil {
			if delay := robots.CrawlDelay(deps.Ctx, seed); delay > 0 {
				deps.Logger.Info("honoring crawl delay", "url", seed, "delay", delay)
				limiter.SetMinInterval(sitegraph.Hostname(seed), delay)
			}
		}
	}

	cls := classify.NewClassifier(LoadModel(m.ModelPath, deps.Logger))
	cls.Logger = deps.Logger
	deps.Classifier = sgslog.NewLoggingClassifier(cls, deps.Logger)
}

// LoadModel reads a trained classifier from path. A missing or unreadable
// model yields a nil Predictor so classification falls back to keywords.
func LoadModel(path string, logger *slog.Logger) sitegraph.Predictor {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("classifier model unavailable", "path", path, "err", err)
		}
		return nil
	}
	defer f.Close()

	model, err := naivebayes.Load(f)
	if err != nil {
		logger.Warn("classifier model unavailable", "path", path, "err", err)
		return nil
	}
	return model
}

// newLogger returns the CLI logger. Only warnings and errors are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "sitegraph",
	}))
}

// defaultPath places name under the XDG data directory. The directory is
// created when the database is opened.
func defaultPath(name string) string {
	return filepath.Join(xdg.DataHome, "sitegraph", name)
}

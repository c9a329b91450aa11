package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/poster"
	"github.com/fwojciec/poster/analyze"
	"github.com/fwojciec/poster/gemini"
	"github.com/fwojciec/poster/goquery"
	"github.com/fwojciec/poster/htmltomarkdown"
	posthttp "github.com/fwojciec/poster/http"
	"github.com/fwojciec/poster/readability"
	"github.com/fwojciec/poster/retrieve"
	"github.com/fwojciec/poster/rod"
	postslog "github.com/fwojciec/poster/slog"
	"github.com/fwojciec/poster/sqlite"
	"github.com/fwojciec/poster/trafilatura"
	"github.com/fwojciec/poster/xhtml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the analysis history. Opened on demand.
	DB *sqlite.DB

	// closers are released by Close in reverse order.
	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
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
		kong.Name("poster"),
		kong.Description("Turn product pages into marketing poster data"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'poster --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Images = &poster.ImageProxy{Endpoint: cli.ImageProxy, Quality: cli.ImageQuality}

	logger := newLogger(stderr, cli.Verbose)

	switch kongCtx.Selected().Name {
	case "analyze":
		if cli.APIKey == "" {
			return poster.Errorf(poster.EMISSINGCREDENTIAL, "GEMINI_API_KEY not set")
		}

		var history poster.AnalysisService
		if cli.Save {
			if history, err = m.openHistory(cli.DB, stderr); err != nil {
				return err
			}
		}

		analyzer, err := m.buildAnalyzer(ctx, cli, history, logger, stderr)
		if err != nil {
			return err
		}
		deps.Analyzer = analyzer

	case "history", "show":
		if deps.History, err = m.openHistory(cli.DB, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// openHistory opens the history database at path, or the default path.
func (m *Main) openHistory(path string, stderr io.Writer) (poster.AnalysisService, error) {
	if path == "" {
		path = defaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POSTER_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	m.closers = append(m.closers, m.DB)

	return sqlite.NewAnalysisService(m.DB), nil
}

// buildAnalyzer wires the retrieval chain and the Gemini extractor into a
// pipeline.
func (m *Main) buildAnalyzer(ctx context.Context, cli *CLI, history poster.AnalysisService, logger *slog.Logger, stderr io.Writer) (poster.Analyzer, error) {
	var fetcher poster.Fetcher = posthttp.NewFetcher(
		posthttp.WithTimeout(cli.Timeout),
		posthttp.WithRateLimit(cli.Rate),
	)
	if cli.Verbose {
		fetcher = postslog.NewLoggingFetcher(fetcher, logger)
	}
	m.closers = append(m.closers, fetcher)

	sanitizer := xhtml.NewSanitizer()
	var meta poster.MetaScanner = goquery.NewMetaScanner()
	if cli.Verbose {
		meta = postslog.NewLoggingMetaScanner(meta, logger)
	}

	strategies := []poster.Strategy{
		&retrieve.RawHTMLStrategy{Fetcher: fetcher, Template: cli.RawProxy, Sanitizer: sanitizer, Meta: meta},
		&retrieve.ReaderStrategy{Fetcher: fetcher, Template: cli.ReaderProxy},
	}

	if cli.Local {
		strategies = append(strategies, &retrieve.LocalReaderStrategy{
			Fetcher:   fetcher,
			Extractor: newContentExtractor(cli.Extractor),
			Converter: htmltomarkdown.NewConverter(),
		})
	}

	if cli.Browser {
		browser, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithMaxPages(rod.RecycleEvery(len(cli.Analyze.URLs))),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		var bf poster.Fetcher = browser
		if cli.Verbose {
			bf = postslog.NewLoggingFetcher(bf, logger)
		}
		m.closers = append(m.closers, bf)
		strategies = append(strategies, &retrieve.RawHTMLStrategy{
			Label:     "browser",
			Fetcher:   bf,
			Template:  "{url}",
			Sanitizer: sanitizer,
			Meta:      meta,
		})
	}

	if cli.Verbose {
		for i, s := range strategies {
			strategies[i] = postslog.NewLoggingStrategy(s, logger)
		}
	}

	var retriever poster.Retriever = retrieve.NewRetriever(strategies...)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var extractor poster.ExtractionClient = gemini.NewExtractor(client.Models, gemini.Config{
		APIKey: cli.APIKey,
		Model:  cli.Model,
	})

	if cli.Verbose {
		retriever = postslog.NewLoggingRetriever(retriever, logger)
		extractor = postslog.NewLoggingExtractor(extractor, logger)
	}

	pipeline := &analyze.Pipeline{
		Retriever: retriever,
		Extractor: extractor,
		History:   history,
		Logger:    logger,
	}

	if history != nil {
		counter, err := gemini.NewTokenCounter(cli.Model)
		if err != nil {
			logger.Warn("token counting disabled", "model", cli.Model, "err", err)
		} else {
			pipeline.TokenCounter = counter
		}
	}

	if cli.Verbose {
		return postslog.NewLoggingAnalyzer(pipeline, logger), nil
	}
	return pipeline, nil
}

// newContentExtractor returns the local extractor selected by name.
func newContentExtractor(name string) poster.ContentExtractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

// newLogger returns a text logger on w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "poster.db"
	}
	return filepath.Join(home, ".poster", "poster.db")
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/poster"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer poster.Analyzer
	History  poster.AnalysisService
	Images   *poster.ImageProxy
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey       string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model        string        `default:"gemini-2.5-flash" help:"Gemini model used for extraction"`
	RawProxy     string        `name:"raw-proxy" default:"https://api.allorigins.win/raw?url={escaped_url}" help:"Raw HTML proxy template ({url} or {escaped_url})"`
	ReaderProxy  string        `name:"reader-proxy" default:"https://r.jina.ai/{url}" help:"Reader proxy template ({url} or {escaped_url})"`
	ImageProxy   string        `name:"image-proxy" default:"https://wsrv.nl/" help:"Image proxy endpoint"`
	ImageQuality int           `name:"image-quality" default:"90" help:"Image proxy quality hint"`
	Timeout      time.Duration `short:"t" default:"20s" help:"Fetch timeout per request"`
	Rate         float64       `default:"0" help:"Requests per second per proxy host (0 = unlimited)"`
	Local        bool          `help:"Fall back to fetching the page directly and extracting it locally"`
	Extractor    string        `default:"readability" enum:"readability,trafilatura" help:"Local content extractor (readability, trafilatura)"`
	Browser      bool          `help:"Fall back to rendering the page in headless Chrome"`
	Save         bool          `help:"Store successful analyses in the history database"`
	DB           string        `name:"db" env:"POSTER_DB" help:"History database path (default ~/.poster/poster.db)"`
	Verbose      bool          `short:"v" help:"Log every fetch, retrieval attempt and extraction to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze product pages into poster data"`
	Split   SplitCmd   `cmd:"" help:"Split a product title into English and Chinese parts"`
	Resolve ResolveCmd `cmd:"" help:"Print display sources for image references"`
	History HistoryCmd `cmd:"" help:"List stored analyses"`
	Show    ShowCmd    `cmd:"" help:"Show a stored analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Product page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent analyses"`
}

// SplitCmd is the "split" subcommand.
type SplitCmd struct {
	Title string `arg:"" help:"Product title"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Refs []string `arg:"" name:"ref" help:"Image URLs, blob: or data: references"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show analyses of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of analyses"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}

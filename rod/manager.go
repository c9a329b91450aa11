package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/poster"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages one browser renders before
// it is replaced.
const DefaultMaxPages = 50

// RecycleEvery returns the per-browser page limit for a batch of n URLs.
// Batches that fit in one browser never recycle. Larger batches are spread
// evenly, so 60 URLs use two browsers of 30 pages rather than 50 and 10.
func RecycleEvery(n int) int64 {
	if n <= DefaultMaxPages {
		return DefaultMaxPages
	}
	browsers := (n + DefaultMaxPages - 1) / DefaultMaxPages
	return int64((n + browsers - 1) / browsers)
}

// generation is one Chrome process and the pages rendered on it.
type generation struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	rendered int64
	open     int
	retired  bool
}

// shutdown closes the browser and kills its launcher.
func (g *generation) shutdown() error {
	err := g.browser.Close()
	g.launcher.Kill()
	return err
}

// BrowserManager owns the Chrome processes behind a Fetcher. Chrome memory
// grows with every rendered page, so after maxPages pages new tabs go to a
// fresh browser. A replaced browser stays up until its open pages are
// released, so concurrent fetches are never cut off mid-load.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *generation
	retired  map[*generation]struct{}
	maxPages int64
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithManagerMaxPages sets how many pages one browser renders before it is
// replaced. Values below 1 keep the default.
func WithManagerMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		retired:  make(map[*generation]struct{}),
	}
	for _, opt := range opts {
		opt(bm)
	}

	g, err := launch()
	if err != nil {
		return nil, err
	}
	bm.current = g
	return bm, nil
}

// Acquire reserves one page render and returns the browser to open it on.
// The release func must be called once the page is closed; calling it more
// than once is harmless.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, poster.Errorf(poster.EINVALID, "browser is closed")
	}

	if bm.current.rendered >= bm.maxPages {
		bm.replace()
	}

	g := bm.current
	g.rendered++
	g.open++

	var once sync.Once
	release := func() {
		once.Do(func() { bm.release(g) })
	}
	return g.browser, release, nil
}

// release returns a page slot to g and shuts g down when it is retired and
// idle.
func (bm *BrowserManager) release(g *generation) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	g.open--
	if g.retired && g.open == 0 {
		delete(bm.retired, g)
		if !bm.closed {
			_ = g.shutdown()
		}
	}
}

// replace launches a fresh browser and retires the current one. When the
// launch fails the current browser keeps serving. Must be called with mu
// held.
func (bm *BrowserManager) replace() {
	g, err := launch()
	if err != nil {
		return
	}

	old := bm.current
	bm.current = g
	if old.open == 0 {
		_ = old.shutdown()
		return
	}
	old.retired = true
	bm.retired[old] = struct{}{}
}

// Close shuts down every browser, including retired ones with pages still
// open. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	err := bm.current.shutdown()
	for g := range bm.retired {
		_ = g.shutdown()
		delete(bm.retired, g)
	}
	return err
}

// LauncherPID returns the process ID of the current browser's launcher, or 0
// after Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return 0
	}
	return bm.current.launcher.PID()
}

// launch starts a headless browser. Storefronts often serve a reduced page to
// small or backgrounded windows, so the window is sized like a desktop and
// throttling is off.
func launch() (*generation, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("window-size", "1366,900").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &generation{browser: browser, launcher: l}, nil
}

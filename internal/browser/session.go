package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// ErrFetchTimeout marks a fetch that was abandoned because the page or its
// ready selector did not appear within the configured timeout.
var ErrFetchTimeout = errors.New("fetch timed out")

// Fetcher is the page-fetching capability the retailer drivers depend on.
// Given a URL and a selector that signals the results have rendered, it
// returns the page HTML or fails.
type Fetcher interface {
	Fetch(ctx context.Context, url, readySelector string) (string, error)
}

// Session owns one headless browser, reused across all keyword fetches of
// one retailer batch. It is not safe for concurrent use; each retailer
// driver gets its own session.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// NewSession launches a browser and connects to it.
func NewSession(headless bool, timeout time.Duration) (*Session, error) {
	l := launcher.New().Headless(headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Session{browser: b, launcher: l, timeout: timeout}, nil
}

// Fetch navigates to url, waits for readySelector to exist and returns the
// rendered page HTML. Timeouts are reported as ErrFetchTimeout so callers
// can tell an abandoned keyword from a broken one.
func (s *Session) Fetch(ctx context.Context, url, readySelector string) (string, error) {
	page, err := stealth.Page(s.browser)
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.MustClose()

	page = page.Context(ctx).Timeout(s.timeout)

	if err := page.Navigate(url); err != nil {
		return "", s.classify(fmt.Errorf("failed to navigate to %s: %w", url, err))
	}
	if err := page.WaitLoad(); err != nil {
		return "", s.classify(fmt.Errorf("page never finished loading: %w", err))
	}
	if _, err := page.Element(readySelector); err != nil {
		return "", s.classify(fmt.Errorf("ready selector %q not found: %w", readySelector, err))
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}

// Close shuts the browser down and cleans up the launcher's temp data.
func (s *Session) Close() {
	s.browser.MustClose()
	s.launcher.Cleanup()
}

func (s *Session) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrFetchTimeout, err)
	}
	return err
}

package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html"

	"github.com/seerworks/styleseer/internal/dom"
	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/signals"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

// DefaultUserAgent mimics a desktop browser so servers return the page
// they would serve a real visitor.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

const defaultStaticTimeout = 10 * time.Second

// gridSelector matches the class patterns common grid systems leave in
// markup.
const gridSelector = ".row, .grid, .columns, [class*='grid-'], [class*='col-'], [class*='span-'], [class*='uk-grid'], [class*='container']"

const fontLinkSelector = "link[href*='font'], link[href*='typeface']"

// StaticOptions configures the static collector. Zero values fall back to
// the package defaults.
type StaticOptions struct {
	Timeout   time.Duration
	UserAgent string

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Static collects signals from the raw page markup over plain HTTP.
// Computed-style and geometry signals stay absent, so the resolvers'
// documented fallbacks engage downstream.
type Static struct {
	opts   StaticOptions
	client *http.Client
	log    *logger.Logger
}

// NewStatic builds a static collector.
func NewStatic(opts StaticOptions, log *logger.Logger) *Static {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultStaticTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Static{opts: opts, client: client, log: log.WithComponent("collect.static")}
}

// Collect fetches the page and fills every signal readable from markup
// alone: style-block declarations, class counts, grid indicators, and
// font link hrefs.
func (s *Static) Collect(ctx context.Context, pageURL string) (*signals.Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, err)
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, err)
	}

	markup := string(body)
	b := &signals.Bundle{URL: pageURL, Markup: markup}
	b.CSSDeclarations = ScanDeclarations(b.StyleText())
	b.ClassCounts = signals.CountClasses(markup)

	root, err := dom.Parse(markup)
	if err != nil {
		s.log.Error(err, "markup parse failed, keeping raw signals only")
		return b, nil
	}
	b.GridElements = len(dom.QueryAll(root, gridSelector))
	b.FontImports = fontLinkHrefs(root)

	s.log.WithFields(map[string]any{
		"bytes":   len(body),
		"classes": len(b.ClassCounts),
	}).Debug("collected static signals")
	return b, nil
}

func fontLinkHrefs(root *html.Node) []string {
	var hrefs []string
	for _, link := range dom.QueryAll(root, fontLinkSelector) {
		if href := dom.Attr(link, "href"); href != "" {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

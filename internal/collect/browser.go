package collect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/signals"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

const (
	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
	defaultBrowserTimeout = 30 * time.Second

	// Pages keep painting after the load event; sampling too early reads
	// half-applied styles.
	defaultSettleDelay = 5 * time.Second
)

// BrowserOptions configures the rod collector. Zero values fall back to
// the package defaults.
type BrowserOptions struct {
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration
	SettleDelay    time.Duration

	// ChromiumPath pins the browser binary instead of the launcher's
	// lookup.
	ChromiumPath string
}

func (o *BrowserOptions) defaults() {
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = defaultViewportWidth
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = defaultViewportHeight
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultBrowserTimeout
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = defaultSettleDelay
	}
}

// Browser collects signals from a fully rendered page: computed styles,
// element geometry, spacing samples, and screenshot-derived dominant
// colors. Each Collect launches a fresh headless Chromium and tears it
// down before returning.
type Browser struct {
	opts BrowserOptions
	log  *logger.Logger
}

// NewBrowser builds a browser collector.
func NewBrowser(opts BrowserOptions, log *logger.Logger) *Browser {
	opts.defaults()
	return &Browser{opts: opts, log: log.WithComponent("collect.browser")}
}

// Collect renders the page and samples it. Failure to reach the page or
// read its markup is fatal; failures in style or screenshot sampling are
// logged and leave those signals absent.
func (c *Browser) Collect(ctx context.Context, pageURL string) (*signals.Bundle, error) {
	l := launcher.New().Headless(true)
	if c.opts.ChromiumPath != "" {
		l = l.Bin(c.opts.ChromiumPath)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("launch browser: %w", err))
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("connect browser: %w", err))
	}
	defer func() {
		_ = browser.Close()
		l.Cleanup()
	}()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("open page: %w", err))
	}
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             c.opts.ViewportWidth,
		Height:            c.opts.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		c.log.Error(err, "set viewport failed, using browser default")
	}

	navCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("navigate: %w", err))
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		c.log.Warn("page load wait timed out, sampling current state")
	}

	select {
	case <-time.After(c.opts.SettleDelay):
	case <-ctx.Done():
		return nil, styleseererrors.NewCollectError(pageURL, ctx.Err())
	}

	markup, err := page.HTML()
	if err != nil {
		return nil, styleseererrors.NewCollectError(pageURL, fmt.Errorf("read markup: %w", err))
	}

	b := &signals.Bundle{URL: pageURL, Markup: markup}
	b.CSSDeclarations = ScanDeclarations(b.StyleText())
	b.ClassCounts = signals.CountClasses(markup)

	if err := c.sampleStyles(page, b); err != nil {
		c.log.Error(err, "style sampling failed, continuing with markup signals")
	}
	if err := c.sampleDominantColors(page, b); err != nil {
		c.log.Error(err, "screenshot sampling failed, continuing without dominant colors")
	}

	c.log.WithFields(map[string]any{
		"computed_colors": len(b.ComputedColors),
		"dominant_colors": len(b.DominantColors),
		"spacing_samples": len(b.SpacingSamples),
	}).Debug("collected rendered signals")
	return b, nil
}

// pageSignals mirrors the JSON payload produced by signalScript.
type pageSignals struct {
	Root            map[string]string            `json:"root"`
	Headings        []headingSignal              `json:"headings"`
	ComputedColors  []string                     `json:"computedColors"`
	PageWidth       float64                      `json:"pageWidth"`
	PageHeight      float64                      `json:"pageHeight"`
	ContainerWidths []float64                    `json:"containerWidths"`
	GridElements    int                          `json:"gridElements"`
	Spacing         []string                     `json:"spacing"`
	Components      map[string]map[string]string `json:"components"`
	ImageStyles     map[string]string            `json:"imageStyles"`
	FontLinks       []string                     `json:"fontLinks"`
}

type headingSignal struct {
	Level  string            `json:"level"`
	Styles map[string]string `json:"styles"`
}

func (c *Browser) sampleStyles(page *rod.Page, b *signals.Bundle) error {
	res, err := page.Eval(signalScript)
	if err != nil {
		return err
	}
	return applyPageSignals(b, res.Value.Str())
}

// applyPageSignals decodes the signalScript payload into the bundle.
func applyPageSignals(b *signals.Bundle, raw string) error {
	var ps pageSignals
	if err := json.Unmarshal([]byte(raw), &ps); err != nil {
		return fmt.Errorf("decode page signals: %w", err)
	}

	b.RootStyles = signals.StyleMap(ps.Root)
	for _, h := range ps.Headings {
		b.HeadingStyles = append(b.HeadingStyles, signals.HeadingSample{
			Level:  h.Level,
			Styles: signals.StyleMap(h.Styles),
		})
	}
	b.ComputedColors = ps.ComputedColors
	b.PageWidth = ps.PageWidth
	b.PageHeight = ps.PageHeight
	b.ContainerWidths = ps.ContainerWidths
	b.GridElements = ps.GridElements
	b.SpacingSamples = ps.Spacing
	if len(ps.Components) > 0 {
		b.Components = make(map[string]signals.StyleMap, len(ps.Components))
		for kind, styles := range ps.Components {
			b.Components[kind] = signals.StyleMap(styles)
		}
	}
	b.ImageStyles = signals.StyleMap(ps.ImageStyles)
	b.FontImports = ps.FontLinks
	return nil
}

func (c *Browser) sampleDominantColors(page *rod.Page, b *signals.Bundle) error {
	shot, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return err
	}
	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return fmt.Errorf("decode screenshot: %w", err)
	}
	b.DominantColors = DominantColors(img, maxDominantColors)
	return nil
}

// signalScript samples everything style-related in one page round trip and
// returns it as a JSON string. Sampling rules (element caps, visibility,
// transparent-color filters, px-only spacing) are part of the bundle
// contract; the resolvers rely on them.
const signalScript = `() => {
	const cs = el => window.getComputedStyle(el);
	const visible = el => !!(el.offsetWidth || el.offsetHeight || el.getClientRects().length);
	const pick = (el, props) => {
		const s = cs(el);
		const m = {};
		for (const p of props) {
			const v = s.getPropertyValue(p);
			if (v) m[p] = v;
		}
		return m;
	};
	const firstVisible = sel => Array.from(document.querySelectorAll(sel)).find(visible) || null;

	const out = {};

	out.root = pick(document.body,
		['background-color', 'color', 'font-family', 'font-size', 'font-weight', 'line-height']);

	out.headings = [];
	for (const tag of ['h1', 'h2', 'h3', 'h4', 'h5', 'h6']) {
		const el = firstVisible(tag);
		if (el) out.headings.push({level: tag, styles: pick(el, ['font-family', 'font-size', 'font-weight'])});
	}

	out.computedColors = [];
	const colorEls = Array.from(document.querySelectorAll('body, h1, h2, h3, p, a, button, .btn, .card')).slice(0, 150);
	for (const el of colorEls) {
		const s = cs(el);
		for (const p of ['background-color', 'color']) {
			const v = s.getPropertyValue(p);
			if (v && !v.includes('rgba(0, 0, 0, 0)') && !v.includes('transparent')) out.computedColors.push(v);
		}
		const bc = s.getPropertyValue('border-color');
		if (bc && !bc.includes('rgba(0, 0, 0, 0)') && !bc.includes('transparent') && !bc.includes('none')) {
			out.computedColors.push(bc);
		}
	}

	out.pageWidth = document.body.clientWidth;
	out.pageHeight = document.body.clientHeight;

	out.containerWidths = [];
	for (const el of document.querySelectorAll('main, .main, #main, .container, #container, .content, #content, .wrapper, #wrapper')) {
		if (visible(el)) out.containerWidths.push(el.clientWidth);
	}

	out.gridElements = document.querySelectorAll(".row, .grid, .columns, [class*='grid-'], [class*='col-'], [class*='span-'], [class*='uk-grid'], [class*='container']").length;

	out.spacing = [];
	const spacingEls = Array.from(document.querySelectorAll('p, div, section, article, h1, h2, h3, button, img, li')).slice(0, 100);
	for (const el of spacingEls) {
		if (!visible(el)) continue;
		const s = cs(el);
		for (const p of ['margin-top', 'margin-bottom', 'margin-left', 'margin-right',
				'padding-top', 'padding-bottom', 'padding-left', 'padding-right']) {
			const v = s.getPropertyValue(p);
			if (v && v.endsWith('px') && parseFloat(v) > 0) out.spacing.push(v);
		}
	}

	out.components = {};
	const button = firstVisible("button, .button, .btn, [class*='button'], [class*='btn'], input[type='button'], input[type='submit'], a[role='button']");
	if (button) {
		out.components.button = pick(button,
			['background-color', 'color', 'padding', 'border', 'border-radius', 'font-size', 'font-weight', 'text-transform']);
	}
	const card = firstVisible(".card, [class*='card'], article, .panel, [class*='panel'], .box, [class*='box'], .widget, [class*='widget']");
	if (card) {
		out.components.card = pick(card, ['background-color', 'box-shadow', 'border-radius', 'padding', 'border']);
	}
	const input = firstVisible("input[type='text'], input[type='email'], input[type='password'], input[type='search'], textarea, select");
	if (input) {
		out.components.input = pick(input, ['border', 'border-radius', 'padding', 'background-color', 'font-size']);
	}
	const nav = firstVisible('nav, header, .navigation, .navbar, #navbar, #main-nav, .main-navigation, .header, #header');
	if (nav) {
		const m = pick(nav, ['background-color', 'box-shadow']);
		m['height'] = Math.round(nav.getBoundingClientRect().height) + 'px';
		const link = Array.from(nav.querySelectorAll('a')).find(visible);
		if (link) m['link-color'] = cs(link).getPropertyValue('color');
		out.components.navigation = m;
	}
	const sidebar = firstVisible('.widget-area, .sidebar, #sidebar, #secondary');
	if (sidebar) out.components.sidebar = {width: String(sidebar.clientWidth)};

	const img = Array.from(document.querySelectorAll('img'))
		.find(el => visible(el) && el.clientWidth > 20 && el.clientHeight > 20);
	if (img) out.imageStyles = pick(img, ['border-radius', 'box-shadow', 'border', 'filter']);

	out.fontLinks = [];
	for (const link of document.querySelectorAll("link[href*='font'], link[href*='typeface']")) {
		if (link.href) out.fontLinks.push(link.href);
	}

	return JSON.stringify(out);
}`

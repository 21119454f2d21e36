// Package collect produces the raw signals bundle the pipeline consumes.
// Two collectors exist: Browser drives headless Chromium for fully rendered
// signals, Static fetches markup over plain HTTP and fills what can be read
// without a renderer. Collecting is the only stage of a run that may fail
// fatally; a sparse bundle is always preferred over no bundle.
package collect

import (
	"context"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/seerworks/styleseer/internal/signals"
)

// Collector turns a page URL into a signals bundle.
type Collector interface {
	Collect(ctx context.Context, pageURL string) (*signals.Bundle, error)
}

// BrowserAvailable reports whether a Chromium binary is installed locally.
// Callers use it to fall back to the static collector instead of letting
// the launcher download a browser.
func BrowserAvailable() bool {
	_, has := launcher.LookPath()
	return has
}

// Package enhance runs site-type specific enrichment plugins over a schema
// after assembly. Plugins register themselves at init time; the chain runs
// in registration order and a failing plugin is skipped, never fatal.
package enhance

import (
	"fmt"
	"sync"

	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

// Enhancer enriches a schema with knowledge specific to one family of
// sites, working from the schema itself and the raw signal bundle.
type Enhancer interface {
	// Name identifies the enhancer in logs and the applied-plugins list.
	Name() string

	// AppliesTo reports whether the enhancer should run for a site category.
	AppliesTo(siteType string) bool

	// Enhance mutates the schema in place. Returning an error skips this
	// enhancer without aborting the chain.
	Enhance(s *schema.Schema, b *signals.Bundle) error
}

var (
	registryMu sync.RWMutex
	registry   []Enhancer
)

// RegisterEnhancer adds an enhancer to the chain. The chain preserves
// registration order.
func RegisterEnhancer(e Enhancer) error {
	if e == nil {
		return styleseererrors.NewPluginError("", fmt.Errorf("enhancer is nil"))
	}
	if e.Name() == "" {
		return styleseererrors.NewPluginError("", fmt.Errorf("enhancer has no name"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	for _, existing := range registry {
		if existing.Name() == e.Name() {
			return styleseererrors.NewPluginError(e.Name(), fmt.Errorf("enhancer already registered"))
		}
	}

	registry = append(registry, e)
	return nil
}

// Enhancers returns the registered chain in registration order.
func Enhancers() []Enhancer {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Enhancer, len(registry))
	copy(out, registry)
	return out
}

// ResetRegistry clears enhancer registrations (for tests).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = nil
}

// Apply runs every enhancer that applies to the site category, in
// registration order, and returns the names of those that succeeded.
// Failures are logged and skipped so one broken plugin cannot poison the
// schema derived so far.
func Apply(s *schema.Schema, b *signals.Bundle, siteType string, log *logger.Logger) []string {
	applied := []string{}
	for _, e := range Enhancers() {
		if !e.AppliesTo(siteType) {
			continue
		}
		if err := runEnhancer(e, s, b); err != nil {
			if log != nil {
				log.WithFields(map[string]any{
					"plugin":    e.Name(),
					"site_type": siteType,
				}).Error(err, "enhancement plugin failed, skipping")
			}
			continue
		}
		applied = append(applied, e.Name())
	}
	return applied
}

// runEnhancer isolates one plugin call; a panic inside a plugin surfaces
// as a PluginError instead of taking down the run.
func runEnhancer(e Enhancer, s *schema.Schema, b *signals.Bundle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = styleseererrors.NewPluginError(e.Name(), fmt.Errorf("panic: %v", r))
		}
	}()
	if enhanceErr := e.Enhance(s, b); enhanceErr != nil {
		return styleseererrors.NewPluginError(e.Name(), enhanceErr)
	}
	return nil
}

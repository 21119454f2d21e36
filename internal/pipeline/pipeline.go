// Package pipeline orchestrates one analysis run: the five resolvers over a
// signals bundle, schema assembly, advisory validation, site-type
// classification, plugin enhancement, and the optional artifact derivers.
// The run is synchronous and stateless; identical bundles yield identical
// schemas.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seerworks/styleseer/internal/artifact"
	"github.com/seerworks/styleseer/internal/enhance"
	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/resolve"
	"github.com/seerworks/styleseer/internal/schema"
	"github.com/seerworks/styleseer/internal/signals"
	"github.com/seerworks/styleseer/internal/sitetype"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

// Stage identifiers reported through Options.OnStage, in run order.
const (
	StageResolve   = "resolve"
	StageValidate  = "validate"
	StageClassify  = "classify"
	StageEnhance   = "enhance"
	StageArtifacts = "artifacts"
)

// Options selects the optional artifacts and supplies run plumbing. The
// zero value runs the core pipeline with no artifacts and no logging.
type Options struct {
	AIView   bool
	Snippets bool
	Docs     bool

	Logger *logger.Logger
	Now    func() time.Time

	// OnStage, when set, is called as each stage starts. The analyze
	// progress display feeds on it.
	OnStage func(stage string)
}

// AllArtifacts enables every optional artifact.
func AllArtifacts() Options {
	return Options{AIView: true, Snippets: true, Docs: true}
}

// Result is everything one run produced. Schema is always set on success;
// artifact fields stay zero when skipped or when their deriver failed.
type Result struct {
	RunID          string
	Schema         *schema.Schema
	AISchema       *schema.Schema
	Snippets       map[string]string
	Docs           string
	SiteType       string
	Problems       []schema.Problem
	AppliedPlugins []string
}

// Run executes the pipeline over one bundle. Only a missing bundle is
// fatal: validation problems, plugin failures, and artifact failures are
// logged and the run continues with what it has.
func Run(b *signals.Bundle, opts Options) (*Result, error) {
	if b == nil {
		return nil, styleseererrors.NewCollectError("", errors.New("no signals bundle"))
	}

	log := opts.Logger.WithComponent("pipeline")
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	stage := func(name string) {
		if opts.OnStage != nil {
			opts.OnStage(name)
		}
	}

	stage(StageResolve)
	log.Debug("resolving design signals")
	parts := schema.Parts{
		Colors:     resolve.Colors(b),
		Typography: resolve.Typography(b),
		Layout:     resolve.Layout(b),
		Components: resolve.Components(b),
		Images:     resolve.Imagery(b),
	}
	s := schema.Assemble(b.URL, now(), parts)

	stage(StageValidate)
	problems := schema.Validate(s)
	for _, p := range problems {
		log.WithFields(map[string]any{"field": p.Field}).Warn(p.Message)
	}

	stage(StageClassify)
	siteType := sitetype.Detect(b.Markup, b.URL)
	log.WithFields(map[string]any{"site_type": siteType}).Debug("classified site")

	stage(StageEnhance)
	applied := enhance.Apply(s, b, siteType, log)

	res := &Result{
		RunID:          uuid.NewString(),
		Schema:         s,
		SiteType:       siteType,
		Problems:       problems,
		AppliedPlugins: applied,
	}

	if opts.AIView || opts.Snippets || opts.Docs {
		stage(StageArtifacts)
	}
	if opts.AIView {
		deriveArtifact("ai_view", log, func() {
			res.AISchema = artifact.AIView(s)
		})
	}
	if opts.Snippets {
		deriveArtifact("snippets", log, func() {
			res.Snippets = artifact.Snippets(s)
		})
	}
	if opts.Docs {
		deriveArtifact("docs", log, func() {
			source := s
			if res.AISchema != nil {
				source = res.AISchema
			}
			res.Docs = artifact.Docs(source)
		})
	}

	return res, nil
}

// deriveArtifact runs one deriver with panic isolation. A failed deriver
// leaves its Result field zero and the run keeps going.
func deriveArtifact(name string, log *logger.Logger, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := styleseererrors.NewArtifactError(name, fmt.Errorf("panic: %v", r))
			log.Error(err, "artifact generation failed, omitting")
		}
	}()
	fn()
}

// Package pipeline orchestrates the site generation stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-generator/internal/architect"
	"github.com/jonathan/site-generator/internal/copywriting"
	"github.com/jonathan/site-generator/internal/design"
	"github.com/jonathan/site-generator/internal/metrics"
	"github.com/jonathan/site-generator/internal/pipeline/steps"
	"github.com/jonathan/site-generator/internal/rendering"
	"github.com/jonathan/site-generator/internal/types"
	"github.com/jonathan/site-generator/internal/validation"
)

// stageOrder is recorded in the metadata of every generated site
var stageOrder = mustStageOrder()

func mustStageOrder() []string {
	if err := steps.ValidateOrder(steps.CanonicalOrder); err != nil {
		panic(fmt.Sprintf("invalid stage order: %v", err))
	}
	return append([]string(nil), steps.CanonicalOrder...)
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for the orchestrator
type Options struct {
	// ContentGenerator writes section copy. Defaults to the template generator.
	ContentGenerator copywriting.ContentGenerator
	// Personality hints passed to the design generator
	Personality []string
	OnProgress  ProgressCallback
	Logger      *zap.Logger
	// Clock stamps generation metadata. Defaults to time.Now.
	Clock func() time.Time
}

// Orchestrator runs the generation stages for a business profile.
// It holds no per-run state and is safe for concurrent use.
type Orchestrator struct {
	content     copywriting.ContentGenerator
	personality []string
	onProgress  ProgressCallback
	progressMu  sync.Mutex
	logger      *zap.Logger
	clock       func() time.Time
}

// NewOrchestrator creates an orchestrator, filling unset options with defaults
func NewOrchestrator(opts Options) *Orchestrator {
	o := &Orchestrator{
		content:     opts.ContentGenerator,
		personality: append([]string(nil), opts.Personality...),
		onProgress:  opts.OnProgress,
		logger:      opts.Logger,
		clock:       opts.Clock,
	}
	if o.content == nil {
		o.content = copywriting.NewTemplateGenerator()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}

// emitProgress calls the progress callback if configured.
// Calls are serialized because the design and copy branches report concurrently.
func (o *Orchestrator) emitProgress(runID, step, message string, content any) {
	if o.onProgress == nil {
		return
	}
	o.progressMu.Lock()
	defer o.progressMu.Unlock()
	o.onProgress(ProgressEvent{
		Step:     step,
		Category: steps.StepRegistry[step].Category,
		Message:  message,
		RunID:    runID,
		Content:  content,
	})
}

// runStage executes fn as stage, converting panics to errors and wrapping failures in StageError.
// The stage must be available in tracker; on success it is marked complete.
func runStage[T any](o *Orchestrator, runID string, tracker *runTracker, stage string, fn func() (T, error)) (result T, err error) {
	logger := o.logger.With(zap.String("run_id", runID), zap.String("stage", stage))
	logger.Debug("stage started")
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		elapsed := time.Since(start)
		metrics.StageDuration.WithLabelValues(stage, metrics.Status(err)).Observe(elapsed.Seconds())
		if err != nil {
			logger.Error("stage failed",
				zap.Duration("elapsed", elapsed),
				zap.Strings("blocked", tracker.blocked()),
				zap.Error(err))
			var zero T
			result = zero
			err = &StageError{Stage: stage, Err: err}
			return
		}
		tracker.complete(stage)
		logger.Debug("stage finished", zap.Duration("elapsed", elapsed))
	}()

	if err := tracker.begin(stage); err != nil {
		var zero T
		return zero, err
	}
	return fn()
}

// GenerateSite runs every stage for profile and returns the assembled site.
// A malformed profile is rejected before any stage runs. Any stage failure aborts the run
// with a StageError naming the stage; no partial site is returned.
func (o *Orchestrator) GenerateSite(ctx context.Context, profile types.BusinessProfile) (site *types.GeneratedSite, err error) {
	defer func() {
		metrics.GenerationRuns.WithLabelValues(metrics.Status(err)).Inc()
	}()

	if err := checkProfile(&profile); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	tracker := newRunTracker()
	tracker.complete(steps.ValidateProfile)
	o.logger.Info("generating site",
		zap.String("run_id", runID),
		zap.String("business", profile.Name),
		zap.String("industry", profile.Industry))
	o.emitProgress(runID, steps.ValidateProfile, fmt.Sprintf("Validated profile for %s", profile.Name), nil)

	insights, err := runStage(o, runID, tracker, steps.AnalyzeBusiness, func() (types.IndustryInsights, error) {
		return architect.AnalyzeBusiness(profile), nil
	})
	if err != nil {
		return nil, err
	}
	o.emitProgress(runID, steps.AnalyzeBusiness,
		fmt.Sprintf("Derived %d required sections", len(insights.RequiredSectionTypes)), insights)

	structure, err := runStage(o, runID, tracker, steps.GenerateStructure, func() (types.SiteStructure, error) {
		return architect.GenerateStructure(profile.Name, profile.Industry, insights), nil
	})
	if err != nil {
		return nil, err
	}
	o.emitProgress(runID, steps.GenerateStructure,
		fmt.Sprintf("Planned %d sections", len(structure.Sections)), structure)

	// Design and copy depend only on the structure and profile
	var designSystem types.DesignSystem
	var content types.SiteContent

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ds, err := runStage(o, runID, tracker, steps.CreateDesignSystem, func() (types.DesignSystem, error) {
			return design.CreateDesignSystem(profile.Name, profile.Industry, o.personality...), nil
		})
		if err != nil {
			return err
		}
		designSystem = ds
		o.emitProgress(runID, steps.CreateDesignSystem, "Created design system", ds)
		return nil
	})

	g.Go(func() error {
		c, err := runStage(o, runID, tracker, steps.GenerateContent, func() (types.SiteContent, error) {
			c, err := o.content.GenerateContent(gCtx, structure, profile)
			if err != nil {
				return nil, err
			}
			if err := copywriting.CheckCardinality(structure, c); err != nil {
				return nil, err
			}
			return c, nil
		})
		if err != nil {
			return err
		}
		content = c
		o.emitProgress(runID, steps.GenerateContent, fmt.Sprintf("Wrote copy for %d sections", len(c)), c)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stylesheet, err := runStage(o, runID, tracker, steps.RenderStylesheet, func() (string, error) {
		return design.RenderStylesheet(designSystem), nil
	})
	if err != nil {
		return nil, err
	}
	o.emitProgress(runID, steps.RenderStylesheet, "Rendered stylesheet", nil)

	built, err := runStage(o, runID, tracker, steps.BuildDocument, func() (*rendering.BuildResult, error) {
		return rendering.BuildDocument(structure, designSystem, content)
	})
	if err != nil {
		return nil, err
	}
	o.emitProgress(runID, steps.BuildDocument,
		fmt.Sprintf("Rendered %d sections", len(built.SectionsRendered)), built.SectionsRendered)

	document, err := runStage(o, runID, tracker, steps.MergeStylesheet, func() (string, error) {
		return MergeStylesheet(structure.Metadata, built.Document, stylesheet), nil
	})
	if err != nil {
		return nil, err
	}
	o.emitProgress(runID, steps.MergeStylesheet, "Merged stylesheet into document", nil)

	site = &types.GeneratedSite{
		Document:     document,
		Stylesheet:   stylesheet,
		Structure:    structure,
		DesignSystem: designSystem,
		Content:      content,
		GenerationMetadata: types.GenerationMetadata{
			GeneratedAt: o.clock().UTC(),
			StageNames:  append([]string(nil), stageOrder...),
			Insights:    insights,
		},
	}

	o.logger.Info("site generated",
		zap.String("run_id", runID),
		zap.Int("sections", len(structure.Sections)),
		zap.Int("document_bytes", len(document)))
	return site, nil
}

// Validate scores site and records the score
func (o *Orchestrator) Validate(site *types.GeneratedSite) types.ValidationReport {
	report := validation.Validate(site)
	metrics.ValidationScore.Observe(float64(report.Score))
	if !report.IsValid {
		o.logger.Warn("site failed validation",
			zap.Int("score", report.Score),
			zap.Strings("issues", report.Issues))
	}
	return report
}

// checkProfile maps validator failures to MalformedProfileError naming the first bad field
func checkProfile(profile *types.BusinessProfile) error {
	err := profile.Validate()
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MalformedProfileError{Field: strings.ToLower(fieldErrs[0].Field()), Cause: err}
	}
	return fmt.Errorf("validating profile failed: %w", err)
}

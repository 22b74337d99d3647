package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alantheprice/ideaforge/pkg/artifact"
	"github.com/alantheprice/ideaforge/pkg/changetracker"
	"github.com/alantheprice/ideaforge/pkg/config"
	"github.com/alantheprice/ideaforge/pkg/llm"
	"github.com/alantheprice/ideaforge/pkg/parser"
	"github.com/alantheprice/ideaforge/pkg/project"
	"github.com/alantheprice/ideaforge/pkg/prompts"
	"github.com/alantheprice/ideaforge/pkg/ui"
	"github.com/alantheprice/ideaforge/pkg/utils"
	"github.com/google/uuid"
)

// GeneratorFactory builds a content generator for a provider:model string.
// Tests substitute a factory returning a canned generator.
type GeneratorFactory func(model string) (llm.ContentGenerator, error)

// Runner executes pipeline stages against one project.
type Runner struct {
	Project *project.Project
	Cfg     *config.Config
	Logger  *utils.Logger
	RunID   string

	NewGenerator GeneratorFactory
}

// NewRunner wires a runner with the real generator factory and a fresh
// correlation ID for this run.
func NewRunner(proj *project.Project, cfg *config.Config) *Runner {
	runID := uuid.NewString()
	logger := utils.GetLogger(cfg.SkipPrompt)
	logger.SetCorrelationID(runID)

	return &Runner{
		Project: proj,
		Cfg:     cfg,
		Logger:  logger,
		RunID:   runID,
		NewGenerator: func(model string) (llm.ContentGenerator, error) {
			return llm.NewGenerator(llm.Options{
				Model:       model,
				Temperature: cfg.Temperature,
				MaxTokens:   cfg.MaxTokens,
				OllamaURL:   cfg.OllamaServerURL,
			})
		},
	}
}

// RunStage executes one stage end to end: prompt, generate, decode,
// materialize. A stage that produces no artifacts at all is a failure; a
// stage that writes some artifacts and skips others succeeds with a warning.
func (r *Runner) RunStage(ctx context.Context, kind StageKind, in Inputs) error {
	spec, err := specFor(kind, in)
	if err != nil {
		return err
	}

	if err := r.Project.EnsureLayout(); err != nil {
		return err
	}

	prompt, err := spec.BuildPrompt(r.Project, in)
	if err != nil {
		return err
	}

	model := r.Cfg.ModelFor(spec.Name)
	r.Logger.LogProcessStep(prompts.StageStarting(spec.Name, model))
	r.Logger.Logf("Stage %s prompt: %s", spec.Name, utils.TruncateForLog(prompt, 2000))

	gen, err := r.NewGenerator(model)
	if err != nil {
		return fmt.Errorf("stage %s: %w", spec.Name, err)
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		r.Logger.LogError(err)
		return fmt.Errorf("stage %s: %w", spec.Name, err)
	}
	r.Logger.Logf("Stage %s response: %s", spec.Name, utils.TruncateForLog(raw, 2000))

	blocks, grammar, err := r.decode(spec, raw)
	if err != nil {
		return err
	}

	report, err := r.materialize(spec, blocks, grammar)
	if err != nil {
		return fmt.Errorf("stage %s: %w", spec.Name, err)
	}

	if len(report.Written) == 0 {
		err := fmt.Errorf("stage %s produced no usable artifacts", spec.Name)
		ui.Out().Print(prompts.StageFailed(spec.Name, err) + "\n")
		return err
	}
	if report.PartialSuccess() {
		ui.Out().Print(prompts.StagePartial(spec.Name, len(report.Written), len(report.Failed)) + "\n")
	} else {
		ui.Out().Print(prompts.StageComplete(spec.Name, len(report.Written)) + "\n")
	}
	return nil
}

func (r *Runner) decode(spec *StageSpec, raw string) ([]parser.Block, parser.Grammar, error) {
	if spec.Mode == OutputSingleDoc {
		body := strings.TrimSpace(raw)
		if body == "" {
			return nil, 0, fmt.Errorf("stage %s: model returned an empty response", spec.Name)
		}
		block := parser.Block{Kind: parser.BlockFile, Label: spec.OutputDoc, Body: body + "\n"}
		return []parser.Block{block}, parser.FilenameBlock, nil
	}

	result, err := parser.Decode(raw, spec.Grammar)
	if err != nil {
		return nil, 0, fmt.Errorf("stage %s: %w", spec.Name, err)
	}
	if result.Dropped > 0 {
		ui.Warnf("⚠️  %d block(s) in the %s response had unusable names and were dropped", result.Dropped, spec.Name)
		r.Logger.Logf("Stage %s dropped %d block(s) with unusable names", spec.Name, result.Dropped)
	}
	if len(result.Blocks) == 0 {
		return nil, 0, fmt.Errorf("stage %s: response contained no %s blocks", spec.Name, spec.Grammar)
	}
	return result.Blocks, spec.Grammar, nil
}

func (r *Runner) materialize(spec *StageSpec, blocks []parser.Block, grammar parser.Grammar) (*artifact.WriteReport, error) {
	opts := []artifact.Option{artifact.WithAllowlist(r.Cfg.ExtensionlessAllowlist)}
	if r.Cfg.TrackRevisions {
		opts = append(opts, artifact.WithTracker(changetracker.NewTracker(r.Project.Root)))
	}
	m := artifact.NewMaterializer(spec.RootDir(r.Project), opts...)
	return m.Materialize(blocks, grammar)
}

// RunPipeline executes a sequence of stages, stopping at the first failure.
func (r *Runner) RunPipeline(ctx context.Context, kinds []StageKind, in Inputs) error {
	for _, kind := range kinds {
		if err := r.RunStage(ctx, kind, in); err != nil {
			return err
		}
	}
	ui.Out().Print(prompts.PipelineComplete(r.Project.Name) + "\n")
	return nil
}

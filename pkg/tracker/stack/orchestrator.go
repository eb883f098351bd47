package stack

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theshubhamgour/ReleaseFormulaTracker/internal/ctxlog"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/formula"
	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

// State is the orchestrator phase during one synthesis run.
type State string

const (
	StateIdle         State = "idle"
	StateValidating   State = "validating"
	StateClassified   State = "classified"
	StateSynthesizing State = "synthesizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Request carries the inputs of one synthesis run. Records are expected to be
// already classified; classification is performed upstream per record.
type Request struct {
	Records             []models.FormulaRecord
	ProductVersion      string
	Environment         string
	IncludeDependencies bool
	ValidateFormulas    bool
}

// Orchestrator coordinates validation, component mapping and configuration
// synthesis into a StackManifest. It holds no mutable state between runs
// besides the last observed phase.
type Orchestrator struct {
	mapper *Mapper
	state  State
}

// NewOrchestrator returns an orchestrator backed by the given tables.
// A nil tables argument selects DefaultTables.
func NewOrchestrator(tables *Tables) *Orchestrator {
	return &Orchestrator{
		mapper: NewMapper(tables),
		state:  StateIdle,
	}
}

// State reports the phase reached by the most recent Generate call.
func (o *Orchestrator) State() State {
	return o.state
}

// Generate runs the synthesis pipeline and always returns a manifest: failed
// runs return Success=false with an error message and the fields computed up
// to the failure, never an error or a panic to the caller.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (manifest *models.StackManifest) {
	log := ctxlog.FromContext(ctx)
	o.state = StateIdle

	manifest = &models.StackManifest{
		ID:             uuid.NewString(),
		StackVersion:   StackVersion(req.ProductVersion),
		ProductVersion: req.ProductVersion,
		Environment:    req.Environment,
		GeneratedAt:    time.Now().UTC(),
		Components:     []models.Component{},
	}

	defer func() {
		if r := recover(); r != nil {
			o.state = StateFailed
			manifest.Success = false
			manifest.Error = fmt.Sprintf("stack synthesis failed: %v", r)
			log.Error("synthesis panicked", "error", manifest.Error)
		}
	}()

	o.state = StateValidating
	if req.ValidateFormulas {
		outcome := formula.Validate(req.Records)
		manifest.Validation = outcome
		if outcome.InvalidCount > 0 {
			o.state = StateFailed
			manifest.Error = fmt.Sprintf("found %d invalid formulas", outcome.InvalidCount)
			log.Warn("validation failed, short-circuiting synthesis",
				"invalid", outcome.InvalidCount, "valid", outcome.ValidCount)
			return manifest
		}
	}

	o.state = StateClassified
	analysis := o.mapper.Analyze(req.Records)

	o.state = StateSynthesizing
	manifest.Components = o.mapper.Components(analysis, req.IncludeDependencies)
	manifest.Configuration = SynthesizeConfiguration(req.Environment, analysis.FormulaTypes)
	manifest.Metadata = o.buildMetadata(req.Records, analysis)

	o.state = StateDone
	manifest.Success = true
	log.Debug("stack synthesized",
		"stack_version", manifest.StackVersion,
		"components", len(manifest.Components),
		"formulas", len(req.Records))
	return manifest
}

func (o *Orchestrator) buildMetadata(records []models.FormulaRecord, analysis *models.RequirementAnalysis) *models.StackMetadata {
	breakdown := map[models.Complexity]int{
		models.ComplexityLow:     0,
		models.ComplexityMedium:  0,
		models.ComplexityHigh:    0,
		models.ComplexityUnknown: 0,
	}
	sheets := make(map[string]struct{})
	for _, rec := range records {
		if _, ok := breakdown[rec.Complexity]; ok {
			breakdown[rec.Complexity]++
		}
		sheets[rec.Sheet] = struct{}{}
	}

	return &models.StackMetadata{
		TotalFormulas:       len(records),
		UniqueFormulaTypes:  len(analysis.FormulaTypes),
		ComplexityBreakdown: breakdown,
		SheetsProcessed:     len(sheets),
		Analysis:            analysis,
	}
}

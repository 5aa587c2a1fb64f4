// Package engine provides the core orchestration for metaforge generation.
//
// The engine package acts as the orchestration layer between CLI commands and
// the decision core. It coordinates kernel validation, plan derivation,
// artifact description, audit logging, and optional scaffolding.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Plan: Derives a deployment plan and records it in the audit log
//   - Generate: Full pipeline producing a GenerationResult
package engine

import (
	"go.uber.org/zap"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/clock"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/planner"
)

// ComplianceVerified is the compliance marker stamped on every result that
// passed kernel validation.
const ComplianceVerified = "verified"

// Scaffolder materializes planned artifacts under an output directory.
type Scaffolder interface {
	// Render writes the plan's artifacts below outputDir and returns the
	// written paths.
	Render(outputDir, domain string, plan *planner.Plan, rules *kernel.RuleSet) ([]string, error)
}

// Engine orchestrates all metaforge operations.
// It is the main API surface called by the CLI.
type Engine struct {
	kernel     *kernel.Store
	sink       audit.Sink
	scaffolder Scaffolder
	clock      clock.Clock
	logger     *zap.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	kernelStore *kernel.Store,
	sink audit.Sink,
	scaffolder Scaffolder,
	clk clock.Clock,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		kernel:     kernelStore,
		sink:       sink,
		scaffolder: scaffolder,
		clock:      clk,
		logger:     logger,
	}
}

// Kernel returns the engine's kernel store.
func (e *Engine) Kernel() *kernel.Store {
	return e.kernel
}

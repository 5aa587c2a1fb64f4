package engine

import "github.com/danieljhkim/metaforge/internal/spec"

// PlanRequest represents a request to derive a deployment plan.
type PlanRequest struct {
	// Spec is the decoded domain specification
	Spec *spec.DomainSpec
}

// GenerateRequest represents a request to generate a complete forge.
type GenerateRequest struct {
	// Spec is the decoded domain specification
	Spec *spec.DomainSpec

	// OutputDir is where artifacts are rendered (empty = describe only)
	OutputDir string

	// DryRun describes the artifacts without rendering them, even when
	// OutputDir is set
	DryRun bool
}

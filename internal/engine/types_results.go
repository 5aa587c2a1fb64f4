package engine

import (
	"time"

	"github.com/danieljhkim/metaforge/internal/planner"
)

// PlanResult represents the result of deriving a deployment plan.
type PlanResult struct {
	// Domain is the domain the plan was derived for
	Domain string `json:"domain"`

	// Plan is the derived deployment plan
	Plan *planner.Plan `json:"plan"`

	// KernelVersion is the version of the kernel the plan was derived under
	KernelVersion string `json:"kernelVersion"`
}

// GenerationResult represents a complete, constitutionally compliant forge.
type GenerationResult struct {
	// Domain is the domain the forge was generated for
	Domain string `json:"domain"`

	// Architecture is the selected deployment topology
	Architecture planner.Architecture `json:"architecture"`

	// ConstitutionalCompliance is the compliance marker ("verified")
	ConstitutionalCompliance string `json:"constitutionalCompliance"`

	// Plan is the full deployment plan behind the result
	Plan *planner.Plan `json:"plan"`

	// FilesGenerated is the ordered artifact set
	FilesGenerated []planner.Artifact `json:"filesGenerated"`

	// SuccessMetrics is copied from the spec (empty if absent)
	SuccessMetrics []string `json:"successMetrics"`

	// Warnings is the ordered generation warning list
	Warnings []string `json:"warnings"`

	// KernelVersion is the version of the kernel the forge was generated under
	KernelVersion string `json:"kernelVersion"`

	// KernelFingerprint is the fingerprint of the kernel document
	KernelFingerprint string `json:"kernelFingerprint,omitempty"`

	// GeneratedAt is when the forge was generated
	GeneratedAt time.Time `json:"generatedAt"`

	// Rendered is the list of files written to disk (empty unless an output
	// directory was given and DryRun was off)
	Rendered []string `json:"rendered,omitempty"`
}

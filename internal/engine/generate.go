package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/planner"
	"github.com/danieljhkim/metaforge/internal/spec"
)

// Plan validates the spec against the kernel, derives a deployment plan, and
// records it in the audit log. Validation errors propagate to the caller
// unchanged.
func (e *Engine) Plan(req *PlanRequest) (*PlanResult, error) {
	if req == nil || req.Spec == nil {
		return nil, ErrNilSpec
	}

	rules := e.kernel.Rules()
	if rules == nil {
		return nil, ErrKernelNotLoaded
	}

	if err := e.kernel.Validate(req.Spec); err != nil {
		return nil, err
	}

	plan, err := e.plan(req.Spec, rules.Fingerprint)
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		Domain:        req.Spec.Domain(),
		Plan:          plan,
		KernelVersion: rules.Version(),
	}, nil
}

// Generate produces a complete forge for the spec: validate, plan, describe
// artifacts, and optionally render them. Exactly one audit entry is appended
// per call.
func (e *Engine) Generate(req *GenerateRequest) (*GenerationResult, error) {
	if req == nil || req.Spec == nil {
		return nil, ErrNilSpec
	}

	rules := e.kernel.Rules()
	if rules == nil {
		return nil, ErrKernelNotLoaded
	}

	if err := e.kernel.Validate(req.Spec); err != nil {
		return nil, err
	}

	domain := req.Spec.Domain()
	plan, err := e.plan(req.Spec, rules.Fingerprint)
	if err != nil {
		return nil, err
	}
	plan.GeneratedFiles = planner.DescribeArtifacts(domain, plan.Architecture)

	result := &GenerationResult{
		Domain:                   domain,
		Architecture:             plan.Architecture,
		ConstitutionalCompliance: ComplianceVerified,
		Plan:                     plan,
		FilesGenerated:           plan.GeneratedFiles,
		SuccessMetrics:           successMetrics(req.Spec),
		Warnings:                 plan.Warnings,
		KernelVersion:            rules.Version(),
		KernelFingerprint:        rules.Fingerprint,
		GeneratedAt:              e.clock.Now(),
	}

	if req.OutputDir != "" && !req.DryRun {
		rendered, err := e.scaffolder.Render(req.OutputDir, domain, plan, rules)
		if err != nil {
			return nil, fmt.Errorf("failed to scaffold forge: %w", err)
		}
		result.Rendered = rendered
	}

	e.logger.Info("forge generated",
		zap.String("domain", domain),
		zap.String("architecture", string(plan.Architecture)),
		zap.Bool("aiEnabled", plan.AIEnabled),
		zap.Int("artifacts", len(plan.GeneratedFiles)),
		zap.Int("warnings", len(plan.Warnings)),
	)

	return result, nil
}

// plan runs the decision table and appends exactly one audit entry.
func (e *Engine) plan(ds *spec.DomainSpec, kernelFingerprint string) (*planner.Plan, error) {
	plan := planner.Decide(ds)

	entry := audit.Entry{
		Domain:            ds.Domain(),
		Architecture:      string(plan.Architecture),
		AIEnabled:         plan.AIEnabled,
		Warnings:          plan.Warnings,
		KernelFingerprint: kernelFingerprint,
		Timestamp:         e.clock.Now(),
	}
	if err := e.sink.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record generation: %w", err)
	}

	return plan, nil
}

// successMetrics copies the spec's success metrics, defaulting to empty.
func successMetrics(ds *spec.DomainSpec) []string {
	if len(ds.SuccessMetrics) == 0 {
		return []string{}
	}
	out := make([]string, len(ds.SuccessMetrics))
	copy(out, ds.SuccessMetrics)
	return out
}

// Package scaffold renders planned artifacts into real files.
//
// The planner only describes artifacts; the scaffolder is the downstream
// collaborator that materializes them under an output directory. All writes
// go through the fsops layer and are atomic, so a failed render never leaves
// a half-written artifact behind.
package scaffold

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/planner"
)

// Renderer materializes planned artifacts under an output directory.
type Renderer struct {
	fs fsops.FS
}

// NewRenderer creates a new Renderer.
func NewRenderer(fs fsops.FS) *Renderer {
	return &Renderer{fs: fs}
}

// renderContext is the data exposed to artifact templates.
type renderContext struct {
	Domain        string
	Architecture  string
	MemoryLimit   string
	AIEnabled     bool
	KernelVersion string
	Requirements  []string
	Warnings      []string
}

// Render writes every artifact in the plan's file set below outputDir and
// returns the written paths in artifact order.
func (r *Renderer) Render(outputDir, domain string, plan *planner.Plan, rules *kernel.RuleSet) ([]string, error) {
	if err := r.fs.ValidateIdentifier(domain); err != nil {
		return nil, fmt.Errorf("invalid domain name: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("nil plan")
	}

	ctx := renderContext{
		Domain:        domain,
		Architecture:  string(plan.Architecture),
		MemoryLimit:   plan.MemoryLimit,
		AIEnabled:     plan.AIEnabled,
		KernelVersion: rules.Version(),
		Requirements:  plan.Requirements,
		Warnings:      plan.Warnings,
	}

	written := make([]string, 0, len(plan.GeneratedFiles))
	for _, artifact := range plan.GeneratedFiles {
		content, err := r.content(artifact, ctx, plan, rules)
		if err != nil {
			return written, fmt.Errorf("failed to render %s: %w", artifact.Path, err)
		}

		dest := filepath.Join(outputDir, filepath.FromSlash(artifact.Path))
		if err := r.fs.AtomicWrite(dest, content, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", artifact.Path, err)
		}
		written = append(written, dest)
	}

	return written, nil
}

// content produces the file body for a single artifact.
func (r *Renderer) content(artifact planner.Artifact, ctx renderContext, plan *planner.Plan, rules *kernel.RuleSet) ([]byte, error) {
	switch artifact.Kind {
	case planner.KindKernelReference:
		return yaml.Marshal(rules)

	case planner.KindDomainConfig:
		cfg := domainConfig{
			Domain:        ctx.Domain,
			Architecture:  ctx.Architecture,
			MemoryLimit:   ctx.MemoryLimit,
			AIEnabled:     ctx.AIEnabled,
			KernelVersion: ctx.KernelVersion,
			Requirements:  plan.Requirements,
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case planner.KindDeployConfig:
		return execTemplate(composeTmpl, ctx)

	case planner.KindPolicyLinter:
		return execTemplate(linterTmpl, ctx)

	case planner.KindUsageDoc:
		return execTemplate(readmeTmpl, ctx)

	case planner.KindDAINDeploy:
		return execTemplate(dainComposeTmpl, ctx)

	case planner.KindDAINAgent:
		return execTemplate(dainAgentTmpl, ctx)

	default:
		return nil, fmt.Errorf("unknown artifact kind %q", artifact.Kind)
	}
}

// domainConfig is the shape of the generated domain_config.json.
type domainConfig struct {
	Domain        string   `json:"domain"`
	Architecture  string   `json:"architecture"`
	MemoryLimit   string   `json:"memory_limit,omitempty"`
	AIEnabled     bool     `json:"ai_enabled"`
	KernelVersion string   `json:"kernel_version"`
	Requirements  []string `json:"constitutional_requirements"`
}

func execTemplate(t *template.Template, ctx renderContext) ([]byte, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, ctx); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

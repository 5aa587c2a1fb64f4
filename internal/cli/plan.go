package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/metaforge/internal/engine"
	"github.com/danieljhkim/metaforge/internal/spec"
)

var planCmd = &cobra.Command{
	Use:   "plan <spec-file>",
	Short: "Derive the deployment plan for a domain specification",
	Long: `Derive the deployment architecture a spec would generate, without
describing or rendering any artifacts.

The spec is validated against the kernel first, so a plan is only produced
for constitutionally compliant specs. The planning decision is recorded in
the audit log.`,
	Example: `  metaforge plan domain.yml
  metaforge plan domain.yml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	ds, err := spec.Load(args[0])
	if err != nil {
		PrintError(fmt.Sprintf("Failed to load spec: %v", err))
		return err
	}

	eng, _, err := newEngine()
	if err != nil {
		PrintError(fmt.Sprintf("Failed to initialize: %v", err))
		return err
	}

	result, err := eng.Plan(&engine.PlanRequest{Spec: ds})
	if err != nil {
		PrintError(fmt.Sprintf("Planning failed: %v", err))
		return err
	}

	if jsonOutput {
		return outputJSON(cmd, result)
	}

	PrintSection(fmt.Sprintf("Plan: %s", result.Domain))
	PrintLabelValue("Architecture", string(result.Plan.Architecture))
	PrintLabelValue("Memory limit", result.Plan.MemoryLimit)
	PrintLabelValue("AI nodes", fmt.Sprintf("%t", result.Plan.AIEnabled))
	PrintLabelValue("Kernel", result.KernelVersion)

	if result.Plan.HasWarnings() {
		fmt.Println()
		for _, w := range result.Plan.Warnings {
			PrintWarning(w)
		}
	}

	return nil
}

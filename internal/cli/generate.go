package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/metaforge/internal/engine"
	"github.com/danieljhkim/metaforge/internal/spec"
)

var (
	generateOutputDir string
	generateDryRun    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <spec-file>",
	Short: "Generate a forge from a domain specification",
	Long: `Generate a complete, constitutionally compliant forge from a domain spec.

The spec is validated against the loaded constitutional kernel, a deployment
architecture is derived from the spec's hardware and capacity constraints, and
the forge's artifacts are described. With --output the artifacts are rendered
to disk under <output>/<domain>/.

Every generation is appended to the audit log, including dry runs.`,
	Example: `  metaforge generate domain.yml
  metaforge generate domain.yml --output ./forges
  metaforge generate domain.yml --output ./forges --dry-run
  metaforge generate domain.yml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Directory to render the forge artifacts into")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Plan and describe artifacts without writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	result, err := eng.Generate(&engine.GenerateRequest{
		Spec:      ds,
		OutputDir: generateOutputDir,
		DryRun:    generateDryRun,
	})
	if err != nil {
		PrintError(fmt.Sprintf("Generation failed: %v", err))
		return err
	}

	if jsonOutput {
		return outputJSON(cmd, result)
	}

	printGeneration(result)
	return nil
}

func printGeneration(result *engine.GenerationResult) {
	PrintSection(fmt.Sprintf("Forge: %s", result.Domain))

	PrintLabelValue("Architecture", string(result.Architecture))
	PrintLabelValue("Memory limit", result.Plan.MemoryLimit)
	PrintLabelValue("AI nodes", fmt.Sprintf("%t", result.Plan.AIEnabled))
	PrintLabelValue("Compliance", result.ConstitutionalCompliance)
	PrintLabelValue("Kernel", result.KernelVersion)

	fmt.Println()
	PrintInfo(fmt.Sprintf("Artifacts (%d):", len(result.FilesGenerated)))
	for _, a := range result.FilesGenerated {
		PrintList([]string{fmt.Sprintf("%s — %s", a.Path, a.Description)}, 1)
	}

	if len(result.Warnings) > 0 {
		fmt.Println()
		for _, w := range result.Warnings {
			PrintWarning(w)
		}
	}

	fmt.Println()
	switch {
	case generateDryRun:
		PrintDim("Dry run: no files were written.")
	case len(result.Rendered) > 0:
		PrintSuccess(fmt.Sprintf("Wrote %d files", len(result.Rendered)))
		PrintList(result.Rendered, 1)
	default:
		PrintDim("No output directory given; pass --output to render the artifacts.")
	}
}

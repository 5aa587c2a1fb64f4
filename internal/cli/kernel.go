package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kernelCmd = &cobra.Command{
	Use:   "kernel",
	Short: "Show the loaded constitutional kernel",
	Long: `Show the constitutional kernel metaforge is generating against:
its version, content fingerprint, and articles.`,
	Example: `  metaforge kernel
  metaforge kernel --kernel ./kernel.yml --json`,
	Args: cobra.NoArgs,
	RunE: runKernel,
}

func runKernel(cmd *cobra.Command, args []string) error {
	eng, paths, err := newEngine()
	if err != nil {
		PrintError(fmt.Sprintf("Failed to load kernel: %v", err))
		return err
	}

	rules := eng.Kernel().Rules()

	if jsonOutput {
		return outputJSON(cmd, map[string]interface{}{
			"path":        paths.Kernel,
			"version":     rules.Version(),
			"fingerprint": rules.Fingerprint,
			"description": rules.Description,
			"articles":    rules.Articles,
		})
	}

	PrintSection("Constitutional Kernel")
	PrintLabelValue("Path", paths.Kernel)
	PrintLabelValue("Version", rules.Version())
	PrintLabelValue("Fingerprint", rules.Fingerprint)
	if rules.Description != "" {
		PrintLabelValue("Description", rules.Description)
	}

	fmt.Println()
	if len(rules.Articles) == 0 {
		PrintEmptyState("No articles declared.")
		return nil
	}

	PrintInfo(fmt.Sprintf("Articles (%d):", len(rules.Articles)))
	for _, a := range rules.Articles {
		PrintList([]string{fmt.Sprintf("%s: %s", a.ID, a.Title)}, 1)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/metaforge/internal/spec"
)

var validateCmd = &cobra.Command{
	Use:   "validate <spec-file>",
	Short: "Validate a domain specification against the kernel",
	Long: `Check a domain spec for constitutional compliance without planning
or generating anything.

Validation stops at the first violation and reports the offending field.
Nothing is written to the audit log.`,
	Example: `  metaforge validate domain.yml
  metaforge validate domain.yml --kernel ./kernel.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	if err := eng.Kernel().Validate(ds); err != nil {
		PrintError(fmt.Sprintf("Spec is not compliant: %v", err))
		return err
	}

	if jsonOutput {
		return outputJSON(cmd, map[string]interface{}{
			"domain":    ds.Domain(),
			"compliant": true,
		})
	}

	PrintSuccess(fmt.Sprintf("Spec for %q is constitutionally compliant", ds.Domain()))
	return nil
}

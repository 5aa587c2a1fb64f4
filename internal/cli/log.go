package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/fsops"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the forge generation audit log",
	Long: `Show recorded generations from the append-only audit log, oldest
first. Each entry names the domain, the architecture that was selected,
whether AI nodes were enabled, and any warnings raised during planning.`,
	Example: `  metaforge log
  metaforge log --limit 10
  metaforge log --json`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Show only the most recent N entries (0 = all)")
}

func runLog(cmd *cobra.Command, args []string) error {
	_, paths, err := newEngine()
	if err != nil {
		PrintError(fmt.Sprintf("Failed to initialize: %v", err))
		return err
	}

	entries, err := audit.ReadFile(fsops.NewRealFS(), paths.AuditLog)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to read audit log: %v", err))
		return err
	}

	if logLimit > 0 && len(entries) > logLimit {
		entries = entries[len(entries)-logLimit:]
	}

	if jsonOutput {
		return outputJSON(cmd, entries)
	}

	PrintSection("Generation Log")

	if len(entries) == 0 {
		PrintEmptyState("No generations recorded yet.")
		return nil
	}

	for _, e := range entries {
		PrintInfo(fmt.Sprintf("%s  %s  (%s)",
			e.Timestamp.Format(time.RFC3339), e.Domain, e.Architecture))
		if e.AIEnabled {
			PrintDim("    AI nodes enabled")
		}
		for _, w := range e.Warnings {
			PrintWarning("    " + w)
		}
	}

	fmt.Println()
	PrintDim(fmt.Sprintf("%d entries in %s", len(entries), paths.AuditLog))
	return nil
}

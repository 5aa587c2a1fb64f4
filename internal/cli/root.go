package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	kernelPath string
	verbose    bool
)

// rootCmd is the root command for metaforge.
var rootCmd = &cobra.Command{
	Use:     "metaforge",
	Version: "dev",
	Short:   "Constitutional governance-system generator",
	Long: `metaforge generates domain-specific governance systems from declarative specs.

It validates a domain specification against a constitutional kernel, derives a
hardware-aware deployment architecture, and scaffolds the forge's artifacts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the CLI version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&kernelPath, "kernel", "", "Path to the constitutional kernel (default: kernel.yml, or METAFORGE_KERNEL)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose structured logging")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "generation",
		Title: "Forge Generation:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspection",
		Title: "Inspection:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the metaforge CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion [bash|zsh|fish]",
		Short:   "Generate the autocompletion script for the specified shell",
		Args:    cobra.ExactArgs(1),
		GroupID: "cli-tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
	rootCmd.AddCommand(completionCmd)

	// Forge Generation commands
	generateCmd.GroupID = "generation"
	planCmd.GroupID = "generation"
	validateCmd.GroupID = "generation"
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)

	// Inspection commands
	kernelCmd.GroupID = "inspection"
	logCmd.GroupID = "inspection"
	rootCmd.AddCommand(kernelCmd)
	rootCmd.AddCommand(logCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

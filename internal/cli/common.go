package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/clock"
	"github.com/danieljhkim/metaforge/internal/config"
	"github.com/danieljhkim/metaforge/internal/engine"
	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/hash"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/scaffold"
)

// newEngine creates a new engine with real implementations of all
// dependencies and the kernel loaded.
func newEngine() (*engine.Engine, *config.Paths, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if kernelPath != "" {
		paths.Kernel = kernelPath
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}

	store := kernel.NewStore(fs, hasher)
	rules, err := store.Load(paths.Kernel)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	logger.Info("loaded constitutional kernel",
		zap.String("version", rules.Version()),
		zap.String("fingerprint", rules.Fingerprint),
	)

	sink := audit.NewFileSink(fs, paths.AuditLog)
	renderer := scaffold.NewRenderer(fs)

	return engine.New(store, sink, renderer, clk, logger), paths, nil
}

// newLogger builds the structured logger; silent unless --verbose is set.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// outputJSON outputs a value as JSON on the command's output stream.
func outputJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

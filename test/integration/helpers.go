package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/clock"
	"github.com/danieljhkim/metaforge/internal/engine"
	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/hash"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/scaffold"
	"github.com/danieljhkim/metaforge/internal/spec"
)

const kernelDoc = `constitutional_version: "0.1.0"
description: governance rules for generated forges
articles:
  - id: I
    title: Append-only audit
    summary: Every generation is recorded before files are written.
  - id: II
    title: Hardware honesty
    summary: The architecture never exceeds the declared hardware.
`

// harness wires a real engine against real filesystem implementations,
// rooted in a per-test temp directory.
type harness struct {
	t         *testing.T
	engine    *engine.Engine
	fs        *fsops.RealFS
	clock     *clock.FakeClock
	root      string
	auditFile string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()

	fs := fsops.NewRealFS()
	kernelFile := filepath.Join(root, "kernel.yml")
	if err := os.WriteFile(kernelFile, []byte(kernelDoc), 0644); err != nil {
		t.Fatalf("failed to write kernel: %v", err)
	}

	store := kernel.NewStore(fs, hash.NewSHA256Hasher())
	if _, err := store.Load(kernelFile); err != nil {
		t.Fatalf("failed to load kernel: %v", err)
	}

	auditFile := filepath.Join(root, "generation.log")
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	eng := engine.New(
		store,
		audit.NewFileSink(fs, auditFile),
		scaffold.NewRenderer(fs),
		clk,
		zap.NewNop(),
	)

	return &harness{
		t:         t,
		engine:    eng,
		fs:        fs,
		clock:     clk,
		root:      root,
		auditFile: auditFile,
	}
}

// loadSpec parses a spec document from YAML.
func loadSpec(t *testing.T, doc string) *spec.DomainSpec {
	t.Helper()
	ds, err := spec.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("failed to decode spec: %v", err)
	}
	return ds
}

// readArtifact reads a rendered artifact from the harness output directory.
func (h *harness) readArtifact(outDir, domain, name string) string {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, domain, name))
	if err != nil {
		h.t.Fatalf("failed to read artifact %s: %v", name, err)
	}
	return string(data)
}

// auditEntries reads back everything recorded in the audit file.
func (h *harness) auditEntries() []audit.Entry {
	h.t.Helper()
	entries, err := audit.ReadFile(h.fs, h.auditFile)
	if err != nil {
		h.t.Fatalf("failed to read audit log: %v", err)
	}
	return entries
}

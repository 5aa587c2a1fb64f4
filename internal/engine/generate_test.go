package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/metaforge/internal/audit"
	"github.com/danieljhkim/metaforge/internal/clock"
	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/hash"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/planner"
	"github.com/danieljhkim/metaforge/internal/spec"
)

// fakeScaffolder records render calls without touching the filesystem.
type fakeScaffolder struct {
	calls int
	err   error
}

func (f *fakeScaffolder) Render(outputDir, domain string, plan *planner.Plan, rules *kernel.RuleSet) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	paths := make([]string, 0, len(plan.GeneratedFiles))
	for _, a := range plan.GeneratedFiles {
		paths = append(paths, outputDir+"/"+a.Path)
	}
	return paths, nil
}

type testEngine struct {
	*Engine
	log        *audit.Log
	scaffolder *fakeScaffolder
	clock      *clock.FakeClock
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	store := kernel.NewStore(fsops.NewRealFS(), hash.NewFakeHasher("kernel-fp"))
	if _, err := store.Parse([]byte("constitutional_version: '0.1.0'\n")); err != nil {
		t.Fatalf("failed to parse test kernel: %v", err)
	}

	log := audit.NewLog()
	scaffolder := &fakeScaffolder{}
	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	return &testEngine{
		Engine:     New(store, log, scaffolder, clk, zap.NewNop()),
		log:        log,
		scaffolder: scaffolder,
		clock:      clk,
	}
}

func desktopSpec(wantsAI bool) *spec.DomainSpec {
	return &spec.DomainSpec{
		Pattern:        &spec.Pattern{Name: "compatibility_management"},
		Context:        &spec.Context{Domain: "skyrim_modding_ecosystem"},
		Constraints:    &spec.Constraints{Hardware: spec.HardwareDesktop, TechnicalCapacity: spec.CapacityBasic},
		Customization:  &spec.Customization{WantsAINodes: wantsAI},
		SuccessMetrics: []string{"conflict_rate"},
	}
}

func dainSpec() *spec.DomainSpec {
	return &spec.DomainSpec{
		Pattern:       &spec.Pattern{Name: "p"},
		Context:       &spec.Context{Domain: "research_lab"},
		Constraints:   &spec.Constraints{Hardware: spec.HardwareDedicated, TechnicalCapacity: spec.CapacityAdvanced},
		Customization: &spec.Customization{WantsAINodes: true},
	}
}

func TestEngine_Generate(t *testing.T) {
	te := newTestEngine(t)

	result, err := te.Generate(&GenerateRequest{Spec: desktopSpec(false)})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Domain != "skyrim_modding_ecosystem" {
		t.Errorf("Domain = %q", result.Domain)
	}
	if result.Architecture != planner.ArchTwoNode {
		t.Errorf("Architecture = %q, want two_node", result.Architecture)
	}
	if result.ConstitutionalCompliance != ComplianceVerified {
		t.Errorf("ConstitutionalCompliance = %q, want verified", result.ConstitutionalCompliance)
	}
	if len(result.FilesGenerated) != 5 {
		t.Errorf("FilesGenerated = %d artifacts, want 5", len(result.FilesGenerated))
	}
	if !reflect.DeepEqual(result.SuccessMetrics, []string{"conflict_rate"}) {
		t.Errorf("SuccessMetrics = %v", result.SuccessMetrics)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if result.KernelVersion != "0.1.0" {
		t.Errorf("KernelVersion = %q", result.KernelVersion)
	}
	if result.KernelFingerprint != "kernel-fp" {
		t.Errorf("KernelFingerprint = %q", result.KernelFingerprint)
	}
	if !result.GeneratedAt.Equal(te.clock.Now()) {
		t.Errorf("GeneratedAt = %v, want clock time", result.GeneratedAt)
	}
	if te.scaffolder.calls != 0 {
		t.Error("scaffolder should not run without an output directory")
	}
}

func TestEngine_Generate_DAINArtifacts(t *testing.T) {
	te := newTestEngine(t)

	result, err := te.Generate(&GenerateRequest{Spec: dainSpec()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Architecture != planner.ArchDecoupledDAIN {
		t.Errorf("Architecture = %q, want decoupled_dain", result.Architecture)
	}
	if len(result.FilesGenerated) != 7 {
		t.Errorf("FilesGenerated = %d artifacts, want 7", len(result.FilesGenerated))
	}
	if result.Plan.MemoryLimit != "4G" {
		t.Errorf("MemoryLimit = %q, want 4G", result.Plan.MemoryLimit)
	}
}

func TestEngine_Generate_AuditEntryPerCall(t *testing.T) {
	te := newTestEngine(t)

	if _, err := te.Generate(&GenerateRequest{Spec: desktopSpec(true)}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if te.log.Len() != 1 {
		t.Fatalf("log has %d entries after one generate, want 1", te.log.Len())
	}

	first := te.log.Entries()[0]
	if first.Domain != "skyrim_modding_ecosystem" {
		t.Errorf("entry domain = %q", first.Domain)
	}
	if first.Architecture != "two_node" {
		t.Errorf("entry architecture = %q", first.Architecture)
	}
	if first.AIEnabled {
		t.Error("entry aiEnabled = true, want false")
	}
	if len(first.Warnings) != 1 || first.Warnings[0] != planner.WarnDAINHardware {
		t.Errorf("entry warnings = %v", first.Warnings)
	}
	if first.KernelFingerprint != "kernel-fp" {
		t.Errorf("entry fingerprint = %q", first.KernelFingerprint)
	}

	if _, err := te.Generate(&GenerateRequest{Spec: dainSpec()}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if te.log.Len() != 2 {
		t.Fatalf("log has %d entries after two generates, want 2", te.log.Len())
	}
	if !reflect.DeepEqual(te.log.Entries()[0], first) {
		t.Error("prior audit entry was mutated by a later generate")
	}
}

func TestEngine_Generate_ValidationPropagates(t *testing.T) {
	te := newTestEngine(t)
	ds := desktopSpec(false)
	ds.Constraints = nil

	_, err := te.Generate(&GenerateRequest{Spec: ds})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var violation *kernel.ConstitutionalViolation
	if !errors.As(err, &violation) {
		t.Fatalf("expected *ConstitutionalViolation, got %T: %v", err, err)
	}
	if violation.Field != "constraints" {
		t.Errorf("violation field = %q, want constraints", violation.Field)
	}
	if te.log.Len() != 0 {
		t.Error("failed generation must not append an audit entry")
	}
}

func TestEngine_Generate_WithOutputDir(t *testing.T) {
	te := newTestEngine(t)

	result, err := te.Generate(&GenerateRequest{Spec: desktopSpec(false), OutputDir: "/tmp/out"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if te.scaffolder.calls != 1 {
		t.Errorf("scaffolder calls = %d, want 1", te.scaffolder.calls)
	}
	if len(result.Rendered) != 5 {
		t.Errorf("Rendered = %d paths, want 5", len(result.Rendered))
	}
}

func TestEngine_Generate_DryRunSkipsRender(t *testing.T) {
	te := newTestEngine(t)

	result, err := te.Generate(&GenerateRequest{Spec: desktopSpec(false), OutputDir: "/tmp/out", DryRun: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if te.scaffolder.calls != 0 {
		t.Error("dry run must not render")
	}
	if len(result.Rendered) != 0 {
		t.Errorf("Rendered = %v, want empty", result.Rendered)
	}
	if len(result.FilesGenerated) != 5 {
		t.Errorf("dry run should still describe artifacts, got %d", len(result.FilesGenerated))
	}
	// Dry run still plans, so it still audits.
	if te.log.Len() != 1 {
		t.Errorf("log has %d entries, want 1", te.log.Len())
	}
}

func TestEngine_Generate_ScaffoldFailure(t *testing.T) {
	te := newTestEngine(t)
	te.scaffolder.err = errors.New("disk full")

	_, err := te.Generate(&GenerateRequest{Spec: desktopSpec(false), OutputDir: "/tmp/out"})
	if err == nil {
		t.Fatal("expected scaffold error to propagate")
	}
}

func TestEngine_Generate_NilRequest(t *testing.T) {
	te := newTestEngine(t)

	if _, err := te.Generate(nil); !errors.Is(err, ErrNilSpec) {
		t.Errorf("Generate(nil) error = %v, want ErrNilSpec", err)
	}
	if _, err := te.Generate(&GenerateRequest{}); !errors.Is(err, ErrNilSpec) {
		t.Errorf("Generate(empty) error = %v, want ErrNilSpec", err)
	}
}

func TestEngine_Generate_KernelNotLoaded(t *testing.T) {
	store := kernel.NewStore(fsops.NewRealFS(), hash.NewSHA256Hasher())
	eng := New(store, audit.NewLog(), &fakeScaffolder{}, &clock.RealClock{}, nil)

	if _, err := eng.Generate(&GenerateRequest{Spec: desktopSpec(false)}); !errors.Is(err, ErrKernelNotLoaded) {
		t.Errorf("error = %v, want ErrKernelNotLoaded", err)
	}
}

func TestEngine_Plan(t *testing.T) {
	te := newTestEngine(t)

	result, err := te.Plan(&PlanRequest{Spec: dainSpec()})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if result.Domain != "research_lab" {
		t.Errorf("Domain = %q", result.Domain)
	}
	if result.Plan.Architecture != planner.ArchDecoupledDAIN {
		t.Errorf("Architecture = %q", result.Plan.Architecture)
	}
	if result.KernelVersion != "0.1.0" {
		t.Errorf("KernelVersion = %q", result.KernelVersion)
	}
	if te.log.Len() != 1 {
		t.Errorf("log has %d entries after one plan, want 1", te.log.Len())
	}
}

func TestEngine_Plan_Deterministic(t *testing.T) {
	te := newTestEngine(t)
	ds := desktopSpec(true)

	first, err := te.Plan(&PlanRequest{Spec: ds})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	second, err := te.Plan(&PlanRequest{Spec: ds})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if first.Plan.Architecture != second.Plan.Architecture ||
		first.Plan.MemoryLimit != second.Plan.MemoryLimit ||
		first.Plan.AIEnabled != second.Plan.AIEnabled ||
		!reflect.DeepEqual(first.Plan.Warnings, second.Plan.Warnings) {
		t.Errorf("plans differ:\n%+v\nvs\n%+v", first.Plan, second.Plan)
	}
	if te.log.Len() != 2 {
		t.Errorf("log has %d entries after two plans, want 2", te.log.Len())
	}
}

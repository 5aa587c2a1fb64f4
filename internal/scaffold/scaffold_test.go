package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/kernel"
	"github.com/danieljhkim/metaforge/internal/planner"
	"github.com/danieljhkim/metaforge/internal/spec"
)

func testRules() *kernel.RuleSet {
	return &kernel.RuleSet{ConstitutionalVersion: "0.1.0", Fingerprint: "fp"}
}

func planFor(t *testing.T, hardware spec.Hardware, capacity spec.Capacity, wantsAI bool) *planner.Plan {
	t.Helper()
	ds := &spec.DomainSpec{
		Pattern:       &spec.Pattern{Name: "p"},
		Context:       &spec.Context{Domain: "testdomain"},
		Constraints:   &spec.Constraints{Hardware: hardware, TechnicalCapacity: capacity},
		Customization: &spec.Customization{WantsAINodes: wantsAI},
	}
	plan := planner.Decide(ds)
	plan.GeneratedFiles = planner.DescribeArtifacts("testdomain", plan.Architecture)
	return plan
}

func TestRenderer_Render_Base(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	out := t.TempDir()
	plan := planFor(t, spec.HardwareDesktop, spec.CapacityBasic, false)

	written, err := r.Render(out, "testdomain", plan, testRules())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(written) != 5 {
		t.Fatalf("expected 5 written files, got %d", len(written))
	}

	for _, name := range []string{"kernel.yml", "domain_config.json", "docker-compose.yml", "constitutional_linter.py", "README.md"} {
		path := filepath.Join(out, "testdomain", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected artifact %s: %v", name, err)
		}
	}
}

func TestRenderer_Render_DomainConfig(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	out := t.TempDir()
	plan := planFor(t, spec.HardwareRaspberryPi, spec.CapacityBasic, false)
	plan.Requirements = []string{"transparency"}

	if _, err := r.Render(out, "testdomain", plan, testRules()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "testdomain", "domain_config.json"))
	if err != nil {
		t.Fatalf("failed to read domain config: %v", err)
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("domain config is not valid JSON: %v", err)
	}
	if cfg["domain"] != "testdomain" {
		t.Errorf("domain = %v, want testdomain", cfg["domain"])
	}
	if cfg["architecture"] != "two_node" {
		t.Errorf("architecture = %v, want two_node", cfg["architecture"])
	}
	if cfg["memory_limit"] != "3G" {
		t.Errorf("memory_limit = %v, want 3G", cfg["memory_limit"])
	}
	if cfg["kernel_version"] != "0.1.0" {
		t.Errorf("kernel_version = %v, want 0.1.0", cfg["kernel_version"])
	}
}

func TestRenderer_Render_ComposeMemoryLimit(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())

	// two_node desktop carries a limit.
	out := t.TempDir()
	plan := planFor(t, spec.HardwareDesktop, spec.CapacityBasic, false)
	if _, err := r.Render(out, "testdomain", plan, testRules()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(out, "testdomain", "docker-compose.yml"))
	if !strings.Contains(string(data), "mem_limit: 6G") {
		t.Errorf("compose file missing mem_limit: 6G:\n%s", data)
	}

	// decoupled_non_dain has no limit.
	out = t.TempDir()
	plan = planFor(t, spec.HardwareCloud, spec.CapacityBasic, false)
	if _, err := r.Render(out, "testdomain", plan, testRules()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(out, "testdomain", "docker-compose.yml"))
	if strings.Contains(string(data), "mem_limit") {
		t.Errorf("compose file should not carry mem_limit:\n%s", data)
	}
}

func TestRenderer_Render_DAIN(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	out := t.TempDir()
	plan := planFor(t, spec.HardwareDedicated, spec.CapacityAdvanced, true)

	written, err := r.Render(out, "testdomain", plan, testRules())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(written) != 7 {
		t.Fatalf("expected 7 written files, got %d", len(written))
	}

	for _, name := range []string{"docker-compose.dain.yml", "dain_c_agent.py"} {
		if _, err := os.Stat(filepath.Join(out, "testdomain", name)); err != nil {
			t.Errorf("expected DAIN artifact %s: %v", name, err)
		}
	}

	data, _ := os.ReadFile(filepath.Join(out, "testdomain", "README.md"))
	if !strings.Contains(string(data), "docker-compose.dain.yml") {
		t.Error("README should mention the DAIN compose file for DAIN forges")
	}
}

func TestRenderer_Render_KernelReference(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	out := t.TempDir()
	plan := planFor(t, spec.HardwareDesktop, spec.CapacityBasic, false)

	if _, err := r.Render(out, "testdomain", plan, testRules()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "testdomain", "kernel.yml"))
	if err != nil {
		t.Fatalf("failed to read kernel reference: %v", err)
	}
	if !strings.Contains(string(data), "constitutional_version: 0.1.0") {
		t.Errorf("kernel reference missing version:\n%s", data)
	}
}

func TestRenderer_Render_InvalidDomain(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	plan := planFor(t, spec.HardwareDesktop, spec.CapacityBasic, false)

	if _, err := r.Render(t.TempDir(), "../escape", plan, testRules()); err == nil {
		t.Error("expected error for domain with path separator")
	}
	if _, err := r.Render(t.TempDir(), "testdomain", nil, testRules()); err == nil {
		t.Error("expected error for nil plan")
	}
}

func TestRenderer_Render_Warnings(t *testing.T) {
	r := NewRenderer(fsops.NewRealFS())
	out := t.TempDir()
	plan := planFor(t, spec.HardwareDesktop, spec.CapacityBasic, true)

	if _, err := r.Render(out, "testdomain", plan, testRules()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(out, "testdomain", "README.md"))
	if !strings.Contains(string(data), planner.WarnDAINHardware) {
		t.Errorf("README should surface generation warnings:\n%s", data)
	}
}

package planner

// Architecture is the deployment topology selected for a domain.
type Architecture string

// Architecture constants
const (
	// ArchTwoNode is the conservative single-host topology.
	ArchTwoNode Architecture = "two_node"

	// ArchDecoupledDAIN is the decoupled topology with the DAIN audit
	// subsystem enabled.
	ArchDecoupledDAIN Architecture = "decoupled_dain"

	// ArchDecoupledNonDAIN is the decoupled topology without DAIN.
	ArchDecoupledNonDAIN Architecture = "decoupled_non_dain"
)

// Plan is the deployment decision derived from a domain spec.
type Plan struct {
	// Architecture is the selected deployment topology
	Architecture Architecture `json:"architecture"`

	// MemoryLimit is the container memory limit token, e.g. "3G" (empty = unset)
	MemoryLimit string `json:"memoryLimit,omitempty"`

	// AIEnabled indicates whether DAIN generation is enabled
	AIEnabled bool `json:"aiEnabled"`

	// Warnings is the ordered list of generation warnings
	Warnings []string `json:"warnings"`

	// Requirements is the constitutional requirement list copied from the spec
	Requirements []string `json:"requirements"`

	// GeneratedFiles is the ordered artifact set (filled during generation)
	GeneratedFiles []Artifact `json:"generatedFiles"`
}

// NewPlan creates a new Plan with the conservative defaults: two_node
// architecture, no memory limit, DAIN disabled.
func NewPlan() *Plan {
	return &Plan{
		Architecture:   ArchTwoNode,
		Warnings:       []string{},
		Requirements:   []string{},
		GeneratedFiles: []Artifact{},
	}
}

// AddWarning appends a generation warning to the plan.
func (p *Plan) AddWarning(msg string) {
	p.Warnings = append(p.Warnings, msg)
}

// HasWarnings returns true if the plan has any warnings.
func (p *Plan) HasWarnings() bool {
	return len(p.Warnings) > 0
}

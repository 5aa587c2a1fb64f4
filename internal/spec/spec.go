// Package spec defines the domain specification model.
//
// A DomainSpec is the declarative input describing what governance system to
// generate for a given use case. It is decoded once at the boundary into a
// statically typed struct; the sub-sections whose presence is
// constitutionally required are pointers so that absence is detectable by
// validation. A decoded spec is never mutated.
package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Hardware is the target hardware profile for a domain.
type Hardware string

// Known hardware profiles.
const (
	HardwareRaspberryPi Hardware = "raspberry_pi"
	HardwareDesktop     Hardware = "desktop"
	HardwareDedicated   Hardware = "dedicated"
	HardwareCloud       Hardware = "cloud"
)

// Known returns whether the hardware value is one of the known profiles.
func (h Hardware) Known() bool {
	switch h {
	case HardwareRaspberryPi, HardwareDesktop, HardwareDedicated, HardwareCloud:
		return true
	}
	return false
}

// Capacity is the technical capacity of the domain's operators.
type Capacity string

// Known capacity levels.
const (
	CapacityBasic    Capacity = "basic"
	CapacityAdvanced Capacity = "advanced"
)

// DomainSpec is the declarative input for forge generation.
type DomainSpec struct {
	// Pattern identifies the governance pattern being instantiated
	Pattern *Pattern `yaml:"pattern" json:"pattern" validate:"required"`

	// Context carries the domain identifier
	Context *Context `yaml:"context" json:"context" validate:"required"`

	// Constraints carries the hardware and capacity constraints
	Constraints *Constraints `yaml:"constraints" json:"constraints" validate:"required"`

	// Customization carries optional customization requests
	Customization *Customization `yaml:"customization_requests,omitempty" json:"customization_requests,omitempty"`

	// ConstitutionalRequirements is an ordered list of requirement statements
	ConstitutionalRequirements []string `yaml:"constitutional_requirements,omitempty" json:"constitutional_requirements,omitempty"`

	// SuccessMetrics is an ordered list of success metric statements
	SuccessMetrics []string `yaml:"success_metrics,omitempty" json:"success_metrics,omitempty"`
}

// Pattern identifies the governance pattern.
type Pattern struct {
	// Name is the pattern identifier
	Name string `yaml:"name" json:"name"`
}

// Context identifies the domain the forge is generated for.
type Context struct {
	// Domain is the domain identifier, used as the artifact path prefix
	Domain string `yaml:"domain" json:"domain"`
}

// Constraints carries the hardware and capacity constraints for a domain.
type Constraints struct {
	// Hardware is the target hardware profile
	Hardware Hardware `yaml:"hardware" json:"hardware" validate:"required,oneof=raspberry_pi desktop dedicated cloud"`

	// TechnicalCapacity is the operators' technical capacity
	TechnicalCapacity Capacity `yaml:"technical_capacity,omitempty" json:"technical_capacity,omitempty" validate:"omitempty,oneof=basic advanced"`
}

// Customization carries optional customization requests.
type Customization struct {
	// WantsAINodes requests generation of the DAIN audit subsystem
	WantsAINodes bool `yaml:"wants_ai_nodes" json:"wants_ai_nodes"`
}

// Domain returns the domain identifier, or "" if context is absent.
func (s *DomainSpec) Domain() string {
	if s == nil || s.Context == nil {
		return ""
	}
	return s.Context.Domain
}

// WantsAINodes returns the wants_ai_nodes request, defaulting to false.
func (s *DomainSpec) WantsAINodes() bool {
	if s == nil || s.Customization == nil {
		return false
	}
	return s.Customization.WantsAINodes
}

// Decode parses a DomainSpec from YAML or JSON data.
// Decode performs syntactic parsing only; constitutional validation is the
// kernel's responsibility.
func Decode(data []byte) (*DomainSpec, error) {
	var ds DomainSpec
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode domain spec: %w", err)
	}
	return &ds, nil
}

// Load reads and decodes a DomainSpec from the file at path.
func Load(path string) (*DomainSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain spec: %w", err)
	}
	return Decode(data)
}

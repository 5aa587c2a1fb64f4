package planner

import "github.com/danieljhkim/metaforge/internal/spec"

// Warnings attached when a DAIN request cannot be honored.
const (
	WarnDAINHardware = "DAIN generation disabled: requires dedicated hardware"
	WarnDAINCapacity = "DAIN generation disabled: requires advanced technical capacity"
)

// Decide maps a validated domain spec to a deployment plan.
//
// The rules form an ordered decision table; the first matching rule wins:
//
//  1. raspberry_pi/desktop hardware -> two_node with the per-hardware memory
//     limit; a DAIN request is refused with a hardware warning.
//  2. dedicated/cloud hardware, advanced capacity, DAIN requested ->
//     decoupled_dain with 4G (dedicated) or 8G (cloud).
//  3. dedicated/cloud hardware otherwise -> decoupled_non_dain, no limit;
//     a DAIN request is refused with a capacity warning.
//  4. anything else -> the conservative two_node default. Unknown hardware
//     is rejected during validation, so this rule is only reachable for
//     specs that bypassed the kernel.
//
// Decide is deterministic and never mutates the spec.
func Decide(ds *spec.DomainSpec) *Plan {
	plan := NewPlan()
	if ds == nil || ds.Constraints == nil {
		return plan
	}

	plan.Requirements = append(plan.Requirements, ds.ConstitutionalRequirements...)

	hardware := ds.Constraints.Hardware
	capacity := ds.Constraints.TechnicalCapacity
	wantsAI := ds.WantsAINodes()

	switch {
	case hardware == spec.HardwareRaspberryPi || hardware == spec.HardwareDesktop:
		plan.Architecture = ArchTwoNode
		plan.MemoryLimit = MemoryLimitFor(hardware)
		if wantsAI {
			plan.AddWarning(WarnDAINHardware)
		}

	case (hardware == spec.HardwareDedicated || hardware == spec.HardwareCloud) &&
		capacity == spec.CapacityAdvanced && wantsAI:
		plan.Architecture = ArchDecoupledDAIN
		plan.AIEnabled = true
		if hardware == spec.HardwareDedicated {
			plan.MemoryLimit = "4G"
		} else {
			plan.MemoryLimit = "8G"
		}

	case hardware == spec.HardwareDedicated || hardware == spec.HardwareCloud:
		plan.Architecture = ArchDecoupledNonDAIN
		if wantsAI {
			plan.AddWarning(WarnDAINCapacity)
		}

	default:
		// Safe default for hardware values that bypassed validation.
		plan.Architecture = ArchTwoNode
	}

	return plan
}

// MemoryLimitFor returns the memory limit for a two_node deployment on the
// given hardware. The limits reserve fixed headroom for the host operating
// system: 1G on a 4GB raspberry_pi, 2G on an 8GB desktop.
func MemoryLimitFor(hardware spec.Hardware) string {
	switch hardware {
	case spec.HardwareRaspberryPi:
		return "3G"
	case spec.HardwareDesktop:
		return "6G"
	default:
		return "1G"
	}
}

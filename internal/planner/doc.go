// Package planner derives deployment plans from validated domain specs.
//
// The planner is the deterministic core of metaforge: an ordered decision
// table maps (hardware, technical capacity, customization requests) to an
// architecture, a memory limit, and a warning list, and a pure artifact
// description maps (domain, architecture) to the file set a forge ships.
//
// Key responsibilities:
//   - Select the deployment architecture (first matching rule wins)
//   - Apply the per-hardware memory-limit policy
//   - Collect generation warnings for disabled DAIN requests
//   - Describe the artifact set for a domain and architecture
//
// Decide and DescribeArtifacts are pure functions; auditing and rendering
// belong to the engine and scaffold packages.
package planner

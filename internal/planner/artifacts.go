package planner

import "path"

// ArtifactKind classifies what a generated file is for.
type ArtifactKind string

// Artifact kinds
const (
	KindKernelReference ArtifactKind = "kernel_reference"
	KindDomainConfig    ArtifactKind = "domain_config"
	KindDeployConfig    ArtifactKind = "deploy_config"
	KindPolicyLinter    ArtifactKind = "policy_linter"
	KindUsageDoc        ArtifactKind = "usage_doc"
	KindDAINDeploy      ArtifactKind = "dain_deploy"
	KindDAINAgent       ArtifactKind = "dain_agent"
)

// Artifact describes a single file the forge ships.
type Artifact struct {
	// Path is the artifact path, prefixed with the domain identifier
	Path string `json:"path"`

	// Description is a human-readable summary of the artifact's role
	Description string `json:"description"`

	// Kind classifies the artifact
	Kind ArtifactKind `json:"kind"`
}

// DescribeArtifacts returns the ordered artifact set for a domain and
// architecture. Every forge ships five fixed artifacts; decoupled_dain adds
// the DAIN deployment config and the audit agent. Pure in (domain,
// architecture).
func DescribeArtifacts(domain string, arch Architecture) []Artifact {
	artifacts := []Artifact{
		{Path: path.Join(domain, "kernel.yml"), Description: "Constitutional kernel (git submodule)", Kind: KindKernelReference},
		{Path: path.Join(domain, "domain_config.json"), Description: "Domain-specific configuration", Kind: KindDomainConfig},
		{Path: path.Join(domain, "docker-compose.yml"), Description: "Deployment configuration", Kind: KindDeployConfig},
		{Path: path.Join(domain, "constitutional_linter.py"), Description: "Rule enforcement system", Kind: KindPolicyLinter},
		{Path: path.Join(domain, "README.md"), Description: "Usage instructions", Kind: KindUsageDoc},
	}

	if arch == ArchDecoupledDAIN {
		artifacts = append(artifacts,
			Artifact{Path: path.Join(domain, "docker-compose.dain.yml"), Description: "AI node deployment", Kind: KindDAINDeploy},
			Artifact{Path: path.Join(domain, "dain_c_agent.py"), Description: "Constitutional audit AI", Kind: KindDAINAgent},
		)
	}

	return artifacts
}

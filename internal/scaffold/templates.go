package scaffold

import "text/template"

var composeTmpl = template.Must(template.New("compose").Parse(`# Deployment configuration for {{.Domain}}
# Architecture: {{.Architecture}} (kernel v{{.KernelVersion}})
services:
  governance:
    image: metaforge/governance:latest
    container_name: {{.Domain}}_governance
{{- if .MemoryLimit}}
    mem_limit: {{.MemoryLimit}}
{{- end}}
    volumes:
      - ./kernel.yml:/etc/metaforge/kernel.yml:ro
      - ./domain_config.json:/etc/metaforge/domain_config.json:ro
    restart: unless-stopped
`))

var dainComposeTmpl = template.Must(template.New("dain-compose").Parse(`# DAIN audit node deployment for {{.Domain}}
# Requires the base deployment from docker-compose.yml.
services:
  dain:
    image: metaforge/dain:latest
    container_name: {{.Domain}}_dain
    volumes:
      - ./kernel.yml:/etc/metaforge/kernel.yml:ro
      - ./dain_c_agent.py:/opt/dain/agent.py:ro
    depends_on:
      - governance
    restart: unless-stopped
`))

var linterTmpl = template.Must(template.New("linter").Parse(`#!/usr/bin/env python3
"""Rule enforcement for the {{.Domain}} forge.

Checks domain artifacts against the constitutional kernel (v{{.KernelVersion}}).
Generated by metaforge; edit the kernel, not this file.
"""

REQUIREMENTS = [
{{- range .Requirements}}
    "{{.}}",
{{- end}}
]


def lint(document):
    violations = [req for req in REQUIREMENTS if req not in document]
    return violations


if __name__ == "__main__":
    import sys

    text = sys.stdin.read()
    for violation in lint(text):
        print(f"violation: missing requirement {violation!r}")
`))

var dainAgentTmpl = template.Must(template.New("dain-agent").Parse(`#!/usr/bin/env python3
"""Constitutional audit agent for the {{.Domain}} forge.

Runs alongside the governance node and audits decisions against the
constitutional kernel (v{{.KernelVersion}}). Generated by metaforge.
"""

DOMAIN = "{{.Domain}}"
KERNEL_PATH = "/etc/metaforge/kernel.yml"


def audit(decision):
    raise NotImplementedError("wire this agent to the governance decision feed")
`))

var readmeTmpl = template.Must(template.New("readme").Parse(`# {{.Domain}}

Governance forge generated by metaforge under constitutional kernel v{{.KernelVersion}}.

- Architecture: {{.Architecture}}
{{- if .MemoryLimit}}
- Memory limit: {{.MemoryLimit}}
{{- end}}
- DAIN audit subsystem: {{if .AIEnabled}}enabled{{else}}disabled{{end}}
{{- if .Warnings}}

## Generation warnings
{{range .Warnings}}
- {{.}}
{{- end}}
{{- end}}

## Usage

1. Review domain_config.json and the kernel reference in kernel.yml.
2. Start the deployment: docker compose up -d
{{- if .AIEnabled}}
3. Start the DAIN audit node: docker compose -f docker-compose.dain.yml up -d
{{- end}}
4. Run the policy linter over changed documents: ./constitutional_linter.py
`))

// Package config manages metaforge configuration and filesystem paths.
//
// Configuration includes the locations of the constitutional kernel document
// and the audit log, which can be customized via environment variables. The
// default root is ~/.metaforge/ containing the audit log; the kernel is
// looked up in the working directory unless overridden.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultKernelFile is the kernel document name looked up in the working
// directory when no override is given.
const DefaultKernelFile = "kernel.yml"

// Paths contains all the filesystem paths used by metaforge.
type Paths struct {
	// Root is the base directory for metaforge data (default: ~/.metaforge)
	Root string

	// Kernel is the path to the constitutional kernel document
	Kernel string

	// AuditLog is the path to the append-only generation log
	AuditLog string
}

// DefaultPaths returns the default paths for metaforge.
// Paths can be overridden with environment variables:
//   - METAFORGE_ROOT: Override the root directory
//   - METAFORGE_KERNEL: Override the kernel document location
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("METAFORGE_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".metaforge")
	}

	kernel := os.Getenv("METAFORGE_KERNEL")
	if kernel == "" {
		kernel = DefaultKernelFile
	}

	return &Paths{
		Root:     root,
		Kernel:   kernel,
		AuditLog: filepath.Join(root, "generation.log"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}

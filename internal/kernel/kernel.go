// Package kernel loads and enforces the constitutional kernel.
//
// The kernel is a static YAML rule set (kernel.yml) defining the minimal
// structure every domain specification must carry before planning proceeds.
// The Store loads the document once, fingerprints it, and exposes read-only
// rules plus spec validation. It never mutates a spec.
package kernel

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/metaforge/internal/fsops"
	"github.com/danieljhkim/metaforge/internal/hash"
)

// RuleSet is the loaded constitutional kernel document.
type RuleSet struct {
	// ConstitutionalVersion is the kernel version identifier. Optional;
	// absence does not fail loading.
	ConstitutionalVersion string `yaml:"constitutional_version" json:"constitutional_version"`

	// Description is an optional human-readable summary of the kernel
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Articles is an optional ordered list of constitutional articles
	Articles []Article `yaml:"articles,omitempty" json:"articles,omitempty"`

	// Fingerprint is the SHA-256 of the raw document, set on load
	Fingerprint string `yaml:"-" json:"fingerprint,omitempty"`
}

// Article is a single constitutional article in the kernel document.
type Article struct {
	// ID is the article identifier, e.g. "article_0"
	ID string `yaml:"id" json:"id"`

	// Title is the article title
	Title string `yaml:"title" json:"title"`

	// Summary is an optional one-line summary
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// Version returns the kernel version, or "unknown" when the document does
// not carry one.
func (r *RuleSet) Version() string {
	if r == nil || r.ConstitutionalVersion == "" {
		return "unknown"
	}
	return r.ConstitutionalVersion
}

// Store loads and exposes the constitutional kernel rules.
type Store struct {
	fs     fsops.FS
	hasher hash.Hasher
	rules  *RuleSet
}

// NewStore creates a new Store with the given dependencies.
func NewStore(fs fsops.FS, hasher hash.Hasher) *Store {
	return &Store{
		fs:     fs,
		hasher: hasher,
	}
}

// Load reads and parses the kernel document at path.
// It fails with *LoadError if the source is unreadable or malformed.
func (s *Store) Load(path string) (*RuleSet, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	rules, err := s.parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	s.rules = rules
	return rules, nil
}

// Parse parses a kernel document from raw bytes.
// It fails with *LoadError if the data is malformed.
func (s *Store) Parse(data []byte) (*RuleSet, error) {
	rules, err := s.parse(data)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	s.rules = rules
	return rules, nil
}

func (s *Store) parse(data []byte) (*RuleSet, error) {
	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("malformed kernel document: %w", err)
	}
	rules.Fingerprint = s.hasher.HashBytes(data)
	return &rules, nil
}

// Rules returns the loaded rule set, or nil if no kernel has been loaded.
func (s *Store) Rules() *RuleSet {
	return s.rules
}

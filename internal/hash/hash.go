// Package hash provides content fingerprinting for kernel documents.
//
// Metaforge records a SHA-256 fingerprint of the raw kernel document in every
// generation result and audit entry so that a generated forge can always be
// traced back to the exact rule set it was produced under. The package
// provides a real implementation using crypto/sha256 and a fake
// implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for content fingerprinting.
type Hasher interface {
	// HashBytes computes the fingerprint of the given content.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes computes the SHA-256 fingerprint of the given content.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with a fixed fingerprint for testing.
type FakeHasher struct {
	fingerprint string
}

// NewFakeHasher creates a new FakeHasher returning the given fingerprint.
func NewFakeHasher(fingerprint string) *FakeHasher {
	return &FakeHasher{fingerprint: fingerprint}
}

// HashBytes returns the predetermined fingerprint regardless of content.
func (h *FakeHasher) HashBytes(data []byte) string {
	return h.fingerprint
}

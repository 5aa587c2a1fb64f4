// Package audit records forge generations in an append-only log.
//
// The generation log is not process-global state: the engine writes through
// an injected Sink, and the caller owns retention. The in-memory Log keeps
// entries for the lifetime of the process and is safe for concurrent use;
// the FileSink appends JSON lines to a caller-chosen file so history
// survives the process and can be rotated externally.
package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/danieljhkim/metaforge/internal/fsops"
)

// Entry is one generation record. Entries are immutable once appended.
type Entry struct {
	// Domain is the domain the forge was generated for
	Domain string `json:"domain"`

	// Architecture is the selected deployment topology
	Architecture string `json:"architecture"`

	// AIEnabled indicates whether DAIN generation was enabled
	AIEnabled bool `json:"aiEnabled"`

	// Warnings is the ordered warning list from planning
	Warnings []string `json:"warnings"`

	// KernelFingerprint is the fingerprint of the kernel the plan was derived under
	KernelFingerprint string `json:"kernelFingerprint,omitempty"`

	// Timestamp is when the generation happened
	Timestamp time.Time `json:"timestamp"`
}

// Sink receives generation entries. Each generation appends exactly one
// entry; implementations must not interleave entries mid-write.
type Sink interface {
	// Append records a single generation entry.
	Append(e Entry) error
}

// Log is an in-memory append-only Sink safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates a new empty Log.
func NewLog() *Log {
	return &Log{entries: []Entry{}}
}

// Append records an entry. It never fails.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return nil
}

// Entries returns a copy of the recorded entries in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// FileSink appends entries as JSON lines to a file. The caller owns the
// file's retention and rotation.
type FileSink struct {
	fs   fsops.FS
	path string
	mu   sync.Mutex
}

// NewFileSink creates a FileSink writing to the given path.
func NewFileSink(fs fsops.FS, path string) *FileSink {
	return &FileSink{fs: fs, path: path}
}

// Append marshals the entry and appends it as one JSON line.
func (s *FileSink) Append(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.AppendLine(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// ReadFile parses the JSONL audit file at path. A missing file is not an
// error; it reads as an empty history.
func ReadFile(fs fsops.FS, path string) ([]Entry, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check audit log: %w", err)
	}
	if !exists {
		return []Entry{}, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	entries := []Entry{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("malformed audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan audit log: %w", err)
	}

	return entries, nil
}

// MultiSink fans entries out to several sinks, in order.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Append(e Entry) error {
	for _, s := range m {
		if err := s.Append(e); err != nil {
			return err
		}
	}
	return nil
}

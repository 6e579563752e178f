// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"os"
)

// Source is a backing document for one cache collection.
type Source interface {
	// Exists reports whether the document is currently present.
	Exists() bool

	// ReadAll returns the full document.
	ReadAll() ([]byte, error)

	// String names the source in logs and errors.
	String() string
}

// FileSource reads a JSON document from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

// Exists implements Source.
func (s FileSource) Exists() bool {
	info, err := os.Stat(s.Path)
	return err == nil && !info.IsDir()
}

// ReadAll implements Source.
func (s FileSource) ReadAll() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// String implements Source.
func (s FileSource) String() string {
	return s.Path
}

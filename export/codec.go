// SPDX-License-Identifier: MIT
// Package: confgraph/export
//
// codec.go - YAML/JSON encoding, snappy framing and file helpers.

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// compressedExt marks a snappy-framed file.
const compressedExt = ".sz"

// ParsePath derives the format from path and reports whether it is
// snappy-compressed, e.g. "run.json.sz" → (FormatJSON, true).
func ParsePath(path string) (Format, bool, error) {
	base := strings.ToLower(filepath.Base(path))
	compressed := false
	if trimmed, ok := strings.CutSuffix(base, compressedExt); ok {
		base, compressed = trimmed, true
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".json":
		return FormatJSON, compressed, nil
	}

	return "", false, fmt.Errorf("ParsePath: %q: %w", path, ErrUnknownFormat)
}

// Write encodes doc to w.
func Write(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Write: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Write: json: %w", err)
		}
		return nil
	}

	return fmt.Errorf("Write: %q: %w", f, ErrUnknownFormat)
}

// Read decodes and validates one document from r.
func Read(r io.Reader, f Format) (*Document, error) {
	doc := new(Document)
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("Read: yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("Read: json: %w", err)
		}
	default:
		return nil, fmt.Errorf("Read: %q: %w", f, ErrUnknownFormat)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// WriteFile writes doc to path in the format implied by its extension.
func WriteFile(path string, doc *Document) (err error) {
	f, compressed, err := ParsePath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if !compressed {
		return Write(file, doc, f)
	}
	sw := snappy.NewBufferedWriter(file)
	if err = Write(sw, doc, f); err != nil {
		return err
	}

	return sw.Close()
}

// ReadFile reads and validates the document at path.
func ReadFile(path string) (*Document, error) {
	f, compressed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		r = snappy.NewReader(file)
	}

	return Read(r, f)
}

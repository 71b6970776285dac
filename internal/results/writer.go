// Package results writes analysis artifacts to disk as JSON, optionally
// gzip-compressed. A run writes each artifact exactly once; concurrent
// runs against the same output path are not guarded and a later write
// overwrites an earlier one.
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// WriteJSON marshals v with two-space indentation and writes it to path.
// With compress set, the file is gzip-compressed and ".gz" is appended
// to the path. The returned string is the path actually written.
func WriteJSON(path string, v any, compress bool) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	if !compress {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		return path, nil
	}

	gzPath := path + ".gz"
	f, err := os.Create(gzPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", gzPath, err)
	}
	defer f.Close() //nolint:errcheck

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("compressing %s: %w", gzPath, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", gzPath, err)
	}
	return gzPath, nil
}

// ReadJSON loads a JSON artifact into v, transparently decompressing
// ".gz" files.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if filepath.Ext(path) == ".gz" {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decompressing %s: %w", path, err)
		}
		defer zr.Close() //nolint:errcheck
		dec := json.NewDecoder(zr)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

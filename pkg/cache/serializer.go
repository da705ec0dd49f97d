package cache

import (
	"encoding/json"
	"fmt"
)

// Dump serializes doc to its canonical JSON form, stamping
// DumpVersion with the version this package writes. Per spec.md
// §4.7, the result must be lossless for every field §3 describes.
func Dump(doc *Document) ([]byte, error) {
	doc.DumpVersion = currentDumpVersion
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cache: marshal document: %w", err)
	}
	return data, nil
}

// Load parses data into a Document, and rejects any dump_version this
// package does not recognize before touching the rest of the payload.
func Load(data []byte) (*Document, error) {
	var versionProbe struct {
		DumpVersion int `json:"dump_version"`
	}
	if err := json.Unmarshal(data, &versionProbe); err != nil {
		return nil, fmt.Errorf("cache: probe dump_version: %w", err)
	}
	if versionProbe.DumpVersion != currentDumpVersion {
		return nil, ErrUnsupportedDumpVersion
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cache: unmarshal document: %w", err)
	}
	doc.IsVirtual = true
	return &doc, nil
}

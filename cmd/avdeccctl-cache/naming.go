package main

import (
	"fmt"
	"path/filepath"
)

// cacheFilePath returns the path a document for eid is stored at,
// matching the naming convention the (unspecified, out-of-scope)
// orchestrator's writer is expected to use: one file per entity, named
// by its 64-bit ID in lowercase hex.
func cacheFilePath(dir string, eid uint64) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.json", eid))
}

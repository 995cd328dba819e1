// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate enumerates candidate source documents.
package locate

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// pdfExt is the extension filter applied to located files, compared
// case-insensitively.
const pdfExt = ".pdf"

// Find walks root recursively and returns the paths of all regular files
// whose name ends in ".pdf" (any case). The result is in the walk's
// lexical order. An empty slice with a nil error means no documents were
// found; only a failure to walk the tree itself is an error.
func Find(root string) ([]string, error) {
	var pdfs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), pdfExt) {
			pdfs = append(pdfs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return pdfs, nil
}

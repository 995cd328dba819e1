// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit writes one output unit per processed document: a folder
// under the run's out directory holding the renamed PDF copy and a
// generated index.md publication entry.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/thesis2hugo/internal/namer"
	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// contentFile is the canonical per-folder content file name.
const contentFile = "index.md"

// Emit creates <base>/<out>/<year>_<sanitized author>/ and fills it with
// a copy of the source PDF (renamed after the folder) and the rendered
// index.md. Folder creation is idempotent; two documents that sanitize
// to the same author share a folder and the later one wins.
func Emit(srcPDF string, fields types.Fields, cfg types.ProcessConfig) (types.OutputUnit, error) {
	folderName := cfg.Year + "_" + namer.Sanitize(fields.Author)
	folderPath := filepath.Join(cfg.BaseFolder, cfg.OutDirName, folderName)

	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return types.OutputUnit{}, fmt.Errorf("creating output folder %s: %w", folderPath, err)
	}

	pdfPath := filepath.Join(folderPath, folderName+filepath.Ext(srcPDF))
	if err := copyFile(srcPDF, pdfPath); err != nil {
		return types.OutputUnit{}, fmt.Errorf("copying %s: %w", srcPDF, err)
	}

	contentPath := filepath.Join(folderPath, contentFile)
	if err := os.WriteFile(contentPath, []byte(renderContent(fields, cfg.Year)), 0o644); err != nil {
		return types.OutputUnit{}, fmt.Errorf("writing %s: %w", contentPath, err)
	}

	return types.OutputUnit{
		FolderName:  folderName,
		PDFPath:     pdfPath,
		ContentPath: contentPath,
	}, nil
}

// copyFile copies src to dst, overwriting dst, and carries the source
// modification time over to the copy.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

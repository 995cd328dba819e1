// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the conversion of located PDFs into
// publication entries: extract, analyze, emit, one document at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/thesis2hugo/internal/analyze"
	"github.com/pdiddy/thesis2hugo/internal/emit"
	"github.com/pdiddy/thesis2hugo/internal/locate"
	"github.com/pdiddy/thesis2hugo/internal/pdfx"
	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// Summary holds the outcome of one batch run.
type Summary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of documents attempted.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any documents failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Runner drives the per-document pipeline over a base folder.
type Runner struct {
	cfg      types.ProcessConfig
	analyzer *analyze.Analyzer
}

// New builds a Runner for the given config and summarization backend.
func New(cfg types.ProcessConfig, backend analyze.Backend) *Runner {
	cfg.ApplyDefaults()
	return &Runner{
		cfg:      cfg,
		analyzer: analyze.New(backend),
	}
}

// Run locates documents under the base folder and processes each one,
// printing per-item status and a final tally to w. In test mode only the
// first located document is processed. A failing document is counted and
// reported but never stops the batch; only a failure to scan the base
// folder itself is an error.
func (r *Runner) Run(ctx context.Context, testMode bool, w io.Writer) (Summary, error) {
	pdfs, err := locate.Find(r.cfg.BaseFolder)
	if err != nil {
		return Summary{}, err
	}

	if len(pdfs) == 0 {
		fmt.Fprintln(w, "No PDF files found in the specified folder.")
		return Summary{}, nil
	}

	if testMode {
		fmt.Fprintln(w, "Running in TEST mode - will process only one PDF file.")
		pdfs = pdfs[:1]
	} else {
		fmt.Fprintf(w, "Running in FULL mode - will process all %d PDF files.\n", len(pdfs))
	}

	var summary Summary
	for _, path := range pdfs {
		if err := r.process(ctx, path, w); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(path), err)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	fmt.Fprintf(w, "\nProcessing complete!\n")
	fmt.Fprintf(w, "Successfully processed: %d\n", summary.Succeeded)
	fmt.Fprintf(w, "Failed: %d\n", summary.Failed)
	return summary, nil
}

// process runs one document through extract, analyze, and emit.
// Extraction and analysis degrade internally and cannot fail; emitting
// is the only step whose error surfaces, and the caller isolates it to
// this document.
func (r *Runner) process(ctx context.Context, path string, w io.Writer) error {
	fmt.Fprintf(w, "processing: %s\n", filepath.Base(path))

	content := pdfx.Extract(path, w)
	fields := r.analyzer.Analyze(ctx, content, w)

	unit, err := emit.Emit(path, fields, r.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "done: %s -> %s/%s/\n", filepath.Base(path), r.cfg.OutDirName, unit.FolderName)
	return nil
}

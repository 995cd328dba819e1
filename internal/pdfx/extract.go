// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfx extracts bounded text and embedded metadata from PDF files.
//
// Extraction is best-effort by design: a corrupt or unreadable document
// degrades to empty output with a warning, never an error. One bad file
// must not abort a batch.
package pdfx

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/thesis2hugo/pkg/types"
)

const (
	// maxPages bounds how many pages feed the downstream prompt.
	maxPages = 5
	// maxChars bounds the extracted text length for API efficiency.
	maxChars = 160000
)

// Text reads at most the first five pages of the PDF at path and returns
// their text joined with newlines, clipped to the character budget.
// Failures are reported on w and degrade to the empty string.
func Text(path string, w io.Writer) string {
	text, err := extractText(path)
	if err != nil {
		fmt.Fprintf(w, "  warning: text extraction failed for %s: %v\n", path, err)
		return ""
	}
	return text
}

// Metadata reads the PDF Info dictionary at path. Fields the document
// does not carry are empty; failures are reported on w and degrade to
// the zero value.
func Metadata(path string, w io.Writer) types.DocMetadata {
	meta, err := extractMetadata(path)
	if err != nil {
		fmt.Fprintf(w, "  warning: metadata extraction failed for %s: %v\n", path, err)
		return types.DocMetadata{}
	}
	return meta
}

// Extract combines Text and Metadata for one document.
func Extract(path string, w io.Writer) types.ExtractedContent {
	return types.ExtractedContent{
		Text:     Text(path, w),
		Metadata: Metadata(path, w),
	}
}

// extractText does the actual page reads. The pdf library panics on some
// malformed files, so the recover converts that into an ordinary error.
func extractText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	return clip(b.String()), nil
}

func extractMetadata(path string) (meta types.DocMetadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return types.DocMetadata{}, err
	}
	defer f.Close()

	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return types.DocMetadata{}, nil
	}
	return types.DocMetadata{
		Title:   infoText(info, "Title"),
		Author:  infoText(info, "Author"),
		Subject: infoText(info, "Subject"),
		Creator: infoText(info, "Creator"),
	}, nil
}

// infoText returns the decoded text of one Info dictionary entry, or ""
// when the entry is absent.
func infoText(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.IsNull() {
		return ""
	}
	return v.Text()
}

// clip truncates s to the extraction character budget.
func clip(s string) string {
	if len(s) > maxChars {
		return s[:maxChars]
	}
	return s
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze turns extracted PDF content into the four publication
// fields (title, author, keywords, summary) via an external
// chat-completions service.
//
// Analysis is total: every tier of response handling returns a fully
// populated record. A structured JSON reply is used verbatim; a prose
// reply falls back to line scanning; a failed call falls back to the
// document's own metadata plus static placeholders.
package analyze

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// Backend abstracts the summarization service so tests can supply fakes.
// Complete sends one system+user conversation and returns the model's
// raw text, which may itself be JSON or prose.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// fallbackDefaults holds the placeholder field values for the two
// fallback tiers, loaded from the embedded data file.
type fallbackDefaults struct {
	// Parse is used when the response arrived but could not be parsed
	// as JSON; line scanning fills in whatever it can on top.
	Parse types.Fields `yaml:"parse"`

	// Service is used when the call itself failed; document metadata
	// fills in title and author when available.
	Service types.Fields `yaml:"service"`
}

//go:embed defaults.yaml
var defaultsYAML []byte

var defaults = mustLoadDefaults()

func mustLoadDefaults() fallbackDefaults {
	var d fallbackDefaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		panic(fmt.Sprintf("analyze: parsing defaults.yaml: %v", err))
	}
	return d
}

// Analyzer extracts publication fields from document content.
type Analyzer struct {
	backend Backend
}

// New returns an Analyzer backed by the given service.
func New(backend Backend) *Analyzer {
	return &Analyzer{backend: backend}
}

// Analyze sends the extracted content to the summarization service and
// returns the four publication fields. It never fails: service or parse
// problems degrade through the fallback tiers, with warnings on w.
func (a *Analyzer) Analyze(ctx context.Context, content types.ExtractedContent, w io.Writer) types.Fields {
	raw, err := a.backend.Complete(ctx, systemMessage, renderPrompt(content))
	if err != nil {
		fmt.Fprintf(w, "  warning: summarization call failed: %v\n", err)
		return metadataFallback(content.Metadata)
	}

	if fields, ok := parseJSONSpan(raw); ok {
		return fields
	}
	return parseLines(raw)
}

// parseJSONSpan looks for a JSON object in the response body, allowing
// surrounding prose: the span runs from the first '{' to the last '}'.
// Any field the object does not populate keeps its placeholder value so
// the record is never partially missing.
func parseJSONSpan(raw string) (types.Fields, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return types.Fields{}, false
	}

	fields := defaults.Parse
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return types.Fields{}, false
	}
	fillEmpty(&fields, defaults.Parse)
	return fields, true
}

// parseLines is the heuristic fallback for prose responses: any line
// containing a field name and a colon contributes the text after the
// first colon. Title and author additionally shed surrounding quotes.
// Unmatched fields keep their placeholder values.
func parseLines(raw string) types.Fields {
	fields := defaults.Parse

	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(line, ":") {
			continue
		}
		value := strings.TrimSpace(line[strings.Index(line, ":")+1:])
		switch {
		case strings.Contains(lower, "title"):
			fields.Title = strings.Trim(value, `"`)
		case strings.Contains(lower, "author"):
			fields.Author = strings.Trim(value, `"`)
		case strings.Contains(lower, "keyword"):
			fields.Keywords = value
		case strings.Contains(lower, "summary"):
			fields.Summary = value
		}
	}

	fillEmpty(&fields, defaults.Parse)
	return fields
}

// metadataFallback builds a record from locally available metadata when
// the service call failed outright.
func metadataFallback(meta types.DocMetadata) types.Fields {
	fields := defaults.Service
	if meta.Title != "" {
		fields.Title = meta.Title
	}
	if meta.Author != "" {
		fields.Author = meta.Author
	}
	return fields
}

// fillEmpty replaces empty fields with their placeholder values.
func fillEmpty(f *types.Fields, def types.Fields) {
	if f.Title == "" {
		f.Title = def.Title
	}
	if f.Author == "" {
		f.Author = def.Author
	}
	if f.Keywords == "" {
		f.Keywords = def.Keywords
	}
	if f.Summary == "" {
		f.Summary = def.Summary
	}
}

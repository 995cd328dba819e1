// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// fakeBackend implements Backend with a canned response or error.
type fakeBackend struct {
	response string
	err      error

	gotSystem string
	gotUser   string
}

func (f *fakeBackend) Complete(_ context.Context, system, user string) (string, error) {
	f.gotSystem = system
	f.gotUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func analyzeWith(t *testing.T, backend Backend, content types.ExtractedContent) types.Fields {
	t.Helper()
	var log bytes.Buffer
	return New(backend).Analyze(context.Background(), content, &log)
}

func TestAnalyzeStructuredResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     types.Fields
	}{
		{
			name:     "bare JSON object",
			response: `{"title":"T","author":"A","keywords":"k1, k2","summary":"S"}`,
			want:     types.Fields{Title: "T", Author: "A", Keywords: "k1, k2", Summary: "S"},
		},
		{
			name: "JSON wrapped in prose",
			response: "Here is the requested analysis:\n\n" +
				`{"title":"Deep Sea Mining","author":"Jane Doe","keywords":"\"ocean floor\", robotics","summary":"## Overview\nLong text."}` +
				"\n\nLet me know if you need more.",
			want: types.Fields{
				Title:    "Deep Sea Mining",
				Author:   "Jane Doe",
				Keywords: `"ocean floor", robotics`,
				Summary:  "## Overview\nLong text.",
			},
		},
		{
			name:     "JSON with missing fields keeps placeholders",
			response: `{"title":"Only Title"}`,
			want: types.Fields{
				Title:    "Only Title",
				Author:   "Unknown Author",
				Keywords: `"document", "analysis"`,
				Summary:  "Summary extraction failed. Manual review required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeWith(t, &fakeBackend{response: tt.response}, types.ExtractedContent{Text: "body"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeLineFallback(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     types.Fields
	}{
		{
			name:     "labelled lines",
			response: "Title: \"A Study of Tides\"\nAuthor: Jane Doe\nKeywords: tides, moon\nSummary: Short overview.",
			want: types.Fields{
				Title:    "A Study of Tides",
				Author:   "Jane Doe",
				Keywords: "tides, moon",
				Summary:  "Short overview.",
			},
		},
		{
			name:     "single author line over defaults",
			response: "I could not produce JSON.\nAuthor: Jane Doe\nSorry about that.",
			want: types.Fields{
				Title:    "Unknown Title",
				Author:   "Jane Doe",
				Keywords: `"document", "analysis"`,
				Summary:  "Summary extraction failed. Manual review required.",
			},
		},
		{
			name:     "no recognizable lines",
			response: "The model refused to answer.",
			want: types.Fields{
				Title:    "Unknown Title",
				Author:   "Unknown Author",
				Keywords: `"document", "analysis"`,
				Summary:  "Summary extraction failed. Manual review required.",
			},
		},
		{
			name: "title wins over author on a shared line",
			response: "The title given by the author: Shared Line\n",
			want: types.Fields{
				Title:    "Shared Line",
				Author:   "Unknown Author",
				Keywords: `"document", "analysis"`,
				Summary:  "Summary extraction failed. Manual review required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeWith(t, &fakeBackend{response: tt.response}, types.ExtractedContent{Text: "body"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeMalformedJSONFallsBackToLines(t *testing.T) {
	// A brace span that is not valid JSON must drop to line scanning.
	response := "{not valid json}\nAuthor: Jane Doe"
	got := analyzeWith(t, &fakeBackend{response: response}, types.ExtractedContent{})
	assert.Equal(t, "Jane Doe", got.Author)
	assert.Equal(t, "Unknown Title", got.Title)
}

func TestAnalyzeServiceFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}

	t.Run("metadata fills title and author", func(t *testing.T) {
		content := types.ExtractedContent{
			Metadata: types.DocMetadata{Title: "Thesis on Kelp", Author: "J. Smith"},
		}
		got := analyzeWith(t, backend, content)
		assert.Equal(t, types.Fields{
			Title:    "Thesis on Kelp",
			Author:   "J. Smith",
			Keywords: `"academic paper", "research", "analysis"`,
			Summary:  "This document requires manual review for proper summarization.",
		}, got)
	})

	t.Run("empty metadata uses static defaults", func(t *testing.T) {
		got := analyzeWith(t, backend, types.ExtractedContent{})
		assert.Equal(t, "Unknown Title", got.Title)
		assert.Equal(t, "Unknown Author", got.Author)
	})

	t.Run("warning is logged", func(t *testing.T) {
		var log bytes.Buffer
		New(backend).Analyze(context.Background(), types.ExtractedContent{}, &log)
		assert.Contains(t, log.String(), "summarization call failed")
	})
}

func TestAnalyzeAlwaysPopulatesAllFields(t *testing.T) {
	backends := []Backend{
		&fakeBackend{response: `{"title":"","author":"","keywords":"","summary":""}`},
		&fakeBackend{response: "free-form prose without any labels"},
		&fakeBackend{response: ""},
		&fakeBackend{err: errors.New("boom")},
	}
	for _, b := range backends {
		got := analyzeWith(t, b, types.ExtractedContent{})
		assert.NotEmpty(t, got.Title)
		assert.NotEmpty(t, got.Author)
		assert.NotEmpty(t, got.Keywords)
		assert.NotEmpty(t, got.Summary)
	}
}

func TestRenderPrompt(t *testing.T) {
	content := types.ExtractedContent{
		Text: "First page text.",
		Metadata: types.DocMetadata{
			Title:  "Embedded Title",
			Author: "Embedded Author",
		},
	}

	prompt := renderPrompt(content)
	assert.Contains(t, prompt, "- Title: Embedded Title")
	assert.Contains(t, prompt, "- Author: Embedded Author")
	assert.Contains(t, prompt, "- Subject: Not available")
	assert.Contains(t, prompt, "First page text.")
	assert.Contains(t, prompt, "Format your response as JSON")
}

func TestBackendReceivesSystemMessage(t *testing.T) {
	backend := &fakeBackend{response: `{"title":"T","author":"A","keywords":"k","summary":"s"}`}
	analyzeWith(t, backend, types.ExtractedContent{Text: "x"})

	require.NotEmpty(t, backend.gotSystem)
	assert.Contains(t, backend.gotSystem, "May 2025")
	assert.Contains(t, backend.gotUser, "PDF Text Content")
}

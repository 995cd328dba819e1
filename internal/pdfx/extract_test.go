// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnreadableFile(t *testing.T) {
	var log bytes.Buffer
	got := Text(filepath.Join(t.TempDir(), "missing.pdf"), &log)

	assert.Empty(t, got)
	assert.Contains(t, log.String(), "warning")
}

func TestTextCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not actually a pdf"), 0o644))

	var log bytes.Buffer
	got := Text(path, &log)

	assert.Empty(t, got)
	assert.Contains(t, log.String(), "text extraction failed")
}

func TestMetadataCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	var log bytes.Buffer
	got := Metadata(path, &log)

	assert.Empty(t, got.Title)
	assert.Empty(t, got.Author)
	assert.Empty(t, got.Subject)
	assert.Empty(t, got.Creator)
	assert.Contains(t, log.String(), "metadata extraction failed")
}

func TestExtractDegradesWithoutError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o644))

	var log bytes.Buffer
	content := Extract(path, &log)

	assert.Empty(t, content.Text)
	assert.Empty(t, content.Metadata.Author)
}

func TestClip(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, clip(short))

	long := strings.Repeat("a", maxChars+500)
	clipped := clip(long)
	assert.Len(t, clipped, maxChars)
}

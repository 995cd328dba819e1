// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared across pipeline stages.
package types

// DocMetadata holds the metadata embedded in a PDF's Info dictionary.
// Fields the document does not carry are empty strings.
type DocMetadata struct {
	Title   string `json:"title" yaml:"title"`
	Author  string `json:"author" yaml:"author"`
	Subject string `json:"subject" yaml:"subject"`
	Creator string `json:"creator" yaml:"creator"`
}

// ExtractedContent is the raw material pulled from one source PDF:
// a bounded text window plus whatever metadata the file carries.
type ExtractedContent struct {
	// Text is the concatenated text of the first few pages, truncated
	// to a fixed character budget.
	Text string `json:"text" yaml:"text"`

	// Metadata is the document's embedded metadata, all fields optional.
	Metadata DocMetadata `json:"metadata" yaml:"metadata"`
}

// Fields is the analyzed record written to output. Every field is always
// populated: either from the summarization service or from fallback
// defaults, never partially missing.
type Fields struct {
	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// Author is the primary author's name.
	Author string `json:"author" yaml:"author"`

	// Keywords is a comma-separated list; multi-word entries are
	// double-quoted (ready for a Hugo tags list).
	Keywords string `json:"keywords" yaml:"keywords"`

	// Summary is long-form Markdown with Overview, Key Contributions,
	// and Impact and Relevance subsections.
	Summary string `json:"summary" yaml:"summary"`
}

// OutputUnit records what the emitter produced for one document.
type OutputUnit struct {
	// FolderName is the output folder name, e.g. "2025_Jane_Doe".
	FolderName string `json:"folder_name" yaml:"folder_name"`

	// PDFPath is the path of the renamed PDF copy.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// ContentPath is the path of the generated index.md.
	ContentPath string `json:"content_path" yaml:"content_path"`
}

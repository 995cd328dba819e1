// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/pdiddy/thesis2hugo/internal/httputil"
	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// systemMessage pins the audience and the defence date for every thesis
// in the batch.
const systemMessage = "You are addressing an expert audience. " +
	"The defence date is May 2025 for all theses (ignore the date in the metadata or text). " +
	"Do not include any references, citations or extra comments in any of the answers."

// promptTmpl is the user prompt sent for each document. It embeds the
// metadata hints and the extracted text and asks for a JSON answer.
var promptTmpl = template.Must(template.New("analysis").Parse(`Analyze this PDF content and metadata to extract the following information:

PDF Metadata:
- Title: {{.Title}}
- Author: {{.Author}}
- Subject: {{.Subject}}

PDF Text Content (first few pages):
{{.Text}}

Please provide:
1. TITLE: The main title of the document
2. AUTHOR: The primary author's name
3. KEYWORDS: 3-4 relevant keywords, comma-separated, WITH QUOTES around multi-word keywords
4. SUMMARY: A comprehensive markdown summary. The summary should be 500 words and should include three sections Overview, Key Contributions, Impact and Relevance.

Format your response as JSON:
{
    "title": "extracted title",
    "author": "extracted author",
    "keywords": "keyword1, \"multi word keyword\", keyword3, keyword4",
    "summary": "markdown formatted summary..."
}`))

// promptView is the data fed to promptTmpl.
type promptView struct {
	Title   string
	Author  string
	Subject string
	Text    string
}

// renderPrompt fills the prompt template with the document's content.
// Empty metadata hints render as "Not available".
func renderPrompt(content types.ExtractedContent) string {
	view := promptView{
		Title:   orNotAvailable(content.Metadata.Title),
		Author:  orNotAvailable(content.Metadata.Author),
		Subject: orNotAvailable(content.Metadata.Subject),
		Text:    content.Text,
	}
	var buf bytes.Buffer
	// The template only substitutes strings; execution cannot fail.
	_ = promptTmpl.Execute(&buf, view)
	return buf.String()
}

func orNotAvailable(s string) string {
	if s == "" {
		return "Not available"
	}
	return s
}

// apiURL is the chat-completions endpoint. Package-level var for test
// substitution.
var apiURL = "https://api.perplexity.ai/chat/completions"

// Client calls the Perplexity chat-completions API.
type Client struct {
	Config types.AIConfig
	HTTP   *http.Client
}

// NewClient builds a Client with a timeout-bounded HTTP client.
func NewClient(cfg types.AIConfig) *Client {
	return &Client{
		Config: cfg,
		HTTP:   httputil.NewClient(cfg.Timeout),
	}
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a two-message conversation and returns the model's raw
// text. One best-effort attempt per call; the caller decides how to
// degrade on failure.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.Config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.Config.Temperature,
		MaxTokens:   c.Config.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Config.APIKey)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling summarization API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", httputil.StatusError(resp)
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("response contains no choices")
	}

	return strings.TrimSpace(cResp.Choices[0].Message.Content), nil
}

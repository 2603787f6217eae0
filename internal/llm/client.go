package llm

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over the extraction capability: given a PDF and
// the company schema, return a JSON document conforming to it, or fail.
type Client interface {
	// ExtractDocument sends the PDF to the model together with the company
	// response schema and returns the raw JSON text of the response.
	ExtractDocument(ctx context.Context, pdf []byte) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// ExtractDocument uploads the PDF via the Files API and runs a
// schema-constrained generation against it. The response MIME type and
// schema force strict JSON output; temperature is pinned by config.
func (c *GeminiClient) ExtractDocument(ctx context.Context, pdf []byte) (string, error) {
	doc, err := c.uploadAndWait(ctx, pdf)
	if err != nil {
		return "", err
	}
	defer func() {
		// Uploaded files expire on their own; deleting eagerly just keeps
		// the file list clean. Failure here is not worth surfacing.
		_ = c.client.DeleteFile(ctx, doc.Name)
	}()

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = CompanyBaseSchema()

	resp, err := model.GenerateContent(ctx,
		genai.Text(ExtractionInstruction),
		genai.FileData{MIMEType: doc.MIMEType, URI: doc.URI},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// uploadAndWait pushes the document to the Files API and polls until it is
// processed and usable as generation input.
func (c *GeminiClient) uploadAndWait(ctx context.Context, pdf []byte) (*genai.File, error) {
	doc, err := c.client.UploadFile(ctx, "", bytes.NewReader(pdf), &genai.UploadFileOptions{
		MIMEType: "application/pdf",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	for doc.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
		doc, err = c.client.GetFile(ctx, doc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to poll uploaded document: %w", err)
		}
	}

	if doc.State != genai.FileStateActive {
		return nil, fmt.Errorf("uploaded document is not usable (state %v)", doc.State)
	}

	return doc, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models occasionally wrap JSON in ```json ... ``` blocks even when the
// response MIME type forbids it.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

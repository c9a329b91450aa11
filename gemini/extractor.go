// Package gemini implements poster.ExtractionClient on the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/poster"
	"google.golang.org/genai"
)

// DefaultModel is the model used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Ensure Extractor implements poster.ExtractionClient at compile time.
var _ poster.ExtractionClient = (*Extractor)(nil)

// Generator is the subset of *genai.Models used by Extractor.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds the extraction settings read once at startup.
type Config struct {
	APIKey string
	Model  string
}

// Extractor implements poster.ExtractionClient using Google Gemini.
type Extractor struct {
	models Generator
	config Config
}

// NewExtractor creates a new Extractor. models is usually client.Models.
func NewExtractor(models Generator, config Config) *Extractor {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	return &Extractor{models: models, config: config}
}

// Extract sends a single extraction request and returns the model's raw text.
func (e *Extractor) Extract(ctx context.Context, url, content string) (string, error) {
	if e.config.APIKey == "" || e.models == nil {
		return "", poster.Errorf(poster.EMISSINGCREDENTIAL, "no Gemini API key configured")
	}

	result, err := e.models.GenerateContent(ctx, e.config.Model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: BuildUserPrompt(url, content)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", classifyError(err)
	}
	if result == nil {
		return "", poster.Errorf(poster.EEMPTYRESPONSE, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", poster.Errorf(poster.EEMPTYRESPONSE, "gemini returned no text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: Instructions}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   BuildSchema(),
	}
}

// BuildSchema returns the response schema: an object with every Record
// field required.
func BuildSchema() *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(poster.RecordFields)),
	}
	for _, f := range poster.RecordFields {
		switch f.Kind {
		case poster.FieldStringArray:
			schema.Properties[f.Name] = &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			}
		default:
			schema.Properties[f.Name] = &genai.Schema{Type: genai.TypeString}
		}
		schema.Required = append(schema.Required, f.Name)
		schema.PropertyOrdering = append(schema.PropertyOrdering, f.Name)
	}
	return schema
}

// BuildUserPrompt builds the user prompt carrying the URL and page content.
func BuildUserPrompt(url, content string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<url>%s</url>\n", url)
	if content == "" {
		sb.WriteString("<content status=\"unavailable\"></content>\n\n")
		sb.WriteString(DegradedDirective)
		return sb.String()
	}
	fmt.Fprintf(&sb, "<content>\n%s\n</content>\n", content)
	return sb.String()
}

// classifyError maps a Gemini client error onto an extraction error code.
func classifyError(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	}

	msg := err.Error()
	switch {
	case code == 429 || strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return poster.Errorf(poster.ERATELIMITED, "gemini rate limit exceeded: %s", msg)
	case code == 404:
		return poster.Errorf(poster.EUNAVAILABLE, "gemini model unavailable: %s", msg)
	}
	return poster.Errorf(poster.ETRANSPORT, "gemini request failed: %s", msg)
}

// Package assist asks a Gemini model to draft the rules of documents no extractor recognizes.
//
// The suggestion is only printed for a developer to review, it is never compiled or applied.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/pdfimport/parser"
	"google.golang.org/genai"
)

// MaxLines is the number of document lines sent to the model.
const MaxLines = 120

// Models is the part of the genai client used by the Assistant.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant drafts rule sets.
type Assistant struct {
	models Models
	model  string
	config *genai.GenerateContentConfig
}

// New creates an Assistant using the Gemini API.
func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, errors.New("missing api key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return NewWithModels(client.Models, model), nil
}

// NewWithModels creates an Assistant on top of models.
func NewWithModels(models Models, model string) *Assistant {
	return &Assistant{
		models: models,
		model:  model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You write extraction rules for bank documents converted from PDF to text.
A rule set has document type markers, blocks starting on a whole line pattern, and ordered
sections of Go regular expressions with named groups.
Answer in markdown: the bank name, the document types, then for each block the patterns and the
named groups they capture (date, time, amount, currency, shares, name, isin, wkn, fee, tax).
`}}},
		},
	}
}

// Prompt returns the question asked about the document.
func Prompt(name string, lines []string, extractors []*parser.Extractor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The document %q was not recognized.\n\n", name)

	if len(extractors) > 0 {
		b.WriteString("Known vendors, for the style of the rules:\n")
		for _, e := range extractors {
			fmt.Fprintf(&b, "- %s (identified by %s)\n", e.Name(), strings.Join(e.Identifiers(), ", "))
			for _, d := range e.DocumentTypes() {
				for _, block := range d.Blocks() {
					fmt.Fprintf(&b, "  - %s: block `%s`\n", d.Name(), block)
				}
			}
		}
		b.WriteString("\n")
	}

	excerpt := lines
	if len(excerpt) > MaxLines {
		excerpt = excerpt[:MaxLines]
	}
	fmt.Fprintf(&b, "Document (%d of %d lines):\n```\n", len(excerpt), len(lines))
	for _, l := range excerpt {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}

// Suggest asks the model for the rules of an unrecognized document.
func (a *Assistant) Suggest(ctx context.Context, name string, lines []string, extractors []*parser.Extractor) (string, error) {
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(Prompt(name, lines, extractors)), a.config)
	if err != nil {
		return "", fmt.Errorf("suggest rules for %q: %w", name, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no suggestion for %q", name)
	}
	return resp.Text(), nil
}

package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
	"google.golang.org/genai"
)

type fakeModels struct {
	prompt string
	answer string
	err    error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.prompt = contents[0].Parts[0].Text
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: f.answer}}}}},
	}, nil
}

func testExtractor() *parser.Extractor {
	return parser.NewExtractor("Test Bank", "Test Bank AG").
		AddDocumentType(parser.NewDocumentType("Abrechnung", "Abrechnung").
			AddBlock(parser.NewBlock(`Order \d+`).Set(parser.NewTemplate(parser.Kind(pdfimport.KindBuy)))))
}

func TestPrompt(t *testing.T) {
	var lines []string
	for i := 0; i < MaxLines+10; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	got := Prompt("other.txt", lines, []*parser.Extractor{testExtractor()})

	for _, want := range []string{
		`"other.txt"`,
		"Test Bank (identified by Test Bank AG)",
		"Abrechnung: block `Order \\d+`",
		fmt.Sprintf("(%d of %d lines)", MaxLines, MaxLines+10),
		fmt.Sprintf("line %d\n", MaxLines-1),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, fmt.Sprintf("line %d\n", MaxLines)) {
		t.Errorf("Prompt() contains lines past %d", MaxLines)
	}
}

func TestSuggest(t *testing.T) {
	models := &fakeModels{answer: "# Commerzbank"}
	a := NewWithModels(models, "test-model")

	got, err := a.Suggest(context.Background(), "other.txt", []string{"Commerzbank AG"}, nil)
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if got != "# Commerzbank" {
		t.Errorf("Suggest() = %q, want %q", got, "# Commerzbank")
	}
	if !strings.Contains(models.prompt, "Commerzbank AG") {
		t.Errorf("the prompt does not contain the document: %q", models.prompt)
	}
}

func TestSuggest_Error(t *testing.T) {
	quota := errors.New("quota exceeded")
	a := NewWithModels(&fakeModels{err: quota}, "test-model")
	if _, err := a.Suggest(context.Background(), "other.txt", nil, nil); !errors.Is(err, quota) {
		t.Errorf("Suggest() error = %v, want %v", err, quota)
	}
}

func TestNew_MissingKey(t *testing.T) {
	if _, err := New(context.Background(), "", "test-model"); err == nil {
		t.Error("New() without api key succeeded, want error")
	}
}

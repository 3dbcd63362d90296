package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"smartrecruit/recruitflow/internal/models"
)

// CVParserService turns an uploaded CV file into structured candidate
// fields: plain-text extraction first (PDF or DOCX), then an LLM pass that
// fills the extraction schema.
type CVParserService interface {
	ExtractText(filePath string) (string, error)
	ParseCV(ctx context.Context, filePath string) (*models.CVInfo, string, error)
}

type cvParserService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewCVParserService(gemini GeminiService, maxRetries int) CVParserService {
	return &cvParserService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// ExtractText implements CVParserService.
func (p *cvParserService) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDFText(filePath)
	case ".docx":
		return extractDocxText(filePath)
	default:
		return "", fmt.Errorf("unsupported CV format: %s (PDF or DOCX only)", filepath.Ext(filePath))
	}
}

// ParseCV implements CVParserService. Returns the structured fields and the
// raw extracted text.
func (p *cvParserService) ParseCV(ctx context.Context, filePath string) (*models.CVInfo, string, error) {
	text, err := p.ExtractText(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract CV text: %w", err)
	}

	text = CleanText(strings.ReplaceAll(text, "\x00", ""))

	prompt := p.promptBuilder.BuildCVExtractionPrompt(text)

	response, err := p.gemini.GenerateTextWithRetry(ctx, prompt, 0.0, p.maxRetries)
	if err != nil {
		log.Printf("❌ CV field extraction failed: %v", err)
		return nil, "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var info models.CVInfo
	if err := decodeJSONResponse(response, &info); err != nil {
		log.Printf("❌ Failed to parse CV extraction response: %v", err)
		return nil, "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return &info, text, nil
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func extractDocxText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	text := doc.Editable().GetContent()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

// CleanText normalizes extracted CV text: trims lines and drops empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

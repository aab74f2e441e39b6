package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"roastpanda/proposal-roaster/internal/models"
)

// RoasterService runs the whole critique pipeline for one upload:
// validate, spool, extract, build prompts, invoke the model, parse and
// validate the result. Strictly sequential; any failure aborts the request.
type RoasterService interface {
	RoastProposal(ctx context.Context, file *multipart.FileHeader) (*models.RoastResult, error)
}

type roasterService struct {
	storage       StorageService
	pdfParser     PDFParserService
	gemini        GeminiService
	promptBuilder *PromptBuilder
	validator     *ResponseValidator
	maxFileSize   int64
	minTextLength int
	maxTextLength int
}

func NewRoasterService(
	storage StorageService,
	pdfParser PDFParserService,
	gemini GeminiService,
	promptBuilder *PromptBuilder,
	validator *ResponseValidator,
	maxFileSize int64,
	minTextLength int,
	maxTextLength int,
) RoasterService {
	return &roasterService{
		storage:       storage,
		pdfParser:     pdfParser,
		gemini:        gemini,
		promptBuilder: promptBuilder,
		validator:     validator,
		maxFileSize:   maxFileSize,
		minTextLength: minTextLength,
		maxTextLength: maxTextLength,
	}
}

func (r *roasterService) RoastProposal(ctx context.Context, file *multipart.FileHeader) (*models.RoastResult, error) {
	// Server-side validation is authoritative; the client-side check is
	// only a convenience and can be bypassed.
	if err := r.validateUpload(file); err != nil {
		return nil, err
	}

	spoolPath, err := r.storage.SaveTemp(file)
	if err != nil {
		return nil, newPipelineError(ErrUnexpectedFailure,
			fmt.Sprintf("API Error: %v", err), err)
	}
	defer func() {
		if err := r.storage.Remove(spoolPath); err != nil {
			log.Printf("⚠️  Failed to remove spool file %s: %v\n", spoolPath, err)
		}
	}()

	proposalText, err := r.pdfParser.ExtractText(spoolPath)
	if err != nil {
		return nil, newPipelineError(ErrUnreadableDocument,
			"Failed to parse PDF. Please ensure it contains readable text.", err)
	}

	// Empty-but-successful extraction is a real case (scanned PDFs), so
	// the length gate is distinct from the extraction error above.
	if len(proposalText) < r.minTextLength {
		return nil, newPipelineError(ErrInsufficientText,
			"Could not extract enough text from this PDF. It may be image-based or corrupted.", nil)
	}

	// Truncation is a prefix cut, never a sample.
	if len(proposalText) > r.maxTextLength {
		proposalText = proposalText[:r.maxTextLength]
	}

	systemPrompt := r.promptBuilder.SystemPrompt()
	userPrompt := r.promptBuilder.BuildUserPrompt(proposalText)

	log.Printf("🤖 Roasting proposal %s (%d characters)\n", file.Filename, len(proposalText))

	response, err := r.gemini.GenerateRoast(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, newPipelineError(ErrModelInvocationFailure,
			fmt.Sprintf("API Error: %v", err), err)
	}

	result, err := r.parseRoastResponse(response)
	if err != nil {
		log.Printf("❌ Failed to parse roast response: %v\nRaw output: %s\n", err, response)
		return nil, newPipelineError(ErrResponseParseFailure,
			"Failed to parse AI response. Please try again.", err)
	}

	return result, nil
}

func (r *roasterService) validateUpload(file *multipart.FileHeader) error {
	if file == nil {
		return newPipelineError(ErrInvalidUpload, "No file provided", nil)
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return newPipelineError(ErrInvalidUpload, "Only PDF files are supported", nil)
	}

	if file.Size > r.maxFileSize {
		return newPipelineError(ErrInvalidUpload,
			fmt.Sprintf("File too large. Max size: %d bytes", r.maxFileSize), nil)
	}

	return nil
}

func (r *roasterService) parseRoastResponse(response string) (*models.RoastResult, error) {
	jsonStr := extractJSON(response)

	var result models.RoastResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if err := r.validator.Validate([]byte(jsonStr)); err != nil {
		return nil, err
	}

	return &result, nil
}

// extractJSON strips markdown code fences the model may wrap around its
// output, then slices to the outermost JSON object. Fence-free input passes
// through unchanged, so the operation is idempotent.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

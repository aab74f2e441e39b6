package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roastpanda/proposal-roaster/internal/models"
	"roastpanda/proposal-roaster/internal/services"
)

type fakeRoaster struct {
	result *models.RoastResult
	err    error
	calls  int
}

func (f *fakeRoaster) RoastProposal(ctx context.Context, file *multipart.FileHeader) (*models.RoastResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestApp(roaster services.RoasterService) *fiber.App {
	app := fiber.New()
	app.Post("/api/roast", NewRoastHandler(roaster).HandleRoast)
	return app
}

func multipartRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/roast", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeResponse(t *testing.T, resp *http.Response) models.ApiResponse {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope models.ApiResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestHandleRoast_Success(t *testing.T) {
	roaster := &fakeRoaster{result: &models.RoastResult{
		OverallScore: 67,
		LetterGrade:  "C+",
		Verdict:      "Buried under jargon",
	}}
	app := newTestApp(roaster)

	resp, err := app.Test(multipartRequest(t, "proposal.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeResponse(t, resp)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, "C+", envelope.Data.LetterGrade)
	assert.Equal(t, float64(67), envelope.Data.OverallScore)
	assert.Empty(t, envelope.Error)
}

func TestHandleRoast_MissingFile(t *testing.T) {
	roaster := &fakeRoaster{}
	app := newTestApp(roaster)

	req := httptest.NewRequest(http.MethodPost, "/api/roast", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	envelope := decodeResponse(t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, "No file provided", envelope.Error)
	assert.Zero(t, roaster.calls)
}

func TestHandleRoast_PipelineErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		kind           services.ErrorKind
		message        string
		expectedStatus int
	}{
		{"invalid upload", services.ErrInvalidUpload, "Only PDF files are supported", 400},
		{"unreadable document", services.ErrUnreadableDocument, "Failed to parse PDF. Please ensure it contains readable text.", 400},
		{"insufficient text", services.ErrInsufficientText, "Could not extract enough text from this PDF. It may be image-based or corrupted.", 400},
		{"model failure", services.ErrModelInvocationFailure, "API Error: connection refused", 500},
		{"parse failure", services.ErrResponseParseFailure, "Failed to parse AI response. Please try again.", 500},
		{"unexpected", services.ErrUnexpectedFailure, "API Error: something broke", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roaster := &fakeRoaster{err: &services.PipelineError{Kind: tt.kind, Message: tt.message}}
			app := newTestApp(roaster)

			resp, err := app.Test(multipartRequest(t, "proposal.pdf", []byte("x")))
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			envelope := decodeResponse(t, resp)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.message, envelope.Error)
			assert.Nil(t, envelope.Data)
		})
	}
}

func TestHandleRoast_UnknownErrorGetsAPIErrorPrefix(t *testing.T) {
	roaster := &fakeRoaster{err: assert.AnError}
	app := newTestApp(roaster)

	resp, err := app.Test(multipartRequest(t, "proposal.pdf", []byte("x")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	envelope := decodeResponse(t, resp)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "API Error:")
}

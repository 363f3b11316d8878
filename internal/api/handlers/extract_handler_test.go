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
	"go.uber.org/zap"

	"github.com/MissMyDearBear/gemini-data-extractor/internal/dto"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/extractor"
)

type fakeExtractor struct {
	result extractor.Result

	lastImage  []byte
	lastPrompt string
}

func (f *fakeExtractor) Extract(_ context.Context, image []byte, prompt string) extractor.Result {
	f.lastImage = image
	f.lastPrompt = prompt
	return f.result
}

func newTestApp(fake *fakeExtractor) *fiber.App {
	h := NewExtractHandler(fake, zap.NewNop())
	app := fiber.New()
	app.Post("/api/v1/extract", h.Extract)
	app.Get("/api/v1/prompt", h.DefaultPrompt)
	return app
}

func multipartRequest(t *testing.T, fileName string, fileData []byte, prompt string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("prompt", prompt))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeExtractResponse(t *testing.T, resp *http.Response) dto.ExtractResponse {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ExtractResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestExtractSuccess(t *testing.T) {
	fake := &fakeExtractor{result: extractor.Result{Text: "## Extraction Result\n| Date |"}}
	app := newTestApp(fake)

	req := multipartRequest(t, "receipt.jpg", []byte("fake-jpeg-bytes"), "List items")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeExtractResponse(t, resp)
	assert.Equal(t, "receipt.jpg", out.FileName)
	assert.Equal(t, int64(len("fake-jpeg-bytes")), out.FileSize)
	assert.Equal(t, "image/jpeg", out.MimeType)
	assert.Equal(t, "## Extraction Result\n| Date |", out.Result)
	assert.False(t, out.Failed)
	assert.False(t, out.Cached)
	assert.NotEmpty(t, out.ID)

	assert.Equal(t, []byte("fake-jpeg-bytes"), fake.lastImage)
	assert.Equal(t, "List items", fake.lastPrompt)
}

func TestExtractMissingFile(t *testing.T) {
	app := newTestApp(&fakeExtractor{})

	req := multipartRequest(t, "", nil, "List items")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	app := newTestApp(&fakeExtractor{})

	req := multipartRequest(t, "invoice.pdf", []byte("%PDF-1.4"), "List items")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEmptyPromptUsesDefault(t *testing.T) {
	fake := &fakeExtractor{result: extractor.Result{Text: "ok"}}
	app := newTestApp(fake)

	req := multipartRequest(t, "receipt.png", []byte("bytes"), "   ")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, extractor.DefaultPrompt, fake.lastPrompt)
}

func TestExtractFailureIsDataNotStatus(t *testing.T) {
	fake := &fakeExtractor{result: extractor.Result{
		Text:   "API call failed, error message: timeout",
		Failed: true,
	}}
	app := newTestApp(fake)

	req := multipartRequest(t, "receipt.jpeg", []byte("bytes"), "List items")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeExtractResponse(t, resp)
	assert.True(t, out.Failed)
	assert.Equal(t, "API call failed, error message: timeout", out.Result)
}

func TestDefaultPromptEndpoint(t *testing.T) {
	app := newTestApp(&fakeExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prompt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var out dto.PromptResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, extractor.DefaultPrompt, out.Prompt)
}

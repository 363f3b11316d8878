package handlers

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MissMyDearBear/gemini-data-extractor/internal/dto"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/extractor"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/gemini"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/models"
)

// Extractor is the service seam so handler tests can run without the
// provider client.
type Extractor interface {
	Extract(ctx context.Context, image []byte, prompt string) extractor.Result
}

type ExtractHandler struct {
	extractor Extractor
	logger    *zap.Logger
}

func NewExtractHandler(extractor Extractor, logger *zap.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		logger:    logger,
	}
}

// allowedExtensions mirrors the upload page's file-type filter. Content is
// not inspected here; malformed bytes are rejected by the provider.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Extract godoc
// @Summary Extract data from an invoice or receipt image
// @Description Forward the uploaded image and prompt to the hosted model and return its text output
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice or receipt image (JPG/PNG)"
// @Param prompt formData string false "Extraction prompt; defaults to the standard four-field prompt"
// @Success 200 {object} dto.ExtractResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/extract [post]
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type, expected JPG, JPEG or PNG",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	prompt := c.FormValue("prompt")
	if strings.TrimSpace(prompt) == "" {
		prompt = extractor.DefaultPrompt
	}

	start := time.Now()
	result := h.extractor.Extract(c.Context(), image, prompt)

	record := models.Extraction{
		ID:        uuid.New(),
		FileName:  fileHeader.Filename,
		FileSize:  fileHeader.Size,
		MimeType:  gemini.DetectMIMEType(image),
		Prompt:    prompt,
		Result:    result.Text,
		Failed:    result.Failed,
		CacheHit:  result.Cached,
		CreatedAt: time.Now().UTC(),
	}

	h.logger.Info("extraction completed",
		zap.String("id", record.ID.String()),
		zap.String("file_name", record.FileName),
		zap.Int64("file_size", record.FileSize),
		zap.String("mime_type", record.MimeType),
		zap.Bool("cached", record.CacheHit),
		zap.Bool("failed", record.Failed),
		zap.Duration("duration", time.Since(start)),
	)

	return c.JSON(dto.ExtractResponse{
		ID:        record.ID.String(),
		FileName:  record.FileName,
		FileSize:  record.FileSize,
		MimeType:  record.MimeType,
		Cached:    record.CacheHit,
		Failed:    record.Failed,
		Result:    record.Result,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}

// DefaultPrompt godoc
// @Summary Get the default extraction prompt
// @Tags extraction
// @Produce json
// @Success 200 {object} dto.PromptResponse
// @Router /api/v1/prompt [get]
func (h *ExtractHandler) DefaultPrompt(c *fiber.Ctx) error {
	return c.JSON(dto.PromptResponse{Prompt: extractor.DefaultPrompt})
}

package gemini

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

// FallbackMIMEType labels uploads whose bytes do not sniff as an image.
// The original tool labeled everything image/jpeg; keeping it as the
// fallback preserves pass-through behavior for malformed uploads, which
// are rejected downstream by the provider rather than here.
const FallbackMIMEType = "image/jpeg"

// DetectMIMEType sniffs the real content type of the uploaded bytes.
func DetectMIMEType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if strings.HasPrefix(mt, "image/") {
		return mt
	}
	return FallbackMIMEType
}

// BuildContents assembles the multimodal request payload: the prompt text
// verbatim, followed by the raw image bytes with their declared MIME type.
// The bytes are not validated or transformed.
func BuildContents(image []byte, prompt string) []*genai.Content {
	return []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: DetectMIMEType(image),
						Data:     image,
					},
				},
			},
		},
	}
}

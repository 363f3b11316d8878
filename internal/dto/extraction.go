package dto

type ExtractResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	MimeType  string `json:"mime_type"`
	Cached    bool   `json:"cached"`
	Failed    bool   `json:"failed"`
	Result    string `json:"result"`
	CreatedAt string `json:"created_at"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

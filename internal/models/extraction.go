package models

import (
	"time"

	"github.com/google/uuid"
)

// Extraction describes one completed extraction request. Records live only
// for the duration of the response; nothing is persisted.
type Extraction struct {
	ID        uuid.UUID
	FileName  string
	FileSize  int64
	MimeType  string
	Prompt    string
	Result    string
	Failed    bool
	CacheHit  bool
	CreatedAt time.Time
}

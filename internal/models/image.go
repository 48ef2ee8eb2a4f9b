package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is the record kept for an uploaded asset. Immutable once created;
// products reference the URL, they do not own the object.
type Image struct {
	ID         uuid.UUID `json:"id" db:"id"`
	URL        string    `json:"url" db:"url"`
	ObjectKey  string    `json:"object_key" db:"object_key"`
	Filename   string    `json:"filename" db:"filename"`
	Size       int64     `json:"size" db:"size"`
	MimeType   string    `json:"mime_type" db:"mime_type"`
	Category   *string   `json:"category" db:"category"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

package media

import "time"

// MaxUploadSize caps uploads at 10MB.
const MaxUploadSize = 10 * 1024 * 1024

// AllowedMimeTypes lists the image types accepted for upload.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// MediaItem is a stored media row.
type MediaItem struct {
	ID           string    `db:"id" json:"id"`
	Filename     string    `db:"filename" json:"filename"`
	OriginalName string    `db:"original_name" json:"original_name"`
	MimeType     string    `db:"mime_type" json:"mime_type"`
	Size         int64     `db:"size" json:"size"`
	URL          string    `db:"url" json:"url"`
	StoragePath  string    `db:"storage_path" json:"storage_path"`
	AltText      *string   `db:"alt_text" json:"alt_text"`
	Caption      *string   `db:"caption" json:"caption"`
	UploadedBy   *string   `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// MediaListItem is one row of the media library list with the uploader's
// display name.
type MediaListItem struct {
	MediaItem
	UploaderName *string `db:"uploader_name" json:"uploader_name"`
}

// MediaFilters narrows the media library list.
type MediaFilters struct {
	Search string
	Type   string
	Page   int
	Limit  int
}

// PaginatedMedia is a windowed list result with an exact total.
type PaginatedMedia struct {
	Data       []MediaListItem `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// UpdateMediaRequest is the payload for metadata edits.
type UpdateMediaRequest struct {
	AltText string `json:"alt_text"`
	Caption string `json:"caption"`
}

// BulkIDsRequest is the payload for bulk delete.
type BulkIDsRequest struct {
	IDs []string `json:"ids"`
}

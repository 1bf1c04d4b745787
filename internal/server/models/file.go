package models

// File describes an uploaded attachment. StoragePath is the key inside the
// configured blob backend (uploads directory or S3); UserID records the
// uploader. Rows are immutable after creation.
type File struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StoragePath string `json:"storage_path"`
	MimeType    string `json:"mime_type"`
	UserID      int64  `json:"user_id"`
}

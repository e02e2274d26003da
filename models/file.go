package models

import (
	"time"
)

// File is a stored upload. The payload lives in the blob column and is
// never serialized into JSON responses.
type File struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Mimetype   string    `json:"mimetype" gorm:"type:varchar(100);not null"`
	Size       int64     `json:"size"`
	Data       []byte    `json:"-" gorm:"type:blob;not null"`
	ArchiveKey string    `json:"-" gorm:"type:varchar(500)"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// FileRecord is the listing shape: file metadata plus the derived
// download/preview URLs built from the request host.
type FileRecord struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Mimetype    string    `json:"mimetype"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
	DownloadURL string    `json:"downloadUrl"`
	PreviewURL  string    `json:"previewUrl"`
}

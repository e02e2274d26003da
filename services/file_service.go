package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"filedepot/models"
	"filedepot/schemas"
)

var ErrFileNotFound = errors.New("file not found")

// metadataColumns is the listing projection: everything but the payload.
var metadataColumns = []string{"id", "name", "mimetype", "size", "uploaded_at"}

type FileService struct {
	db      *gorm.DB
	archive *ArchiveService // nil when archival is disabled
}

func NewFileService(db *gorm.DB, archive *ArchiveService) *FileService {
	return &FileService{db: db, archive: archive}
}

// Upload stores the payload in the blob column. Size is taken from the
// bytes actually stored, so size == len(data) holds at write time.
func (s *FileService) Upload(ctx context.Context, meta *schemas.UploadMeta, data []byte) (*models.File, error) {
	file := models.File{
		Name:     meta.Name,
		Mimetype: meta.Mimetype,
		Size:     int64(len(data)),
		Data:     data,
	}

	if s.archive != nil {
		file.ArchiveKey = s.archive.ObjectKey(file.Name)
	}

	if err := s.db.WithContext(ctx).Create(&file).Error; err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	if s.archive != nil {
		// Best effort: the database row is the source of truth.
		if err := s.archive.Store(ctx, &file); err != nil {
			log.Printf("archive of file %d failed: %v", file.ID, err)
		}
	}

	return &file, nil
}

// List returns file metadata and the total row count. A nil pagination
// means the unpaginated path: every record, newest first.
func (s *FileService) List(ctx context.Context, p *schemas.Pagination) ([]models.File, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.File{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}

	query := s.db.WithContext(ctx).Select(metadataColumns)
	if p != nil {
		query = query.Offset(p.Offset()).Limit(p.Limit).Order(p.OrderClause())
	} else {
		query = query.Order("uploaded_at DESC")
	}

	var files []models.File
	if err := query.Find(&files).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}

	return files, total, nil
}

// Get loads a file including its payload.
func (s *FileService) Get(ctx context.Context, id uint) (*models.File, error) {
	var file models.File
	if err := s.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return &file, nil
}

// Delete removes the row in a single statement; RowsAffected decides
// between success and not-found, so there is no check-then-delete window.
func (s *FileService) Delete(ctx context.Context, id uint) error {
	var archiveKey string
	if s.archive != nil {
		var file models.File
		if err := s.db.WithContext(ctx).Select("id", "archive_key").First(&file, id).Error; err == nil {
			archiveKey = file.ArchiveKey
		}
	}

	result := s.db.WithContext(ctx).Delete(&models.File{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFileNotFound
	}

	if s.archive != nil && archiveKey != "" {
		if err := s.archive.Remove(ctx, archiveKey); err != nil {
			log.Printf("archive removal of file %d failed: %v", id, err)
		}
	}

	return nil
}

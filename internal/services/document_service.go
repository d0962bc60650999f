package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/models"
	"github.com/legalbridge/legalbridge/internal/storage"
)

// MaxUploadBytes is the per-file upload ceiling.
const MaxUploadBytes = 10 * 1024 * 1024

// allowedMimeTypes is the upload allow-list: PDF, JPEG, PNG and Word.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// AllowedMimeType reports whether a content type may be uploaded.
func AllowedMimeType(mime string) bool {
	_, ok := allowedMimeTypes[strings.ToLower(strings.TrimSpace(mime))]
	return ok
}

// ListDocuments returns the document rows for a process, newest first.
func ListDocuments(db *gorm.DB, processID string) ([]models.ProcessDocument, error) {
	var docs []models.ProcessDocument
	err := db.Where("process_id = ?", processID).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument loads one document row, scoped to its owning process.
func GetDocument(db *gorm.DB, processID, documentID string) (*models.ProcessDocument, error) {
	var doc models.ProcessDocument
	err := db.Where("id = ? AND process_id = ?", documentID, processID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return &doc, nil
}

// UploadInput carries a validated upload request.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  string
}

func (in *UploadInput) validate() error {
	if strings.TrimSpace(in.FileName) == "" {
		return fmt.Errorf("%w: file name is required", ErrValidation)
	}
	if in.Size <= 0 {
		return fmt.Errorf("%w: empty file", ErrValidation)
	}
	if in.Size > MaxUploadBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, MaxUploadBytes)
	}
	if !AllowedMimeType(in.ContentType) {
		return fmt.Errorf("%w: file type %q is not allowed", ErrValidation, in.ContentType)
	}
	return nil
}

// UploadDocument stores the blob and inserts the metadata row. The two steps
// are not one transaction; if the insert fails the blob is removed again, and
// a failed compensation surfaces as ErrPartialFailure.
func UploadDocument(ctx context.Context, db *gorm.DB, store storage.BlobStore, logger *slog.Logger, process *models.Process, in *UploadInput) (*models.ProcessDocument, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d_%s%s",
		process.ProcessKey,
		time.Now().UnixMilli(),
		uuid.New().String(),
		strings.ToLower(filepath.Ext(in.FileName)),
	)

	if err := store.Save(ctx, key, in.Body); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := models.ProcessDocument{
		ProcessID:  process.ID,
		Name:       in.FileName,
		FilePath:   key,
		FileType:   in.ContentType,
		FileSize:   in.Size,
		UploadedBy: in.UploadedBy,
	}

	if err := db.Create(&doc).Error; err != nil {
		// Compensate: the blob exists but has no row, so remove it.
		if rmErr := store.Remove(ctx, key); rmErr != nil {
			logger.Error("orphaned blob after failed document insert",
				"key", key, "insert_error", err.Error(), "remove_error", rmErr.Error())
			return nil, fmt.Errorf("%w: stored file could not be rolled back after a failed record insert", ErrPartialFailure)
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return &doc, nil
}

// DeleteDocument removes the blob and then the metadata row. A row-delete
// failure after the blob is gone cannot be compensated and surfaces as
// ErrPartialFailure.
func DeleteDocument(ctx context.Context, db *gorm.DB, store storage.BlobStore, logger *slog.Logger, processID, documentID string) error {
	doc, err := GetDocument(db, processID, documentID)
	if err != nil {
		return err
	}

	if err := store.Remove(ctx, doc.FilePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	if err := db.Delete(doc).Error; err != nil {
		logger.Error("document row survived after blob removal",
			"key", doc.FilePath, "document_id", doc.ID, "error", err.Error())
		return fmt.Errorf("%w: file removed but its record could not be deleted", ErrPartialFailure)
	}

	return nil
}

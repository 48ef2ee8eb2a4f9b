package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"artvault/internal/catalog"
	"artvault/internal/models"
	"artvault/internal/repositories"
)

// MaxImageSize is the upload cap: 10 MiB.
const MaxImageSize = 10 * 1024 * 1024

// allowedImageTypes maps accepted MIME types to the object key extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var (
	ErrUnsupportedImageType = errors.New("file type not supported, use JPEG, PNG, or WebP")
	ErrImageTooLarge        = errors.New("file size too large, maximum size is 10MB")
)

// ImageUpload is a single file handed to the pipeline.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Category    *string
	Reader      io.Reader
}

// UploadResult pairs one batch entry with its outcome. A failed entry never
// affects its neighbors; the caller aggregates per file.
type UploadResult struct {
	Filename string        `json:"filename"`
	Image    *models.Image `json:"image,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type ImageService interface {
	Validate(contentType string, size int64) error
	Upload(ctx context.Context, upload ImageUpload) (*models.Image, error)
	UploadBatch(ctx context.Context, uploads []ImageUpload) []UploadResult
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	List(ctx context.Context, category *string, limit, offset int) ([]*models.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageService struct {
	imageRepo repositories.ImageRepository
	storage   StorageService
	bucket    string
}

func NewImageService(imageRepo repositories.ImageRepository, storage StorageService, bucket string) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
		bucket:    bucket,
	}
}

// Validate enforces the MIME allow-list and size cap. It has no side effects;
// a rejected file is never partially uploaded.
func (s *imageService) Validate(contentType string, size int64) error {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return ErrUnsupportedImageType
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// Upload validates the file, stores the bytes under a category-scoped object
// key, and records the image. Storage failures propagate untouched; there is
// no retry, the caller simply re-invokes Upload.
func (s *imageService) Upload(ctx context.Context, upload ImageUpload) (*models.Image, error) {
	if err := s.Validate(upload.ContentType, upload.Size); err != nil {
		return nil, err
	}

	folder := "uncategorized"
	var category *string
	if upload.Category != nil && *upload.Category != "" {
		slug := catalog.NormalizeSlug(*upload.Category)
		folder = slug
		category = &slug
	}

	id := uuid.New()
	objectName := fmt.Sprintf("%s/%s%s", folder, id.String(), allowedImageTypes[upload.ContentType])

	if err := s.storage.Upload(ctx, s.bucket, objectName, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	image := &models.Image{
		ID:         id,
		URL:        s.storage.PublicURL(s.bucket, objectName),
		ObjectKey:  objectName,
		Filename:   upload.Filename,
		Size:       upload.Size,
		MimeType:   upload.ContentType,
		Category:   category,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		// Keep the store and the records consistent: drop the orphaned object.
		if removeErr := s.storage.Remove(ctx, s.bucket, objectName); removeErr != nil {
			return nil, fmt.Errorf("failed to record image (orphaned object %s): %w", objectName, err)
		}
		return nil, fmt.Errorf("failed to record image: %w", err)
	}

	return image, nil
}

// UploadBatch runs the uploads in parallel. Each entry succeeds or fails on
// its own; one failure does not cancel or corrupt the rest.
func (s *imageService) UploadBatch(ctx context.Context, uploads []ImageUpload) []UploadResult {
	results := make([]UploadResult, len(uploads))

	var wg sync.WaitGroup
	for i, upload := range uploads {
		wg.Add(1)
		go func(i int, upload ImageUpload) {
			defer wg.Done()
			results[i].Filename = upload.Filename
			image, err := s.Upload(ctx, upload)
			if err != nil {
				results[i].Error = err.Error()
				return
			}
			results[i].Image = image
		}(i, upload)
	}
	wg.Wait()

	return results
}

func (s *imageService) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	return s.imageRepo.GetByID(ctx, id)
}

func (s *imageService) List(ctx context.Context, category *string, limit, offset int) ([]*models.Image, error) {
	if category != nil {
		slug := catalog.NormalizeSlug(*category)
		category = &slug
	}
	return s.imageRepo.List(ctx, category, limit, offset)
}

// Delete removes the stored object first, then the record. A missing object
// is not fatal; the record row is authoritative.
func (s *imageService) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, s.bucket, image.ObjectKey); err != nil {
		return fmt.Errorf("failed to remove stored object: %w", err)
	}
	return s.imageRepo.Delete(ctx, id)
}

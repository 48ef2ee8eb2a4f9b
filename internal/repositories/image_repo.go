package repositories

import (
	"context"

	"artvault/internal/models"

	"github.com/google/uuid"
)

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category *string, limit, offset int) ([]*models.Image, error)
}

type imageRepo struct {
	db Database
}

func NewImageRepo(db Database) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (id, url, object_key, filename, size, mime_type, category, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, image.ID, image.URL, image.ObjectKey, image.Filename, image.Size, image.MimeType, image.Category)
	return err
}

func (r *imageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	image := &models.Image{}
	query := `
		SELECT id, url, object_key, filename, size, mime_type, category, uploaded_at
		FROM images
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&image.ID, &image.URL, &image.ObjectKey, &image.Filename, &image.Size, &image.MimeType, &image.Category, &image.UploadedAt)
	if err != nil {
		return nil, err
	}
	return image, nil
}

func (r *imageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM images WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *imageRepo) List(ctx context.Context, category *string, limit, offset int) ([]*models.Image, error) {
	var query string
	var args []any

	if category != nil {
		query = `
			SELECT id, url, object_key, filename, size, mime_type, category, uploaded_at
			FROM images
			WHERE category = $1
			ORDER BY uploaded_at DESC
			LIMIT $2 OFFSET $3
		`
		args = []any{*category, limit, offset}
	} else {
		query = `
			SELECT id, url, object_key, filename, size, mime_type, category, uploaded_at
			FROM images
			ORDER BY uploaded_at DESC
			LIMIT $1 OFFSET $2
		`
		args = []any{limit, offset}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*models.Image
	for rows.Next() {
		image := &models.Image{}
		if err := rows.Scan(&image.ID, &image.URL, &image.ObjectKey, &image.Filename, &image.Size, &image.MimeType, &image.Category, &image.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

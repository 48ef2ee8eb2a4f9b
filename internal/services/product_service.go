package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"artvault/internal/caching"
	"artvault/internal/catalog"
	"artvault/internal/models"
	"artvault/internal/repositories"
)

const productCacheTTL = 15 * time.Minute

var ErrUnknownCategory = errors.New("category must be one of: fine-art, antiques, jewelry, collectibles")

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, update *models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	ListByCategory(ctx context.Context, slug string, limit, offset int) ([]*models.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error)
	WarmCatalogCache(ctx context.Context) error
}

type productService struct {
	productRepo repositories.ProductRepository
	cache       caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cache caching.CacheService) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

// Create validates the piece, normalizes its category to slug form, and
// persists it. Category labels never reach the database unnormalized.
func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if strings.TrimSpace(product.Title) == "" {
		return errors.New("product title is required")
	}
	if product.Price != nil && *product.Price <= 0 {
		return errors.New("price must be positive when set")
	}

	slug := catalog.NormalizeSlug(product.Category)
	if !catalog.IsKnownSlug(slug) {
		return ErrUnknownCategory
	}
	product.Category = slug

	product.ID = uuid.New()
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cache.GetProduct(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		// Cache trouble never fails a read; fall through to the database.
		log.Printf("WARN: product cache read failed for %s: %v", id.String(), err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
		log.Printf("WARN: failed to cache product %s: %v", id.String(), cacheErr)
	}
	return product, nil
}

// Update applies a partial update. The cached copy is dropped, never patched,
// so a failed write cannot leave a stale or half-applied cache entry.
func (s *productService) Update(ctx context.Context, id uuid.UUID, update *models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, errors.New("product title is required")
		}
		product.Title = *update.Title
	}
	if update.Artist != nil {
		product.Artist = update.Artist
	}
	if update.Category != nil {
		slug := catalog.NormalizeSlug(*update.Category)
		if !catalog.IsKnownSlug(slug) {
			return nil, ErrUnknownCategory
		}
		product.Category = slug
	}
	if update.ClearPrice {
		product.Price = nil
	} else if update.Price != nil {
		if *update.Price <= 0 {
			return nil, errors.New("price must be positive when set")
		}
		product.Price = update.Price
	}
	if update.ImageURLs != nil {
		product.ImageURLs = *update.ImageURLs
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Provenance != nil {
		product.Provenance = update.Provenance
	}
	if update.Exhibitions != nil {
		product.Exhibitions = update.Exhibitions
	}
	if update.Literature != nil {
		product.Literature = update.Literature
	}
	if update.Medium != nil {
		product.Medium = update.Medium
	}
	if update.Dimensions != nil {
		product.Dimensions = update.Dimensions
	}
	if update.Condition != nil {
		product.Condition = update.Condition
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if cacheErr := s.cache.DeleteProduct(ctx, id); cacheErr != nil {
		log.Printf("WARN: failed to invalidate cache for product %s: %v", id.String(), cacheErr)
	}
	s.invalidateCatalog(ctx)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if cacheErr := s.cache.DeleteProduct(ctx, id); cacheErr != nil {
		log.Printf("WARN: failed to invalidate cache for product %s: %v", id.String(), cacheErr)
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

// ListByCategory serves the category pages. Unknown slugs yield an empty list
// rather than an error. The first page of each category is cache-aside.
func (s *productService) ListByCategory(ctx context.Context, slug string, limit, offset int) ([]*models.Product, error) {
	slug = catalog.NormalizeSlug(slug)
	if !catalog.IsKnownSlug(slug) {
		return []*models.Product{}, nil
	}

	firstPage := offset == 0
	if firstPage {
		if cached, err := s.cache.GetCategoryProducts(ctx, slug); cached != nil {
			// A category page only ever shows its own slug, whatever the
			// cached entry holds.
			cached = catalog.FilterByCategory(cached, slug)
			if len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		} else if err != nil {
			log.Printf("WARN: catalog cache read failed for %s: %v", slug, err)
		}
	}

	products, err := s.productRepo.ListByCategory(ctx, slug, limit, offset)
	if err != nil {
		return nil, err
	}

	if firstPage {
		if cacheErr := s.cache.SetCategoryProducts(ctx, slug, products, productCacheTTL); cacheErr != nil {
			log.Printf("WARN: failed to cache catalog for %s: %v", slug, cacheErr)
		}
	}
	return products, nil
}

func (s *productService) Search(ctx context.Context, query string, limit, offset int) ([]*models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.List(ctx, limit, offset)
	}
	return s.productRepo.Search(ctx, query, limit, offset)
}

// WarmCatalogCache refreshes the cached first page of every category. Called
// by the background scheduler.
func (s *productService) WarmCatalogCache(ctx context.Context) error {
	var firstErr error
	for _, slug := range catalog.Slugs() {
		products, err := s.productRepo.ListByCategory(ctx, slug, 100, 0)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", slug, err)
			}
			continue
		}
		if err := s.cache.SetCategoryProducts(ctx, slug, products, productCacheTTL); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("warm %s: %w", slug, err)
		}
	}
	return firstErr
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("WARN: failed to invalidate catalog cache: %v", err)
	}
}

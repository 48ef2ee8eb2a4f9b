package catalog

import "artvault/internal/models"

// FilterByCategory returns the stable-ordered subsequence of products whose
// category equals the normalized slug. An unknown slug yields an empty result,
// not an error. Linear scan; catalog sizes here do not justify an index.
func FilterByCategory(products []*models.Product, slug string) []*models.Product {
	slug = NormalizeSlug(slug)
	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == slug {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

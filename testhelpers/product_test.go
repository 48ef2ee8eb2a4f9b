package testhelpers

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artvault/internal/models"
	"artvault/internal/repositories"
)

func TestGalleryRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDB := SetupTestDB(t, "")
	defer testDB.Cleanup()

	productRepo := repositories.NewProductRepo(testDB.Pool)
	orderRepo := repositories.NewOrderRepo(testDB.Pool)

	t.Run("SeededProductIsRetrievable", func(t *testing.T) {
		seeded := SetupTestProduct(t, testDB, "jewelry")

		retrieved, err := productRepo.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.Title, retrieved.Title)
		assert.Equal(t, "jewelry", retrieved.Category)
		require.NotNil(t, retrieved.Price)
		assert.Equal(t, *seeded.Price, *retrieved.Price)

		// Non-existent id errors
		_, err = productRepo.GetByID(context.Background(), uuid.New())
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "antiques")

		product.Title = "Regilded Mirror"
		product.Price = nil // switch to price-on-request
		err := productRepo.Update(context.Background(), product)
		require.NoError(t, err)

		updated, err := productRepo.GetByID(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Regilded Mirror", updated.Title)
		assert.Nil(t, updated.Price)
	})

	t.Run("ListByCategory", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "collectibles")

		products, err := productRepo.ListByCategory(context.Background(), "collectibles", 50, 0)
		require.NoError(t, err)
		assert.True(t, len(products) > 0)
		found := false
		for _, p := range products {
			assert.Equal(t, "collectibles", p.Category)
			if p.ID == product.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("Search", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "fine-art")

		results, err := productRepo.Search(context.Background(), "Test Piece", 50, 0)
		require.NoError(t, err)
		found := false
		for _, p := range results {
			if p.ID == product.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("Delete", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "jewelry")

		err := productRepo.Delete(context.Background(), product.ID)
		require.NoError(t, err)

		_, err = productRepo.GetByID(context.Background(), product.ID)
		assert.Error(t, err)
	})

	t.Run("SeededOrderIsRetrievable", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "fine-art")
		seeded := SetupTestOrder(t, testDB, product)

		retrieved, err := orderRepo.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPendingPayment, retrieved.Status)
		assert.Equal(t, seeded.Total, retrieved.Total)
		require.Len(t, retrieved.Items, 1)
		assert.Equal(t, product.ID, retrieved.Items[0].ProductID)
	})

	t.Run("UpdateOrderStatus", func(t *testing.T) {
		product := SetupTestProduct(t, testDB, "antiques")
		order := SetupTestOrder(t, testDB, product)

		err := orderRepo.UpdateStatus(context.Background(), order.ID, models.OrderStatusPaid)
		require.NoError(t, err)

		updated, err := orderRepo.GetByID(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaid, updated.Status)
	})
}

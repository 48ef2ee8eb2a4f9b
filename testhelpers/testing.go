package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"artvault/internal/models"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for testing
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			connString = "host=localhost port=5432 user=postgres password=postgres dbname=artvault_test sslmode=disable"
		}
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SetupTestProduct inserts a gallery piece for testing and returns it.
func SetupTestProduct(t *testing.T, db *TestDB, category string) *models.Product {
	t.Helper()

	price := 1200.0
	artist := "Test Artist"
	product := &models.Product{
		ID:          uuid.New(),
		Title:       "Test Piece",
		Artist:      &artist,
		Category:    category,
		Price:       &price,
		ImageURLs:   []string{"https://media.example/test.jpg"},
		Description: "Test piece description",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	query := `
		INSERT INTO products (id, title, artist, category, price, image_urls, description, provenance, exhibitions, literature, medium, dimensions, condition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		product.ID, product.Title, product.Artist, product.Category, product.Price,
		product.ImageURLs, product.Description, product.Provenance, product.Exhibitions,
		product.Literature, product.Medium, product.Dimensions, product.Condition,
		product.CreatedAt, product.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	return product
}

// SetupTestOrder inserts a pending-payment order with one line for testing.
func SetupTestOrder(t *testing.T, db *TestDB, product *models.Product) *models.Order {
	t.Helper()

	unitPrice := 0.0
	if product.Price != nil {
		unitPrice = *product.Price
	}
	subtotal := unitPrice
	insurance := subtotal * 0.02

	order := &models.Order{
		ID:            uuid.New(),
		CustomerName:  "Test Customer",
		CustomerEmail: "customer@example.com",
		Status:        models.OrderStatusPendingPayment,
		Subtotal:      subtotal,
		Insurance:     insurance,
		Shipping:      0,
		Total:         subtotal + insurance,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	orderQuery := `
		INSERT INTO orders (id, customer_name, customer_email, notes, status, subtotal, insurance, shipping, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := db.Pool.Exec(context.Background(), orderQuery,
		order.ID, order.CustomerName, order.CustomerEmail, order.Notes, order.Status,
		order.Subtotal, order.Insurance, order.Shipping, order.Total,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}

	item := &models.OrderItem{
		ID:        uuid.New(),
		OrderID:   order.ID,
		ProductID: product.ID,
		Title:     product.Title,
		Category:  product.Category,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, title, image_url, category, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = db.Pool.Exec(context.Background(), itemQuery,
		item.ID, item.OrderID, item.ProductID, item.Title, item.ImageURL,
		item.Category, item.UnitPrice, item.Quantity)
	if err != nil {
		t.Fatalf("Failed to create test order item: %v", err)
	}
	order.Items = append(order.Items, item)

	return order
}

package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"artvault/internal/models"
)

type ProductRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      ProductRepository
	productID uuid.UUID
	context   context.Context
}

func (suite *ProductRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewProductRepo(mock)
	suite.productID = uuid.New()
	suite.context = context.Background()
}

func (suite *ProductRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

var productRowColumns = []string{
	"id", "title", "artist", "category", "price", "image_urls", "description",
	"provenance", "exhibitions", "literature", "medium", "dimensions", "condition",
	"created_at", "updated_at",
}

func (suite *ProductRepoTestSuite) productRow(id uuid.UUID, title, category string, price *float64) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(productRowColumns).
		AddRow(id, title, stringPtr("Jane Painter"), category, price, []string{"https://media.example/a.jpg"},
			"A fine piece", nil, nil, nil, nil, nil, nil, now, now)
}

func (suite *ProductRepoTestSuite) TestCreate_Success() {
	price := 1200.0
	product := &models.Product{
		ID:          suite.productID,
		Title:       "Gilded Mirror",
		Artist:      stringPtr("Jane Painter"),
		Category:    "antiques",
		Price:       &price,
		ImageURLs:   []string{"https://media.example/a.jpg"},
		Description: "A fine piece",
	}

	suite.mock.ExpectExec(`
			INSERT INTO products \(id, title, artist, category, price, image_urls, description, provenance, exhibitions, literature, medium, dimensions, condition, created_at, updated_at\)
			VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9, \$10, \$11, \$12, \$13, NOW\(\), NOW\(\)\)
		`).WithArgs(product.ID, product.Title, product.Artist, product.Category, product.Price, product.ImageURLs, product.Description, product.Provenance, product.Exhibitions, product.Literature, product.Medium, product.Dimensions, product.Condition).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, product)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestCreate_DatabaseError() {
	product := &models.Product{
		ID:       suite.productID,
		Title:    "Gilded Mirror",
		Category: "antiques",
	}

	suite.mock.ExpectExec(`INSERT INTO products`).
		WithArgs(product.ID, product.Title, product.Artist, product.Category, product.Price, product.ImageURLs, product.Description, product.Provenance, product.Exhibitions, product.Literature, product.Medium, product.Dimensions, product.Condition).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Create(suite.context, product)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *ProductRepoTestSuite) TestGetByID_Success() {
	price := 1200.0

	suite.mock.ExpectQuery(`
			SELECT id, title, artist, category, price, image_urls, description, provenance, exhibitions, literature, medium, dimensions, condition, created_at, updated_at
			FROM products
			WHERE id = \$1
		`).WithArgs(suite.productID).
		WillReturnRows(suite.productRow(suite.productID, "Gilded Mirror", "antiques", &price))

	result, err := suite.repo.GetByID(suite.context, suite.productID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.productID, result.ID)
	assert.Equal(suite.T(), "Gilded Mirror", result.Title)
	assert.Equal(suite.T(), "antiques", result.Category)
	assert.Equal(suite.T(), 1200.0, *result.Price)
}

func (suite *ProductRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT (.+) FROM products`).
		WithArgs(suite.productID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.context, suite.productID)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), result)
}

func (suite *ProductRepoTestSuite) TestGetByID_PriceOnRequest() {
	suite.mock.ExpectQuery(`SELECT (.+) FROM products`).
		WithArgs(suite.productID).
		WillReturnRows(suite.productRow(suite.productID, "Inquire Only", "fine-art", nil))

	result, err := suite.repo.GetByID(suite.context, suite.productID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.Price)
}

func (suite *ProductRepoTestSuite) TestUpdate_Success() {
	price := 950.0
	product := &models.Product{
		ID:       suite.productID,
		Title:    "Gilded Mirror",
		Category: "antiques",
		Price:    &price,
	}

	suite.mock.ExpectExec(`
			UPDATE products
			SET title = \$1, artist = \$2, category = \$3, price = \$4, image_urls = \$5, description = \$6, provenance = \$7, exhibitions = \$8, literature = \$9, medium = \$10, dimensions = \$11, condition = \$12, updated_at = NOW\(\)
			WHERE id = \$13
		`).WithArgs(product.Title, product.Artist, product.Category, product.Price, product.ImageURLs, product.Description, product.Provenance, product.Exhibitions, product.Literature, product.Medium, product.Dimensions, product.Condition, product.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, product)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(suite.productID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.productID)
	assert.NoError(suite.T(), err)
}

func (suite *ProductRepoTestSuite) TestList_Success() {
	price := 100.0
	rows := pgxmock.NewRows(productRowColumns)
	now := time.Now()
	rows.AddRow(uuid.New(), "Piece1", nil, "jewelry", &price, []string(nil), "", nil, nil, nil, nil, nil, nil, now, now)
	rows.AddRow(uuid.New(), "Piece2", nil, "antiques", &price, []string(nil), "", nil, nil, nil, nil, nil, nil, now, now)

	suite.mock.ExpectQuery(`
			SELECT (.+)
			FROM products
			ORDER BY created_at DESC
			LIMIT \$1 OFFSET \$2
		`).WithArgs(10, 0).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, 10, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), "Piece1", result[0].Title)
	assert.Equal(suite.T(), "Piece2", result[1].Title)
}

func (suite *ProductRepoTestSuite) TestListByCategory_Success() {
	price := 450.0

	suite.mock.ExpectQuery(`
			SELECT (.+)
			FROM products
			WHERE category = \$1
			ORDER BY created_at DESC
			LIMIT \$2 OFFSET \$3
		`).WithArgs("jewelry", 10, 0).
		WillReturnRows(suite.productRow(suite.productID, "Ring", "jewelry", &price))

	result, err := suite.repo.ListByCategory(suite.context, "jewelry", 10, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
	assert.Equal(suite.T(), "jewelry", result[0].Category)
}

func (suite *ProductRepoTestSuite) TestListByCategory_EmptyResult() {
	suite.mock.ExpectQuery(`
			SELECT (.+)
			FROM products
			WHERE category = \$1
		`).WithArgs("collectibles", 10, 0).
		WillReturnRows(pgxmock.NewRows(productRowColumns))

	result, err := suite.repo.ListByCategory(suite.context, "collectibles", 10, 0)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *ProductRepoTestSuite) TestSearch_WrapsQueryInWildcards() {
	price := 450.0

	suite.mock.ExpectQuery(`
			SELECT (.+)
			FROM products
			WHERE title ILIKE \$1 OR COALESCE\(artist, ''\) ILIKE \$1 OR description ILIKE \$1
		`).WithArgs("%mirror%", 10, 0).
		WillReturnRows(suite.productRow(suite.productID, "Gilded Mirror", "antiques", &price))

	result, err := suite.repo.Search(suite.context, "mirror", 10, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
}

func (suite *ProductRepoTestSuite) TestContextCancellation() {
	cancelledCtx, cancel := context.WithCancel(suite.context)
	cancel()

	suite.mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(suite.productID).
		WillReturnError(context.Canceled)

	err := suite.repo.Delete(cancelledCtx, suite.productID)
	assert.Equal(suite.T(), context.Canceled, err)
}

func stringPtr(s string) *string {
	return &s
}

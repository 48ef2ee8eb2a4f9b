package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"artvault/internal/models"
)

type CartStoreTestSuite struct {
	suite.Suite
	store     *Store
	sessionID string
}

func (suite *CartStoreTestSuite) SetupTest() {
	suite.store = NewStore()
	suite.sessionID = uuid.NewString()
}

func TestCartStoreTestSuite(t *testing.T) {
	suite.Run(t, new(CartStoreTestSuite))
}

func priceOf(v float64) *float64 {
	return &v
}

func testProduct(title string, price float64) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Title:     title,
		Category:  "fine-art",
		Price:     priceOf(price),
		ImageURLs: []string{"https://media.example/" + title + ".jpg"},
	}
}

func (suite *CartStoreTestSuite) TestAddItem_NewLine() {
	p := testProduct("Sunset", 100)
	err := suite.store.AddItem(suite.sessionID, p, 1)
	assert.NoError(suite.T(), err)

	summary := suite.store.Summary(suite.sessionID)
	assert.Len(suite.T(), summary.Items, 1)
	assert.Equal(suite.T(), 1, summary.Items[0].Quantity)
	assert.Equal(suite.T(), 100.0, summary.Items[0].UnitPrice)
}

func (suite *CartStoreTestSuite) TestAddItem_ExistingLineIncrements() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 1))
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 2))

	summary := suite.store.Summary(suite.sessionID)
	assert.Len(suite.T(), summary.Items, 1)
	assert.Equal(suite.T(), 3, summary.Items[0].Quantity)
}

func (suite *CartStoreTestSuite) TestAddItem_PriceOnRequestRejected() {
	p := testProduct("Inquire Only", 0)
	p.Price = nil
	err := suite.store.AddItem(suite.sessionID, p, 1)
	assert.ErrorIs(suite.T(), err, ErrPriceOnRequest)
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

func (suite *CartStoreTestSuite) TestAddItem_NonPositiveQuantity() {
	p := testProduct("Sunset", 100)
	assert.ErrorIs(suite.T(), suite.store.AddItem(suite.sessionID, p, 0), ErrInvalidQuantity)
	assert.ErrorIs(suite.T(), suite.store.AddItem(suite.sessionID, p, -3), ErrInvalidQuantity)
}

func (suite *CartStoreTestSuite) TestSetQuantity_ZeroRemoves() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 2))

	suite.store.SetQuantity(suite.sessionID, p.ID, 0)
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

func (suite *CartStoreTestSuite) TestSetQuantity_NegativeRemoves() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 2))

	suite.store.SetQuantity(suite.sessionID, p.ID, -1)
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

func (suite *CartStoreTestSuite) TestSetQuantity_UnknownProductNoOp() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 2))

	suite.store.SetQuantity(suite.sessionID, uuid.New(), 5)
	summary := suite.store.Summary(suite.sessionID)
	assert.Len(suite.T(), summary.Items, 1)
	assert.Equal(suite.T(), 2, summary.Items[0].Quantity)
}

func (suite *CartStoreTestSuite) TestRemoveItem_AbsentIsNoOp() {
	suite.store.RemoveItem(suite.sessionID, uuid.New())
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

func (suite *CartStoreTestSuite) TestTotals_InsuranceAndFreeShipping() {
	p1 := testProduct("Sunset", 100)
	p2 := testProduct("Vase", 200)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p1, 1))
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p2, 2))

	summary := suite.store.Summary(suite.sessionID)
	assert.Equal(suite.T(), 500.0, summary.Subtotal)
	assert.Equal(suite.T(), 10.0, summary.Insurance)
	assert.Equal(suite.T(), 0.0, summary.Shipping)
	assert.Equal(suite.T(), 510.0, summary.Total)

	// Raising the first line to 3 moves the subtotal to 700 and total to 714.
	suite.store.SetQuantity(suite.sessionID, p1.ID, 3)
	summary = suite.store.Summary(suite.sessionID)
	assert.Equal(suite.T(), 700.0, summary.Subtotal)
	assert.Equal(suite.T(), 714.0, summary.Total)
}

func (suite *CartStoreTestSuite) TestTotals_AlwaysSubtotalTimesInsuranceRate() {
	products := []*models.Product{
		testProduct("A", 37.5),
		testProduct("B", 1250),
		testProduct("C", 9.99),
	}
	quantities := []int{3, 1, 7}
	for i, p := range products {
		assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, quantities[i]))
	}
	suite.store.SetQuantity(suite.sessionID, products[2].ID, 2)

	summary := suite.store.Summary(suite.sessionID)
	expectedSubtotal := 37.5*3 + 1250 + 9.99*2
	assert.InDelta(suite.T(), expectedSubtotal, summary.Subtotal, 1e-9)
	assert.InDelta(suite.T(), expectedSubtotal*1.02, summary.Total, 1e-9)
}

func (suite *CartStoreTestSuite) TestSummary_InsertionOrderPreserved() {
	p1 := testProduct("First", 10)
	p2 := testProduct("Second", 20)
	p3 := testProduct("Third", 30)
	for _, p := range []*models.Product{p1, p2, p3} {
		assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 1))
	}

	summary := suite.store.Summary(suite.sessionID)
	assert.Equal(suite.T(), p1.ID, summary.Items[0].ProductID)
	assert.Equal(suite.T(), p2.ID, summary.Items[1].ProductID)
	assert.Equal(suite.T(), p3.ID, summary.Items[2].ProductID)
}

func (suite *CartStoreTestSuite) TestSessionsAreIsolated() {
	p := testProduct("Sunset", 100)
	otherSession := uuid.NewString()
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 1))

	assert.Empty(suite.T(), suite.store.Summary(otherSession).Items)
	assert.Len(suite.T(), suite.store.Summary(suite.sessionID).Items, 1)
}

func (suite *CartStoreTestSuite) TestSweepIdle() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 1))

	// Move the clock past the idle window and sweep.
	suite.store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	swept := suite.store.SweepIdle(24 * time.Hour)
	assert.Equal(suite.T(), 1, swept)

	suite.store.now = time.Now
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

func (suite *CartStoreTestSuite) TestClear() {
	p := testProduct("Sunset", 100)
	assert.NoError(suite.T(), suite.store.AddItem(suite.sessionID, p, 1))

	suite.store.Clear(suite.sessionID)
	assert.Empty(suite.T(), suite.store.Summary(suite.sessionID).Items)
}

package wishlist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"artvault/internal/models"
)

type WishlistStoreTestSuite struct {
	suite.Suite
	store     *Store
	sessionID string
}

func (suite *WishlistStoreTestSuite) SetupTest() {
	suite.store = NewStore()
	suite.sessionID = uuid.NewString()
}

func TestWishlistStoreTestSuite(t *testing.T) {
	suite.Run(t, new(WishlistStoreTestSuite))
}

func testProduct(title string) *models.Product {
	price := 500.0
	return &models.Product{
		ID:        uuid.New(),
		Title:     title,
		Category:  "jewelry",
		Price:     &price,
		ImageURLs: []string{"https://media.example/" + title + ".jpg"},
	}
}

func (suite *WishlistStoreTestSuite) TestToggle_OnceSaves() {
	p := testProduct("Brooch")
	saved := suite.store.Toggle(suite.sessionID, p)
	assert.True(suite.T(), saved)
	assert.True(suite.T(), suite.store.Has(suite.sessionID, p.ID))

	items := suite.store.List(suite.sessionID)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), p.ID, items[0].ProductID)
}

func (suite *WishlistStoreTestSuite) TestToggle_TwiceRestoresOriginalState() {
	p := testProduct("Brooch")
	assert.True(suite.T(), suite.store.Toggle(suite.sessionID, p))
	assert.False(suite.T(), suite.store.Toggle(suite.sessionID, p))

	assert.False(suite.T(), suite.store.Has(suite.sessionID, p.ID))
	assert.Empty(suite.T(), suite.store.List(suite.sessionID))
}

func (suite *WishlistStoreTestSuite) TestToggle_NoDuplicateEntries() {
	p := testProduct("Brooch")
	suite.store.Toggle(suite.sessionID, p)
	suite.store.Toggle(suite.sessionID, p)
	suite.store.Toggle(suite.sessionID, p)

	items := suite.store.List(suite.sessionID)
	assert.Len(suite.T(), items, 1)
}

func (suite *WishlistStoreTestSuite) TestList_InsertionOrderStable() {
	p1 := testProduct("First")
	p2 := testProduct("Second")
	p3 := testProduct("Third")
	for _, p := range []*models.Product{p1, p2, p3} {
		suite.store.Toggle(suite.sessionID, p)
	}

	// Removing the middle entry keeps the rest in order.
	suite.store.Toggle(suite.sessionID, p2)

	items := suite.store.List(suite.sessionID)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), p1.ID, items[0].ProductID)
	assert.Equal(suite.T(), p3.ID, items[1].ProductID)
}

func (suite *WishlistStoreTestSuite) TestHas_UnknownSessionOrProduct() {
	assert.False(suite.T(), suite.store.Has(uuid.NewString(), uuid.New()))

	p := testProduct("Brooch")
	suite.store.Toggle(suite.sessionID, p)
	assert.False(suite.T(), suite.store.Has(suite.sessionID, uuid.New()))
}

func (suite *WishlistStoreTestSuite) TestSessionsAreIsolated() {
	p := testProduct("Brooch")
	suite.store.Toggle(suite.sessionID, p)

	other := uuid.NewString()
	assert.False(suite.T(), suite.store.Has(other, p.ID))
	assert.Empty(suite.T(), suite.store.List(other))
}

package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hasnaintypes/3legant-platform/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartLine{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku string, price, discount float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:               "Product " + sku,
		SKU:                sku,
		Price:              price,
		DiscountPercentage: discount,
		Stock:              stock,
		Colors:             []string{"red", "black"},
		Sizes:              []string{"S", "M", "L"},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddLine(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-01", 100, 10, 5)

	cart, err := AddLine(db, "user-1", AddLineInput{
		ProductID: product.ID, Quantity: 3, Color: "red", Size: "M",
	})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 100.0, line.Price)
	assert.Equal(t, 90.0, line.FinalPrice)
	assert.Equal(t, 270.0, line.LineTotal)

	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 270.0, cart.Subtotal)
	assert.Equal(t, 270.0, cart.FinalTotal)
}

func TestAddLineMergesSameTuple(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-02", 50, 0, 10)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 2, Color: "red", Size: "M"})
	require.NoError(t, err)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 3, Color: "red", Size: "M"})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 250.0, cart.FinalTotal)
}

func TestAddLineDistinctColorsAreDistinctLines(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-03", 50, 0, 10)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "black", Size: "M"})
	require.NoError(t, err)

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.TotalItems)
}

func TestAddLineInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-04", 50, 0, 2)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 3, Color: "red", Size: "M"})

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
}

func TestAddLineMergeRespectsStockCeiling(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-05", 50, 0, 4)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 3, Color: "red", Size: "M"})
	require.NoError(t, err)

	// 3 already in cart; merging 2 more would exceed the 4 in stock
	_, err = AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 2, Color: "red", Size: "M"})
	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 4, stockErr.Available)
}

func TestAddLineUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	_, err := AddLine(db, "user-1", AddLineInput{ProductID: 999, Quantity: 1, Color: "red", Size: "M"})
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestUpdateLine(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-06", 100, 10, 5)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)

	cart, err = UpdateLine(db, "user-1", cart.Lines[0].ID, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.Equal(t, 360.0, cart.FinalTotal)
}

func TestUpdateLineInvalidQuantity(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-07", 100, 0, 5)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)

	_, err = UpdateLine(db, "user-1", cart.Lines[0].ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestUpdateLineInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-08", 100, 0, 3)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)

	_, err = UpdateLine(db, "user-1", cart.Lines[0].ID, 4)
	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
}

func TestUpdateLinePicksUpPriceChanges(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-09", 100, 0, 10)

	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 2, Color: "red", Size: "M"})
	require.NoError(t, err)
	assert.Equal(t, 200.0, cart.FinalTotal)

	// catalog discount changes; the next mutation re-quotes every line
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("discount_percentage", 25).Error)

	cart, err = UpdateLine(db, "user-1", cart.Lines[0].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cart.Lines[0].FinalPrice)
	assert.Equal(t, 150.0, cart.FinalTotal)
}

func TestRemoveLine(t *testing.T) {
	db := openTestDB(t)
	first := seedProduct(t, db, "TS-10", 100, 0, 5)
	second := seedProduct(t, db, "TS-11", 40, 0, 5)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: first.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)
	cart, err := AddLine(db, "user-1", AddLineInput{ProductID: second.ID, Quantity: 2, Color: "black", Size: "L"})
	require.NoError(t, err)

	cart, err = RemoveLine(db, "user-1", cart.Lines[0].ID)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, second.ID, cart.Lines[0].ProductID)
	assert.Equal(t, 80.0, cart.FinalTotal)
}

func TestRemoveLineNotFound(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-12", 100, 0, 5)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 1, Color: "red", Size: "M"})
	require.NoError(t, err)

	_, err = RemoveLine(db, "user-1", 999)
	assert.ErrorIs(t, err, models.ErrCartLineNotFound)
}

func TestClear(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "TS-13", 100, 0, 5)

	_, err := AddLine(db, "user-1", AddLineInput{ProductID: product.ID, Quantity: 2, Color: "red", Size: "M"})
	require.NoError(t, err)

	cart, err := Clear(db, "user-1")
	require.NoError(t, err)

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.FinalTotal)

	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestClearWithoutCart(t *testing.T) {
	db := openTestDB(t)
	_, err := Clear(db, "user-without-cart")
	assert.ErrorIs(t, err, models.ErrCartNotFound)
}

func TestFetchReturnsEmptyCartForNewUser(t *testing.T) {
	db := openTestDB(t)

	cart, err := Fetch(db, "brand-new-user")
	require.NoError(t, err)

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItems)
}

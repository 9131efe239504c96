package stock

import (
	"sync"
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

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: "Linen Shirt", SKU: "LS-001", Price: 100, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func currentStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.Stock
}

func TestReserve(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, 5)

	require.NoError(t, Reserve(db, product.ID, 3))
	assert.Equal(t, 2, currentStock(t, db, product.ID))

	require.NoError(t, Reserve(db, product.ID, 2))
	assert.Equal(t, 0, currentStock(t, db, product.ID))
}

func TestReserveInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, 2)

	err := Reserve(db, product.ID, 3)

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, product.ID, stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	// no partial effect
	assert.Equal(t, 2, currentStock(t, db, product.ID))
}

func TestReserveUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, Reserve(db, 999, 1), models.ErrProductNotFound)
}

func TestReserveInvalidQuantity(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, 5)

	assert.ErrorIs(t, Reserve(db, product.ID, 0), models.ErrInvalidQuantity)
	assert.Equal(t, 5, currentStock(t, db, product.ID))
}

func TestRelease(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, 0)

	require.NoError(t, Release(db, product.ID, 4))
	assert.Equal(t, 4, currentStock(t, db, product.ID))
}

func TestReleaseUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, Release(db, 999, 1), models.ErrProductNotFound)
}

func TestConcurrentReserveNeverOversells(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, 12)

	const callers = 20
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- Reserve(db, product.ID, 1)
		}()
	}
	wg.Wait()
	close(results)

	succeeded, failed := 0, 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var stockErr *models.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		failed++
	}

	// exactly enough reservations succeed to exhaust stock
	assert.Equal(t, 12, succeeded)
	assert.Equal(t, 8, failed)
	assert.Equal(t, 0, currentStock(t, db, product.ID))
}

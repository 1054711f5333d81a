package postgres

import (
	"context"
	"fmt"
	"testing"

	"haatbazar/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the production schema.
// A single connection serialises transactions the way row locks do on PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedSeller(t *testing.T, db *gorm.DB) *entity.Seller {
	t.Helper()

	seller := &entity.Seller{
		Email:        uuid.NewString() + "@shop.test",
		BusinessName: "Green Grocer",
		Division:     "Dhaka",
		Phone:        "01700000000",
		PasswordHash: "hash",
	}
	require.NoError(t, NewSellerRepository(db).Create(context.Background(), seller))

	return seller
}

func seedBuyer(t *testing.T, db *gorm.DB) *entity.Buyer {
	t.Helper()

	buyer := &entity.Buyer{
		Name:         "Rahim",
		Email:        uuid.NewString() + "@buyer.test",
		Phone:        "01800000000",
		PasswordHash: "hash",
	}
	require.NoError(t, NewBuyerRepository(db).Create(context.Background(), buyer))

	return buyer
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID uuid.UUID, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:         "Rice",
		Category:     "Grain",
		SellerID:     sellerID,
		Unit:         "kg",
		PricePerUnit: decimal.NewFromInt(10),
		Image:        "/uploads/rice.png",
		Stock:        stock,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

package assets

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"roboadvisor/pkg/testhelpers"
)

func TestSQLiteAssetRepository_CreateAndGet(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)
	ctx := context.Background()
	portfolioID := testhelpers.CreateTestPortfolio(t, database)

	created, err := repo.CreateAsset(ctx, Asset{
		PortfolioID:   portfolioID,
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Quantity:      decimal.RequireFromString("10.5"),
		PurchasePrice: decimal.RequireFromString("175.30"),
	})

	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, portfolioID, created.PortfolioID)
	require.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "AAPL", fetched.Symbol)
	require.Equal(t, "10.5", fetched.Quantity.String())
	require.Equal(t, "175.30", fetched.PurchasePrice.String())
}

func TestSQLiteAssetRepository_DecimalPrecisionRoundTrip(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)
	ctx := context.Background()
	portfolioID := testhelpers.CreateTestPortfolio(t, database)

	quantity := decimal.RequireFromString("0.123456789012345678")
	price := decimal.RequireFromString("99999999999999.99")

	created, err := repo.CreateAsset(ctx, Asset{
		PortfolioID:   portfolioID,
		Symbol:        "BTC",
		Name:          "Bitcoin",
		Quantity:      quantity,
		PurchasePrice: price,
	})
	require.NoError(t, err)

	fetched, err := repo.GetAssetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, fetched.Quantity.Equal(quantity))
	require.Equal(t, "0.123456789012345678", fetched.Quantity.String())
	require.Equal(t, "99999999999999.99", fetched.PurchasePrice.String())
}

func TestSQLiteAssetRepository_UpdateAsset(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)
	ctx := context.Background()
	portfolioID := testhelpers.CreateTestPortfolio(t, database)

	created, err := repo.CreateAsset(ctx, Asset{
		PortfolioID:   portfolioID,
		Symbol:        "MSFT",
		Name:          "Microsoft",
		Quantity:      decimal.NewFromInt(5),
		PurchasePrice: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	updated, err := repo.UpdateAsset(ctx, Asset{
		ID:            created.ID,
		Symbol:        "MSFT",
		Name:          "Microsoft Corporation",
		Quantity:      decimal.NewFromInt(8),
		PurchasePrice: decimal.RequireFromString("310.25"),
	})

	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, portfolioID, updated.PortfolioID)
	require.Equal(t, "Microsoft Corporation", updated.Name)
	require.True(t, updated.Quantity.Equal(decimal.NewFromInt(8)))
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestSQLiteAssetRepository_UpdateAsset_NotFound(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)

	_, err := repo.UpdateAsset(context.Background(), Asset{
		ID:            9999,
		Symbol:        "GHST",
		Name:          "Ghost",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: decimal.NewFromInt(1),
	})

	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestSQLiteAssetRepository_ListAssets_Filtered(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)
	ctx := context.Background()

	firstPortfolio := testhelpers.CreateTestPortfolio(t, database)
	secondPortfolio := testhelpers.CreateTestPortfolio(t, database)

	for _, symbol := range []string{"AAPL", "MSFT"} {
		_, err := repo.CreateAsset(ctx, Asset{
			PortfolioID:   firstPortfolio,
			Symbol:        symbol,
			Name:          symbol,
			Quantity:      decimal.NewFromInt(1),
			PurchasePrice: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}
	_, err := repo.CreateAsset(ctx, Asset{
		PortfolioID:   secondPortfolio,
		Symbol:        "GOOG",
		Name:          "Alphabet",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	all, err := repo.ListAssets(ctx, AssetFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	filtered, err := repo.ListAssets(ctx, AssetFilters{PortfolioID: &firstPortfolio})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	require.Equal(t, "AAPL", filtered[0].Symbol)
	require.Equal(t, "MSFT", filtered[1].Symbol)
}

func TestSQLiteAssetRepository_DeleteCascadesFromPortfolio(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)
	ctx := context.Background()
	portfolioID := testhelpers.CreateTestPortfolio(t, database)

	created, err := repo.CreateAsset(ctx, Asset{
		PortfolioID:   portfolioID,
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = database.ExecContext(ctx, "DELETE FROM portfolios WHERE id = ?", portfolioID)
	require.NoError(t, err)

	_, err = repo.GetAssetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestSQLiteAssetRepository_DeleteAsset_NotFound(t *testing.T) {
	database := testhelpers.OpenTestDB(t)
	repo := NewSQLiteAssetRepository(database)

	require.ErrorIs(t, repo.DeleteAsset(context.Background(), 9999), ErrAssetNotFound)
}

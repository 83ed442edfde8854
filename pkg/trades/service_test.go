package trades

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roboadvisor/pkg/assets"
)

type mockTradeRepository struct {
	mock.Mock
}

func (m *mockTradeRepository) CreateTrade(ctx context.Context, input Trade) (Trade, error) {
	args := m.Called(ctx, input)
	trade, _ := args.Get(0).(Trade)
	return trade, args.Error(1)
}

func (m *mockTradeRepository) UpdateTrade(ctx context.Context, input Trade) (Trade, error) {
	args := m.Called(ctx, input)
	trade, _ := args.Get(0).(Trade)
	return trade, args.Error(1)
}

func (m *mockTradeRepository) DeleteTrade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTradeRepository) GetTradeByID(ctx context.Context, id int64) (Trade, error) {
	args := m.Called(ctx, id)
	trade, _ := args.Get(0).(Trade)
	return trade, args.Error(1)
}

func (m *mockTradeRepository) ListTrades(ctx context.Context, filters TradeFilters) ([]Trade, error) {
	args := m.Called(ctx, filters)
	tradesList, _ := args.Get(0).([]Trade)
	return tradesList, args.Error(1)
}

type mockAssetRepository struct {
	mock.Mock
}

func (m *mockAssetRepository) CreateAsset(ctx context.Context, input assets.Asset) (assets.Asset, error) {
	args := m.Called(ctx, input)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockAssetRepository) UpdateAsset(ctx context.Context, input assets.Asset) (assets.Asset, error) {
	args := m.Called(ctx, input)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockAssetRepository) DeleteAsset(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAssetRepository) GetAssetByID(ctx context.Context, id int64) (assets.Asset, error) {
	args := m.Called(ctx, id)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockAssetRepository) ListAssets(ctx context.Context, filters assets.AssetFilters) ([]assets.Asset, error) {
	args := m.Called(ctx, filters)
	assetsList, _ := args.Get(0).([]assets.Asset)
	return assetsList, args.Error(1)
}

func (m *mockAssetRepository) AssetExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestTradeService_CreateTrade_DefaultType(t *testing.T) {
	repo := new(mockTradeRepository)
	assetRepo := new(mockAssetRepository)
	service := NewTradeService(repo, assetRepo)

	assetRepo.On("AssetExists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("CreateTrade", mock.Anything, mock.MatchedBy(func(input Trade) bool {
		return input.TradeType == "BUY" && input.AssetID == 3
	})).Return(Trade{ID: 1, AssetID: 3, TradeType: "BUY"}, nil)

	result, err := service.CreateTrade(context.Background(), Trade{AssetID: 3})

	require.NoError(t, err)
	require.Equal(t, "BUY", result.TradeType)
	repo.AssertExpectations(t)
	assetRepo.AssertExpectations(t)
}

func TestTradeService_CreateTrade_MissingAsset(t *testing.T) {
	repo := new(mockTradeRepository)
	assetRepo := new(mockAssetRepository)
	service := NewTradeService(repo, assetRepo)

	assetRepo.On("AssetExists", mock.Anything, int64(999)).Return(false, nil)

	_, err := service.CreateTrade(context.Background(), Trade{AssetID: 999})

	require.ErrorIs(t, err, assets.ErrAssetNotFound)
	repo.AssertNotCalled(t, "CreateTrade", mock.Anything, mock.Anything)
}

func TestTradeService_UpdateTrade_DefaultType(t *testing.T) {
	repo := new(mockTradeRepository)
	assetRepo := new(mockAssetRepository)
	service := NewTradeService(repo, assetRepo)

	repo.On("UpdateTrade", mock.Anything, mock.MatchedBy(func(input Trade) bool {
		return input.TradeType == "BUY" && input.ID == 10
	})).Return(Trade{ID: 10, TradeType: "BUY"}, nil)

	result, err := service.UpdateTrade(context.Background(), Trade{ID: 10})

	require.NoError(t, err)
	require.Equal(t, "BUY", result.TradeType)
	repo.AssertExpectations(t)
}

func TestTradeService_GetTrade_ErrorPropagation(t *testing.T) {
	repo := new(mockTradeRepository)
	assetRepo := new(mockAssetRepository)
	service := NewTradeService(repo, assetRepo)

	repo.On("GetTradeByID", mock.Anything, int64(99)).Return(Trade{}, ErrTradeNotFound)

	_, err := service.GetTradeByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrTradeNotFound)
	repo.AssertExpectations(t)
}

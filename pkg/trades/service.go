package trades

import (
	"context"

	"roboadvisor/pkg/assets"
)

type TradeService interface {
	CreateTrade(ctx context.Context, input Trade) (Trade, error)
	UpdateTrade(ctx context.Context, input Trade) (Trade, error)
	DeleteTrade(ctx context.Context, id int64) error
	GetTradeByID(ctx context.Context, id int64) (Trade, error)
	ListTrades(ctx context.Context, filters TradeFilters) ([]Trade, error)
}

type tradeService struct {
	repo      TradeRepository
	assetRepo assets.AssetRepository
}

func NewTradeService(repo TradeRepository, assetRepo assets.AssetRepository) TradeService {
	return &tradeService{repo: repo, assetRepo: assetRepo}
}

func (s *tradeService) CreateTrade(ctx context.Context, input Trade) (Trade, error) {
	if input.TradeType == "" {
		input.TradeType = "BUY"
	}

	exists, err := s.assetRepo.AssetExists(ctx, input.AssetID)
	if err != nil {
		return Trade{}, err
	}
	if !exists {
		return Trade{}, assets.ErrAssetNotFound
	}

	return s.repo.CreateTrade(ctx, input)
}

func (s *tradeService) UpdateTrade(ctx context.Context, input Trade) (Trade, error) {
	if input.TradeType == "" {
		input.TradeType = "BUY"
	}
	return s.repo.UpdateTrade(ctx, input)
}

func (s *tradeService) DeleteTrade(ctx context.Context, id int64) error {
	return s.repo.DeleteTrade(ctx, id)
}

func (s *tradeService) GetTradeByID(ctx context.Context, id int64) (Trade, error) {
	return s.repo.GetTradeByID(ctx, id)
}

func (s *tradeService) ListTrades(ctx context.Context, filters TradeFilters) ([]Trade, error) {
	return s.repo.ListTrades(ctx, filters)
}

package assets

import (
	"context"

	"roboadvisor/pkg/portfolios"
)

type AssetService interface {
	CreateAsset(ctx context.Context, input Asset) (Asset, error)
	UpdateAsset(ctx context.Context, input Asset) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	ListAssets(ctx context.Context, filters AssetFilters) ([]Asset, error)
}

type assetService struct {
	repo          AssetRepository
	portfolioRepo portfolios.PortfolioRepository
}

func NewAssetService(repo AssetRepository, portfolioRepo portfolios.PortfolioRepository) AssetService {
	return &assetService{repo: repo, portfolioRepo: portfolioRepo}
}

// CreateAsset rejects assets whose portfolio does not exist before touching
// the assets table, surfacing the referential violation as a portfolio
// not-found error.
func (s *assetService) CreateAsset(ctx context.Context, input Asset) (Asset, error) {
	exists, err := s.portfolioRepo.PortfolioExists(ctx, input.PortfolioID)
	if err != nil {
		return Asset{}, err
	}
	if !exists {
		return Asset{}, portfolios.ErrPortfolioNotFound
	}

	return s.repo.CreateAsset(ctx, input)
}

func (s *assetService) UpdateAsset(ctx context.Context, input Asset) (Asset, error) {
	return s.repo.UpdateAsset(ctx, input)
}

func (s *assetService) DeleteAsset(ctx context.Context, id int64) error {
	return s.repo.DeleteAsset(ctx, id)
}

func (s *assetService) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	return s.repo.GetAssetByID(ctx, id)
}

func (s *assetService) ListAssets(ctx context.Context, filters AssetFilters) ([]Asset, error) {
	return s.repo.ListAssets(ctx, filters)
}

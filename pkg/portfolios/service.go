package portfolios

import "context"

type PortfolioService interface {
	CreatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error)
	UpdatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error)
	DeletePortfolio(ctx context.Context, id int64) error
	GetPortfolioByID(ctx context.Context, id int64) (Portfolio, error)
	ListPortfolios(ctx context.Context) ([]Portfolio, error)
}

type portfolioService struct {
	repo PortfolioRepository
}

func NewPortfolioService(repo PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) CreatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	return s.repo.CreatePortfolio(ctx, input)
}

func (s *portfolioService) UpdatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	return s.repo.UpdatePortfolio(ctx, input)
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, id int64) error {
	return s.repo.DeletePortfolio(ctx, id)
}

func (s *portfolioService) GetPortfolioByID(ctx context.Context, id int64) (Portfolio, error) {
	return s.repo.GetPortfolioByID(ctx, id)
}

func (s *portfolioService) ListPortfolios(ctx context.Context) ([]Portfolio, error) {
	return s.repo.ListPortfolios(ctx)
}

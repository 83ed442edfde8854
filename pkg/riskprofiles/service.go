package riskprofiles

import (
	"context"

	"roboadvisor/pkg/portfolios"
)

type RiskProfileService interface {
	CreateRiskProfile(ctx context.Context, input RiskProfile) (RiskProfile, error)
	GetRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) (RiskProfile, error)
	UpdateRiskProfileByPortfolioID(ctx context.Context, portfolioID int64, riskScore int) (RiskProfile, error)
	DeleteRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) error
}

type riskProfileService struct {
	repo          RiskProfileRepository
	portfolioRepo portfolios.PortfolioRepository
}

func NewRiskProfileService(repo RiskProfileRepository, portfolioRepo portfolios.PortfolioRepository) RiskProfileService {
	return &riskProfileService{repo: repo, portfolioRepo: portfolioRepo}
}

// CreateRiskProfile enforces the one-profile-per-portfolio invariant and the
// portfolio's existence before inserting.
func (s *riskProfileService) CreateRiskProfile(ctx context.Context, input RiskProfile) (RiskProfile, error) {
	exists, err := s.portfolioRepo.PortfolioExists(ctx, input.PortfolioID)
	if err != nil {
		return RiskProfile{}, err
	}
	if !exists {
		return RiskProfile{}, portfolios.ErrPortfolioNotFound
	}

	hasProfile, err := s.repo.RiskProfileExists(ctx, input.PortfolioID)
	if err != nil {
		return RiskProfile{}, err
	}
	if hasProfile {
		return RiskProfile{}, ErrRiskProfileExists
	}

	return s.repo.CreateRiskProfile(ctx, input)
}

func (s *riskProfileService) GetRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) (RiskProfile, error) {
	return s.repo.GetRiskProfileByPortfolioID(ctx, portfolioID)
}

func (s *riskProfileService) UpdateRiskProfileByPortfolioID(ctx context.Context, portfolioID int64, riskScore int) (RiskProfile, error) {
	return s.repo.UpdateRiskProfileByPortfolioID(ctx, portfolioID, riskScore)
}

func (s *riskProfileService) DeleteRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) error {
	return s.repo.DeleteRiskProfileByPortfolioID(ctx, portfolioID)
}

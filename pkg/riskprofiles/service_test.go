package riskprofiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roboadvisor/pkg/portfolios"
)

type mockRiskProfileRepository struct {
	mock.Mock
}

func (m *mockRiskProfileRepository) CreateRiskProfile(ctx context.Context, input RiskProfile) (RiskProfile, error) {
	args := m.Called(ctx, input)
	profile, _ := args.Get(0).(RiskProfile)
	return profile, args.Error(1)
}

func (m *mockRiskProfileRepository) GetRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) (RiskProfile, error) {
	args := m.Called(ctx, portfolioID)
	profile, _ := args.Get(0).(RiskProfile)
	return profile, args.Error(1)
}

func (m *mockRiskProfileRepository) UpdateRiskProfileByPortfolioID(ctx context.Context, portfolioID int64, riskScore int) (RiskProfile, error) {
	args := m.Called(ctx, portfolioID, riskScore)
	profile, _ := args.Get(0).(RiskProfile)
	return profile, args.Error(1)
}

func (m *mockRiskProfileRepository) DeleteRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) error {
	args := m.Called(ctx, portfolioID)
	return args.Error(0)
}

func (m *mockRiskProfileRepository) RiskProfileExists(ctx context.Context, portfolioID int64) (bool, error) {
	args := m.Called(ctx, portfolioID)
	return args.Bool(0), args.Error(1)
}

type mockPortfolioRepository struct {
	mock.Mock
}

func (m *mockPortfolioRepository) CreatePortfolio(ctx context.Context, input portfolios.Portfolio) (portfolios.Portfolio, error) {
	args := m.Called(ctx, input)
	portfolio, _ := args.Get(0).(portfolios.Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioRepository) UpdatePortfolio(ctx context.Context, input portfolios.Portfolio) (portfolios.Portfolio, error) {
	args := m.Called(ctx, input)
	portfolio, _ := args.Get(0).(portfolios.Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioRepository) DeletePortfolio(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPortfolioRepository) GetPortfolioByID(ctx context.Context, id int64) (portfolios.Portfolio, error) {
	args := m.Called(ctx, id)
	portfolio, _ := args.Get(0).(portfolios.Portfolio)
	return portfolio, args.Error(1)
}

func (m *mockPortfolioRepository) ListPortfolios(ctx context.Context) ([]portfolios.Portfolio, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]portfolios.Portfolio)
	return list, args.Error(1)
}

func (m *mockPortfolioRepository) PortfolioExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestRiskProfileService_CreateRiskProfile_Success(t *testing.T) {
	repo := new(mockRiskProfileRepository)
	portfolioRepo := new(mockPortfolioRepository)
	service := NewRiskProfileService(repo, portfolioRepo)

	portfolioRepo.On("PortfolioExists", mock.Anything, int64(7)).Return(true, nil)
	repo.On("RiskProfileExists", mock.Anything, int64(7)).Return(false, nil)
	repo.On("CreateRiskProfile", mock.Anything, mock.MatchedBy(func(input RiskProfile) bool {
		return input.PortfolioID == 7 && input.RiskScore == 4
	})).Return(RiskProfile{ID: 1, PortfolioID: 7, RiskScore: 4}, nil)

	result, err := service.CreateRiskProfile(context.Background(), RiskProfile{PortfolioID: 7, RiskScore: 4})

	require.NoError(t, err)
	require.EqualValues(t, 1, result.ID)
	repo.AssertExpectations(t)
	portfolioRepo.AssertExpectations(t)
}

func TestRiskProfileService_CreateRiskProfile_MissingPortfolio(t *testing.T) {
	repo := new(mockRiskProfileRepository)
	portfolioRepo := new(mockPortfolioRepository)
	service := NewRiskProfileService(repo, portfolioRepo)

	portfolioRepo.On("PortfolioExists", mock.Anything, int64(999)).Return(false, nil)

	_, err := service.CreateRiskProfile(context.Background(), RiskProfile{PortfolioID: 999, RiskScore: 4})

	require.ErrorIs(t, err, portfolios.ErrPortfolioNotFound)
	repo.AssertNotCalled(t, "CreateRiskProfile", mock.Anything, mock.Anything)
}

func TestRiskProfileService_CreateRiskProfile_Duplicate(t *testing.T) {
	repo := new(mockRiskProfileRepository)
	portfolioRepo := new(mockPortfolioRepository)
	service := NewRiskProfileService(repo, portfolioRepo)

	portfolioRepo.On("PortfolioExists", mock.Anything, int64(7)).Return(true, nil)
	repo.On("RiskProfileExists", mock.Anything, int64(7)).Return(true, nil)

	_, err := service.CreateRiskProfile(context.Background(), RiskProfile{PortfolioID: 7, RiskScore: 4})

	require.ErrorIs(t, err, ErrRiskProfileExists)
	repo.AssertNotCalled(t, "CreateRiskProfile", mock.Anything, mock.Anything)
}

func TestRiskProfileService_GetRiskProfile_ErrorPropagation(t *testing.T) {
	repo := new(mockRiskProfileRepository)
	portfolioRepo := new(mockPortfolioRepository)
	service := NewRiskProfileService(repo, portfolioRepo)

	repo.On("GetRiskProfileByPortfolioID", mock.Anything, int64(99)).Return(RiskProfile{}, ErrRiskProfileNotFound)

	_, err := service.GetRiskProfileByPortfolioID(context.Background(), 99)

	require.ErrorIs(t, err, ErrRiskProfileNotFound)
	repo.AssertExpectations(t)
}

package riskprofiles

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrRiskProfileNotFound = errors.New("risk profile not found")
	ErrRiskProfileExists   = errors.New("risk profile already exists for portfolio")
)

type RiskProfileRepository interface {
	CreateRiskProfile(ctx context.Context, input RiskProfile) (RiskProfile, error)
	GetRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) (RiskProfile, error)
	UpdateRiskProfileByPortfolioID(ctx context.Context, portfolioID int64, riskScore int) (RiskProfile, error)
	DeleteRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) error
	RiskProfileExists(ctx context.Context, portfolioID int64) (bool, error)
}

type sqliteRiskProfileRepository struct {
	db *sql.DB
}

func NewSQLiteRiskProfileRepository(db *sql.DB) RiskProfileRepository {
	return &sqliteRiskProfileRepository{db: db}
}

func (r *sqliteRiskProfileRepository) CreateRiskProfile(ctx context.Context, input RiskProfile) (RiskProfile, error) {
	query := `INSERT INTO risk_profiles (portfolio_id, risk_score, created_at, updated_at)
              VALUES (?, ?, ?, ?)
              RETURNING id, portfolio_id, risk_score, created_at, updated_at`

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query, input.PortfolioID, input.RiskScore, now, now)

	var created RiskProfile
	if err := row.Scan(&created.ID, &created.PortfolioID, &created.RiskScore, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return RiskProfile{}, err
	}

	return created, nil
}

func (r *sqliteRiskProfileRepository) GetRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) (RiskProfile, error) {
	query := `SELECT id, portfolio_id, risk_score, created_at, updated_at
              FROM risk_profiles
              WHERE portfolio_id = ?`

	row := r.db.QueryRowContext(ctx, query, portfolioID)

	var p RiskProfile
	if err := row.Scan(&p.ID, &p.PortfolioID, &p.RiskScore, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RiskProfile{}, ErrRiskProfileNotFound
		}
		return RiskProfile{}, err
	}

	return p, nil
}

func (r *sqliteRiskProfileRepository) UpdateRiskProfileByPortfolioID(ctx context.Context, portfolioID int64, riskScore int) (RiskProfile, error) {
	query := `UPDATE risk_profiles
              SET risk_score = ?, updated_at = ?
              WHERE portfolio_id = ?
              RETURNING id, portfolio_id, risk_score, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, riskScore, time.Now().UTC(), portfolioID)

	var updated RiskProfile
	if err := row.Scan(&updated.ID, &updated.PortfolioID, &updated.RiskScore, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RiskProfile{}, ErrRiskProfileNotFound
		}
		return RiskProfile{}, err
	}

	return updated, nil
}

func (r *sqliteRiskProfileRepository) DeleteRiskProfileByPortfolioID(ctx context.Context, portfolioID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM risk_profiles WHERE portfolio_id = ?", portfolioID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRiskProfileNotFound
	}
	return nil
}

func (r *sqliteRiskProfileRepository) RiskProfileExists(ctx context.Context, portfolioID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM risk_profiles WHERE portfolio_id = ?)", portfolioID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

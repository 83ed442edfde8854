package assets

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrAssetNotFound = errors.New("asset not found")

type AssetRepository interface {
	CreateAsset(ctx context.Context, input Asset) (Asset, error)
	UpdateAsset(ctx context.Context, input Asset) (Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	GetAssetByID(ctx context.Context, id int64) (Asset, error)
	ListAssets(ctx context.Context, filters AssetFilters) ([]Asset, error)
	AssetExists(ctx context.Context, id int64) (bool, error)
}

type AssetFilters struct {
	PortfolioID *int64
}

type sqliteAssetRepository struct {
	db *sql.DB
}

func NewSQLiteAssetRepository(db *sql.DB) AssetRepository {
	return &sqliteAssetRepository{db: db}
}

func (r *sqliteAssetRepository) CreateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `INSERT INTO assets (portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)
              RETURNING id, portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at`

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query, input.PortfolioID, input.Symbol, input.Name, input.Quantity, input.PurchasePrice, now, now)

	var created Asset
	if err := row.Scan(&created.ID, &created.PortfolioID, &created.Symbol, &created.Name, &created.Quantity, &created.PurchasePrice, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return Asset{}, err
	}

	return created, nil
}

func (r *sqliteAssetRepository) UpdateAsset(ctx context.Context, input Asset) (Asset, error) {
	query := `UPDATE assets
              SET symbol = ?, name = ?, quantity = ?, purchase_price = ?, updated_at = ?
              WHERE id = ?
              RETURNING id, portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, input.Symbol, input.Name, input.Quantity, input.PurchasePrice, time.Now().UTC(), input.ID)

	var updated Asset
	if err := row.Scan(&updated.ID, &updated.PortfolioID, &updated.Symbol, &updated.Name, &updated.Quantity, &updated.PurchasePrice, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, err
	}

	return updated, nil
}

func (r *sqliteAssetRepository) DeleteAsset(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *sqliteAssetRepository) GetAssetByID(ctx context.Context, id int64) (Asset, error) {
	query := `SELECT id, portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at
              FROM assets
              WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)

	var a Asset
	if err := row.Scan(&a.ID, &a.PortfolioID, &a.Symbol, &a.Name, &a.Quantity, &a.PurchasePrice, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, err
	}

	return a, nil
}

func (r *sqliteAssetRepository) ListAssets(ctx context.Context, filters AssetFilters) ([]Asset, error) {
	query := `SELECT id, portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at
              FROM assets`
	args := []any{}

	if filters.PortfolioID != nil {
		query += " WHERE portfolio_id = ?"
		args = append(args, *filters.PortfolioID)
	}

	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assetsList := make([]Asset, 0)
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.ID, &a.PortfolioID, &a.Symbol, &a.Name, &a.Quantity, &a.PurchasePrice, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assetsList = append(assetsList, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assetsList, nil
}

func (r *sqliteAssetRepository) AssetExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM assets WHERE id = ?)", id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

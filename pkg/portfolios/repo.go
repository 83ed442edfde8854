package portfolios

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrPortfolioNotFound = errors.New("portfolio not found")

type PortfolioRepository interface {
	CreatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error)
	UpdatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error)
	DeletePortfolio(ctx context.Context, id int64) error
	GetPortfolioByID(ctx context.Context, id int64) (Portfolio, error)
	ListPortfolios(ctx context.Context) ([]Portfolio, error)
	PortfolioExists(ctx context.Context, id int64) (bool, error)
}

type sqlitePortfolioRepository struct {
	db *sql.DB
}

func NewSQLitePortfolioRepository(db *sql.DB) PortfolioRepository {
	return &sqlitePortfolioRepository{db: db}
}

func (r *sqlitePortfolioRepository) CreatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	query := `INSERT INTO portfolios (name, description, created_at, updated_at)
              VALUES (?, ?, ?, ?)
              RETURNING id, name, description, created_at, updated_at`

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query, input.Name, input.Description, now, now)

	var created Portfolio
	if err := row.Scan(&created.ID, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return Portfolio{}, err
	}

	return created, nil
}

func (r *sqlitePortfolioRepository) UpdatePortfolio(ctx context.Context, input Portfolio) (Portfolio, error) {
	query := `UPDATE portfolios
              SET name = ?, description = ?, updated_at = ?
              WHERE id = ?
              RETURNING id, name, description, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, input.Name, input.Description, time.Now().UTC(), input.ID)

	var updated Portfolio
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Portfolio{}, ErrPortfolioNotFound
		}
		return Portfolio{}, err
	}

	return updated, nil
}

func (r *sqlitePortfolioRepository) DeletePortfolio(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM portfolios WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

func (r *sqlitePortfolioRepository) GetPortfolioByID(ctx context.Context, id int64) (Portfolio, error) {
	query := `SELECT id, name, description, created_at, updated_at
              FROM portfolios
              WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)

	var p Portfolio
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Portfolio{}, ErrPortfolioNotFound
		}
		return Portfolio{}, err
	}

	return p, nil
}

func (r *sqlitePortfolioRepository) ListPortfolios(ctx context.Context) ([]Portfolio, error) {
	query := `SELECT id, name, description, created_at, updated_at
              FROM portfolios
              ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := make([]Portfolio, 0)
	for rows.Next() {
		var p Portfolio
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return portfolios, nil
}

func (r *sqlitePortfolioRepository) PortfolioExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM portfolios WHERE id = ?)", id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

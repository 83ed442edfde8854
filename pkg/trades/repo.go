package trades

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrTradeNotFound = errors.New("trade not found")

type TradeRepository interface {
	CreateTrade(ctx context.Context, input Trade) (Trade, error)
	UpdateTrade(ctx context.Context, input Trade) (Trade, error)
	DeleteTrade(ctx context.Context, id int64) error
	GetTradeByID(ctx context.Context, id int64) (Trade, error)
	ListTrades(ctx context.Context, filters TradeFilters) ([]Trade, error)
}

type TradeFilters struct {
	AssetID *int64
}

type sqliteTradeRepository struct {
	db *sql.DB
}

func NewSQLiteTradeRepository(db *sql.DB) TradeRepository {
	return &sqliteTradeRepository{db: db}
}

func (r *sqliteTradeRepository) CreateTrade(ctx context.Context, input Trade) (Trade, error) {
	query := `INSERT INTO trades (asset_id, trade_date, quantity, price, trade_type, created_at)
              VALUES (?, ?, ?, ?, ?, ?)
              RETURNING id, asset_id, trade_date, quantity, price, trade_type, created_at`

	row := r.db.QueryRowContext(ctx, query, input.AssetID, input.TradeDate.UTC(), input.Quantity, input.Price, input.TradeType, time.Now().UTC())

	var created Trade
	if err := row.Scan(&created.ID, &created.AssetID, &created.TradeDate, &created.Quantity, &created.Price, &created.TradeType, &created.CreatedAt); err != nil {
		return Trade{}, err
	}

	return created, nil
}

func (r *sqliteTradeRepository) UpdateTrade(ctx context.Context, input Trade) (Trade, error) {
	query := `UPDATE trades
              SET trade_date = ?, quantity = ?, price = ?, trade_type = ?
              WHERE id = ?
              RETURNING id, asset_id, trade_date, quantity, price, trade_type, created_at`

	row := r.db.QueryRowContext(ctx, query, input.TradeDate.UTC(), input.Quantity, input.Price, input.TradeType, input.ID)

	var updated Trade
	if err := row.Scan(&updated.ID, &updated.AssetID, &updated.TradeDate, &updated.Quantity, &updated.Price, &updated.TradeType, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, ErrTradeNotFound
		}
		return Trade{}, err
	}

	return updated, nil
}

func (r *sqliteTradeRepository) DeleteTrade(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTradeNotFound
	}
	return nil
}

func (r *sqliteTradeRepository) GetTradeByID(ctx context.Context, id int64) (Trade, error) {
	query := `SELECT id, asset_id, trade_date, quantity, price, trade_type, created_at
              FROM trades
              WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)

	var t Trade
	if err := row.Scan(&t.ID, &t.AssetID, &t.TradeDate, &t.Quantity, &t.Price, &t.TradeType, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, ErrTradeNotFound
		}
		return Trade{}, err
	}

	return t, nil
}

func (r *sqliteTradeRepository) ListTrades(ctx context.Context, filters TradeFilters) ([]Trade, error) {
	query := `SELECT id, asset_id, trade_date, quantity, price, trade_type, created_at
              FROM trades`
	args := []any{}

	if filters.AssetID != nil {
		query += " WHERE asset_id = ?"
		args = append(args, *filters.AssetID)
	}

	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tradesList := make([]Trade, 0)
	for rows.Next() {
		var t Trade
		if err := rows.Scan(&t.ID, &t.AssetID, &t.TradeDate, &t.Quantity, &t.Price, &t.TradeType, &t.CreatedAt); err != nil {
			return nil, err
		}
		tradesList = append(tradesList, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tradesList, nil
}

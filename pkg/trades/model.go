package trades

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a dated transaction against an asset. Quantity is positive for
// buys and negative for sells; price is the per-unit price at trade time.
type Trade struct {
	ID        int64           `json:"id"`
	AssetID   int64           `json:"asset_id"`
	TradeDate time.Time       `json:"trade_date"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	TradeType string          `json:"trade_type"`
	CreatedAt time.Time       `json:"created_at"`
}

type TradeList struct {
	Items []Trade `json:"items"`
	Total int64   `json:"total"`
}

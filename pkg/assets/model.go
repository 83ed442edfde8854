package assets

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a single holding inside a portfolio. Quantity and purchase price
// are exact decimals; they serialize to JSON as strings, never floats.
type Asset struct {
	ID            int64           `json:"id"`
	PortfolioID   int64           `json:"portfolio_id"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type AssetList struct {
	Items []Asset `json:"items"`
	Total int64   `json:"total"`
}

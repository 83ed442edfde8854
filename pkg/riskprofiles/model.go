package riskprofiles

import "time"

// RiskProfile holds the risk tolerance score for a portfolio. A portfolio
// has at most one.
type RiskProfile struct {
	ID          int64     `json:"id"`
	PortfolioID int64     `json:"portfolio_id"`
	RiskScore   int       `json:"risk_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package portfolios

import "time"

type Portfolio struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PortfolioList struct {
	Items []Portfolio `json:"items"`
	Total int64       `json:"total"`
}

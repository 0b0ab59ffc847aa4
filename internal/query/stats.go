package query

import (
	"context"

	"adept_play/internal/domain"

	"github.com/shopspring/decimal"
)

// CommissionRate is the platform's cut of every entry fee.
var CommissionRate = decimal.RequireFromString("0.20")

// Stats summarises the platform for the admin dashboard.
type Stats struct {
	TotalUsers            int             `json:"totalUsers"`
	TotalTournaments      int             `json:"totalTournaments"`
	TotalPrizeDistributed decimal.Decimal `json:"totalPrizeDistributed"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
}

// AdminStats computes the dashboard totals. Revenue is the commission on
// entry-fee debits.
func (q *Queries) AdminStats(ctx context.Context) (Stats, error) {
	var st Stats
	err := q.src.View(ctx, func(db *domain.Database) error {
		for _, a := range db.Accounts {
			if a.Role == domain.RoleUser {
				st.TotalUsers++
			}
		}
		st.TotalTournaments = len(db.Tournaments)

		prizes := decimal.Zero
		for _, t := range db.Tournaments {
			if t.Completed() && t.WinnerID != nil {
				prizes = prizes.Add(t.PrizePool)
			}
		}
		fees := decimal.Zero
		for _, tx := range db.Transactions {
			if tx.Type == domain.TypeDebit && tx.Category == domain.CategoryEntryFee {
				fees = fees.Add(tx.Amount)
			}
		}
		st.TotalPrizeDistributed = prizes
		st.TotalRevenue = domain.Money(fees.Mul(CommissionRate))
		return nil
	})
	return st, err
}

package portfolio

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"tradervault/internal/models"
)

// RecentWindow bounds the trade window the headline metrics are computed over.
const RecentWindow = 5

type Summary struct {
	TotalBalance    decimal.Decimal `json:"total_balance"`
	TotalProfitLoss decimal.Decimal `json:"total_profit_loss"`
	ActiveTrades    int             `json:"active_trades"`
	SuccessRatePct  int             `json:"success_rate_pct"`
	AIActive        bool            `json:"ai_active"`
	AccountCount    int             `json:"account_count"`
	WindowSize      int             `json:"window_size"`
}

// Summarize reduces one user's accounts and recent trades to the dashboard
// headline numbers. Pure: no I/O, no mutation of inputs.
//
// Total P&L comes from the accounts' cumulative fields, not recomputed from
// trades. Active count and success rate are taken over the 5 most recent
// trades by execution time; a trade with zero P&L is not a win. An empty
// window yields a 0% success rate.
func Summarize(accounts []models.TradingAccount, trades []models.Trade) Summary {
	out := Summary{
		TotalBalance:    decimal.Zero,
		TotalProfitLoss: decimal.Zero,
		AccountCount:    len(accounts),
	}

	for _, acc := range accounts {
		out.TotalBalance = out.TotalBalance.Add(acc.Balance)
		out.TotalProfitLoss = out.TotalProfitLoss.Add(acc.TotalProfitLoss)
		if acc.IsActive {
			out.AIActive = true
		}
	}

	window := recentWindow(trades, RecentWindow)
	out.WindowSize = len(window)

	wins := 0
	for _, t := range window {
		if t.Status == models.TradeStatusOpen {
			out.ActiveTrades++
		}
		if t.ProfitLoss != nil && t.ProfitLoss.IsPositive() {
			wins++
		}
	}
	if len(window) > 0 {
		out.SuccessRatePct = int(math.Round(100 * float64(wins) / float64(len(window))))
	}

	return out
}

// recentWindow returns up to n trades ordered executed_at descending. The
// fetch path already orders and limits; sorting again keeps the reduction
// correct for callers that pass an unbounded slice.
func recentWindow(trades []models.Trade, n int) []models.Trade {
	if len(trades) == 0 {
		return nil
	}
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutedAt.After(sorted[j].ExecutedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

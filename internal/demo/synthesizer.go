package demo

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tradervault/internal/models"
)

// Symbols is the fixed universe demo trades are drawn from.
var Symbols = []string{"AAPL", "GOOGL", "TSLA", "MSFT", "NVDA"}

var riskLevels = []string{"low", "medium", "high"}

// reasoningPayload is a fixed template; it is not derived from the generated
// numbers.
const reasoningPayload = `{"indicators":["RSI oversold","Moving average crossover"],"market_sentiment":"bullish","risk_assessment":"moderate"}`

const (
	winProbability = 0.7

	quantityMax = 100

	entryMin, entrySpan = 50.0, 500.0 // entry in [50, 550)
	winMin, winSpan     = 5.0, 20.0   // winning delta in [5, 25)
	lossMin, lossSpan   = 2.0, 15.0   // losing delta in [-17, -2)

	confidenceMin, confidenceSpan = 0.6, 0.4 // confidence in [0.6, 1.0)
)

// Synthesize fabricates one closed demo trade as a pure function of the given
// random stream and clock. Callers fill in the owner and account IDs.
//
// The P&L formula negates the sign for sell trades, i.e. a sell that exits
// above its entry books a loss. That matches the sample-data logic this is
// modeled on, even though it inverts conventional short-position accounting;
// keep it until product says otherwise (pinned by TestSynthesizeSellSideSign).
func Synthesize(rng *rand.Rand, now time.Time) models.Trade {
	symbol := Symbols[rng.Intn(len(Symbols))]
	side := models.SideBuy
	if rng.Intn(2) == 1 {
		side = models.SideSell
	}
	quantity := rng.Intn(quantityMax) + 1
	entry := entryMin + rng.Float64()*entrySpan

	var delta float64
	if rng.Float64() < winProbability {
		delta = winMin + rng.Float64()*winSpan
	} else {
		delta = -(lossMin + rng.Float64()*lossSpan)
	}
	exit := entry + delta

	confidence := confidenceMin + rng.Float64()*confidenceSpan
	risk := riskLevels[rng.Intn(len(riskLevels))]

	entryDec := decimal.NewFromFloat(entry).Round(2)
	exitDec := decimal.NewFromFloat(exit).Round(2)
	pnl := ProfitLoss(side, entryDec, exitDec, quantity)

	executed := now.UTC()
	closed := executed
	return models.Trade{
		Symbol:          symbol,
		Side:            side,
		Quantity:        quantity,
		EntryPrice:      entryDec,
		ExitPrice:       &exitDec,
		ProfitLoss:      &pnl,
		ConfidenceScore: &confidence,
		RiskLevel:       &risk,
		Status:          models.TradeStatusClosed,
		AIReasoning:     datatypes.JSON(reasoningPayload),
		ExecutedAt:      executed,
		ClosedAt:        &closed,
	}
}

// ProfitLoss is (exit - entry) * quantity, negated for sell trades.
func ProfitLoss(side string, entry, exit decimal.Decimal, quantity int) decimal.Decimal {
	pnl := exit.Sub(entry).Mul(decimal.NewFromInt(int64(quantity)))
	if side == models.SideSell {
		pnl = pnl.Neg()
	}
	return pnl.Round(2)
}

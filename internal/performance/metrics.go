package performance

// Sample analytics for the performance tab. These are fabricated demo values,
// not outputs of any model; the product has no inference engine behind them.

type SeriesPoint struct {
	Time   string `json:"time"`
	Profit int    `json:"profit"`
	Trades int    `json:"trades"`
}

type Metrics struct {
	AccuracyPct          int     `json:"accuracy_pct"`
	TotalTrades          int     `json:"total_trades"`
	WinRatePct           int     `json:"win_rate_pct"`
	AvgProfitPerTrade    float64 `json:"avg_profit_per_trade"`
	BestPerformingSymbol string  `json:"best_performing_symbol"`
	RiskScore            string  `json:"risk_score"`
	ConfidenceLevelPct   int     `json:"confidence_level_pct"`
}

type Report struct {
	Metrics Metrics       `json:"metrics"`
	Hourly  []SeriesPoint `json:"hourly"`
}

func SampleReport() Report {
	return Report{
		Metrics: Metrics{
			AccuracyPct:          73,
			TotalTrades:          156,
			WinRatePct:           68,
			AvgProfitPerTrade:    24.50,
			BestPerformingSymbol: "AAPL",
			RiskScore:            "Medium",
			ConfidenceLevelPct:   82,
		},
		Hourly: []SeriesPoint{
			{Time: "00:00", Profit: 0, Trades: 0},
			{Time: "04:00", Profit: 150, Trades: 3},
			{Time: "08:00", Profit: 320, Trades: 7},
			{Time: "12:00", Profit: 480, Trades: 12},
			{Time: "16:00", Profit: 720, Trades: 18},
			{Time: "20:00", Profit: 890, Trades: 24},
			{Time: "24:00", Profit: 1200, Trades: 30},
		},
	}
}

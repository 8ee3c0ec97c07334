package domain

// RatioBenchmarks guarda os valores de referência; nil significa sem referência
type RatioBenchmarks map[string]*float64

func (b RatioBenchmarks) Get(key string) (float64, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

type BenchmarkCategory struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

type BenchmarksResponse struct {
	Benchmarks RatioBenchmarks     `json:"benchmarks"`
	Labels     map[string]string   `json:"labels"`
	KeysOrder  []string            `json:"keys_order"`
	Categories []BenchmarkCategory `json:"categories"`
}

const BenchmarksConfigKey = "ratio_benchmarks"

var BenchmarkKeysOrder = []string{
	"stock_turnover",
	"gross_profit_ratio_min",
	"gross_profit_ratio_max",
	"own_fund_to_wf",
	"loans_to_wf_min",
	"loans_to_wf_max",
	"investments_to_wf_min",
	"investments_to_wf_max",
	"avg_cost_of_wf",
	"avg_yield_on_wf",
	"gross_financial_margin",
	"operating_cost_to_wf_min",
	"operating_cost_to_wf_max",
	"net_financial_margin",
	"risk_cost_to_wf_max",
	"net_margin",
	"credit_deposit_ratio_min",
}

var defaultBenchmarkValues = map[string]float64{
	"stock_turnover":           15.0,
	"gross_profit_ratio_min":   10.0,
	"gross_profit_ratio_max":   15.0,
	"own_fund_to_wf":           8.0,
	"loans_to_wf_min":          70.0,
	"loans_to_wf_max":          75.0,
	"investments_to_wf_min":    25.0,
	"investments_to_wf_max":    30.0,
	"avg_cost_of_wf":           3.5,
	"avg_yield_on_wf":          3.5,
	"gross_financial_margin":   3.5,
	"operating_cost_to_wf_min": 2.0,
	"operating_cost_to_wf_max": 2.5,
	"net_financial_margin":     1.5,
	"risk_cost_to_wf_max":      0.25,
	"net_margin":               1.0,
	"credit_deposit_ratio_min": 70.0,
}

var BenchmarkLabels = map[string]string{
	"stock_turnover":           "Stock Turnover (times)",
	"gross_profit_ratio_min":   "Gross Profit Ratio Min (%)",
	"gross_profit_ratio_max":   "Gross Profit Ratio Max (%)",
	"own_fund_to_wf":           "Own Fund to Working Fund (%)",
	"loans_to_wf_min":          "Loans to Working Fund Min (%)",
	"loans_to_wf_max":          "Loans to Working Fund Max (%)",
	"investments_to_wf_min":    "Investments to Working Fund Min (%)",
	"investments_to_wf_max":    "Investments to Working Fund Max (%)",
	"avg_cost_of_wf":           "Avg Cost of Working Fund (%)",
	"avg_yield_on_wf":          "Avg Yield on Working Fund (%)",
	"gross_financial_margin":   "Gross Financial Margin (%)",
	"operating_cost_to_wf_min": "Operating Cost to Working Fund Min (%)",
	"operating_cost_to_wf_max": "Operating Cost to Working Fund Max (%)",
	"net_financial_margin":     "Net Financial Margin (%)",
	"risk_cost_to_wf_max":      "Risk Cost to Working Fund Max (%)",
	"net_margin":               "Net Margin (%)",
	"credit_deposit_ratio_min": "Credit Deposit Ratio Min (%)",
}

var BenchmarkCategories = []BenchmarkCategory{
	{Name: "Trading", Keys: []string{"stock_turnover", "gross_profit_ratio_min", "gross_profit_ratio_max"}},
	{Name: "Fund Structure", Keys: []string{"own_fund_to_wf", "loans_to_wf_min", "loans_to_wf_max", "investments_to_wf_min", "investments_to_wf_max"}},
	{Name: "Yield & Cost", Keys: []string{"avg_cost_of_wf", "avg_yield_on_wf"}},
	{Name: "Margins", Keys: []string{"gross_financial_margin", "operating_cost_to_wf_min", "operating_cost_to_wf_max", "net_financial_margin", "risk_cost_to_wf_max", "net_margin"}},
	{Name: "Credit Deposit", Keys: []string{"credit_deposit_ratio_min"}},
}

// DefaultBenchmarks retorna uma cópia nova dos valores padrão
func DefaultBenchmarks() RatioBenchmarks {
	benchmarks := make(RatioBenchmarks, len(defaultBenchmarkValues))
	for key, value := range defaultBenchmarkValues {
		v := value
		benchmarks[key] = &v
	}
	return benchmarks
}

func IsBenchmarkKey(key string) bool {
	_, ok := defaultBenchmarkValues[key]
	return ok
}

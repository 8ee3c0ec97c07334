package domain

import "time"

type TrafficLight string

const (
	TrafficLightGreen  TrafficLight = "green"
	TrafficLightYellow TrafficLight = "yellow"
	TrafficLightRed    TrafficLight = "red"
)

// RatioSet mapeia a chave do índice para seu valor arredondado em duas casas
type RatioSet map[string]float64

// Filter retorna apenas as chaves informadas; lista vazia retorna o conjunto completo
func (r RatioSet) Filter(keys []string) RatioSet {
	if len(keys) == 0 {
		return r
	}

	filtered := make(RatioSet, len(keys))
	for _, key := range keys {
		if v, ok := r[key]; ok {
			filtered[key] = v
		}
	}
	return filtered
}

type RatioResult struct {
	ID                 int                     `json:"id"`
	PeriodID           int                     `json:"period"`
	WorkingFund        float64                 `json:"working_fund"`
	NetMargin          float64                 `json:"net_margin"`
	AllRatios          RatioSet                `json:"all_ratios"`
	TrafficLightStatus map[string]TrafficLight `json:"traffic_light_status"`
	Interpretation     string                  `json:"interpretation"`
	IsEfficient        bool                    `json:"is_efficient"`
	CalculatedAt       time.Time               `json:"calculated_at"`
}

type RatioFilters struct {
	PeriodID  *int
	CompanyID *int
}

type RatioUnit string

const (
	UnitTimes   RatioUnit = "times"
	UnitPercent RatioUnit = "%"
	UnitAmount  RatioUnit = "amount"
	UnitLakhs   RatioUnit = "lakhs"
)

const (
	CategoryTrading      = "Trading Ratios"
	CategoryCapital      = "Capital Ratios"
	CategoryFund         = "Fund Structure"
	CategoryYieldCost    = "Yield & Cost"
	CategoryMargin       = "Margin Analysis"
	CategoryEfficiency   = "Capital Efficiency"
	CategoryProductivity = "Productivity Analysis"
)

// RatioCategories na ordem de exibição
var RatioCategories = []string{
	CategoryTrading,
	CategoryCapital,
	CategoryFund,
	CategoryYieldCost,
	CategoryMargin,
	CategoryEfficiency,
	CategoryProductivity,
}

// RatioDefinition descreve um índice publicado. BenchmarkKey aponta para o
// valor de referência exibido como ideal, quando existir.
type RatioDefinition struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Unit         RatioUnit `json:"unit"`
	BenchmarkKey string    `json:"benchmark_key,omitempty"`
}

var RatioCatalog = []RatioDefinition{
	{Key: "stock_turnover", Name: "Stock Turnover", Category: CategoryTrading, Unit: UnitTimes, BenchmarkKey: "stock_turnover"},
	{Key: "gross_profit_ratio", Name: "Gross Profit Ratio", Category: CategoryTrading, Unit: UnitPercent, BenchmarkKey: "gross_profit_ratio_min"},
	{Key: "net_profit_ratio", Name: "Net Profit Ratio", Category: CategoryTrading, Unit: UnitPercent},

	{Key: "working_fund", Name: "Working Fund", Category: CategoryCapital, Unit: UnitAmount},
	{Key: "own_funds", Name: "Own Funds", Category: CategoryCapital, Unit: UnitAmount},
	{Key: "net_own_funds", Name: "Net Own Funds", Category: CategoryCapital, Unit: UnitAmount},

	{Key: "own_fund_to_wf", Name: "Own Fund to Working Fund", Category: CategoryFund, Unit: UnitPercent, BenchmarkKey: "own_fund_to_wf"},
	{Key: "deposits_to_wf", Name: "Deposits to Working Fund", Category: CategoryFund, Unit: UnitPercent},
	{Key: "borrowings_to_wf", Name: "Borrowings to Working Fund", Category: CategoryFund, Unit: UnitPercent},
	{Key: "loans_to_wf", Name: "Loans to Working Fund", Category: CategoryFund, Unit: UnitPercent, BenchmarkKey: "loans_to_wf_min"},
	{Key: "investments_to_wf", Name: "Investments to Working Fund", Category: CategoryFund, Unit: UnitPercent, BenchmarkKey: "investments_to_wf_min"},
	{Key: "earning_assets_to_wf", Name: "Earning Assets to Working Fund", Category: CategoryFund, Unit: UnitPercent},
	{Key: "interest_tagged_funds_to_wf", Name: "Interest Tagged Funds to Working Fund", Category: CategoryFund, Unit: UnitPercent},

	{Key: "cost_of_deposits", Name: "Cost of Deposits", Category: CategoryYieldCost, Unit: UnitPercent},
	{Key: "yield_on_loans", Name: "Yield on Loans", Category: CategoryYieldCost, Unit: UnitPercent},
	{Key: "yield_on_investments", Name: "Yield on Investments", Category: CategoryYieldCost, Unit: UnitPercent},
	{Key: "credit_deposit_ratio", Name: "Credit Deposit Ratio", Category: CategoryYieldCost, Unit: UnitPercent, BenchmarkKey: "credit_deposit_ratio_min"},
	{Key: "avg_cost_of_wf", Name: "Avg Cost of Working Fund", Category: CategoryYieldCost, Unit: UnitPercent, BenchmarkKey: "avg_cost_of_wf"},
	{Key: "avg_yield_on_wf", Name: "Avg Yield on Working Fund", Category: CategoryYieldCost, Unit: UnitPercent, BenchmarkKey: "avg_yield_on_wf"},
	{Key: "misc_income_to_wf", Name: "Misc Income to Working Fund", Category: CategoryYieldCost, Unit: UnitPercent},
	{Key: "interest_exp_to_interest_income", Name: "Interest Expenses to Interest Income", Category: CategoryYieldCost, Unit: UnitPercent},

	{Key: "gross_fin_margin", Name: "Gross Financial Margin", Category: CategoryMargin, Unit: UnitPercent, BenchmarkKey: "gross_financial_margin"},
	{Key: "operating_cost_to_wf", Name: "Operating Cost to Working Fund", Category: CategoryMargin, Unit: UnitPercent, BenchmarkKey: "operating_cost_to_wf_max"},
	{Key: "net_fin_margin", Name: "Net Financial Margin", Category: CategoryMargin, Unit: UnitPercent, BenchmarkKey: "net_financial_margin"},
	{Key: "risk_cost_to_wf", Name: "Risk Cost to Working Fund", Category: CategoryMargin, Unit: UnitPercent, BenchmarkKey: "risk_cost_to_wf_max"},
	{Key: "net_margin", Name: "Net Margin", Category: CategoryMargin, Unit: UnitPercent, BenchmarkKey: "net_margin"},

	{Key: "capital_turnover_ratio", Name: "Capital Turnover Ratio", Category: CategoryEfficiency, Unit: UnitTimes},

	{Key: "per_employee_deposit", Name: "Per Employee Deposit", Category: CategoryProductivity, Unit: UnitLakhs},
	{Key: "per_employee_loan", Name: "Per Employee Loan", Category: CategoryProductivity, Unit: UnitLakhs},
	{Key: "per_employee_business", Name: "Per Employee Business", Category: CategoryProductivity, Unit: UnitLakhs},
	{Key: "per_employee_contribution", Name: "Per Employee Contribution", Category: CategoryProductivity, Unit: UnitLakhs},
	{Key: "per_employee_operating_cost", Name: "Per Employee Operating Cost", Category: CategoryProductivity, Unit: UnitLakhs},
}

var ratioIndex = func() map[string]RatioDefinition {
	index := make(map[string]RatioDefinition, len(RatioCatalog))
	for _, def := range RatioCatalog {
		index[def.Key] = def
	}
	return index
}()

// AmountKeys são valores absolutos, sem semáforo
var AmountKeys = map[string]struct{}{
	"working_fund":  {},
	"own_funds":     {},
	"net_own_funds": {},
	"average_stock": {},
	"cogs":          {},
}

func IsAmountKey(key string) bool {
	_, ok := AmountKeys[key]
	return ok
}

func RatioDefinitionByKey(key string) (RatioDefinition, bool) {
	def, ok := ratioIndex[key]
	return def, ok
}

// RatioKeysByCategory retorna as chaves da categoria na ordem do catálogo
func RatioKeysByCategory(category string) []string {
	var keys []string
	for _, def := range RatioCatalog {
		if def.Category == category {
			keys = append(keys, def.Key)
		}
	}
	return keys
}

func IsRatioCategory(category string) bool {
	for _, c := range RatioCategories {
		if c == category {
			return true
		}
	}
	return false
}

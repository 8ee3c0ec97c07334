package ratio

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/vfg2006/coop-ratio-api/pkg/utils"
)

var (
	two  = decimal.NewFromInt(2)
	lakh = decimal.NewFromInt(100000)

	pct = utils.Percent
	div = utils.SafeDiv
)

// Calculate produz o resultado completo de um período: índices, semáforos,
// interpretação e eficiência. Exige os quatro demonstrativos.
func Calculate(st domain.Statements, benchmarks domain.RatioBenchmarks) (*domain.RatioResult, error) {
	if missing := st.Missing(); len(missing) > 0 {
		return nil, &RatioError{
			Err:     ErrIncompleteStatements,
			Code:    apiErrors.ErrIncompleteStatements,
			Details: "Demonstrativos ausentes: " + strings.Join(missing, ", "),
			Missing: missing,
		}
	}

	values := compute(st)

	raw := make(map[string]float64, len(values))
	published := make(domain.RatioSet, len(values))
	for key, value := range values {
		raw[key] = value.InexactFloat64()
		published[key] = value.Round(2).InexactFloat64()
	}

	contribution := values["per_employee_contribution"]
	operatingCost := values["per_employee_operating_cost"]

	return &domain.RatioResult{
		WorkingFund:        published["working_fund"],
		NetMargin:          published["net_margin"],
		AllRatios:          published,
		TrafficLightStatus: TrafficLights(raw, benchmarks),
		Interpretation:     Interpret(raw),
		IsEfficient:        contribution.GreaterThan(operatingCost),
		CalculatedAt:       time.Now(),
	}, nil
}

func compute(st domain.Statements) map[string]decimal.Decimal {
	ta, pl, bs, ops := st.Trading, st.ProfitLoss, st.Balance, st.Operational

	wf := bs.WorkingFund()
	ownFunds := bs.OwnFunds()
	avgStock := ta.OpeningStock.Add(ta.ClosingStock).Div(two)
	grossProfit := ta.GrossProfit()
	cogs := ta.Sales.Sub(grossProfit)

	v := map[string]decimal.Decimal{
		"working_fund":  wf,
		"own_funds":     ownFunds,
		"net_own_funds": ownFunds,
		"average_stock": avgStock,
		"cogs":          cogs,
	}

	v["stock_turnover"] = div(cogs, avgStock)
	v["gross_profit_ratio"] = pct(grossProfit, ta.Sales)
	v["net_profit_ratio"] = pct(pl.NetProfit, ta.Sales)

	v["own_fund_to_wf"] = pct(ownFunds, wf)
	v["deposits_to_wf"] = pct(bs.Deposits, wf)
	v["borrowings_to_wf"] = pct(bs.Borrowings, wf)
	v["loans_to_wf"] = pct(bs.LoansAdvances, wf)
	v["investments_to_wf"] = pct(bs.Investments, wf)
	v["earning_assets_to_wf"] = pct(bs.LoansAdvances.Add(bs.Investments).Add(bs.CashAtBank), wf)
	v["interest_tagged_funds_to_wf"] = pct(bs.Deposits.Add(bs.Borrowings), wf)

	totalIncome := pl.TotalInterestIncome()
	totalExpense := pl.TotalInterestExpense()

	v["cost_of_deposits"] = pct(pl.InterestOnDeposits, bs.Deposits)
	v["yield_on_loans"] = pct(pl.InterestOnLoans, bs.LoansAdvances)
	v["yield_on_investments"] = pct(pl.ReturnOnInvestment, bs.Investments)
	v["credit_deposit_ratio"] = pct(bs.LoansAdvances, bs.Deposits)
	v["avg_cost_of_wf"] = pct(totalExpense, wf)
	v["avg_yield_on_wf"] = pct(totalIncome, wf)
	v["misc_income_to_wf"] = pct(pl.MiscellaneousIncome, wf)
	v["interest_exp_to_interest_income"] = pct(totalExpense, totalIncome)

	v["gross_fin_margin"] = v["avg_yield_on_wf"].Sub(v["avg_cost_of_wf"])
	v["operating_cost_to_wf"] = pct(pl.EstablishmentContingencies, wf)
	v["net_fin_margin"] = v["gross_fin_margin"].Add(v["misc_income_to_wf"]).Sub(v["operating_cost_to_wf"])
	v["risk_cost_to_wf"] = pct(pl.Provisions, wf)
	v["net_margin"] = v["net_fin_margin"].Sub(v["risk_cost_to_wf"])

	v["capital_turnover_ratio"] = div(bs.Deposits.Add(bs.LoansAdvances), ownFunds)

	for key, value := range productivity(pl, bs, ops) {
		v[key] = value
	}

	return v
}

// productivity calcula os valores por funcionário em lakhs; sem funcionários tudo é zero
func productivity(pl *domain.ProfitAndLoss, bs *domain.BalanceSheet, ops *domain.OperationalMetrics) map[string]decimal.Decimal {
	staff := decimal.NewFromInt(int64(ops.StaffCount))

	perEmployee := func(amount decimal.Decimal) decimal.Decimal {
		return div(amount, staff).Div(lakh)
	}

	return map[string]decimal.Decimal{
		"per_employee_deposit":        perEmployee(bs.Deposits),
		"per_employee_loan":           perEmployee(bs.LoansAdvances),
		"per_employee_business":       perEmployee(bs.Deposits.Add(bs.LoansAdvances)),
		"per_employee_contribution":   perEmployee(pl.TotalIncome().Sub(pl.TotalInterestExpense())),
		"per_employee_operating_cost": perEmployee(pl.EstablishmentContingencies),
	}
}

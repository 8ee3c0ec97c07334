// Package sample contém o conjunto de dados de referência da XYZ Co-op Bank (FY 2012-13),
// usado pelo seed e pelos testes de cálculo.
package sample

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const (
	XYZCompanyName    = "XYZ Co-op Bank"
	XYZRegistrationNo = "XYZ-SCB-001"
	XYZPeriodLabel    = "FY_2012_13"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func XYZPeriod(companyID int) *domain.FinancialPeriod {
	return &domain.FinancialPeriod{
		CompanyID:   companyID,
		PeriodType:  domain.PeriodTypeYearly,
		StartDate:   domain.NewDate(2012, time.April, 1),
		EndDate:     domain.NewDate(2013, time.March, 31),
		Label:       XYZPeriodLabel,
		IsFinalized: true,
	}
}

// XYZStatements retorna os quatro demonstrativos do período de referência
func XYZStatements(periodID int) domain.Statements {
	return domain.Statements{
		Trading: &domain.TradingAccount{
			PeriodID:     periodID,
			OpeningStock: d(25080),
			Purchases:    d(572444),
			TradeCharges: d(8176),
			Sales:        d(552264),
			ClosingStock: d(40000),
		},
		ProfitLoss: &domain.ProfitAndLoss{
			PeriodID:                   periodID,
			InterestOnLoans:            d(42488657),
			InterestOnBankAc:           d(6300000),
			ReturnOnInvestment:         d(1066314),
			MiscellaneousIncome:        d(3485633),
			InterestOnDeposits:         d(26698057),
			InterestOnBorrowings:       d(770021),
			EstablishmentContingencies: d(13476132),
			Provisions:                 d(4533930),
			NetProfit:                  d(7863516),
		},
		Balance: &domain.BalanceSheet{
			PeriodID:              periodID,
			ShareCapital:          d(5281006),
			Deposits:              d(484706199),
			Borrowings:            d(7001911),
			ReservesStatutoryFree: d(10569840),
			UndistributedProfit:   d(10866453),
			Provisions:            d(53117811),
			OtherLiabilities:      d(46444029),
			CashInHand:            d(16213483),
			CashAtBank:            d(90000000),
			Investments:           d(13328928),
			LoansAdvances:         d(437223261),
			FixedAssets:           d(55501843),
			OtherAssets:           d(5678014),
			StockInTrade:          d(40000),
		},
		Operational: &domain.OperationalMetrics{
			PeriodID:   periodID,
			StaffCount: 24,
		},
	}
}

// XYZExpected são os valores conferidos após o cálculo
var XYZExpected = map[string]float64{
	"working_fund":         518425409,
	"credit_deposit_ratio": 90.20,
	"cost_of_deposits":     5.51,
	"yield_on_loans":       9.72,
	"stock_turnover":       17.38,
}

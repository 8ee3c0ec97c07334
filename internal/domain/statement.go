package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type StatementType string

const (
	StatementTypeTrading      StatementType = "TRADING"
	StatementTypeProfitLoss   StatementType = "PL"
	StatementTypeBalanceSheet StatementType = "BALANCE_SHEET"
	StatementTypeOperational  StatementType = "OPERATIONAL"
)

func (s StatementType) IsValid() bool {
	switch s {
	case StatementTypeTrading, StatementTypeProfitLoss, StatementTypeBalanceSheet, StatementTypeOperational:
		return true
	}
	return false
}

// StatementTypes na ordem em que são exibidos e importados
var StatementTypes = []StatementType{
	StatementTypeTrading,
	StatementTypeProfitLoss,
	StatementTypeBalanceSheet,
	StatementTypeOperational,
}

type TradingAccount struct {
	ID           int             `json:"id"`
	PeriodID     int             `json:"period"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	Purchases    decimal.Decimal `json:"purchases"`
	TradeCharges decimal.Decimal `json:"trade_charges"`
	Sales        decimal.Decimal `json:"sales"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GrossProfit = vendas + estoque final - (estoque inicial + compras + despesas comerciais)
func (t TradingAccount) GrossProfit() decimal.Decimal {
	return t.Sales.Add(t.ClosingStock).Sub(t.OpeningStock.Add(t.Purchases).Add(t.TradeCharges))
}

type ProfitAndLoss struct {
	ID                         int             `json:"id"`
	PeriodID                   int             `json:"period"`
	InterestOnLoans            decimal.Decimal `json:"interest_on_loans"`
	InterestOnBankAc           decimal.Decimal `json:"interest_on_bank_ac"`
	ReturnOnInvestment         decimal.Decimal `json:"return_on_investment"`
	MiscellaneousIncome        decimal.Decimal `json:"miscellaneous_income"`
	InterestOnDeposits         decimal.Decimal `json:"interest_on_deposits"`
	InterestOnBorrowings       decimal.Decimal `json:"interest_on_borrowings"`
	EstablishmentContingencies decimal.Decimal `json:"establishment_contingencies"`
	Provisions                 decimal.Decimal `json:"provisions"`
	NetProfit                  decimal.Decimal `json:"net_profit"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
}

func (p ProfitAndLoss) TotalInterestIncome() decimal.Decimal {
	return p.InterestOnLoans.Add(p.InterestOnBankAc).Add(p.ReturnOnInvestment)
}

func (p ProfitAndLoss) TotalInterestExpense() decimal.Decimal {
	return p.InterestOnDeposits.Add(p.InterestOnBorrowings)
}

func (p ProfitAndLoss) TotalIncome() decimal.Decimal {
	return p.TotalInterestIncome().Add(p.MiscellaneousIncome)
}

type BalanceSheet struct {
	ID                    int             `json:"id"`
	PeriodID              int             `json:"period"`
	ShareCapital          decimal.Decimal `json:"share_capital"`
	Deposits              decimal.Decimal `json:"deposits"`
	Borrowings            decimal.Decimal `json:"borrowings"`
	ReservesStatutoryFree decimal.Decimal `json:"reserves_statutory_free"`
	UndistributedProfit   decimal.Decimal `json:"undistributed_profit"`
	Provisions            decimal.Decimal `json:"provisions"`
	OtherLiabilities      decimal.Decimal `json:"other_liabilities"`
	CashInHand            decimal.Decimal `json:"cash_in_hand"`
	CashAtBank            decimal.Decimal `json:"cash_at_bank"`
	Investments           decimal.Decimal `json:"investments"`
	LoansAdvances         decimal.Decimal `json:"loans_advances"`
	FixedAssets           decimal.Decimal `json:"fixed_assets"`
	OtherAssets           decimal.Decimal `json:"other_assets"`
	StockInTrade          decimal.Decimal `json:"stock_in_trade"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// WorkingFund = capital + depósitos + empréstimos tomados + reservas + lucro não distribuído
func (b BalanceSheet) WorkingFund() decimal.Decimal {
	return b.ShareCapital.
		Add(b.Deposits).
		Add(b.Borrowings).
		Add(b.ReservesStatutoryFree).
		Add(b.UndistributedProfit)
}

func (b BalanceSheet) OwnFunds() decimal.Decimal {
	return b.ShareCapital.Add(b.ReservesStatutoryFree).Add(b.UndistributedProfit)
}

func (b BalanceSheet) TotalLiabilities() decimal.Decimal {
	return b.WorkingFund().Add(b.Provisions).Add(b.OtherLiabilities)
}

func (b BalanceSheet) TotalAssets() decimal.Decimal {
	return b.CashInHand.
		Add(b.CashAtBank).
		Add(b.Investments).
		Add(b.LoansAdvances).
		Add(b.FixedAssets).
		Add(b.OtherAssets).
		Add(b.StockInTrade)
}

var balanceTolerance = decimal.NewFromFloat(0.01)

// BalanceCheck é apenas informativo, nunca impede a gravação
type BalanceCheck struct {
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	Difference       decimal.Decimal `json:"difference"`
	IsBalanced       bool            `json:"is_balanced"`
}

func (b BalanceSheet) Check() BalanceCheck {
	liabilities := b.TotalLiabilities()
	assets := b.TotalAssets()
	diff := liabilities.Sub(assets)

	return BalanceCheck{
		TotalLiabilities: liabilities,
		TotalAssets:      assets,
		Difference:       diff,
		IsBalanced:       diff.Abs().LessThanOrEqual(balanceTolerance),
	}
}

// BalanceSheetView é o balanço acompanhado dos totais derivados
type BalanceSheetView struct {
	BalanceSheet
	WorkingFund  decimal.Decimal `json:"working_fund"`
	OwnFunds     decimal.Decimal `json:"own_funds"`
	BalanceCheck BalanceCheck    `json:"balance_check"`
}

func NewBalanceSheetView(b *BalanceSheet) *BalanceSheetView {
	if b == nil {
		return nil
	}
	return &BalanceSheetView{
		BalanceSheet: *b,
		WorkingFund:  b.WorkingFund(),
		OwnFunds:     b.OwnFunds(),
		BalanceCheck: b.Check(),
	}
}

type OperationalMetrics struct {
	ID         int       `json:"id"`
	PeriodID   int       `json:"period"`
	StaffCount int       `json:"staff_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Statements reúne os quatro demonstrativos de um período
type Statements struct {
	Trading     *TradingAccount
	ProfitLoss  *ProfitAndLoss
	Balance     *BalanceSheet
	Operational *OperationalMetrics
}

// Missing retorna os demonstrativos ausentes
func (s Statements) Missing() []string {
	var missing []string
	if s.Trading == nil {
		missing = append(missing, "trading_account")
	}
	if s.ProfitLoss == nil {
		missing = append(missing, "profit_loss")
	}
	if s.Balance == nil {
		missing = append(missing, "balance_sheet")
	}
	if s.Operational == nil {
		missing = append(missing, "operational_metrics")
	}
	return missing
}

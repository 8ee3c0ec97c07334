package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func xyzBalanceSheet() BalanceSheet {
	return BalanceSheet{
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
	}
}

func TestBalanceSheet_Totals(t *testing.T) {
	b := xyzBalanceSheet()

	assert.True(t, b.WorkingFund().Equal(d(518425409)))
	assert.True(t, b.OwnFunds().Equal(d(26717299)))
	assert.True(t, b.TotalLiabilities().Equal(d(617987249)))
	assert.True(t, b.TotalAssets().Equal(d(617985529)))
}

func TestBalanceSheet_Check(t *testing.T) {
	tests := []struct {
		name     string
		sheet    func() BalanceSheet
		balanced bool
		diff     decimal.Decimal
	}{
		{
			name:     "Balanço desbalanceado continua sendo apenas um aviso",
			sheet:    xyzBalanceSheet,
			balanced: false,
			diff:     d(1720),
		},
		{
			name: "Diferença dentro da tolerância",
			sheet: func() BalanceSheet {
				b := xyzBalanceSheet()
				b.OtherAssets = b.OtherAssets.Add(decimal.RequireFromString("1719.99"))
				return b
			},
			balanced: true,
			diff:     decimal.RequireFromString("0.01"),
		},
		{
			name:     "Balanço zerado",
			sheet:    func() BalanceSheet { return BalanceSheet{} },
			balanced: true,
			diff:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := tt.sheet().Check()
			assert.Equal(t, tt.balanced, check.IsBalanced)
			assert.True(t, check.Difference.Equal(tt.diff), "diferença %s", check.Difference)
		})
	}
}

func TestTradingAccount_GrossProfit(t *testing.T) {
	ta := TradingAccount{
		OpeningStock: d(25080),
		Purchases:    d(572444),
		TradeCharges: d(8176),
		Sales:        d(552264),
		ClosingStock: d(40000),
	}
	assert.True(t, ta.GrossProfit().Equal(d(-13436)))
}

func TestProfitAndLoss_Totals(t *testing.T) {
	pl := ProfitAndLoss{
		InterestOnLoans:      d(42488657),
		InterestOnBankAc:     d(6300000),
		ReturnOnInvestment:   d(1066314),
		MiscellaneousIncome:  d(3485633),
		InterestOnDeposits:   d(26698057),
		InterestOnBorrowings: d(770021),
	}

	assert.True(t, pl.TotalInterestIncome().Equal(d(49854971)))
	assert.True(t, pl.TotalInterestExpense().Equal(d(27468078)))
	assert.True(t, pl.TotalIncome().Equal(d(53340604)))
}

func TestStatements_Missing(t *testing.T) {
	assert.Equal(t, []string{"trading_account", "profit_loss", "balance_sheet", "operational_metrics"}, Statements{}.Missing())

	s := Statements{
		Trading:    &TradingAccount{},
		Balance:    &BalanceSheet{},
		ProfitLoss: &ProfitAndLoss{},
	}
	assert.Equal(t, []string{"operational_metrics"}, s.Missing())
}

func TestDate_JSON(t *testing.T) {
	date := NewDate(2012, 4, 1)
	raw, err := date.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2012-04-01"`, string(raw))

	var parsed Date
	assert.NoError(t, parsed.UnmarshalJSON([]byte(`"2013-03-31T00:00:00Z"`)))
	assert.Equal(t, "2013-03-31", parsed.String())

	assert.Error(t, parsed.UnmarshalJSON([]byte(`"31/03/2013"`)))
}

func TestRatioSet_Filter(t *testing.T) {
	set := RatioSet{"net_margin": 1.2, "stock_turnover": 17.38}
	assert.Equal(t, RatioSet{"net_margin": 1.2}, set.Filter([]string{"net_margin", "unknown"}))
	assert.Equal(t, set, set.Filter(nil))
}

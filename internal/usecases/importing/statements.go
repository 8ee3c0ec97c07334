package importing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func tradingFields(t *domain.TradingAccount) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"opening_stock": &t.OpeningStock,
		"purchases":     &t.Purchases,
		"trade_charges": &t.TradeCharges,
		"sales":         &t.Sales,
		"closing_stock": &t.ClosingStock,
	}
}

func profitLossFields(p *domain.ProfitAndLoss) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"interest_on_loans":           &p.InterestOnLoans,
		"interest_on_bank_ac":         &p.InterestOnBankAc,
		"return_on_investment":        &p.ReturnOnInvestment,
		"miscellaneous_income":        &p.MiscellaneousIncome,
		"interest_on_deposits":        &p.InterestOnDeposits,
		"interest_on_borrowings":      &p.InterestOnBorrowings,
		"establishment_contingencies": &p.EstablishmentContingencies,
		"provisions":                  &p.Provisions,
		"net_profit":                  &p.NetProfit,
	}
}

func balanceSheetFields(b *domain.BalanceSheet) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"share_capital":           &b.ShareCapital,
		"deposits":                &b.Deposits,
		"borrowings":              &b.Borrowings,
		"reserves_statutory_free": &b.ReservesStatutoryFree,
		"undistributed_profit":    &b.UndistributedProfit,
		"provisions":              &b.Provisions,
		"other_liabilities":       &b.OtherLiabilities,
		"cash_in_hand":            &b.CashInHand,
		"cash_at_bank":            &b.CashAtBank,
		"investments":             &b.Investments,
		"loans_advances":          &b.LoansAdvances,
		"fixed_assets":            &b.FixedAssets,
		"other_assets":            &b.OtherAssets,
		"stock_in_trade":          &b.StockInTrade,
	}
}

// BuildStatements converte os valores lidos nos quatro demonstrativos.
// Retorna os campos obrigatórios ausentes no formato "TIPO.campo".
func BuildStatements(workbook *Workbook, resolver *Resolver) (domain.Statements, []string, error) {
	var missing []string
	for _, statementType := range domain.StatementTypes {
		for _, field := range resolver.Required(statementType) {
			if _, ok := workbook.Values[statementType][field]; !ok {
				missing = append(missing, fmt.Sprintf("%s.%s", statementType, field))
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return domain.Statements{}, missing, nil
	}

	trading := &domain.TradingAccount{}
	profitLoss := &domain.ProfitAndLoss{}
	balance := &domain.BalanceSheet{}
	operational := &domain.OperationalMetrics{}

	assign := func(statementType domain.StatementType, fields map[string]*decimal.Decimal) {
		for field, value := range workbook.Values[statementType] {
			target, ok := fields[field]
			if !ok {
				workbook.warn("Campo '%s' não pertence ao demonstrativo %s", field, statementType)
				continue
			}
			*target = value
		}
	}

	assign(domain.StatementTypeTrading, tradingFields(trading))
	assign(domain.StatementTypeProfitLoss, profitLossFields(profitLoss))
	assign(domain.StatementTypeBalanceSheet, balanceSheetFields(balance))

	for field, value := range workbook.Values[domain.StatementTypeOperational] {
		if field != "staff_count" {
			workbook.warn("Campo '%s' não pertence ao demonstrativo %s", field, domain.StatementTypeOperational)
			continue
		}
		if value.IsNegative() || !value.Equal(value.Truncate(0)) {
			return domain.Statements{}, nil, NewImportError(ErrInvalidValue, apiErrors.ErrInvalidFormat, "Quantidade de funcionários deve ser um inteiro não negativo")
		}
		operational.StaffCount = int(value.IntPart())
	}

	return domain.Statements{
		Trading:     trading,
		ProfitLoss:  profitLoss,
		Balance:     balance,
		Operational: operational,
	}, nil, nil
}

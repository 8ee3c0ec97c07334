package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const (
	tradingTable      = "trading_accounts"
	profitLossTable   = "profit_and_loss"
	balanceSheetTable = "balance_sheets"
	operationalTable  = "operational_metrics"
)

var (
	tradingColumns = []string{"opening_stock", "purchases", "trade_charges", "sales", "closing_stock"}

	profitLossColumns = []string{
		"interest_on_loans", "interest_on_bank_ac", "return_on_investment", "miscellaneous_income",
		"interest_on_deposits", "interest_on_borrowings", "establishment_contingencies", "provisions", "net_profit",
	}

	balanceSheetColumns = []string{
		"share_capital", "deposits", "borrowings", "reserves_statutory_free", "undistributed_profit",
		"provisions", "other_liabilities", "cash_in_hand", "cash_at_bank", "investments",
		"loans_advances", "fixed_assets", "other_assets", "stock_in_trade",
	}

	operationalColumns = []string{"staff_count"}
)

type StatementRepository interface {
	CreateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error)
	UpdateTradingAccount(ctx context.Context, t *domain.TradingAccount) error
	GetTradingAccount(ctx context.Context, id int) (*domain.TradingAccount, error)
	ListTradingAccounts(ctx context.Context, periodID *int) ([]*domain.TradingAccount, error)

	CreateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error)
	UpdateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) error
	GetProfitAndLoss(ctx context.Context, id int) (*domain.ProfitAndLoss, error)
	ListProfitAndLoss(ctx context.Context, periodID *int) ([]*domain.ProfitAndLoss, error)

	CreateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheet, error)
	UpdateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) error
	GetBalanceSheet(ctx context.Context, id int) (*domain.BalanceSheet, error)
	ListBalanceSheets(ctx context.Context, periodID *int) ([]*domain.BalanceSheet, error)

	CreateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error)
	UpdateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) error
	GetOperationalMetrics(ctx context.Context, id int) (*domain.OperationalMetrics, error)
	ListOperationalMetrics(ctx context.Context, periodID *int) ([]*domain.OperationalMetrics, error)

	// Delete remove um demonstrativo pelo tipo e ID
	Delete(ctx context.Context, statementType domain.StatementType, id int) error
	// DeleteByPeriod remove os quatro demonstrativos do período
	DeleteByPeriod(ctx context.Context, periodID int) error
	// GetByPeriod carrega os demonstrativos existentes do período
	GetByPeriod(ctx context.Context, periodID int) (*domain.Statements, error)
}

type statementRepository struct {
	conn *postgres.Connection
}

func NewStatementRepository(conn *postgres.Connection) StatementRepository {
	return &statementRepository{
		conn: conn,
	}
}

func tableFor(statementType domain.StatementType) (string, error) {
	switch statementType {
	case domain.StatementTypeTrading:
		return tradingTable, nil
	case domain.StatementTypeProfitLoss:
		return profitLossTable, nil
	case domain.StatementTypeBalanceSheet:
		return balanceSheetTable, nil
	case domain.StatementTypeOperational:
		return operationalTable, nil
	}
	return "", fmt.Errorf("tipo de demonstrativo desconhecido: %s", statementType)
}

// insert grava as colunas e preenche id e datas
func (r *statementRepository) insert(ctx context.Context, table string, periodID int, columns []string, values []any, dest ...any) error {
	query, args, err := squirrel.
		Insert(table).
		Columns(append([]string{"period_id"}, columns...)...).
		Values(append([]any{periodID}, values...)...).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *statementRepository) update(ctx context.Context, table string, id int, columns []string, values []any) error {
	clauses := make(map[string]any, len(columns)+1)
	for i, column := range columns {
		clauses[column] = values[i]
	}
	clauses["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := squirrel.
		Update(table).
		SetMap(clauses).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar %s: %w", table, err)
	}
	return nil
}

func (r *statementRepository) selectBuilder(table string, columns []string) squirrel.SelectBuilder {
	all := append([]string{"id", "period_id"}, columns...)
	all = append(all, "created_at", "updated_at")

	return squirrel.
		Select(all...).
		From(table).
		OrderBy("period_id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// query executa a consulta chamando scan para cada linha
func (r *statementRepository) query(ctx context.Context, builder squirrel.SelectBuilder, scan func(scanner) error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao consultar demonstrativos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("erro ao processar resultado: %w", err)
		}
	}

	return rows.Err()
}

func wherePeriod(builder squirrel.SelectBuilder, periodID *int) squirrel.SelectBuilder {
	if periodID != nil {
		return builder.Where(squirrel.Eq{"period_id": *periodID})
	}
	return builder
}

// Trading account

func tradingValues(t *domain.TradingAccount) []any {
	return []any{t.OpeningStock, t.Purchases, t.TradeCharges, t.Sales, t.ClosingStock}
}

func scanTrading(row scanner) (*domain.TradingAccount, error) {
	var t domain.TradingAccount
	err := row.Scan(&t.ID, &t.PeriodID, &t.OpeningStock, &t.Purchases, &t.TradeCharges, &t.Sales, &t.ClosingStock, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *statementRepository) CreateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error) {
	if err := r.insert(ctx, tradingTable, t.PeriodID, tradingColumns, tradingValues(t), &t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *statementRepository) UpdateTradingAccount(ctx context.Context, t *domain.TradingAccount) error {
	return r.update(ctx, tradingTable, t.ID, tradingColumns, tradingValues(t))
}

func (r *statementRepository) GetTradingAccount(ctx context.Context, id int) (*domain.TradingAccount, error) {
	return r.getTrading(ctx, squirrel.Eq{"id": id})
}

func (r *statementRepository) getTrading(ctx context.Context, where squirrel.Eq) (*domain.TradingAccount, error) {
	var found *domain.TradingAccount
	err := r.query(ctx, r.selectBuilder(tradingTable, tradingColumns).Where(where), func(row scanner) error {
		t, err := scanTrading(row)
		found = t
		return err
	})
	return found, err
}

func (r *statementRepository) ListTradingAccounts(ctx context.Context, periodID *int) ([]*domain.TradingAccount, error) {
	list := make([]*domain.TradingAccount, 0)
	err := r.query(ctx, wherePeriod(r.selectBuilder(tradingTable, tradingColumns), periodID), func(row scanner) error {
		t, err := scanTrading(row)
		if err == nil {
			list = append(list, t)
		}
		return err
	})
	return list, err
}

// Profit and loss

func profitLossValues(p *domain.ProfitAndLoss) []any {
	return []any{
		p.InterestOnLoans, p.InterestOnBankAc, p.ReturnOnInvestment, p.MiscellaneousIncome,
		p.InterestOnDeposits, p.InterestOnBorrowings, p.EstablishmentContingencies, p.Provisions, p.NetProfit,
	}
}

func scanProfitLoss(row scanner) (*domain.ProfitAndLoss, error) {
	var p domain.ProfitAndLoss
	err := row.Scan(
		&p.ID, &p.PeriodID,
		&p.InterestOnLoans, &p.InterestOnBankAc, &p.ReturnOnInvestment, &p.MiscellaneousIncome,
		&p.InterestOnDeposits, &p.InterestOnBorrowings, &p.EstablishmentContingencies, &p.Provisions, &p.NetProfit,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *statementRepository) CreateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error) {
	if err := r.insert(ctx, profitLossTable, p.PeriodID, profitLossColumns, profitLossValues(p), &p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *statementRepository) UpdateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) error {
	return r.update(ctx, profitLossTable, p.ID, profitLossColumns, profitLossValues(p))
}

func (r *statementRepository) GetProfitAndLoss(ctx context.Context, id int) (*domain.ProfitAndLoss, error) {
	return r.getProfitLoss(ctx, squirrel.Eq{"id": id})
}

func (r *statementRepository) getProfitLoss(ctx context.Context, where squirrel.Eq) (*domain.ProfitAndLoss, error) {
	var found *domain.ProfitAndLoss
	err := r.query(ctx, r.selectBuilder(profitLossTable, profitLossColumns).Where(where), func(row scanner) error {
		p, err := scanProfitLoss(row)
		found = p
		return err
	})
	return found, err
}

func (r *statementRepository) ListProfitAndLoss(ctx context.Context, periodID *int) ([]*domain.ProfitAndLoss, error) {
	list := make([]*domain.ProfitAndLoss, 0)
	err := r.query(ctx, wherePeriod(r.selectBuilder(profitLossTable, profitLossColumns), periodID), func(row scanner) error {
		p, err := scanProfitLoss(row)
		if err == nil {
			list = append(list, p)
		}
		return err
	})
	return list, err
}

// Balance sheet

func balanceSheetValues(b *domain.BalanceSheet) []any {
	return []any{
		b.ShareCapital, b.Deposits, b.Borrowings, b.ReservesStatutoryFree, b.UndistributedProfit,
		b.Provisions, b.OtherLiabilities, b.CashInHand, b.CashAtBank, b.Investments,
		b.LoansAdvances, b.FixedAssets, b.OtherAssets, b.StockInTrade,
	}
}

func scanBalanceSheet(row scanner) (*domain.BalanceSheet, error) {
	var b domain.BalanceSheet
	err := row.Scan(
		&b.ID, &b.PeriodID,
		&b.ShareCapital, &b.Deposits, &b.Borrowings, &b.ReservesStatutoryFree, &b.UndistributedProfit,
		&b.Provisions, &b.OtherLiabilities, &b.CashInHand, &b.CashAtBank, &b.Investments,
		&b.LoansAdvances, &b.FixedAssets, &b.OtherAssets, &b.StockInTrade,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *statementRepository) CreateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheet, error) {
	if err := r.insert(ctx, balanceSheetTable, b.PeriodID, balanceSheetColumns, balanceSheetValues(b), &b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *statementRepository) UpdateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) error {
	return r.update(ctx, balanceSheetTable, b.ID, balanceSheetColumns, balanceSheetValues(b))
}

func (r *statementRepository) GetBalanceSheet(ctx context.Context, id int) (*domain.BalanceSheet, error) {
	return r.getBalanceSheet(ctx, squirrel.Eq{"id": id})
}

func (r *statementRepository) getBalanceSheet(ctx context.Context, where squirrel.Eq) (*domain.BalanceSheet, error) {
	var found *domain.BalanceSheet
	err := r.query(ctx, r.selectBuilder(balanceSheetTable, balanceSheetColumns).Where(where), func(row scanner) error {
		b, err := scanBalanceSheet(row)
		found = b
		return err
	})
	return found, err
}

func (r *statementRepository) ListBalanceSheets(ctx context.Context, periodID *int) ([]*domain.BalanceSheet, error) {
	list := make([]*domain.BalanceSheet, 0)
	err := r.query(ctx, wherePeriod(r.selectBuilder(balanceSheetTable, balanceSheetColumns), periodID), func(row scanner) error {
		b, err := scanBalanceSheet(row)
		if err == nil {
			list = append(list, b)
		}
		return err
	})
	return list, err
}

// Operational metrics

func scanOperational(row scanner) (*domain.OperationalMetrics, error) {
	var o domain.OperationalMetrics
	if err := row.Scan(&o.ID, &o.PeriodID, &o.StaffCount, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *statementRepository) CreateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error) {
	if err := r.insert(ctx, operationalTable, o.PeriodID, operationalColumns, []any{o.StaffCount}, &o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *statementRepository) UpdateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) error {
	return r.update(ctx, operationalTable, o.ID, operationalColumns, []any{o.StaffCount})
}

func (r *statementRepository) GetOperationalMetrics(ctx context.Context, id int) (*domain.OperationalMetrics, error) {
	return r.getOperational(ctx, squirrel.Eq{"id": id})
}

func (r *statementRepository) getOperational(ctx context.Context, where squirrel.Eq) (*domain.OperationalMetrics, error) {
	var found *domain.OperationalMetrics
	err := r.query(ctx, r.selectBuilder(operationalTable, operationalColumns).Where(where), func(row scanner) error {
		o, err := scanOperational(row)
		found = o
		return err
	})
	return found, err
}

func (r *statementRepository) ListOperationalMetrics(ctx context.Context, periodID *int) ([]*domain.OperationalMetrics, error) {
	list := make([]*domain.OperationalMetrics, 0)
	err := r.query(ctx, wherePeriod(r.selectBuilder(operationalTable, operationalColumns), periodID), func(row scanner) error {
		o, err := scanOperational(row)
		if err == nil {
			list = append(list, o)
		}
		return err
	})
	return list, err
}

func (r *statementRepository) Delete(ctx context.Context, statementType domain.StatementType, id int) error {
	table, err := tableFor(statementType)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover demonstrativo: %w", err)
	}

	return nil
}

func (r *statementRepository) DeleteByPeriod(ctx context.Context, periodID int) error {
	for _, table := range []string{tradingTable, profitLossTable, balanceSheetTable, operationalTable} {
		query, args, err := squirrel.
			Delete(table).
			Where(squirrel.Eq{"period_id": periodID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover %s: %w", table, err)
		}
	}

	return nil
}

func (r *statementRepository) GetByPeriod(ctx context.Context, periodID int) (*domain.Statements, error) {
	where := squirrel.Eq{"period_id": periodID}

	trading, err := r.getTrading(ctx, where)
	if err != nil {
		return nil, err
	}

	profitLoss, err := r.getProfitLoss(ctx, where)
	if err != nil {
		return nil, err
	}

	balance, err := r.getBalanceSheet(ctx, where)
	if err != nil {
		return nil, err
	}

	operational, err := r.getOperational(ctx, where)
	if err != nil {
		return nil, err
	}

	return &domain.Statements{
		Trading:     trading,
		ProfitLoss:  profitLoss,
		Balance:     balance,
		Operational: operational,
	}, nil
}

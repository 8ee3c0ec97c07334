package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const periodsTable = "financial_periods"

var periodColumns = []string{
	"p.id", "p.company_id", "p.period_type", "p.start_date", "p.end_date", "p.label",
	"p.is_finalized", "p.uploaded_file", "p.file_type", "p.created_at", "p.updated_at",
}

type PeriodRepository interface {
	Create(ctx context.Context, period *domain.FinancialPeriod) (*domain.FinancialPeriod, error)
	Update(ctx context.Context, period *domain.FinancialPeriod) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.FinancialPeriod, error)
	GetByLabel(ctx context.Context, companyID int, label string) (*domain.FinancialPeriod, error)
	List(ctx context.Context, filters domain.PeriodFilters) ([]*domain.FinancialPeriod, error)
	// Touch marca os índices do período como desatualizados
	Touch(ctx context.Context, id int) error
	// ListStale retorna períodos completos cujos índices faltam ou são anteriores à última alteração
	ListStale(ctx context.Context) ([]*domain.FinancialPeriod, error)
}

type periodRepository struct {
	conn *postgres.Connection
}

func NewPeriodRepository(conn *postgres.Connection) PeriodRepository {
	return &periodRepository{
		conn: conn,
	}
}

func scanPeriod(row scanner) (*domain.FinancialPeriod, error) {
	var p domain.FinancialPeriod
	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.PeriodType,
		&p.StartDate,
		&p.EndDate,
		&p.Label,
		&p.IsFinalized,
		&p.UploadedFile,
		&p.FileType,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *periodRepository) Create(ctx context.Context, period *domain.FinancialPeriod) (*domain.FinancialPeriod, error) {
	query, args, err := squirrel.
		Insert(periodsTable).
		Columns("company_id", "period_type", "start_date", "end_date", "label", "is_finalized", "uploaded_file", "file_type").
		Values(period.CompanyID, period.PeriodType, period.StartDate, period.EndDate, period.Label, period.IsFinalized, period.UploadedFile, period.FileType).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return period, nil
}

func (r *periodRepository) Update(ctx context.Context, period *domain.FinancialPeriod) error {
	query, args, err := squirrel.
		Update(periodsTable).
		Set("period_type", period.PeriodType).
		Set("start_date", period.StartDate).
		Set("end_date", period.EndDate).
		Set("label", period.Label).
		Set("is_finalized", period.IsFinalized).
		Set("uploaded_file", period.UploadedFile).
		Set("file_type", period.FileType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": period.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *periodRepository) Delete(ctx context.Context, id int) error {
	query, args, err := squirrel.
		Delete(periodsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover período: %w", err)
	}

	return nil
}

func (r *periodRepository) GetByID(ctx context.Context, id int) (*domain.FinancialPeriod, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

func (r *periodRepository) GetByLabel(ctx context.Context, companyID int, label string) (*domain.FinancialPeriod, error) {
	return r.getOne(ctx, squirrel.Eq{"p.company_id": companyID, "p.label": label})
}

func (r *periodRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.FinancialPeriod, error) {
	query, args, err := squirrel.
		Select(periodColumns...).
		From(periodsTable + " p").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	period, err := scanPeriod(r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar período: %w", err)
	}

	return period, nil
}

func (r *periodRepository) List(ctx context.Context, filters domain.PeriodFilters) ([]*domain.FinancialPeriod, error) {
	queryBuilder := squirrel.
		Select(periodColumns...).
		From(periodsTable + " p").
		OrderBy("p.start_date ASC", "p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.CompanyID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.company_id": *filters.CompanyID})
	}

	if filters.Label != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.label": filters.Label})
	}

	return r.list(ctx, queryBuilder)
}

func (r *periodRepository) Touch(ctx context.Context, id int) error {
	query, args, err := squirrel.
		Update(periodsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar período: %w", err)
	}

	return nil
}

func (r *periodRepository) ListStale(ctx context.Context) ([]*domain.FinancialPeriod, error) {
	queryBuilder := squirrel.
		Select(periodColumns...).
		From(periodsTable + " p").
		Join(tradingTable + " t ON t.period_id = p.id").
		Join(profitLossTable + " pl ON pl.period_id = p.id").
		Join(balanceSheetTable + " b ON b.period_id = p.id").
		Join(operationalTable + " o ON o.period_id = p.id").
		LeftJoin(ratioResultsTable + " rr ON rr.period_id = p.id").
		Where(squirrel.Or{
			squirrel.Eq{"rr.id": nil},
			squirrel.Expr("rr.calculated_at < p.updated_at"),
		}).
		OrderBy("p.company_id ASC", "p.start_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, queryBuilder)
}

func (r *periodRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.FinancialPeriod, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos: %w", err)
	}
	defer rows.Close()

	periods := make([]*domain.FinancialPeriod, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return periods, nil
}

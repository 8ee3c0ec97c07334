package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const ratioResultsTable = "ratio_results"

var ratioResultColumns = []string{
	"rr.id", "rr.period_id", "rr.working_fund", "rr.net_margin", "rr.all_ratios",
	"rr.traffic_light_status", "rr.interpretation", "rr.is_efficient", "rr.calculated_at",
}

type RatioResultRepository interface {
	// Upsert grava ou substitui o resultado do período
	Upsert(ctx context.Context, result *domain.RatioResult) (*domain.RatioResult, error)
	GetByID(ctx context.Context, id int) (*domain.RatioResult, error)
	GetByPeriod(ctx context.Context, periodID int) (*domain.RatioResult, error)
	List(ctx context.Context, filters domain.RatioFilters) ([]*domain.RatioResult, error)
}

type ratioResultRepository struct {
	conn *postgres.Connection
}

func NewRatioResultRepository(conn *postgres.Connection) RatioResultRepository {
	return &ratioResultRepository{
		conn: conn,
	}
}

func scanRatioResult(row scanner) (*domain.RatioResult, error) {
	var (
		result       domain.RatioResult
		workingFund  decimal.Decimal
		netMargin    decimal.Decimal
		allRatios    []byte
		trafficLight []byte
	)

	err := row.Scan(
		&result.ID,
		&result.PeriodID,
		&workingFund,
		&netMargin,
		&allRatios,
		&trafficLight,
		&result.Interpretation,
		&result.IsEfficient,
		&result.CalculatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.WorkingFund = workingFund.InexactFloat64()
	result.NetMargin = netMargin.InexactFloat64()

	if err := json.Unmarshal(allRatios, &result.AllRatios); err != nil {
		return nil, fmt.Errorf("erro ao decodificar all_ratios: %w", err)
	}
	if err := json.Unmarshal(trafficLight, &result.TrafficLightStatus); err != nil {
		return nil, fmt.Errorf("erro ao decodificar traffic_light_status: %w", err)
	}

	return &result, nil
}

func (r *ratioResultRepository) Upsert(ctx context.Context, result *domain.RatioResult) (*domain.RatioResult, error) {
	allRatios, err := json.Marshal(result.AllRatios)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar índices: %w", err)
	}

	trafficLight, err := json.Marshal(result.TrafficLightStatus)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar semáforo: %w", err)
	}

	query, args, err := squirrel.
		Insert(ratioResultsTable).
		Columns("period_id", "working_fund", "net_margin", "all_ratios", "traffic_light_status", "interpretation", "is_efficient", "calculated_at").
		Values(
			result.PeriodID,
			decimal.NewFromFloat(result.WorkingFund),
			decimal.NewFromFloat(result.NetMargin),
			string(allRatios),
			string(trafficLight),
			result.Interpretation,
			result.IsEfficient,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (period_id) DO UPDATE SET
			working_fund = EXCLUDED.working_fund,
			net_margin = EXCLUDED.net_margin,
			all_ratios = EXCLUDED.all_ratios,
			traffic_light_status = EXCLUDED.traffic_light_status,
			interpretation = EXCLUDED.interpretation,
			is_efficient = EXCLUDED.is_efficient,
			calculated_at = EXCLUDED.calculated_at
			RETURNING id, calculated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&result.ID, &result.CalculatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar índices: %w", err)
	}

	return result, nil
}

func (r *ratioResultRepository) GetByID(ctx context.Context, id int) (*domain.RatioResult, error) {
	return r.getOne(ctx, squirrel.Eq{"rr.id": id})
}

func (r *ratioResultRepository) GetByPeriod(ctx context.Context, periodID int) (*domain.RatioResult, error) {
	return r.getOne(ctx, squirrel.Eq{"rr.period_id": periodID})
}

func (r *ratioResultRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.RatioResult, error) {
	query, args, err := squirrel.
		Select(ratioResultColumns...).
		From(ratioResultsTable + " rr").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := scanRatioResult(r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar índices: %w", err)
	}

	return result, nil
}

func (r *ratioResultRepository) List(ctx context.Context, filters domain.RatioFilters) ([]*domain.RatioResult, error) {
	queryBuilder := squirrel.
		Select(ratioResultColumns...).
		From(ratioResultsTable + " rr").
		Join(periodsTable + " p ON p.id = rr.period_id").
		OrderBy("p.start_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.PeriodID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"rr.period_id": *filters.PeriodID})
	}

	if filters.CompanyID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.company_id": *filters.CompanyID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar índices: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.RatioResult, 0)
	for rows.Next() {
		result, err := scanRatioResult(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return results, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const columnConfigsTable = "statement_column_configs"

var columnConfigColumns = []string{
	"id", "company_id", "statement_type", "canonical_field", "display_name",
	"aliases", "is_required", "created_at", "updated_at",
}

type ColumnConfigRepository interface {
	Create(ctx context.Context, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error)
	Update(ctx context.Context, cfg *domain.StatementColumnConfig) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.StatementColumnConfig, error)
	List(ctx context.Context, filters domain.ColumnConfigFilters) ([]*domain.StatementColumnConfig, error)
}

type columnConfigRepository struct {
	conn *postgres.Connection
}

func NewColumnConfigRepository(conn *postgres.Connection) ColumnConfigRepository {
	return &columnConfigRepository{
		conn: conn,
	}
}

func scanColumnConfig(row scanner) (*domain.StatementColumnConfig, error) {
	var (
		cfg     domain.StatementColumnConfig
		aliases []byte
	)

	err := row.Scan(
		&cfg.ID,
		&cfg.CompanyID,
		&cfg.StatementType,
		&cfg.CanonicalField,
		&cfg.DisplayName,
		&aliases,
		&cfg.IsRequired,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.Aliases = []string{}
	if len(aliases) > 0 {
		if err := json.Unmarshal(aliases, &cfg.Aliases); err != nil {
			return nil, fmt.Errorf("erro ao decodificar aliases: %w", err)
		}
	}

	return &cfg, nil
}

func aliasesJSON(aliases []string) (string, error) {
	if aliases == nil {
		aliases = []string{}
	}
	raw, err := json.Marshal(aliases)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar aliases: %w", err)
	}
	return string(raw), nil
}

func (r *columnConfigRepository) Create(ctx context.Context, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error) {
	aliases, err := aliasesJSON(cfg.Aliases)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(columnConfigsTable).
		Columns("company_id", "statement_type", "canonical_field", "display_name", "aliases", "is_required").
		Values(cfg.CompanyID, cfg.StatementType, cfg.CanonicalField, cfg.DisplayName, aliases, cfg.IsRequired).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return cfg, nil
}

func (r *columnConfigRepository) Update(ctx context.Context, cfg *domain.StatementColumnConfig) error {
	aliases, err := aliasesJSON(cfg.Aliases)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(columnConfigsTable).
		Set("company_id", cfg.CompanyID).
		Set("statement_type", cfg.StatementType).
		Set("canonical_field", cfg.CanonicalField).
		Set("display_name", cfg.DisplayName).
		Set("aliases", aliases).
		Set("is_required", cfg.IsRequired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cfg.ID}).
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

func (r *columnConfigRepository) Delete(ctx context.Context, id int) error {
	query, args, err := squirrel.
		Delete(columnConfigsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover configuração de coluna: %w", err)
	}

	return nil
}

func (r *columnConfigRepository) GetByID(ctx context.Context, id int) (*domain.StatementColumnConfig, error) {
	query, args, err := squirrel.
		Select(columnConfigColumns...).
		From(columnConfigsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	cfg, err := scanColumnConfig(r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração de coluna: %w", err)
	}

	return cfg, nil
}

func (r *columnConfigRepository) List(ctx context.Context, filters domain.ColumnConfigFilters) ([]*domain.StatementColumnConfig, error) {
	queryBuilder := squirrel.
		Select(columnConfigColumns...).
		From(columnConfigsTable).
		OrderBy("canonical_field ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StatementType != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"statement_type": filters.StatementType})
	}

	switch {
	case filters.OnlyGlobal:
		queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": nil})
	case filters.CompanyID != nil && filters.IncludeGlobal:
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.Eq{"company_id": *filters.CompanyID},
			squirrel.Eq{"company_id": nil},
		})
	case filters.CompanyID != nil:
		queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": *filters.CompanyID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar configurações de coluna: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.StatementColumnConfig, 0)
	for rows.Next() {
		cfg, err := scanColumnConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return configs, nil
}

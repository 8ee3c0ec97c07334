package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

const companiesTable = "companies"

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Company, error)
	List(ctx context.Context, filters domain.CompanyFilters) ([]*domain.Company, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query, args, err := squirrel.
		Insert(companiesTable).
		Columns("name", "registration_no").
		Values(company.Name, company.RegistrationNo).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	query, args, err := squirrel.
		Update(companiesTable).
		Set("name", company.Name).
		Set("registration_no", company.RegistrationNo).
		Where(squirrel.Eq{"id": company.ID}).
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

func (r *companyRepository) Delete(ctx context.Context, id int) error {
	query, args, err := squirrel.
		Delete(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover empresa: %w", err)
	}

	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int) (*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "name", "registration_no", "created_at").
		From(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var company domain.Company
	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.RegistrationNo,
		&company.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	return &company, nil
}

func (r *companyRepository) List(ctx context.Context, filters domain.CompanyFilters) ([]*domain.Company, error) {
	queryBuilder := squirrel.
		Select("id", "name", "registration_no", "created_at").
		From(companiesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"registration_no": pattern},
		})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.RegistrationNo, &company.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return companies, nil
}

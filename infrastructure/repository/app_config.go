package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
)

const appConfigTable = "app_config"

// AppConfigRepository guarda configurações da aplicação como JSON por chave
type AppConfigRepository interface {
	Get(ctx context.Context, key string) (map[string]any, error)
	Set(ctx context.Context, key string, value map[string]any) error
}

type appConfigRepository struct {
	conn *postgres.Connection
}

func NewAppConfigRepository(conn *postgres.Connection) AppConfigRepository {
	return &appConfigRepository{
		conn: conn,
	}
}

func (r *appConfigRepository) Get(ctx context.Context, key string) (map[string]any, error) {
	query, args, err := squirrel.
		Select("value").
		From(appConfigTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var raw []byte
	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração %s: %w", key, err)
	}

	var value map[string]any
	if err := json.Unmarshal(raw, &value); err != nil {
		// valor não é um objeto JSON
		return nil, nil
	}

	return value, nil
}

func (r *appConfigRepository) Set(ctx context.Context, key string, value map[string]any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := squirrel.
		Insert(appConfigTable).
		Columns("key", "value", "updated_at").
		Values(key, string(raw), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configuração %s: %w", key, err)
	}

	return nil
}

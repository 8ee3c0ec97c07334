package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Migrate aplica o schema; todas as instruções são idempotentes
func Migrate(ctx context.Context, conn *Connection) error {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logrus.Info("Schema do banco de dados aplicado com sucesso")
	return nil
}

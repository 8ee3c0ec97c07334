package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "interest_on_deposits", Normalize("  Interest   on Deposits "))
	assert.Equal(t, "", Normalize("   "))
}

func TestDefaultCatalog(t *testing.T) {
	for _, statementType := range domain.StatementTypes {
		assert.NotEmpty(t, DefaultCatalog[statementType], statementType)
	}

	f, ok := DefaultCatalog.Field(domain.StatementTypeOperational, "staff_count")
	require.True(t, ok)
	assert.True(t, f.Required)

	_, err := LoadCatalog([]byte("UNKNOWN:\n  - field: x\n"))
	assert.Error(t, err)
}

func TestResolver_Resolve(t *testing.T) {
	companyID := 7
	configs := []*domain.StatementColumnConfig{
		{
			CompanyID:      &companyID,
			StatementType:  domain.StatementTypeProfitLoss,
			CanonicalField: "interest_on_deposits",
			DisplayName:    "Deposit Interest",
			Aliases:        []string{"Juros de depósitos"},
		},
		{
			StatementType:  domain.StatementTypeProfitLoss,
			CanonicalField: "interest_on_borrowings",
			DisplayName:    "Deposit Interest",
			IsRequired:     true,
		},
	}
	resolver := NewResolver(configs, DefaultCatalog)

	tests := []struct {
		name          string
		statementType domain.StatementType
		input         string
		field         string
		found         bool
	}{
		{"Nome canônico", domain.StatementTypeTrading, "closing_stock", "closing_stock", true},
		{"Nome de exibição do catálogo", domain.StatementTypeTrading, "Closing Stock", "closing_stock", true},
		{"Apelido do catálogo", domain.StatementTypeBalanceSheet, "Loans and Advances", "loans_advances", true},
		{"Configuração da empresa vence a global", domain.StatementTypeProfitLoss, "deposit interest", "interest_on_deposits", true},
		{"Apelido da empresa", domain.StatementTypeProfitLoss, "JUROS DE DEPÓSITOS", "interest_on_deposits", true},
		{"Tipo errado", domain.StatementTypeTrading, "Deposits", "", false},
		{"Desconhecido", domain.StatementTypeBalanceSheet, "Goodwill", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := resolver.Resolve(tt.statementType, tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.field, field)
		})
	}

	assert.Equal(t, "Deposit Interest", resolver.DisplayName(domain.StatementTypeProfitLoss, "interest_on_deposits"))
	assert.Equal(t, "Sales", resolver.DisplayName(domain.StatementTypeTrading, "sales"))
	assert.Contains(t, resolver.Required(domain.StatementTypeProfitLoss), "interest_on_borrowings")
	assert.Contains(t, resolver.Required(domain.StatementTypeProfitLoss), "net_profit")
}

package domain

import "time"

// StatementColumnConfig mapeia nomes de colunas de planilhas para campos canônicos.
// CompanyID nulo indica configuração global.
type StatementColumnConfig struct {
	ID             int           `json:"id"`
	CompanyID      *int          `json:"company"`
	StatementType  StatementType `json:"statement_type"`
	CanonicalField string        `json:"canonical_field"`
	DisplayName    string        `json:"display_name"`
	Aliases        []string      `json:"aliases"`
	IsRequired     bool          `json:"is_required"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type ColumnConfigFilters struct {
	StatementType StatementType
	CompanyID     *int
	// OnlyGlobal restringe às configurações sem empresa
	OnlyGlobal bool
	// IncludeGlobal inclui as globais junto das da empresa
	IncludeGlobal bool
}

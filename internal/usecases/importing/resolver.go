package importing

import (
	"strings"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

// Resolver traduz os nomes de linha de uma planilha para campos canônicos.
// A ordem de busca é: configurações da empresa, configurações globais e o catálogo padrão.
type Resolver struct {
	layers   []map[domain.StatementType]map[string]string
	required map[domain.StatementType][]string
	display  map[domain.StatementType]map[string]string
}

// Normalize remove espaços das pontas, converte para minúsculas e troca espaços por "_"
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}

func NewResolver(configs []*domain.StatementColumnConfig, catalog Catalog) *Resolver {
	var companyConfigs, globalConfigs []*domain.StatementColumnConfig
	for _, cfg := range configs {
		if cfg.CompanyID != nil {
			companyConfigs = append(companyConfigs, cfg)
		} else {
			globalConfigs = append(globalConfigs, cfg)
		}
	}

	r := &Resolver{
		required: map[domain.StatementType][]string{},
		display:  map[domain.StatementType]map[string]string{},
	}
	r.layers = append(r.layers, configLayer(companyConfigs), configLayer(globalConfigs), catalogLayer(catalog))

	// obrigatoriedade e nomes de exibição: a configuração mais específica vence
	seen := map[domain.StatementType]map[string]bool{}
	mark := func(statementType domain.StatementType, field, displayName string, required bool) {
		if seen[statementType] == nil {
			seen[statementType] = map[string]bool{}
			r.display[statementType] = map[string]string{}
		}
		if seen[statementType][field] {
			return
		}
		seen[statementType][field] = true
		r.display[statementType][field] = displayName
		if required {
			r.required[statementType] = append(r.required[statementType], field)
		}
	}

	for _, cfg := range append(companyConfigs, globalConfigs...) {
		mark(cfg.StatementType, cfg.CanonicalField, cfg.DisplayName, cfg.IsRequired)
	}
	for _, statementType := range domain.StatementTypes {
		for _, f := range catalog[statementType] {
			mark(statementType, f.Field, f.DisplayName, f.Required)
		}
	}

	return r
}

// configLayer indexa nome canônico, nome de exibição e apelidos, nessa prioridade
func configLayer(configs []*domain.StatementColumnConfig) map[domain.StatementType]map[string]string {
	layer := map[domain.StatementType]map[string]string{}
	add := func(statementType domain.StatementType, name, field string) {
		if layer[statementType] == nil {
			layer[statementType] = map[string]string{}
		}
		key := Normalize(name)
		if _, exists := layer[statementType][key]; !exists && key != "" {
			layer[statementType][key] = field
		}
	}

	for _, cfg := range configs {
		add(cfg.StatementType, cfg.CanonicalField, cfg.CanonicalField)
	}
	for _, cfg := range configs {
		add(cfg.StatementType, cfg.DisplayName, cfg.CanonicalField)
	}
	for _, cfg := range configs {
		for _, alias := range cfg.Aliases {
			add(cfg.StatementType, alias, cfg.CanonicalField)
		}
	}
	return layer
}

func catalogLayer(catalog Catalog) map[domain.StatementType]map[string]string {
	configs := make([]*domain.StatementColumnConfig, 0)
	for statementType, fields := range catalog {
		for _, f := range fields {
			configs = append(configs, &domain.StatementColumnConfig{
				StatementType:  statementType,
				CanonicalField: f.Field,
				DisplayName:    f.DisplayName,
				Aliases:        f.Aliases,
			})
		}
	}
	return configLayer(configs)
}

// Resolve devolve o campo canônico para o nome informado
func (r *Resolver) Resolve(statementType domain.StatementType, name string) (string, bool) {
	key := Normalize(name)
	for _, layer := range r.layers {
		if field, ok := layer[statementType][key]; ok {
			return field, true
		}
	}
	return "", false
}

// Required lista os campos obrigatórios do demonstrativo
func (r *Resolver) Required(statementType domain.StatementType) []string {
	return r.required[statementType]
}

// DisplayName devolve o nome de exibição do campo, ou o próprio campo
func (r *Resolver) DisplayName(statementType domain.StatementType, field string) string {
	if name, ok := r.display[statementType][field]; ok && name != "" {
		return name
	}
	return field
}

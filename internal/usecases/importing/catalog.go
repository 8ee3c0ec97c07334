package importing

import (
	_ "embed"
	"fmt"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogField é um campo padrão de demonstrativo
type CatalogField struct {
	Field       string   `yaml:"field"`
	DisplayName string   `yaml:"display_name"`
	Aliases     []string `yaml:"aliases"`
	Required    bool     `yaml:"required"`
}

// Catalog agrupa os campos padrão por tipo de demonstrativo
type Catalog map[domain.StatementType][]CatalogField

// DefaultCatalog é carregado do YAML embutido
var DefaultCatalog = mustLoadCatalog(catalogYAML)

func LoadCatalog(data []byte) (Catalog, error) {
	catalog := Catalog{}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("erro ao ler catálogo de campos: %w", err)
	}

	for statementType := range catalog {
		if !statementType.IsValid() {
			return nil, fmt.Errorf("tipo de demonstrativo inválido no catálogo: %s", statementType)
		}
	}
	return catalog, nil
}

func mustLoadCatalog(data []byte) Catalog {
	catalog, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Field retorna a definição padrão de um campo canônico
func (c Catalog) Field(statementType domain.StatementType, field string) (CatalogField, bool) {
	for _, f := range c[statementType] {
		if f.Field == field {
			return f, true
		}
	}
	return CatalogField{}, false
}

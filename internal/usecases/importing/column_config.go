package importing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func (s *Service) ListColumnConfigs(ctx context.Context, filters domain.ColumnConfigFilters) ([]*domain.StatementColumnConfig, error) {
	if filters.StatementType != "" && !filters.StatementType.IsValid() {
		return nil, NewImportError(ErrInvalidColumnConfig, apiErrors.ErrInvalidFormat, "Tipo de demonstrativo inválido")
	}

	configs, err := s.columnRepo.List(ctx, filters)
	if err != nil {
		return nil, dbError(err, "Falha ao listar configurações de coluna")
	}
	return configs, nil
}

func (s *Service) GetColumnConfig(ctx context.Context, id int) (*domain.StatementColumnConfig, error) {
	cfg, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err, "Falha ao buscar configuração de coluna")
	}
	if cfg == nil {
		return nil, NewImportError(ErrColumnConfigNotFound, apiErrors.ErrResourceNotFound, "Configuração de coluna não encontrada")
	}
	return cfg, nil
}

// validateColumnConfig normaliza a configuração; o campo canônico precisa existir no catálogo do tipo
func (s *Service) validateColumnConfig(ctx context.Context, cfg *domain.StatementColumnConfig) error {
	cfg.CanonicalField = strings.TrimSpace(cfg.CanonicalField)
	cfg.DisplayName = strings.TrimSpace(cfg.DisplayName)

	if cfg.StatementType == "" || cfg.CanonicalField == "" || cfg.DisplayName == "" {
		return NewImportError(ErrInvalidColumnConfig, apiErrors.ErrMissingRequiredData,
			"Tipo de demonstrativo, campo canônico e nome de exibição são obrigatórios")
	}
	if !cfg.StatementType.IsValid() {
		return NewImportError(ErrInvalidColumnConfig, apiErrors.ErrInvalidFormat, "Tipo de demonstrativo inválido")
	}
	if _, ok := s.catalog.Field(cfg.StatementType, cfg.CanonicalField); !ok {
		return NewImportError(ErrInvalidColumnConfig, apiErrors.ErrInvalidFormat,
			"Campo '"+cfg.CanonicalField+"' não existe em "+string(cfg.StatementType))
	}

	aliases := make([]string, 0, len(cfg.Aliases))
	for _, alias := range cfg.Aliases {
		if alias = strings.TrimSpace(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	cfg.Aliases = aliases

	if cfg.CompanyID != nil {
		return s.ensureCompany(ctx, *cfg.CompanyID)
	}
	return nil
}

func (s *Service) CreateColumnConfig(ctx context.Context, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error) {
	if err := s.validateColumnConfig(ctx, cfg); err != nil {
		return nil, err
	}

	created, err := s.columnRepo.Create(ctx, cfg)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewImportError(ErrDuplicateColumnConfig, apiErrors.ErrDuplicateResource,
				"Já existe configuração para este campo")
		}
		return nil, dbError(err, "Falha ao criar configuração de coluna")
	}
	return created, nil
}

func (s *Service) UpdateColumnConfig(ctx context.Context, id int, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error) {
	existing, err := s.GetColumnConfig(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateColumnConfig(ctx, cfg); err != nil {
		return nil, err
	}
	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt

	if err := s.columnRepo.Update(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewImportError(ErrDuplicateColumnConfig, apiErrors.ErrDuplicateResource,
				"Já existe configuração para este campo")
		}
		return nil, dbError(err, "Falha ao atualizar configuração de coluna")
	}
	return cfg, nil
}

func (s *Service) DeleteColumnConfig(ctx context.Context, id int) error {
	if _, err := s.GetColumnConfig(ctx, id); err != nil {
		return err
	}

	if err := s.columnRepo.Delete(ctx, id); err != nil {
		return dbError(err, "Falha ao remover configuração de coluna")
	}
	return nil
}

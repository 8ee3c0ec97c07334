package importing

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

const xlsxExt = ".xlsx"

type ImportService interface {
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)
	Template(ctx context.Context, companyID *int) (*bytes.Buffer, error)

	ListColumnConfigs(ctx context.Context, filters domain.ColumnConfigFilters) ([]*domain.StatementColumnConfig, error)
	GetColumnConfig(ctx context.Context, id int) (*domain.StatementColumnConfig, error)
	CreateColumnConfig(ctx context.Context, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error)
	UpdateColumnConfig(ctx context.Context, id int, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error)
	DeleteColumnConfig(ctx context.Context, id int) error
}

// RatioCalculator calcula e grava os índices de um período
type RatioCalculator interface {
	CalculatePeriod(ctx context.Context, periodID int) (*domain.RatioResult, error)
}

type ImportRequest struct {
	CompanyID  int
	FileName   string
	Content    []byte
	Label      string
	PeriodType domain.PeriodType
	StartDate  *domain.Date
	EndDate    *domain.Date
}

type ImportResult struct {
	PeriodID int                 `json:"period_id"`
	Label    string              `json:"label"`
	Replaced bool                `json:"replaced"`
	Warnings []string            `json:"warnings"`
	Ratios   *domain.RatioResult `json:"ratios,omitempty"`
}

type Service struct {
	tx            postgres.Transactor
	companyRepo   repository.CompanyRepository
	periodRepo    repository.PeriodRepository
	statementRepo repository.StatementRepository
	columnRepo    repository.ColumnConfigRepository
	ratios        RatioCalculator
	store         FileStore
	catalog       Catalog
	maxBytes      int64
}

func NewService(
	tx postgres.Transactor,
	companyRepo repository.CompanyRepository,
	periodRepo repository.PeriodRepository,
	statementRepo repository.StatementRepository,
	columnRepo repository.ColumnConfigRepository,
	ratios RatioCalculator,
	store FileStore,
	maxSizeMB int64,
) ImportService {
	return &Service{
		tx:            tx,
		companyRepo:   companyRepo,
		periodRepo:    periodRepo,
		statementRepo: statementRepo,
		columnRepo:    columnRepo,
		ratios:        ratios,
		store:         store,
		catalog:       DefaultCatalog,
		maxBytes:      maxSizeMB << 20,
	}
}

func dbError(err error, details string) error {
	logrus.WithError(err).Error(details)
	return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, details)
}

// resolver combina as configurações da empresa e as globais com o catálogo
func (s *Service) resolver(ctx context.Context, companyID *int) (*Resolver, error) {
	filters := domain.ColumnConfigFilters{OnlyGlobal: companyID == nil}
	if companyID != nil {
		filters.CompanyID = companyID
		filters.IncludeGlobal = true
	}

	configs, err := s.columnRepo.List(ctx, filters)
	if err != nil {
		return nil, dbError(err, "Falha ao buscar configurações de coluna")
	}
	return NewResolver(configs, s.catalog), nil
}

func (s *Service) ensureCompany(ctx context.Context, companyID int) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return dbError(err, "Falha ao buscar empresa")
	}
	if company == nil {
		return NewImportError(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, "Empresa não encontrada")
	}
	return nil
}

// Import lê a planilha e grava período e demonstrativos numa única transação.
// Um período existente com o mesmo rótulo, se não finalizado, tem seus demonstrativos substituídos.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	logger := logrus.WithFields(logrus.Fields{"company_id": req.CompanyID, "file": req.FileName})

	if req.CompanyID == 0 {
		return nil, NewImportError(ErrMissingFields, apiErrors.ErrMissingRequiredData, "Empresa é obrigatória")
	}
	if !strings.EqualFold(filepath.Ext(req.FileName), xlsxExt) {
		return nil, NewImportError(ErrUnsupportedFile, apiErrors.ErrUnsupportedFile, "Apenas arquivos .xlsx são aceitos")
	}
	if len(req.Content) == 0 {
		return nil, NewImportError(ErrInvalidWorkbook, apiErrors.ErrInvalidRequest, "Arquivo vazio")
	}
	if s.maxBytes > 0 && int64(len(req.Content)) > s.maxBytes {
		return nil, NewImportError(ErrFileTooLarge, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo permitido")
	}

	if err := s.ensureCompany(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		base := filepath.Base(req.FileName)
		label = strings.TrimSuffix(base, filepath.Ext(base))
	}

	period, err := statement.BuildPeriod(domain.PeriodInput{
		CompanyID:  req.CompanyID,
		PeriodType: req.PeriodType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Label:      label,
	})
	if err != nil {
		var stmtErr *statement.StatementError
		if errors.As(err, &stmtErr) {
			return nil, NewImportError(stmtErr.Err, stmtErr.Code, stmtErr.Details)
		}
		return nil, err
	}

	resolver, err := s.resolver(ctx, &req.CompanyID)
	if err != nil {
		return nil, err
	}

	workbook, err := ParseWorkbook(bytes.NewReader(req.Content), resolver)
	if err != nil {
		logger.WithError(err).Warn("Planilha inválida")
		return nil, NewImportError(ErrInvalidWorkbook, apiErrors.ErrUnsupportedFile, "Não foi possível ler a planilha")
	}

	statements, missing, err := BuildStatements(workbook, resolver)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		importErr := NewImportError(ErrMissingFields, apiErrors.ErrIncompleteStatements, "Campos obrigatórios ausentes na planilha")
		importErr.Missing = missing
		return nil, importErr
	}

	path, err := s.store.Save(req.Content, xlsxExt)
	if err != nil {
		logger.WithError(err).Error("Falha ao gravar arquivo enviado")
		return nil, NewImportError(ErrStorage, apiErrors.ErrInternalServer, "Falha ao gravar arquivo enviado")
	}
	fileType := strings.TrimPrefix(xlsxExt, ".")
	period.UploadedFile = &path
	period.FileType = &fileType

	replaced := false
	var previousFile string
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.periodRepo.GetByLabel(ctx, period.CompanyID, period.Label)
		if err != nil {
			return dbError(err, "Falha ao buscar período")
		}

		if existing != nil {
			if existing.IsFinalized {
				importErr := NewImportError(ErrPeriodFinalized, apiErrors.ErrPeriodFinalized, "Período "+existing.Label+" está finalizado")
				importErr.PeriodID = existing.ID
				return importErr
			}

			replaced = true
			if existing.UploadedFile != nil {
				previousFile = *existing.UploadedFile
			}
			period.ID = existing.ID
			period.CreatedAt = existing.CreatedAt
			if err := s.statementRepo.DeleteByPeriod(ctx, existing.ID); err != nil {
				return dbError(err, "Falha ao remover demonstrativos anteriores")
			}
			if err := s.periodRepo.Update(ctx, period); err != nil {
				return dbError(err, "Falha ao atualizar período")
			}
		} else {
			created, err := s.periodRepo.Create(ctx, period)
			if errors.Is(err, repository.ErrDuplicate) {
				// outra importação criou o mesmo rótulo entre a busca e a gravação
				return NewImportError(ErrDuplicatePeriod, apiErrors.ErrDuplicateResource, "Período "+period.Label+" já existe para a empresa")
			}
			if err != nil {
				return dbError(err, "Falha ao criar período")
			}
			period = created
		}

		return s.createStatements(ctx, period.ID, statements)
	})
	if err != nil {
		if removeErr := s.store.Remove(path); removeErr != nil {
			logger.WithError(removeErr).Warn("Falha ao remover arquivo de importação descartada")
		}

		var importErr *ImportError
		if errors.As(err, &importErr) {
			return nil, importErr
		}
		return nil, dbError(err, "Falha ao gravar importação")
	}

	// a planilha substituída deixa de ser referenciada
	if previousFile != "" && previousFile != path {
		if err := s.store.Remove(previousFile); err != nil {
			logger.WithError(err).WithField("file", previousFile).Warn("Falha ao remover planilha substituída")
		}
	}

	result := &ImportResult{
		PeriodID: period.ID,
		Label:    period.Label,
		Replaced: replaced,
		Warnings: workbook.Warnings,
	}

	ratios, err := s.ratios.CalculatePeriod(ctx, period.ID)
	if err != nil {
		logger.WithError(err).WithField("period_id", period.ID).Warn("Importação gravada sem cálculo de índices")
		result.Warnings = append(result.Warnings, "Índices não calculados: "+err.Error())
	} else {
		result.Ratios = ratios
	}

	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	logger.WithFields(logrus.Fields{
		"period_id": period.ID,
		"replaced":  replaced,
		"warnings":  len(result.Warnings),
	}).Info("Planilha importada")

	return result, nil
}

func (s *Service) createStatements(ctx context.Context, periodID int, st domain.Statements) error {
	st.Trading.PeriodID = periodID
	if _, err := s.statementRepo.CreateTradingAccount(ctx, st.Trading); err != nil {
		return dbError(err, "Falha ao gravar conta de trading")
	}

	st.ProfitLoss.PeriodID = periodID
	if _, err := s.statementRepo.CreateProfitAndLoss(ctx, st.ProfitLoss); err != nil {
		return dbError(err, "Falha ao gravar demonstrativo de resultado")
	}

	st.Balance.PeriodID = periodID
	if check := st.Balance.Check(); !check.IsBalanced {
		logrus.WithFields(logrus.Fields{
			"period_id":  periodID,
			"difference": check.Difference.String(),
		}).Warn("Balanço importado não fecha")
	}
	if _, err := s.statementRepo.CreateBalanceSheet(ctx, st.Balance); err != nil {
		return dbError(err, "Falha ao gravar balanço")
	}

	st.Operational.PeriodID = periodID
	if _, err := s.statementRepo.CreateOperationalMetrics(ctx, st.Operational); err != nil {
		return dbError(err, "Falha ao gravar métricas operacionais")
	}

	return nil
}

// Template gera a planilha modelo com os nomes configurados para a empresa, quando informada
func (s *Service) Template(ctx context.Context, companyID *int) (*bytes.Buffer, error) {
	if companyID != nil {
		if err := s.ensureCompany(ctx, *companyID); err != nil {
			return nil, err
		}
	}

	resolver, err := s.resolver(ctx, companyID)
	if err != nil {
		return nil, err
	}

	buf, err := Template(resolver, s.catalog)
	if err != nil {
		logrus.WithError(err).Error("Falha ao gerar planilha modelo")
		return nil, NewImportError(ErrStorage, apiErrors.ErrInternalServer, "Falha ao gerar planilha modelo")
	}
	return buf, nil
}

package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type ReportService interface {
	ExportCompanies(ctx context.Context, format Format) (*Document, error)
	ExportRatios(ctx context.Context, periodID int, format Format) (*Document, error)
}

// BenchmarkSource fornece as referências vigentes para a coluna de valor ideal
type BenchmarkSource interface {
	Benchmarks(ctx context.Context) domain.RatioBenchmarks
}

type Service struct {
	companyRepo repository.CompanyRepository
	periodRepo  repository.PeriodRepository
	ratioRepo   repository.RatioResultRepository
	benchmarks  BenchmarkSource
	now         func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	periodRepo repository.PeriodRepository,
	ratioRepo repository.RatioResultRepository,
	benchmarks BenchmarkSource,
) ReportService {
	return &Service{
		companyRepo: companyRepo,
		periodRepo:  periodRepo,
		ratioRepo:   ratioRepo,
		benchmarks:  benchmarks,
		now:         time.Now,
	}
}

func dbError(err error, periodID int, details string) error {
	logrus.WithError(err).WithField("period_id", periodID).Error(details)
	return NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, periodID, details)
}

func (s *Service) document(table Table, format Format, prefix string, periodID int) (*Document, error) {
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, NewReportError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, periodID, "Formato não suportado: "+string(format))
	}

	body, err := Render(table, format)
	if err != nil {
		logrus.WithError(err).WithField("format", format).Error("Falha ao gerar relatório")
		return nil, NewReportError(ErrRender, apiErrors.ErrInternalServer, periodID, "Falha ao gerar relatório")
	}

	return &Document{
		FileName:    FileName(prefix, s.now(), format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (s *Service) ExportCompanies(ctx context.Context, format Format) (*Document, error) {
	if format == FormatHTML {
		return nil, NewReportError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, 0, "Lista de empresas não é exportada em HTML")
	}

	companies, err := s.companyRepo.List(ctx, domain.CompanyFilters{})
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar empresas")
	}

	return s.document(CompaniesTable(companies, s.now()), format, "companies", 0)
}

func (s *Service) ExportRatios(ctx context.Context, periodID int, format Format) (*Document, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar período")
	}
	if period == nil {
		return nil, NewReportError(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, periodID, "Período não encontrado")
	}

	result, err := s.ratioRepo.GetByPeriod(ctx, periodID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar índices")
	}
	if result == nil {
		return nil, NewReportError(ErrRatiosNotFound, apiErrors.ErrResourceNotFound, periodID, "Índices não calculados para o período")
	}

	company, err := s.companyRepo.GetByID(ctx, period.CompanyID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar empresa")
	}
	if company == nil {
		company = &domain.Company{ID: period.CompanyID}
	}

	table := RatioTable(company, period, result, s.benchmarks.Benchmarks(ctx), s.now())
	return s.document(table, format, "ratio_analysis_"+company.Name, periodID)
}

package statement

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/vfg2006/coop-ratio-api/pkg/fiscal"
)

// BuildPeriod monta o período a partir da entrada. Tipo e datas omitidos são
// deduzidos do rótulo; nesse caso o rótulo é gravado na forma canônica.
func BuildPeriod(input domain.PeriodInput) (*domain.FinancialPeriod, error) {
	period := &domain.FinancialPeriod{
		CompanyID:  input.CompanyID,
		PeriodType: input.PeriodType,
		Label:      strings.TrimSpace(input.Label),
	}

	if input.StartDate != nil {
		period.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		period.EndDate = *input.EndDate
	}
	if input.IsFinalized != nil {
		period.IsFinalized = *input.IsFinalized
	}

	if period.PeriodType == "" || period.StartDate.IsZero() || period.EndDate.IsZero() {
		parsed, ok := fiscal.ParseLabel(period.Label)
		if !ok {
			return nil, NewStatementError(ErrUnknownLabel, apiErrors.ErrInvalidFormat,
				"Não foi possível identificar o período pelo rótulo '"+period.Label+"'; informe tipo e datas")
		}

		period.Label = parsed.Label
		if period.PeriodType == "" {
			period.PeriodType = domain.PeriodType(parsed.PeriodType)
		}
		if period.StartDate.IsZero() {
			period.StartDate = domain.DateOf(parsed.StartDate)
		}
		if period.EndDate.IsZero() {
			period.EndDate = domain.DateOf(parsed.EndDate)
		}
	}

	if err := period.Validate(); err != nil {
		return nil, NewStatementError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
	}

	return period, nil
}

func (s *Service) ListPeriods(ctx context.Context, filters domain.PeriodFilters) ([]*domain.FinancialPeriod, error) {
	periods, err := s.periodRepo.List(ctx, filters)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar períodos")
	}

	return periods, nil
}

func (s *Service) GetPeriod(ctx context.Context, id int) (*domain.FinancialPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err, id, "Falha ao buscar período")
	}

	if period == nil {
		return nil, NewStatementErrorWithPeriod(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, id, "Período não encontrado")
	}

	return period, nil
}

// GetPeriodDetail retorna o período com os demonstrativos e os índices gravados
func (s *Service) GetPeriodDetail(ctx context.Context, id int) (*domain.PeriodDetail, error) {
	period, err := s.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.PeriodDetail{FinancialPeriod: *period}

	company, err := s.companyRepo.GetByID(ctx, period.CompanyID)
	if err != nil {
		return nil, dbError(err, id, "Falha ao buscar empresa do período")
	}
	if company != nil {
		detail.CompanyName = company.Name
	}

	statements, err := s.statementRepo.GetByPeriod(ctx, id)
	if err != nil {
		return nil, dbError(err, id, "Falha ao buscar demonstrativos do período")
	}

	detail.TradingAccount = statements.Trading
	detail.ProfitLoss = statements.ProfitLoss
	detail.BalanceSheet = domain.NewBalanceSheetView(statements.Balance)
	detail.OperationalMetrics = statements.Operational

	detail.Ratios, err = s.ratioRepo.GetByPeriod(ctx, id)
	if err != nil {
		return nil, dbError(err, id, "Falha ao buscar índices do período")
	}

	return detail, nil
}

func (s *Service) CreatePeriod(ctx context.Context, input domain.PeriodInput) (*domain.FinancialPeriod, error) {
	period, err := BuildPeriod(input)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCompany(ctx, period.CompanyID); err != nil {
		return nil, err
	}

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		return nil, s.translatePeriodError(err, 0, period.Label)
	}

	logrus.WithFields(logrus.Fields{
		"period_id":  created.ID,
		"company_id": created.CompanyID,
		"label":      created.Label,
	}).Info("Período criado")

	return created, nil
}

func (s *Service) UpdatePeriod(ctx context.Context, id int, input domain.PeriodInput) (*domain.FinancialPeriod, error) {
	existing, err := s.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyID == 0 {
		input.CompanyID = existing.CompanyID
	}
	if input.IsFinalized == nil {
		input.IsFinalized = &existing.IsFinalized
	}

	// tipo e datas gravados só são recalculados quando o rótulo muda para um rótulo reconhecido
	label := strings.TrimSpace(input.Label)
	if label == "" || label == existing.Label {
		input.Label = existing.Label
		keepStoredSchedule(&input, existing)
	} else if _, ok := fiscal.ParseLabel(label); !ok {
		keepStoredSchedule(&input, existing)
	}

	period, err := BuildPeriod(input)
	if err != nil {
		return nil, err
	}

	if period.CompanyID != existing.CompanyID {
		if err := s.ensureCompany(ctx, period.CompanyID); err != nil {
			return nil, err
		}
	}

	period.ID = existing.ID
	period.UploadedFile = existing.UploadedFile
	period.FileType = existing.FileType
	period.CreatedAt = existing.CreatedAt

	if err := s.periodRepo.Update(ctx, period); err != nil {
		return nil, s.translatePeriodError(err, id, period.Label)
	}

	return period, nil
}

// keepStoredSchedule preenche tipo e datas omitidos com os valores gravados
func keepStoredSchedule(input *domain.PeriodInput, existing *domain.FinancialPeriod) {
	if input.PeriodType == "" {
		input.PeriodType = existing.PeriodType
	}
	if input.StartDate == nil {
		start := existing.StartDate
		input.StartDate = &start
	}
	if input.EndDate == nil {
		end := existing.EndDate
		input.EndDate = &end
	}
}

// DeletePeriod remove o período; demonstrativos e índices caem em cascata
func (s *Service) DeletePeriod(ctx context.Context, id int) error {
	if _, err := s.GetPeriod(ctx, id); err != nil {
		return err
	}

	if err := s.periodRepo.Delete(ctx, id); err != nil {
		return dbError(err, id, "Falha ao remover período")
	}

	logrus.WithField("period_id", id).Info("Período removido")

	return nil
}

func (s *Service) FinalizePeriod(ctx context.Context, id int) (*domain.FinancialPeriod, error) {
	period, err := s.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	if period.IsFinalized {
		return period, nil
	}

	period.IsFinalized = true
	if err := s.periodRepo.Update(ctx, period); err != nil {
		return nil, dbError(err, id, "Falha ao finalizar período")
	}

	return period, nil
}

func (s *Service) ensureCompany(ctx context.Context, companyID int) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return dbError(err, 0, "Falha ao buscar empresa")
	}

	if company == nil {
		return NewStatementError(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, "Empresa não encontrada")
	}

	return nil
}

func (s *Service) translatePeriodError(err error, id int, label string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return NewStatementErrorWithPeriod(ErrDuplicatePeriod, apiErrors.ErrDuplicateResource, id,
			"Já existe um período '"+label+"' para esta empresa")
	}
	return dbError(err, id, "Falha ao gravar período")
}

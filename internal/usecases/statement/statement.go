package statement

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func notFound(statementType domain.StatementType, id int) error {
	return NewStatementError(ErrStatementNotFound, apiErrors.ErrResourceNotFound,
		"Demonstrativo "+string(statementType)+" não encontrado")
}

func (s *Service) ListTradingAccounts(ctx context.Context, periodID *int) ([]*domain.TradingAccount, error) {
	items, err := s.statementRepo.ListTradingAccounts(ctx, periodID)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar contas de trading")
	}
	return items, nil
}

func (s *Service) GetTradingAccount(ctx context.Context, id int) (*domain.TradingAccount, error) {
	item, err := s.statementRepo.GetTradingAccount(ctx, id)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar conta de trading")
	}
	if item == nil {
		return nil, notFound(domain.StatementTypeTrading, id)
	}
	return item, nil
}

func (s *Service) CreateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error) {
	var created *domain.TradingAccount
	err := s.write(ctx, t.PeriodID, func(ctx context.Context) error {
		var err error
		created, err = s.statementRepo.CreateTradingAccount(ctx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error) {
	existing, err := s.GetTradingAccount(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	t.PeriodID = existing.PeriodID
	t.CreatedAt = existing.CreatedAt

	err = s.write(ctx, t.PeriodID, func(ctx context.Context) error {
		return s.statementRepo.UpdateTradingAccount(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListProfitAndLoss(ctx context.Context, periodID *int) ([]*domain.ProfitAndLoss, error) {
	items, err := s.statementRepo.ListProfitAndLoss(ctx, periodID)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar demonstrativos de resultado")
	}
	return items, nil
}

func (s *Service) GetProfitAndLoss(ctx context.Context, id int) (*domain.ProfitAndLoss, error) {
	item, err := s.statementRepo.GetProfitAndLoss(ctx, id)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar demonstrativo de resultado")
	}
	if item == nil {
		return nil, notFound(domain.StatementTypeProfitLoss, id)
	}
	return item, nil
}

func (s *Service) CreateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error) {
	var created *domain.ProfitAndLoss
	err := s.write(ctx, p.PeriodID, func(ctx context.Context) error {
		var err error
		created, err = s.statementRepo.CreateProfitAndLoss(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error) {
	existing, err := s.GetProfitAndLoss(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	p.PeriodID = existing.PeriodID
	p.CreatedAt = existing.CreatedAt

	err = s.write(ctx, p.PeriodID, func(ctx context.Context) error {
		return s.statementRepo.UpdateProfitAndLoss(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListBalanceSheets(ctx context.Context, periodID *int) ([]*domain.BalanceSheetView, error) {
	items, err := s.statementRepo.ListBalanceSheets(ctx, periodID)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar balanços")
	}

	views := make([]*domain.BalanceSheetView, 0, len(items))
	for _, item := range items {
		views = append(views, domain.NewBalanceSheetView(item))
	}
	return views, nil
}

func (s *Service) GetBalanceSheet(ctx context.Context, id int) (*domain.BalanceSheetView, error) {
	item, err := s.getBalanceSheet(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewBalanceSheetView(item), nil
}

func (s *Service) getBalanceSheet(ctx context.Context, id int) (*domain.BalanceSheet, error) {
	item, err := s.statementRepo.GetBalanceSheet(ctx, id)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar balanço")
	}
	if item == nil {
		return nil, notFound(domain.StatementTypeBalanceSheet, id)
	}
	return item, nil
}

func (s *Service) CreateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheetView, error) {
	var created *domain.BalanceSheet
	err := s.write(ctx, b.PeriodID, func(ctx context.Context) error {
		var err error
		created, err = s.statementRepo.CreateBalanceSheet(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balanceView(created), nil
}

func (s *Service) UpdateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheetView, error) {
	existing, err := s.getBalanceSheet(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	b.PeriodID = existing.PeriodID
	b.CreatedAt = existing.CreatedAt

	err = s.write(ctx, b.PeriodID, func(ctx context.Context) error {
		return s.statementRepo.UpdateBalanceSheet(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return balanceView(b), nil
}

// balanceView avisa no log quando passivo e ativo não fecham; o balanço é gravado mesmo assim
func balanceView(b *domain.BalanceSheet) *domain.BalanceSheetView {
	view := domain.NewBalanceSheetView(b)
	if !view.BalanceCheck.IsBalanced {
		logrus.WithFields(logrus.Fields{
			"period_id":         b.PeriodID,
			"total_liabilities": view.BalanceCheck.TotalLiabilities.String(),
			"total_assets":      view.BalanceCheck.TotalAssets.String(),
			"difference":        view.BalanceCheck.Difference.String(),
		}).Warn("Balanço não fecha")
	}
	return view
}

func (s *Service) ListOperationalMetrics(ctx context.Context, periodID *int) ([]*domain.OperationalMetrics, error) {
	items, err := s.statementRepo.ListOperationalMetrics(ctx, periodID)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar métricas operacionais")
	}
	return items, nil
}

func (s *Service) GetOperationalMetrics(ctx context.Context, id int) (*domain.OperationalMetrics, error) {
	item, err := s.statementRepo.GetOperationalMetrics(ctx, id)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar métricas operacionais")
	}
	if item == nil {
		return nil, notFound(domain.StatementTypeOperational, id)
	}
	return item, nil
}

func validateOperational(o *domain.OperationalMetrics) error {
	if o.StaffCount < 0 {
		return NewStatementErrorWithPeriod(ErrInvalidStatement, apiErrors.ErrInvalidFormat, o.PeriodID,
			"Quantidade de funcionários não pode ser negativa")
	}
	return nil
}

func (s *Service) CreateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error) {
	if err := validateOperational(o); err != nil {
		return nil, err
	}

	var created *domain.OperationalMetrics
	err := s.write(ctx, o.PeriodID, func(ctx context.Context) error {
		var err error
		created, err = s.statementRepo.CreateOperationalMetrics(ctx, o)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error) {
	if err := validateOperational(o); err != nil {
		return nil, err
	}

	existing, err := s.GetOperationalMetrics(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	o.PeriodID = existing.PeriodID
	o.CreatedAt = existing.CreatedAt

	err = s.write(ctx, o.PeriodID, func(ctx context.Context) error {
		return s.statementRepo.UpdateOperationalMetrics(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// DeleteStatement remove um demonstrativo de qualquer tipo
func (s *Service) DeleteStatement(ctx context.Context, statementType domain.StatementType, id int) error {
	periodID, err := s.periodOf(ctx, statementType, id)
	if err != nil {
		return err
	}

	return s.write(ctx, periodID, func(ctx context.Context) error {
		return s.statementRepo.Delete(ctx, statementType, id)
	})
}

func (s *Service) periodOf(ctx context.Context, statementType domain.StatementType, id int) (int, error) {
	switch statementType {
	case domain.StatementTypeTrading:
		item, err := s.GetTradingAccount(ctx, id)
		if err != nil {
			return 0, err
		}
		return item.PeriodID, nil
	case domain.StatementTypeProfitLoss:
		item, err := s.GetProfitAndLoss(ctx, id)
		if err != nil {
			return 0, err
		}
		return item.PeriodID, nil
	case domain.StatementTypeBalanceSheet:
		item, err := s.getBalanceSheet(ctx, id)
		if err != nil {
			return 0, err
		}
		return item.PeriodID, nil
	case domain.StatementTypeOperational:
		item, err := s.GetOperationalMetrics(ctx, id)
		if err != nil {
			return 0, err
		}
		return item.PeriodID, nil
	}

	return 0, NewStatementError(ErrUnknownStatementType, apiErrors.ErrInvalidFormat, "Tipo de demonstrativo desconhecido: "+string(statementType))
}

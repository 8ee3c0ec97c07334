package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// statementEndpoints agrupa as operações de um tipo de demonstrativo.
// T é o corpo recebido e V o que é devolvido ao cliente.
type statementEndpoints[T any, V any] struct {
	kind   domain.StatementType
	list   func(ctx context.Context, periodID *int) ([]V, error)
	get    func(ctx context.Context, id int) (V, error)
	load   func(ctx context.Context, id int) (*T, error) // registro gravado, base da atualização parcial
	create func(ctx context.Context, body *T) (V, error)
	update func(ctx context.Context, body *T) (V, error)
	setID  func(body *T, id int)
}

func tradingEndpoints(service statement.StatementService) statementEndpoints[domain.TradingAccount, *domain.TradingAccount] {
	return statementEndpoints[domain.TradingAccount, *domain.TradingAccount]{
		kind:   domain.StatementTypeTrading,
		list:   service.ListTradingAccounts,
		get:    service.GetTradingAccount,
		load:   service.GetTradingAccount,
		create: service.CreateTradingAccount,
		update: service.UpdateTradingAccount,
		setID:  func(t *domain.TradingAccount, id int) { t.ID = id },
	}
}

func profitLossEndpoints(service statement.StatementService) statementEndpoints[domain.ProfitAndLoss, *domain.ProfitAndLoss] {
	return statementEndpoints[domain.ProfitAndLoss, *domain.ProfitAndLoss]{
		kind:   domain.StatementTypeProfitLoss,
		list:   service.ListProfitAndLoss,
		get:    service.GetProfitAndLoss,
		load:   service.GetProfitAndLoss,
		create: service.CreateProfitAndLoss,
		update: service.UpdateProfitAndLoss,
		setID:  func(p *domain.ProfitAndLoss, id int) { p.ID = id },
	}
}

func balanceSheetEndpoints(service statement.StatementService) statementEndpoints[domain.BalanceSheet, *domain.BalanceSheetView] {
	return statementEndpoints[domain.BalanceSheet, *domain.BalanceSheetView]{
		kind:   domain.StatementTypeBalanceSheet,
		list:   service.ListBalanceSheets,
		get:    service.GetBalanceSheet,
		load: func(ctx context.Context, id int) (*domain.BalanceSheet, error) {
			view, err := service.GetBalanceSheet(ctx, id)
			if err != nil {
				return nil, err
			}
			return &view.BalanceSheet, nil
		},
		create: service.CreateBalanceSheet,
		update: service.UpdateBalanceSheet,
		setID:  func(b *domain.BalanceSheet, id int) { b.ID = id },
	}
}

func operationalEndpoints(service statement.StatementService) statementEndpoints[domain.OperationalMetrics, *domain.OperationalMetrics] {
	return statementEndpoints[domain.OperationalMetrics, *domain.OperationalMetrics]{
		kind:   domain.StatementTypeOperational,
		list:   service.ListOperationalMetrics,
		get:    service.GetOperationalMetrics,
		load:   service.GetOperationalMetrics,
		create: service.CreateOperationalMetrics,
		update: service.UpdateOperationalMetrics,
		setID:  func(o *domain.OperationalMetrics, id int) { o.ID = id },
	}
}

func (e statementEndpoints[T, V]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Infof("INIT - ListStatements %s", e.kind)

		periodID, err := queryInt(r, "period", "period_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		items, err := e.list(r.Context(), periodID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar demonstrativos")
			return
		}
		if items == nil {
			items = []V{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func (e statementEndpoints[T, V]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		item, err := e.get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar demonstrativo")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func (e statementEndpoints[T, V]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Infof("INIT - CreateStatement %s", e.kind)

		body := new(T)
		if err := decodeBody(r, body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := e.create(r.Context(), body)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar demonstrativo")
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

func (e statementEndpoints[T, V]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Infof("INIT - UpdateStatement %s", e.kind)

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		// o corpo é aplicado sobre o registro gravado: campos omitidos mantêm o valor atual
		body, err := e.load(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar demonstrativo")
			return
		}
		if err := decodeBody(r, body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		e.setID(body, id)

		item, err := e.update(r.Context(), body)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar demonstrativo")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func (e statementEndpoints[T, V]) Delete(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Infof("INIT - DeleteStatement %s", e.kind)

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteStatement(r.Context(), e.kind, id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir demonstrativo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /api/cron/run/:type
const (
	CronJobTypeRatioRecalc = "ratio-recalc"
	CronJobTypeAll         = "all"
)

// ManualSyncer é implementado pelos serviços agendados
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// FullRecalculator recalcula todos os períodos com as referências vigentes
type FullRecalculator interface {
	TriggerFullRecalc() bool
}

// RatioRecalcScheduler é o agendador de índices visto pela API
type RatioRecalcScheduler interface {
	ManualSyncer
	FullRecalculator
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RatioRecalcSyncService ManualSyncer
}

func (c CronJobServices) byType() map[string]ManualSyncer {
	return map[string]ManualSyncer{
		CronJobTypeRatioRecalc: c.RatioRecalcSyncService,
	}
}

// RunCronJob dispara manualmente uma cron job; a execução segue em segundo plano
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := map[string]bool{}
		switch cronType {
		case CronJobTypeAll:
			for name, svc := range services.byType() {
				if svc != nil {
					started[name] = svc.TriggerManualSync()
				}
			}
		case CronJobTypeRatioRecalc:
			svc := services.byType()[cronType]
			if svc == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de índices não disponível", nil)
				return
			}
			started[cronType] = svc.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ratio-recalc, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada",
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		for name, svc := range services.byType() {
			if svc != nil {
				status[name] = svc.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
)

// RatioRecalcSyncConfig representa a configuração do agendador de recálculo de índices
type RatioRecalcSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// PeriodRecalculator recalcula os índices de uma lista de períodos
type PeriodRecalculator interface {
	RecalculatePeriods(ctx context.Context, periods []*domain.FinancialPeriod) *ratio.RecalcSummary
}

// RatioRecalcSyncService recalcula periodicamente os índices de períodos
// cujos demonstrativos mudaram depois do último cálculo
type RatioRecalcSyncService struct {
	scheduler           *gocron.Scheduler
	config              RatioRecalcSyncConfig
	periodRepo          repository.PeriodRepository
	ratios              PeriodRecalculator
	syncRunning         bool
	fullPending         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *ratio.RecalcSummary
}

func NewRatioRecalcSyncService(
	periodRepo repository.PeriodRepository,
	ratios PeriodRecalculator,
	appConfig *config.Config,
) *RatioRecalcSyncService {
	recalcConfig := RatioRecalcSyncConfig{
		CronSchedule:      appConfig.RatioRecalcSync.CronSchedule,
		MaxConcurrentJobs: appConfig.RatioRecalcSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.RatioRecalcSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       recalcConfig.CronSchedule,
		"max_concurrent_jobs": recalcConfig.MaxConcurrentJobs,
		"sync_enabled":        recalcConfig.SyncEnabled,
	}).Info("Configuração do agendador de recálculo de índices carregada")

	return &RatioRecalcSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     recalcConfig,
		periodRepo: periodRepo,
		ratios:     ratios,
	}
}

// Start inicia o agendador
func (s *RatioRecalcSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo agendado de índices desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de índices")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRatios(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de índices: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de índices")
		s.scheduler.Stop()
	}()

	return nil
}

// syncRatios recalcula os períodos desatualizados; execuções simultâneas são ignoradas
func (s *RatioRecalcSyncService) syncRatios(ctx context.Context) *ratio.RecalcSummary {
	return s.run(ctx, false)
}

// recalcAll recalcula todos os períodos, inclusive os que não mudaram
func (s *RatioRecalcSyncService) recalcAll(ctx context.Context) *ratio.RecalcSummary {
	return s.run(ctx, true)
}

func (s *RatioRecalcSyncService) run(ctx context.Context, full bool) *ratio.RecalcSummary {
	s.syncMutex.Lock()
	if s.syncRunning {
		// um recálculo completo pedido durante outra execução roda logo depois dela
		if full {
			s.fullPending = true
		}
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de índices já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	var summary *ratio.RecalcSummary

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		if summary != nil {
			s.lastSummary = summary
			s.lastSyncCompletedAt = time.Now()
		}
		rerun := s.fullPending
		s.fullPending = false
		s.syncMutex.Unlock()

		if rerun {
			go s.recalcAll(context.Background())
		}
	}()

	var (
		periods []*domain.FinancialPeriod
		err     error
	)
	if full {
		periods, err = s.periodRepo.List(ctx, domain.PeriodFilters{})
	} else {
		periods, err = s.periodRepo.ListStale(ctx)
	}
	if err != nil {
		logrus.WithError(err).WithField("full", full).Error("Erro ao buscar períodos para recálculo")
		return nil
	}

	if len(periods) == 0 {
		logrus.Info("Nenhum período com índices desatualizados")
		summary = &ratio.RecalcSummary{Outcomes: []ratio.RecalcOutcome{}}
		return summary
	}

	logrus.WithField("periods", len(periods)).Info("Iniciando recálculo de índices")

	summary = s.ratios.RecalculatePeriods(ctx, periods)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Recálculo de índices concluído")

	return summary
}

// TriggerManualSync inicia manualmente um recálculo em segundo plano
func (s *RatioRecalcSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de índices já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de índices")
	go s.syncRatios(context.Background())
	return true
}

// TriggerFullRecalc recalcula todos os períodos em segundo plano, usado quando as referências mudam.
// Com outro recálculo em andamento, o completo fica agendado para o término dele.
func (s *RatioRecalcSyncService) TriggerFullRecalc() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.fullPending = true
		s.syncMutex.Unlock()
		logrus.Info("Recálculo completo agendado para o fim da execução atual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo completo de índices")
	go s.recalcAll(context.Background())
	return true
}

// GetStatus retorna o status atual do recálculo
func (s *RatioRecalcSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"full_recalc_pending":    s.fullPending,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"max_concurrent_jobs":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}

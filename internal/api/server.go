package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/api/handler"
	"github.com/vfg2006/coop-ratio-api/internal/api/handler/router"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/analysis"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/reporting"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator   authenticating.Authenticator
	Companies       company.CompanyService
	Statements      statement.StatementService
	Ratios          ratio.RatioService
	Benchmarks      ratio.BenchmarkService
	Analysis        analysis.AnalysisService
	Importing       importing.ImportService
	Reporting       reporting.ReportService
	RatioRecalcSync handler.RatioRecalcScheduler
}

type Server struct {
	httpServer *http.Server
}

// Handler monta o router com a cadeia global: panic → logging → CORS → auth
func Handler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		RatioRecalcSyncService: services.RatioRecalcSync,
	}

	limiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginRateBurst, cfg.Server.TrustedProxies...)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator, limiter)...),
		router.WithRoutes(handler.Users(services.Authenticator)...),
		router.WithRoutes(handler.Companies(services.Companies, services.Ratios)...),
		router.WithRoutes(handler.Periods(services.Statements, services.Ratios)...),
		router.WithRoutes(handler.Statements(services.Statements)...),
		router.WithRoutes(handler.Ratios(services.Ratios, services.Benchmarks, services.RatioRecalcSync)...),
		router.WithRoutes(handler.Analysis(services.Analysis)...),
		router.WithRoutes(handler.Importing(services.Importing, cfg.Upload.MaxSizeMB)...),
		router.WithRoutes(handler.Exports(services.Reporting)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           Handler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/api"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/scheduler"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/analysis"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/reporting"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	periodRepo := repository.NewPeriodRepository(pgConn)
	statementRepo := repository.NewStatementRepository(pgConn)
	ratioRepo := repository.NewRatioResultRepository(pgConn)
	columnRepo := repository.NewColumnConfigRepository(pgConn)
	appConfigRepo := repository.NewAppConfigRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	companyService := company.NewService(companyRepo)
	statementService := statement.NewService(pgConn, companyRepo, periodRepo, statementRepo, ratioRepo)

	benchmarkService := ratio.NewBenchmarkService(appConfigRepo)
	ratioService := ratio.NewService(
		periodRepo,
		statementRepo,
		ratioRepo,
		benchmarkService,
		cfg.RatioRecalcSync.MaxConcurrentJobs,
	)

	analysisService := analysis.NewService(periodRepo, statementRepo, ratioRepo)

	importService := importing.NewService(
		pgConn,
		companyRepo,
		periodRepo,
		statementRepo,
		columnRepo,
		ratioService, // Implementa RatioCalculator
		importing.NewDiskStore(cfg.Upload.Dir),
		cfg.Upload.MaxSizeMB,
	)

	reportService := reporting.NewService(companyRepo, periodRepo, ratioRepo, benchmarkService)

	ratioRecalcSyncService := scheduler.NewRatioRecalcSyncService(periodRepo, ratioService, cfg)
	if err := ratioRecalcSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de índices")
	} else {
		logrus.Info("Agendador de recálculo de índices iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:   authenticator,
		Companies:       companyService,
		Statements:      statementService,
		Ratios:          ratioService,
		Benchmarks:      benchmarkService,
		Analysis:        analysisService,
		Importing:       importService,
		Reporting:       reportService,
		RatioRecalcSync: ratioRecalcSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

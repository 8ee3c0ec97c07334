package main

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/config"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/sample"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// tolerância na conferência dos índices de referência (pontos percentuais)
const checkTolerance = 0.01

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()
	startTime := time.Now()
	logrus.Info("Iniciando carga inicial...")

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	userRepo := repository.NewUserRepository(conn)
	companyRepo := repository.NewCompanyRepository(conn)
	periodRepo := repository.NewPeriodRepository(conn)
	statementRepo := repository.NewStatementRepository(conn)
	ratioRepo := repository.NewRatioResultRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	companyService := company.NewService(companyRepo)
	statementService := statement.NewService(conn, companyRepo, periodRepo, statementRepo, ratioRepo)
	ratioService := ratio.NewService(
		periodRepo,
		statementRepo,
		ratioRepo,
		ratio.NewBenchmarkService(repository.NewAppConfigRepository(conn)),
		1,
	)

	if err := seedMaster(ctx, cfg.Seed, userRepo, authenticator); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário master")
	}

	period, err := seedXYZ(ctx, companyService, statementService)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dados da XYZ Co-op Bank")
	}
	periodID := period.ID

	result, err := ratioService.CalculatePeriod(ctx, periodID)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular índices do período de referência")
	}

	failures := checkExpected(result)

	if !period.IsFinalized {
		if _, err := statementService.FinalizePeriod(ctx, periodID); err != nil {
			logrus.WithError(err).Warn("Não foi possível finalizar o período de referência")
		}
	}

	logrus.WithFields(logrus.Fields{
		"period_id": periodID,
		"failures":  failures,
		"elapsed":   time.Since(startTime).String(),
	}).Info("Carga inicial concluída")
}

// seedMaster cria o usuário master configurado quando ele ainda não existe
func seedMaster(
	ctx context.Context,
	seed config.Seed,
	userRepo repository.UserRepository,
	authenticator authenticating.Authenticator,
) error {
	if seed.MasterPassword == "" {
		logrus.Warn("SEED_MASTER_PASSWORD vazio, usuário master não será criado")
		return nil
	}

	existing, err := userRepo.GetUserByUsername(ctx, seed.MasterUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.WithField("user_id", existing.ID).Info("Usuário master já existe")
		return nil
	}

	if err := authenticator.ValidatePasswordStrength(seed.MasterPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.MasterPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// o master inicial não tem criador, por isso não passa por Authenticator.CreateUser
	created, err := userRepo.CreateUser(ctx, &domain.User{
		Username:     seed.MasterUsername,
		Email:        seed.MasterEmail,
		Role:         domain.RoleMaster,
		IsActive:     true,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	logrus.WithField("user_id", created.ID).Info("Usuário master criado")
	return nil
}

// seedXYZ garante a empresa e o período de referência com os quatro demonstrativos
func seedXYZ(ctx context.Context, companies company.CompanyService, statements statement.StatementService) (*domain.FinancialPeriod, error) {
	companyID, err := ensureCompany(ctx, companies)
	if err != nil {
		return nil, err
	}

	existing, err := statements.ListPeriods(ctx, domain.PeriodFilters{CompanyID: &companyID, Label: sample.XYZPeriodLabel})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		logrus.WithField("period_id", existing[0].ID).Info("Período de referência já existe, recalculando")
		return existing[0], nil
	}

	ref := sample.XYZPeriod(companyID)
	notFinalized := false
	period, err := statements.CreatePeriod(ctx, domain.PeriodInput{
		CompanyID:   companyID,
		PeriodType:  ref.PeriodType,
		StartDate:   &ref.StartDate,
		EndDate:     &ref.EndDate,
		Label:       ref.Label,
		IsFinalized: &notFinalized,
	})
	if err != nil {
		return nil, err
	}

	data := sample.XYZStatements(period.ID)
	if _, err := statements.CreateTradingAccount(ctx, data.Trading); err != nil {
		return nil, err
	}
	if _, err := statements.CreateProfitAndLoss(ctx, data.ProfitLoss); err != nil {
		return nil, err
	}
	if _, err := statements.CreateBalanceSheet(ctx, data.Balance); err != nil {
		return nil, err
	}
	if _, err := statements.CreateOperationalMetrics(ctx, data.Operational); err != nil {
		return nil, err
	}

	logrus.WithField("period_id", period.ID).Info("Demonstrativos de referência carregados")
	return period, nil
}

func ensureCompany(ctx context.Context, companies company.CompanyService) (int, error) {
	found, err := companies.List(ctx, domain.CompanyFilters{Search: sample.XYZCompanyName})
	if err != nil {
		return 0, err
	}
	for _, c := range found {
		if c.Name == sample.XYZCompanyName {
			return c.ID, nil
		}
	}

	created, err := companies.Create(ctx, &domain.Company{
		Name:           sample.XYZCompanyName,
		RegistrationNo: sample.XYZRegistrationNo,
	})
	if err != nil {
		return 0, err
	}

	logrus.WithField("company_id", created.ID).Info("Empresa de referência criada")
	return created.ID, nil
}

// checkExpected confere os índices calculados contra os valores publicados da XYZ
func checkExpected(result *domain.RatioResult) int {
	failures := 0
	for key, want := range sample.XYZExpected {
		got := result.AllRatios[key]
		if key == "working_fund" {
			got = result.WorkingFund
		}

		entry := logrus.WithFields(logrus.Fields{"ratio": key, "expected": want, "calculated": got})
		if math.Abs(got-want) > checkTolerance {
			entry.Error("Índice diverge do valor de referência")
			failures++
			continue
		}
		entry.Info("Índice conferido")
	}
	return failures
}

package handler

import (
	"net/http"

	"github.com/vfg2006/coop-ratio-api/internal/api/handler/router"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/analysis"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/reporting"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

var (
	masterOnly = middlewares{middleware.MasterOnly()}
	allRoles   = middlewares{middleware.AllRoles()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Authentication registra as rotas públicas; login e refresh passam pelo limitador de tentativas
func Authentication(authenticator authenticating.Authenticator, limiter *middleware.RateLimiter) []router.Route {
	limited := middlewares{limiter.Middleware()}

	return []router.Route{
		{Path: "/api/login/", Method: http.MethodPost, Handler: Login(authenticator), Middlewares: limited},
		{Path: "/api/token/refresh/", Method: http.MethodPost, Handler: RefreshToken(authenticator), Middlewares: limited},
		{Path: "/api/register/", Method: http.MethodPost, Handler: Register(authenticator), Middlewares: limited},
	}
}

func Users(authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{Path: "/api/users/", Method: http.MethodGet, Handler: ListUsers(authenticator), Middlewares: masterOnly},
		{Path: "/api/users/", Method: http.MethodPost, Handler: CreateUser(authenticator), Middlewares: masterOnly},
		{Path: "/api/users/:id/", Method: http.MethodGet, Handler: GetUser(authenticator), Middlewares: masterOnly},
		{Path: "/api/users/:id/", Method: http.MethodPut, Handler: UpdateUser(authenticator), Middlewares: masterOnly},
		{Path: "/api/users/:id/", Method: http.MethodPatch, Handler: UpdateUser(authenticator), Middlewares: masterOnly},
		{Path: "/api/users/:id/", Method: http.MethodDelete, Handler: DeleteUser(authenticator), Middlewares: masterOnly},

		{Path: "/api/profile/:id/", Method: http.MethodGet, Handler: GetProfile(authenticator), Middlewares: allRoles},
		{Path: "/api/profile/:id/", Method: http.MethodPut, Handler: UpdateProfile(authenticator), Middlewares: allRoles},
		{Path: "/api/profile/:id/", Method: http.MethodPatch, Handler: UpdateProfile(authenticator), Middlewares: allRoles},
	}
}

func Companies(companyService company.CompanyService, ratioService ratio.RatioService) []router.Route {
	return []router.Route{
		{Path: "/api/companies/", Method: http.MethodGet, Handler: ListCompanies(companyService), Middlewares: allRoles},
		{Path: "/api/companies/", Method: http.MethodPost, Handler: CreateCompany(companyService), Middlewares: masterOnly},
		{Path: "/api/companies/:id/", Method: http.MethodGet, Handler: GetCompany(companyService), Middlewares: allRoles},
		{Path: "/api/companies/:id/", Method: http.MethodPut, Handler: UpdateCompany(companyService), Middlewares: masterOnly},
		{Path: "/api/companies/:id/", Method: http.MethodPatch, Handler: UpdateCompany(companyService), Middlewares: masterOnly},
		{Path: "/api/companies/:id/", Method: http.MethodDelete, Handler: DeleteCompany(companyService), Middlewares: masterOnly},
		{Path: "/api/companies/:id/recalculate-ratios/", Method: http.MethodPost, Handler: RecalculateCompanyRatios(ratioService), Middlewares: allRoles},
	}
}

func Periods(statementService statement.StatementService, ratioService ratio.RatioService) []router.Route {
	return []router.Route{
		{Path: "/api/financial-periods/", Method: http.MethodGet, Handler: ListPeriods(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/", Method: http.MethodPost, Handler: CreatePeriod(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/:id/", Method: http.MethodGet, Handler: GetPeriod(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/:id/", Method: http.MethodPut, Handler: UpdatePeriod(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/:id/", Method: http.MethodPatch, Handler: UpdatePeriod(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/:id/", Method: http.MethodDelete, Handler: DeletePeriod(statementService), Middlewares: allRoles},
		{Path: "/api/financial-periods/:id/finalize/", Method: http.MethodPost, Handler: FinalizePeriod(statementService), Middlewares: allRoles},

		{Path: "/api/periods/:id/calculate-ratios/", Method: http.MethodPost, Handler: CalculateRatios(ratioService), Middlewares: allRoles},
	}
}

// statementRoutes monta o CRUD de um tipo de demonstrativo sob base
func statementRoutes[T any, V any](base string, e statementEndpoints[T, V], service statement.StatementService) []router.Route {
	item := base + ":id/"
	return []router.Route{
		{Path: base, Method: http.MethodGet, Handler: e.List(), Middlewares: allRoles},
		{Path: base, Method: http.MethodPost, Handler: e.Create(), Middlewares: allRoles},
		{Path: item, Method: http.MethodGet, Handler: e.Get(), Middlewares: allRoles},
		{Path: item, Method: http.MethodPut, Handler: e.Update(), Middlewares: allRoles},
		{Path: item, Method: http.MethodPatch, Handler: e.Update(), Middlewares: allRoles},
		{Path: item, Method: http.MethodDelete, Handler: e.Delete(service), Middlewares: allRoles},
	}
}

func Statements(service statement.StatementService) []router.Route {
	var routes []router.Route
	routes = append(routes, statementRoutes("/api/trading-accounts/", tradingEndpoints(service), service)...)
	routes = append(routes, statementRoutes("/api/profit-loss/", profitLossEndpoints(service), service)...)
	routes = append(routes, statementRoutes("/api/balance-sheets/", balanceSheetEndpoints(service), service)...)
	routes = append(routes, statementRoutes("/api/operational-metrics/", operationalEndpoints(service), service)...)
	return routes
}

func Ratios(ratioService ratio.RatioService, benchmarkService ratio.BenchmarkService, recalc FullRecalculator) []router.Route {
	return []router.Route{
		{Path: "/api/ratio-results/", Method: http.MethodGet, Handler: ListRatioResults(ratioService), Middlewares: allRoles},
		{Path: "/api/ratio-results/:id/", Method: http.MethodGet, Handler: GetRatioResult(ratioService), Middlewares: allRoles},
		{Path: "/api/ratio-preview/", Method: http.MethodPost, Handler: PreviewRatios(ratioService), Middlewares: allRoles},
		{Path: "/api/ratio-catalog/", Method: http.MethodGet, Handler: GetRatioCatalog(), Middlewares: allRoles},
		{Path: "/api/ratio-benchmarks/", Method: http.MethodGet, Handler: GetBenchmarks(benchmarkService), Middlewares: allRoles},
		{Path: "/api/ratio-benchmarks/", Method: http.MethodPut, Handler: UpdateBenchmarks(benchmarkService, recalc), Middlewares: masterOnly},
	}
}

func Analysis(service analysis.AnalysisService) []router.Route {
	return []router.Route{
		{Path: "/api/dashboard/", Method: http.MethodGet, Handler: Dashboard(service), Middlewares: allRoles},
		{Path: "/api/ratio-trends/", Method: http.MethodGet, Handler: RatioTrends(service), Middlewares: allRoles},
		{Path: "/api/period-comparison/", Method: http.MethodGet, Handler: ComparePeriodsByLabel(service), Middlewares: allRoles},
		{Path: "/api/period-comparison-by-id/", Method: http.MethodGet, Handler: ComparePeriodsByID(service), Middlewares: allRoles},
	}
}

func Importing(service importing.ImportService, maxUploadMB int64) []router.Route {
	return []router.Route{
		{Path: "/api/upload-excel/", Method: http.MethodPost, Handler: UploadExcel(service, maxUploadMB), Middlewares: allRoles},
		{Path: "/api/download-excel-template/", Method: http.MethodGet, Handler: DownloadExcelTemplate(service), Middlewares: allRoles},

		{Path: "/api/statement-columns/", Method: http.MethodGet, Handler: ListColumnConfigs(service), Middlewares: allRoles},
		{Path: "/api/statement-columns/", Method: http.MethodPost, Handler: CreateColumnConfig(service), Middlewares: masterOnly},
		{Path: "/api/statement-columns/:id/", Method: http.MethodGet, Handler: GetColumnConfig(service), Middlewares: allRoles},
		{Path: "/api/statement-columns/:id/", Method: http.MethodPut, Handler: UpdateColumnConfig(service), Middlewares: masterOnly},
		{Path: "/api/statement-columns/:id/", Method: http.MethodPatch, Handler: UpdateColumnConfig(service), Middlewares: masterOnly},
		{Path: "/api/statement-columns/:id/", Method: http.MethodDelete, Handler: DeleteColumnConfig(service), Middlewares: masterOnly},
	}
}

func Exports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{Path: "/api/export/companies/", Method: http.MethodGet, Handler: ExportCompanies(service), Middlewares: allRoles},
		{Path: "/api/periods/:id/ratios/export/", Method: http.MethodGet, Handler: ExportRatios(service), Middlewares: allRoles},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{Path: "/api/cron/run/:type", Method: http.MethodPost, Handler: RunCronJob(services), Middlewares: masterOnly},
		{Path: "/api/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services), Middlewares: masterOnly},
	}
}

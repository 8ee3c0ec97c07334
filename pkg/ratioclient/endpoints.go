package ratioclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
)

// Tipos expostos pela API
type (
	Company            = domain.Company
	FinancialPeriod    = domain.FinancialPeriod
	RatioResult        = domain.RatioResult
	PeriodComparison   = domain.PeriodComparison
	Dashboard          = domain.Dashboard
	BenchmarksResponse = domain.BenchmarksResponse
)

// envelope é o formato {status, response_code, data} das rotas de análise
type envelope[T any] struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
	Data         T      `json:"data"`
}

type loginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Tokens  Tokens `json:"tokens"`
}

// Login autentica com username (ou email) e grava os tokens no TokenStore
func (c *RatioClient) Login(ctx context.Context, username, password string) (*Tokens, error) {
	var resp loginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.send(ctx, http.MethodPost, "api/login/", nil, body, &resp, ""); err != nil {
		return nil, err
	}
	if resp.Tokens.Access == "" {
		return nil, fmt.Errorf("ratioclient: login sem tokens na resposta")
	}

	if err := c.tokens.store.Save(resp.Tokens); err != nil {
		return nil, err
	}
	return &resp.Tokens, nil
}

// Logout descarta os tokens gravados
func (c *RatioClient) Logout() error {
	return c.tokens.store.Clear()
}

func (c *RatioClient) ListCompanies(ctx context.Context, search string) ([]Company, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var companies []Company
	if err := c.do(ctx, http.MethodGet, "api/companies/", query, nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// ListPeriods lista os períodos; companyID 0 lista de todas as empresas
func (c *RatioClient) ListPeriods(ctx context.Context, companyID int) ([]FinancialPeriod, error) {
	query := url.Values{}
	if companyID > 0 {
		query.Set("company", strconv.Itoa(companyID))
	}

	var periods []FinancialPeriod
	if err := c.do(ctx, http.MethodGet, "api/financial-periods/", query, nil, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (c *RatioClient) CalculateRatios(ctx context.Context, periodID int) (*RatioResult, error) {
	var result RatioResult
	path := fmt.Sprintf("api/periods/%d/calculate-ratios/", periodID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RatioClient) GetRatioResults(ctx context.Context, periodID int) ([]RatioResult, error) {
	query := url.Values{}
	if periodID > 0 {
		query.Set("period", strconv.Itoa(periodID))
	}

	var results []RatioResult
	if err := c.do(ctx, http.MethodGet, "api/ratio-results/", query, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *RatioClient) ComparePeriods(ctx context.Context, periodID1, periodID2 int) (*PeriodComparison, error) {
	query := url.Values{}
	query.Set("period_id1", strconv.Itoa(periodID1))
	query.Set("period_id2", strconv.Itoa(periodID2))

	var resp envelope[PeriodComparison]
	if err := c.do(ctx, http.MethodGet, "api/period-comparison-by-id/", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *RatioClient) GetDashboard(ctx context.Context, companyID int, includeRatios bool) (*Dashboard, error) {
	query := url.Values{}
	query.Set("company", strconv.Itoa(companyID))
	query.Set("period", "all")
	query.Set("include_ratios", strconv.FormatBool(includeRatios))

	var resp envelope[Dashboard]
	if err := c.do(ctx, http.MethodGet, "api/dashboard/", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *RatioClient) GetBenchmarks(ctx context.Context) (*BenchmarksResponse, error) {
	var resp BenchmarksResponse
	if err := c.do(ctx, http.MethodGet, "api/ratio-benchmarks/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

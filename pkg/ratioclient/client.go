package ratioclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	Login(ctx context.Context, username, password string) (*Tokens, error)
	Logout() error
	ListCompanies(ctx context.Context, search string) ([]Company, error)
	ListPeriods(ctx context.Context, companyID int) ([]FinancialPeriod, error)
	CalculateRatios(ctx context.Context, periodID int) (*RatioResult, error)
	GetRatioResults(ctx context.Context, periodID int) ([]RatioResult, error)
	ComparePeriods(ctx context.Context, periodID1, periodID2 int) (*PeriodComparison, error)
	GetDashboard(ctx context.Context, companyID int, includeRatios bool) (*Dashboard, error)
	GetBenchmarks(ctx context.Context) (*BenchmarksResponse, error)
}

var _ Client = (*RatioClient)(nil)

type RatioClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     *TokenManager
}

type Option func(*RatioClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *RatioClient) {
		c.httpClient = hc
	}
}

func WithTokenStore(store TokenStore) Option {
	return func(c *RatioClient) {
		c.tokens = NewTokenManager(store)
	}
}

// New cria o cliente; baseURL é a raiz do servidor (ex.: http://localhost:8000/)
func New(baseURL string, opts ...Option) (*RatioClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("ratioclient: URL base inválida: %q", baseURL)
	}

	c := &RatioClient{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     NewTokenManager(NewMemoryStore()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executa uma requisição autenticada
func (c *RatioClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	access, err := c.tokens.EnsureValidToken(ctx, c)
	if err != nil {
		return err
	}
	return c.send(ctx, method, path, query, body, out, access)
}

// send executa a requisição; access vazio envia sem Authorization
func (c *RatioClient) send(ctx context.Context, method, path string, query url.Values, body, out any, access string) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "ratioclient: erro ao serializar corpo")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.Wrap(err, "ratioclient: erro ao criar requisição")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "ratioclient: %s %s", method, path)
	}
	defer resp.Body.Close()

	return handleResponse(resp, out)
}

// handleResponse decodifica o corpo de sucesso em out ou devolve *APIError
func handleResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "ratioclient: erro ao ler resposta")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || (apiErr.Code == "" && apiErr.Message == "") {
			apiErr.Message = strings.TrimSpace(string(data))
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "ratioclient: erro ao decodificar resposta")
	}
	return nil
}

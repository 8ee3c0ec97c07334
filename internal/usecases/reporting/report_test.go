package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)

type benchmarksFunc func(ctx context.Context) domain.RatioBenchmarks

func (f benchmarksFunc) Benchmarks(ctx context.Context) domain.RatioBenchmarks { return f(ctx) }

func xyzResult() *domain.RatioResult {
	return &domain.RatioResult{
		PeriodID: 1,
		AllRatios: domain.RatioSet{
			"working_fund":         518425409,
			"credit_deposit_ratio": 90.2,
			"net_margin":           1.52,
			"risk_cost_to_wf":      0.87,
			"loans_to_wf":          84.34,
		},
		TrafficLightStatus: map[string]domain.TrafficLight{
			"credit_deposit_ratio": domain.TrafficLightGreen,
			"net_margin":           domain.TrafficLightGreen,
			"risk_cost_to_wf":      domain.TrafficLightRed,
			"loans_to_wf":          domain.TrafficLightYellow,
		},
		Interpretation: "Healthy profitability.",
		IsEfficient:    true,
	}
}

func xyzTable() Table {
	company := &domain.Company{ID: 1, Name: "XYZ Co-op Bank"}
	period := &domain.FinancialPeriod{ID: 1, Label: "FY_2012_13"}
	return RatioTable(company, period, xyzResult(), domain.DefaultBenchmarks(), fixedNow)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat(" PDF ")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)

	f, ok = ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatXLSX, f)

	_, ok = ParseFormat("docx")
	assert.False(t, ok)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "companies_2026-10-15.csv", FileName("companies", fixedNow, FormatCSV))
	assert.Equal(t, "ratio_analysis_XYZ_Co-op_Bank_2026-10-15.pdf", FileName("ratio_analysis_XYZ Co-op Bank", fixedNow, FormatPDF))
}

func TestRatioTable(t *testing.T) {
	table := xyzTable()

	assert.Equal(t, []string{"Company: XYZ Co-op Bank", "Period: FY_2012_13", "Generated: 2026-10-15 10:30"}, table.Meta)
	require.Len(t, table.Rows, 5)

	// ordem do catálogo
	assert.Equal(t, []string{domain.CategoryCapital, "Working Fund", "51,84,25,409.00", "amount", "-", "N/A"}, table.Rows[0])
	assert.Equal(t, []string{domain.CategoryFund, "Loans to Working Fund", "84.34", "%", "70.00", "yellow"}, table.Rows[1])
	assert.Equal(t, []string{domain.CategoryYieldCost, "Credit Deposit Ratio", "90.20", "%", "70.00", "green"}, table.Rows[2])
	assert.Equal(t, "0.25", table.Rows[3][4])
	assert.Contains(t, table.Notes, "Interpretation: Healthy profitability.")
}

func TestRender_CSV(t *testing.T) {
	body, err := Render(xyzTable(), FormatCSV)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte(utf8BOM)))

	reader := csv.NewReader(bytes.NewReader(body[len(utf8BOM):]))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// a linha em branco após o cabeçalho é ignorada pelo leitor
	require.Len(t, records, 9)
	assert.Equal(t, "Company: XYZ Co-op Bank", records[0][0])
	assert.Equal(t, []string{"Category", "Ratio", "Value", "Unit", "Ideal Value", "Status"}, records[3])
	assert.Equal(t, "red", records[7][5])
}

func TestRender_XLSX(t *testing.T) {
	body, err := Render(xyzTable(), FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ratio Analysis")
	require.NoError(t, err)
	assert.Equal(t, "Company: XYZ Co-op Bank", rows[0][0])
	assert.Equal(t, "Category", rows[4][0])
	assert.Equal(t, "Credit Deposit Ratio", rows[7][1])
	assert.Equal(t, "green", rows[7][5])
}

func TestRender_PDF(t *testing.T) {
	body, err := Render(xyzTable(), FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	body, err = Render(CompaniesTable([]*domain.Company{{Name: "XYZ Co-op Bank", RegistrationNo: "XYZ-SCB-001"}}, fixedNow), FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestRender_HTML(t *testing.T) {
	body, err := Render(xyzTable(), FormatHTML)
	require.NoError(t, err)

	out := string(body)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Ratio Analysis Report</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<span class="status status-red">red</span>`)
	assert.Contains(t, out, "Healthy profitability.")
	assert.Contains(t, out, ".status-green{background:#22C55E;}")
}

func TestMarkdown_EscapesContent(t *testing.T) {
	table := Table{Title: "T", Columns: []string{"A"}, Rows: [][]string{{"<b>x|y</b>"}}, StatusColumn: -1}

	md := Markdown(table)
	assert.Contains(t, md, `&lt;b&gt;x\|y&lt;/b&gt;`)
}

func TestService_ExportRatios(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		format   Format
		setup    func(companyRepo *mocks.MockCompanyRepository, periodRepo *mocks.MockPeriodRepository, ratioRepo *mocks.MockRatioResultRepository)
		validate func(t *testing.T, doc *Document, err error)
	}{
		{
			name:   "Exporta PDF do período",
			format: FormatPDF,
			setup: func(companyRepo *mocks.MockCompanyRepository, periodRepo *mocks.MockPeriodRepository, ratioRepo *mocks.MockRatioResultRepository) {
				periodRepo.EXPECT().GetByID(ctx, 1).Return(&domain.FinancialPeriod{ID: 1, CompanyID: 2, Label: "FY_2012_13"}, nil)
				ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(xyzResult(), nil)
				companyRepo.EXPECT().GetByID(ctx, 2).Return(&domain.Company{ID: 2, Name: "XYZ Co-op Bank"}, nil)
			},
			validate: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ratio_analysis_XYZ_Co-op_Bank_2026-10-15.pdf", doc.FileName)
				assert.Equal(t, "application/pdf", doc.ContentType)
				assert.NotEmpty(t, doc.Body)
			},
		},
		{
			name:   "Índices não calculados",
			format: FormatCSV,
			setup: func(companyRepo *mocks.MockCompanyRepository, periodRepo *mocks.MockPeriodRepository, ratioRepo *mocks.MockRatioResultRepository) {
				periodRepo.EXPECT().GetByID(ctx, 1).Return(&domain.FinancialPeriod{ID: 1, CompanyID: 2}, nil)
				ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(nil, nil)
			},
			validate: func(t *testing.T, doc *Document, err error) {
				var reportErr *ReportError
				require.True(t, errors.As(err, &reportErr))
				assert.Equal(t, apiErrors.ErrResourceNotFound, reportErr.Code)
				assert.ErrorIs(t, err, ErrRatiosNotFound)
			},
		},
		{
			name:   "Formato desconhecido",
			format: Format("docx"),
			setup: func(companyRepo *mocks.MockCompanyRepository, periodRepo *mocks.MockPeriodRepository, ratioRepo *mocks.MockRatioResultRepository) {
				periodRepo.EXPECT().GetByID(ctx, 1).Return(&domain.FinancialPeriod{ID: 1, CompanyID: 2}, nil)
				ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(xyzResult(), nil)
				companyRepo.EXPECT().GetByID(ctx, 2).Return(nil, nil)
			},
			validate: func(t *testing.T, doc *Document, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			companyRepo := mocks.NewMockCompanyRepository(ctrl)
			periodRepo := mocks.NewMockPeriodRepository(ctrl)
			ratioRepo := mocks.NewMockRatioResultRepository(ctrl)
			tt.setup(companyRepo, periodRepo, ratioRepo)

			service := &Service{
				companyRepo: companyRepo,
				periodRepo:  periodRepo,
				ratioRepo:   ratioRepo,
				benchmarks:  benchmarksFunc(func(context.Context) domain.RatioBenchmarks { return domain.DefaultBenchmarks() }),
				now:         func() time.Time { return fixedNow },
			}

			doc, err := service.ExportRatios(ctx, 1, tt.format)
			tt.validate(t, doc, err)
		})
	}
}

func TestService_ExportCompanies(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	companyRepo.EXPECT().List(ctx, domain.CompanyFilters{}).Return([]*domain.Company{
		{ID: 1, Name: "XYZ Co-op Bank", RegistrationNo: "XYZ-SCB-001", CreatedAt: fixedNow},
	}, nil)

	service := &Service{companyRepo: companyRepo, now: func() time.Time { return fixedNow }}

	doc, err := service.ExportCompanies(ctx, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "companies_2026-10-15.csv", doc.FileName)
	assert.Contains(t, string(doc.Body), "1,XYZ Co-op Bank,XYZ-SCB-001,2026-10-15")

	_, err = service.ExportCompanies(ctx, FormatHTML)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRender_HTML_UserTextIsInert(t *testing.T) {
	table := CompaniesTable([]*domain.Company{{
		Name:           "[click](javascript:alert(1))",
		RegistrationNo: `<img src=x onerror=alert(1)>`,
	}}, fixedNow)

	body, err := Render(table, FormatHTML)
	require.NoError(t, err)

	out := string(body)
	assert.NotContains(t, out, `href="javascript:`)
	assert.NotContains(t, out, "<a ")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "[click](javascript:alert(1))")
}

func TestCSVCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "texto comum", in: "XYZ Co-op Bank", want: "XYZ Co-op Bank"},
		{name: "fórmula", in: "=HYPERLINK(\"http://x\")", want: "'=HYPERLINK(\"http://x\")"},
		{name: "soma", in: "+1+cmd", want: "'+1+cmd"},
		{name: "arroba", in: "@SUM(A1)", want: "'@SUM(A1)"},
		{name: "menos seguido de texto", in: "-cmd|' /C calc'!A0", want: "'-cmd|' /C calc'!A0"},
		{name: "valor negativo", in: "-13,436.00", want: "-13,436.00"},
		{name: "traço isolado", in: "-", want: "-"},
		{name: "vazio", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csvCell(tt.in))
		})
	}
}

func TestRender_CSV_NeutralizesFormulas(t *testing.T) {
	table := CompaniesTable([]*domain.Company{{Name: "=cmd()", RegistrationNo: "XYZ-SCB-001"}}, fixedNow)

	body, err := Render(table, FormatCSV)
	require.NoError(t, err)

	assert.Contains(t, string(body), "'=cmd()")
	assert.NotContains(t, string(body), ",=cmd()")
}

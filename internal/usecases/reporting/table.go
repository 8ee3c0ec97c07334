package reporting

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/utils"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

var contentTypes = map[Format]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatHTML: "text/html; charset=utf-8",
}

// ParseFormat aceita o formato em qualquer caixa; vazio vira xlsx
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatXLSX, true
	}
	_, ok := contentTypes[f]
	return f, ok
}

// Document é o arquivo pronto para download
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Table é a forma comum a todos os formatos de exportação
type Table struct {
	Title   string
	Sheet   string
	Meta    []string
	Columns []string
	Widths  []float64
	Rows    [][]string
	// StatusColumn indica a coluna colorida pelo semáforo; -1 quando não há
	StatusColumn int
	Notes        []string
}

const dateLayout = "2006-01-02"

func CompaniesTable(companies []*domain.Company, now time.Time) Table {
	table := Table{
		Title:        "Company List",
		Sheet:        "Companies",
		Meta:         []string{"Generated on: " + now.Format("2006-01-02 15:04")},
		Columns:      []string{"S.No", "Company Name", "Registration No", "Created Date"},
		Widths:       []float64{15, 90, 60, 40},
		StatusColumn: -1,
	}

	for i, company := range companies {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			company.Name,
			company.RegistrationNo,
			company.CreatedAt.Format(dateLayout),
		})
	}
	table.Notes = []string{"Total Companies: " + strconv.Itoa(len(companies))}
	return table
}

// RatioTable lista os índices na ordem do catálogo, com o ideal vindo das referências vigentes
func RatioTable(company *domain.Company, period *domain.FinancialPeriod, result *domain.RatioResult, benchmarks domain.RatioBenchmarks, now time.Time) Table {
	table := Table{
		Title: "Ratio Analysis Report",
		Sheet: "Ratio Analysis",
		Meta: []string{
			"Company: " + company.Name,
			"Period: " + period.Label,
			"Generated: " + now.Format("2006-01-02 15:04"),
		},
		Columns:      []string{"Category", "Ratio", "Value", "Unit", "Ideal Value", "Status"},
		Widths:       []float64{38, 62, 25, 17, 25, 20},
		StatusColumn: 5,
	}

	for _, def := range domain.RatioCatalog {
		value, ok := result.AllRatios[def.Key]
		if !ok {
			continue
		}

		ideal := "-"
		if def.BenchmarkKey != "" {
			if b, ok := benchmarks.Get(def.BenchmarkKey); ok {
				ideal = formatNumber(b)
			}
		}

		status := "N/A"
		if s, ok := result.TrafficLightStatus[def.Key]; ok {
			status = string(s)
		}

		table.Rows = append(table.Rows, []string{
			def.Category,
			def.Name,
			formatValue(value, def.Unit),
			string(def.Unit),
			ideal,
			status,
		})
	}

	if result.Interpretation != "" {
		table.Notes = append(table.Notes, "Interpretation: "+result.Interpretation)
	}
	efficiency := "Not efficient"
	if result.IsEfficient {
		efficiency = "Efficient"
	}
	table.Notes = append(table.Notes, "Efficiency: "+efficiency)

	return table
}

func formatNumber(v float64) string {
	return utils.FormatRatio(v)
}

// formatValue usa o agrupamento indiano para valores monetários
func formatValue(v float64, unit domain.RatioUnit) string {
	if unit == domain.UnitAmount {
		return utils.FormatINR(v)
	}
	return formatNumber(v)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName monta "<prefixo>_<data>.<ext>", com espaços e símbolos trocados por "_"
func FileName(prefix string, now time.Time, format Format) string {
	name := strings.Trim(unsafeChars.ReplaceAllString(prefix, "_"), "_")
	return name + "_" + now.Format(dateLayout) + "." + string(format)
}

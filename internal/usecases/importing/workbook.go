package importing

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetNames usados no modelo de planilha
var SheetNames = map[domain.StatementType]string{
	domain.StatementTypeTrading:      "Trading Account",
	domain.StatementTypeProfitLoss:   "Profit & Loss",
	domain.StatementTypeBalanceSheet: "Balance Sheet",
	domain.StatementTypeOperational:  "Operational Metrics",
}

// Workbook guarda os valores lidos da planilha, por demonstrativo e campo canônico
type Workbook struct {
	Values   map[domain.StatementType]map[string]decimal.Decimal
	Warnings []string
}

// SheetType reconhece o demonstrativo pelo nome da aba
func SheetType(name string) (domain.StatementType, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(n, "trading"):
		return domain.StatementTypeTrading, true
	case strings.Contains(n, "profit"), strings.Contains(n, "loss"), strings.Contains(n, "p&l"), n == "pl":
		return domain.StatementTypeProfitLoss, true
	case strings.Contains(n, "balance"):
		return domain.StatementTypeBalanceSheet, true
	case strings.Contains(n, "operational"), strings.Contains(n, "metrics"), strings.Contains(n, "staff"):
		return domain.StatementTypeOperational, true
	}
	return "", false
}

// ParseAmount aceita separadores de milhar, símbolo de moeda e negativos entre parênteses
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(",", "", " ", "", "₹", "", "Rs.", "", "Rs", "").Replace(s)

	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if negative {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// ParseWorkbook lê as abas reconhecidas; cada linha é "item | valor".
// Linhas não reconhecidas viram avisos, sem interromper a leitura.
func ParseWorkbook(r io.Reader, resolver *Resolver) (*Workbook, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer file.Close()

	workbook := &Workbook{Values: map[domain.StatementType]map[string]decimal.Decimal{}}

	for _, sheet := range file.GetSheetList() {
		statementType, ok := SheetType(sheet)
		if !ok {
			workbook.warn("Aba '%s' ignorada: demonstrativo não reconhecido", sheet)
			continue
		}
		if _, dup := workbook.Values[statementType]; dup {
			workbook.warn("Aba '%s' ignorada: demonstrativo %s já lido", sheet, statementType)
			continue
		}

		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler aba '%s': %w", sheet, err)
		}

		values := map[string]decimal.Decimal{}
		for i, row := range rows {
			line := i + 1
			if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
				continue
			}

			amount, err := ParseAmount(row[1])
			if err != nil {
				// primeira linha não numérica é o cabeçalho
				if i > 0 {
					workbook.warn("Aba '%s' linha %d: valor inválido '%s'", sheet, line, row[1])
				}
				continue
			}

			field, ok := resolver.Resolve(statementType, row[0])
			if !ok {
				workbook.warn("Aba '%s' linha %d: item '%s' não reconhecido", sheet, line, strings.TrimSpace(row[0]))
				continue
			}
			if _, dup := values[field]; dup {
				workbook.warn("Aba '%s' linha %d: campo '%s' repetido, mantido o primeiro valor", sheet, line, field)
				continue
			}
			values[field] = amount
		}

		workbook.Values[statementType] = values
	}

	return workbook, nil
}

func (w *Workbook) warn(format string, args ...any) {
	w.Warnings = append(w.Warnings, fmt.Sprintf(format, args...))
}

// Template gera a planilha modelo, uma aba por demonstrativo com os nomes de exibição
func Template(resolver *Resolver, catalog Catalog) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, statementType := range domain.StatementTypes {
		sheet := SheetNames[statementType]
		if i == 0 {
			if err := file.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := file.SetSheetRow(sheet, "A1", &[]any{"Item", "Amount"}); err != nil {
			return nil, err
		}
		if err := file.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
			return nil, err
		}

		for j, f := range catalog[statementType] {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			if err := file.SetCellValue(sheet, cell, resolver.DisplayName(statementType, f.Field)); err != nil {
				return nil, err
			}
		}

		if err := file.SetColWidth(sheet, "A", "A", 36); err != nil {
			return nil, err
		}
		if err := file.SetColWidth(sheet, "B", "B", 18); err != nil {
			return nil, err
		}
	}

	return file.WriteToBuffer()
}

package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// cores do semáforo (RGB)
var statusColors = map[string][3]int{
	"green":  {34, 197, 94},
	"yellow": {234, 179, 8},
	"red":    {239, 68, 68},
}

var brandColor = [3]int{70, 95, 255}

const utf8BOM = "\xEF\xBB\xBF"

func Render(table Table, format Format) ([]byte, error) {
	switch format {
	case FormatXLSX:
		return renderXLSX(table)
	case FormatPDF:
		return renderPDF(table)
	case FormatCSV:
		return renderCSV(table)
	case FormatHTML:
		return renderHTML(table)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

func renderXLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{rgbHex(brandColor)}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	statusStyles := map[string]int{}
	for status, rgb := range statusColors {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{rgbHex(rgb)}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}
		statusStyles[status] = style
	}

	row := 1
	for _, line := range table.Meta {
		if err := f.SetCellValue(sheet, cellName(1, row), line); err != nil {
			return nil, err
		}
		row++
	}
	if len(table.Meta) > 0 {
		row++
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, cellName(1, row), &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, cellName(1, row), cellName(len(table.Columns), row), headerStyle); err != nil {
		return nil, err
	}
	row++

	for _, values := range table.Rows {
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		if err := f.SetSheetRow(sheet, cellName(1, row), &cells); err != nil {
			return nil, err
		}
		if table.StatusColumn >= 0 {
			if style, ok := statusStyles[values[table.StatusColumn]]; ok {
				cell := cellName(table.StatusColumn+1, row)
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return nil, err
				}
			}
		}
		row++
	}

	row++
	for _, note := range table.Notes {
		if err := f.SetCellValue(sheet, cellName(1, row), note); err != nil {
			return nil, err
		}
		row++
	}

	for i, width := range table.Widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, width/2.5); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(table Table) ([]byte, error) {
	orientation := "P"
	if table.StatusColumn < 0 {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.CellFormat(0, 10, tr(table.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	for _, line := range table.Meta {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.SetTextColor(255, 255, 255)
	for i, c := range table.Columns {
		pdf.CellFormat(table.Widths[i], 8, tr(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for r, values := range table.Rows {
		for i, v := range values {
			fill := r%2 == 1
			pdf.SetFillColor(240, 240, 240)
			pdf.SetTextColor(51, 51, 51)

			if i == table.StatusColumn {
				if rgb, ok := statusColors[v]; ok {
					pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
					pdf.SetTextColor(255, 255, 255)
					fill = true
				}
			}
			pdf.CellFormat(table.Widths[i], 7, tr(v), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for _, note := range table.Notes {
		pdf.MultiCell(0, 5, tr(note), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderCSV inclui o BOM para que planilhas reconheçam UTF-8
func renderCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	for _, line := range table.Meta {
		if err := w.Write([]string{csvCell(line)}); err != nil {
			return nil, err
		}
	}
	if len(table.Meta) > 0 {
		if err := w.Write([]string{""}); err != nil {
			return nil, err
		}
	}
	if err := w.Write(table.Columns); err != nil {
		return nil, err
	}
	for _, values := range table.Rows {
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = csvCell(v)
		}
		if err := w.Write(cells); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// csvCell impede que planilhas interpretem texto como fórmula; números negativos passam intactos
func csvCell(v string) string {
	if len(v) < 2 || !strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return v
	}
	if _, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "")); err == nil {
		return v
	}
	return "'" + v
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// Markdown monta o relatório em Markdown; o status vai como span para receber a cor
func Markdown(table Table) string {
	var sb strings.Builder
	sb.WriteString("# " + escapeMarkdown(table.Title) + "\n\n")
	for _, line := range table.Meta {
		sb.WriteString("- " + escapeMarkdown(line) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("| " + strings.Join(table.Columns, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(table.Columns)) + "\n")
	for _, values := range table.Rows {
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = escapeMarkdown(v)
			if i == table.StatusColumn {
				if _, ok := statusColors[v]; ok {
					cells[i] = fmt.Sprintf(`<span class="status status-%s">%s</span>`, v, v)
				}
			}
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if len(table.Notes) > 0 {
		sb.WriteString("\n## Summary\n\n")
		for _, note := range table.Notes {
			sb.WriteString(escapeMarkdown(note) + "\n\n")
		}
	}
	return sb.String()
}

func renderHTML(table Table) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(table)), &body); err != nil {
		return nil, err
	}

	var style strings.Builder
	for status, rgb := range statusColors {
		style.WriteString(fmt.Sprintf(".status-%s{background:%s;}", status, rgbHex(rgb)))
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	out.WriteString(html.EscapeString(table.Title))
	out.WriteString("</title><style>body{font-family:Helvetica,Arial,sans-serif;color:#333;margin:24px;}")
	out.WriteString("table{border-collapse:collapse;}th,td{border:1px solid #ddd;padding:4px 8px;}")
	out.WriteString(fmt.Sprintf("th{background:%s;color:#fff;}", rgbHex(brandColor)))
	out.WriteString(".status{color:#fff;padding:2px 6px;border-radius:4px;}")
	out.WriteString(style.String())
	out.WriteString("</style></head><body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body></html>\n")
	return out.Bytes(), nil
}

// markdownEscaper impede links e imagens montados a partir dos dados, além de quebrar colunas
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
)

// escapeMarkdown neutraliza HTML e a sintaxe de link dos valores vindos do usuário
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(html.EscapeString(s))
}

func rgbHex(rgb [3]int) string {
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

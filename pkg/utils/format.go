package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// inrPrinter usa o padrão CLDR de en-IN, que agrupa em lakh e crore (#,##,##0.###)
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formata um valor com agrupamento indiano (ex.: 5,18,42,540.90)
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("%.2f", amount)
}

// FormatRatio formata um índice com duas casas decimais
func FormatRatio(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

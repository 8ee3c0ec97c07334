// Package fiscal interpreta rótulos de período do ano fiscal indiano (abril a março).
package fiscal

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type PeriodType string

const (
	Monthly    PeriodType = "MONTHLY"
	Quarterly  PeriodType = "QUARTERLY"
	HalfYearly PeriodType = "HALF_YEARLY"
	Yearly     PeriodType = "YEARLY"
)

// PeriodLabel é o resultado da interpretação de um rótulo
type PeriodLabel struct {
	Label      string
	StartDate  time.Time
	EndDate    time.Time
	PeriodType PeriodType
}

const sep = `[_\-\s]*`

var (
	monthlyRe   = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)` + sep + `(\d{4})(?:\D|$)`)
	quarterlyRe = regexp.MustCompile(`(?i)Q([1-4])` + sep + `FY` + sep + `(\d{4})` + sep + `(\d{2})\b`)
	halfRe      = regexp.MustCompile(`(?i)H([12])` + sep + `FY` + sep + `(\d{4})` + sep + `(\d{2})\b`)
	yearlyRe    = regexp.MustCompile(`(?i)FY` + sep + `(\d{4})` + sep + `(\d{2})\b`)
	// qualquer prefixo Q/H antes de FY impede a leitura como anual, inclusive Q5 ou H3
	prefixedRe  = regexp.MustCompile(`(?i)[QH]\d+` + sep + `FY`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseLabel interpreta rótulos como Apr_2024, Q1_FY_2024_25, H2_FY_2024_25 e FY_2024_25.
// Retorna false quando nenhum formato é reconhecido.
func ParseLabel(label string) (PeriodLabel, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return PeriodLabel{}, false
	}

	if m := monthlyRe.FindStringSubmatch(s); m != nil {
		month := months[strings.ToLower(m[1])]
		year, _ := strconv.Atoi(m[2])
		start := date(year, month, 1)
		end := start.AddDate(0, 1, -1)
		return PeriodLabel{
			Label:      fmt.Sprintf("%s_%d", month.String()[:3], year),
			StartDate:  start,
			EndDate:    end,
			PeriodType: Monthly,
		}, true
	}

	if m := quarterlyRe.FindStringSubmatch(s); m != nil {
		q, _ := strconv.Atoi(m[1])
		startYear, endYear := fiscalYears(m[2], m[3])

		var start, end time.Time
		switch q {
		case 1:
			start, end = date(startYear, time.April, 1), date(startYear, time.June, 30)
		case 2:
			start, end = date(startYear, time.July, 1), date(startYear, time.September, 30)
		case 3:
			start, end = date(startYear, time.October, 1), date(startYear, time.December, 31)
		default:
			start, end = date(endYear, time.January, 1), date(endYear, time.March, 31)
		}

		return PeriodLabel{
			Label:      fmt.Sprintf("Q%d_FY_%d_%02d", q, startYear, endYear%100),
			StartDate:  start,
			EndDate:    end,
			PeriodType: Quarterly,
		}, true
	}

	if m := halfRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		startYear, endYear := fiscalYears(m[2], m[3])

		start, end := date(startYear, time.April, 1), date(startYear, time.September, 30)
		if h == 2 {
			start, end = date(startYear, time.October, 1), date(endYear, time.March, 31)
		}

		return PeriodLabel{
			Label:      fmt.Sprintf("H%d_FY_%d_%02d", h, startYear, endYear%100),
			StartDate:  start,
			EndDate:    end,
			PeriodType: HalfYearly,
		}, true
	}

	if prefixedRe.MatchString(s) {
		return PeriodLabel{}, false
	}

	if m := yearlyRe.FindStringSubmatch(s); m != nil {
		startYear, endYear := fiscalYears(m[1], m[2])
		return PeriodLabel{
			Label:      fmt.Sprintf("FY_%d_%02d", startYear, endYear%100),
			StartDate:  date(startYear, time.April, 1),
			EndDate:    date(endYear, time.March, 31),
			PeriodType: Yearly,
		}, true
	}

	return PeriodLabel{}, false
}

// LabelFromFilename remove diretório e extensão antes de interpretar o rótulo
func LabelFromFilename(filename string) (PeriodLabel, bool) {
	base := filepath.Base(filename)
	return ParseLabel(strings.TrimSuffix(base, filepath.Ext(base)))
}

func fiscalYears(start, end string) (int, int) {
	startYear, _ := strconv.Atoi(start)
	endYear, _ := strconv.Atoi(end)
	if endYear < 100 {
		endYear += 2000
	}
	return startYear, endYear
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

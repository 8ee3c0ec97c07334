package domain

import (
	"errors"
	"time"
)

type PeriodType string

const (
	PeriodTypeMonthly    PeriodType = "MONTHLY"
	PeriodTypeQuarterly  PeriodType = "QUARTERLY"
	PeriodTypeHalfYearly PeriodType = "HALF_YEARLY"
	PeriodTypeYearly     PeriodType = "YEARLY"
)

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodTypeMonthly, PeriodTypeQuarterly, PeriodTypeHalfYearly, PeriodTypeYearly:
		return true
	}
	return false
}

type FinancialPeriod struct {
	ID           int        `json:"id"`
	CompanyID    int        `json:"company"`
	PeriodType   PeriodType `json:"period_type"`
	StartDate    Date       `json:"start_date"`
	EndDate      Date       `json:"end_date"`
	Label        string     `json:"label"`
	IsFinalized  bool       `json:"is_finalized"`
	UploadedFile *string    `json:"uploaded_file"`
	FileType     *string    `json:"file_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Validate verifica tipo, rótulo e ordem das datas
func (p *FinancialPeriod) Validate() error {
	if p.CompanyID == 0 {
		return errors.New("empresa é obrigatória")
	}
	if p.Label == "" {
		return errors.New("rótulo é obrigatório")
	}
	if !p.PeriodType.IsValid() {
		return errors.New("tipo de período inválido")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return errors.New("datas de início e fim são obrigatórias")
	}
	if p.StartDate.After(p.EndDate.Time) {
		return errors.New("data de início deve ser anterior ou igual à data de fim")
	}
	return nil
}

type PeriodFilters struct {
	CompanyID *int
	Label     string
}

// PeriodInput é o corpo aceito na criação e edição de períodos.
// Datas e tipo podem ser omitidos quando o rótulo é reconhecido.
type PeriodInput struct {
	CompanyID   int        `json:"company"`
	PeriodType  PeriodType `json:"period_type"`
	StartDate   *Date      `json:"start_date"`
	EndDate     *Date      `json:"end_date"`
	Label       string     `json:"label"`
	IsFinalized *bool      `json:"is_finalized"`
}

// PeriodDetail agrega o período com seus demonstrativos e índices
type PeriodDetail struct {
	FinancialPeriod
	CompanyName        string              `json:"company_name"`
	TradingAccount     *TradingAccount     `json:"trading_account"`
	ProfitLoss         *ProfitAndLoss      `json:"profit_loss"`
	BalanceSheet       *BalanceSheetView   `json:"balance_sheet"`
	OperationalMetrics *OperationalMetrics `json:"operational_metrics"`
	Ratios             *RatioResult        `json:"ratios"`
}

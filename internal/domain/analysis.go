package domain

type PeriodRatios struct {
	ID     int      `json:"id"`
	Label  string   `json:"label"`
	Ratios RatioSet `json:"ratios"`
}

type RatioDifference struct {
	Value            float64  `json:"value"`
	PercentageChange *float64 `json:"percentage_change"`
}

type PeriodComparison struct {
	Period1    PeriodRatios               `json:"period_1"`
	Period2    PeriodRatios               `json:"period_2"`
	Difference map[string]RatioDifference `json:"difference"`
}

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type TrendPoint struct {
	PeriodID      int            `json:"period_id"`
	Label         string         `json:"label"`
	StartDate     Date           `json:"start_date"`
	Value         float64        `json:"value"`
	ChangePercent *float64       `json:"change_percent"`
	Direction     TrendDirection `json:"direction"`
}

type RatioTrend struct {
	Key      string       `json:"key"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Unit     RatioUnit    `json:"unit"`
	Points   []TrendPoint `json:"points"`
}

type TrendFilters struct {
	CompanyID int
	Category  string
	Ratios    []string
}

type DashboardFilters struct {
	CompanyID     int
	PeriodID      *int
	IncludeRatios bool
	Category      string
}

type DashboardPeriod struct {
	ID                 int                     `json:"id"`
	Label              string                  `json:"label"`
	PeriodType         PeriodType              `json:"period_type"`
	StartDate          Date                    `json:"start_date"`
	EndDate            Date                    `json:"end_date"`
	IsFinalized        bool                    `json:"is_finalized"`
	NetRevenue         float64                 `json:"net_revenue"`
	NetProfit          float64                 `json:"net_profit"`
	Ratios             RatioSet                `json:"ratios,omitempty"`
	TrafficLightStatus map[string]TrafficLight `json:"traffic_light_status,omitempty"`
}

type Dashboard struct {
	Periods []DashboardPeriod `json:"periods"`
}

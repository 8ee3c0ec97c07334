package ratio

import "github.com/vfg2006/coop-ratio-api/internal/domain"

type rule func(v float64, b domain.RatioBenchmarks) (domain.TrafficLight, bool)

// atLeast: verde a partir da referência, amarelo a partir de factor vezes a referência
func atLeast(key string, factor float64) rule {
	return func(v float64, b domain.RatioBenchmarks) (domain.TrafficLight, bool) {
		ref, ok := b.Get(key)
		if !ok {
			return "", false
		}
		switch {
		case v >= ref:
			return domain.TrafficLightGreen, true
		case v >= ref*factor:
			return domain.TrafficLightYellow, true
		}
		return domain.TrafficLightRed, true
	}
}

// atMost: verde até a referência, amarelo até factor vezes a referência
func atMost(key string, factor float64) rule {
	return func(v float64, b domain.RatioBenchmarks) (domain.TrafficLight, bool) {
		ref, ok := b.Get(key)
		if !ok {
			return "", false
		}
		switch {
		case v <= ref:
			return domain.TrafficLightGreen, true
		case v <= ref*factor:
			return domain.TrafficLightYellow, true
		}
		return domain.TrafficLightRed, true
	}
}

// withinAbove: verde dentro da faixa, amarelo a partir de factor vezes o mínimo
func withinAbove(minKey, maxKey string, factor float64) rule {
	return func(v float64, b domain.RatioBenchmarks) (domain.TrafficLight, bool) {
		lo, okMin := b.Get(minKey)
		hi, okMax := b.Get(maxKey)
		if !okMin || !okMax {
			return "", false
		}
		switch {
		case v >= lo && v <= hi:
			return domain.TrafficLightGreen, true
		case v >= lo*factor:
			return domain.TrafficLightYellow, true
		}
		return domain.TrafficLightRed, true
	}
}

// withinBelow: verde dentro da faixa, amarelo até factor vezes o máximo
func withinBelow(minKey, maxKey string, factor float64) rule {
	return func(v float64, b domain.RatioBenchmarks) (domain.TrafficLight, bool) {
		lo, okMin := b.Get(minKey)
		hi, okMax := b.Get(maxKey)
		if !okMin || !okMax {
			return "", false
		}
		switch {
		case v >= lo && v <= hi:
			return domain.TrafficLightGreen, true
		case v <= hi*factor:
			return domain.TrafficLightYellow, true
		}
		return domain.TrafficLightRed, true
	}
}

var rules = map[string]rule{
	"net_margin":           atLeast("net_margin", 0.5),
	"risk_cost_to_wf":      atMost("risk_cost_to_wf_max", 2),
	"stock_turnover":       atLeast("stock_turnover", 0.7),
	"gross_profit_ratio":   withinAbove("gross_profit_ratio_min", "gross_profit_ratio_max", 0.7),
	"loans_to_wf":          withinAbove("loans_to_wf_min", "loans_to_wf_max", 0.8),
	"investments_to_wf":    withinAbove("investments_to_wf_min", "investments_to_wf_max", 0.7),
	"credit_deposit_ratio": atLeast("credit_deposit_ratio_min", 0.8),
	"gross_fin_margin":     atLeast("gross_financial_margin", 0.7),
	"operating_cost_to_wf": withinBelow("operating_cost_to_wf_min", "operating_cost_to_wf_max", 1.2),
	"own_fund_to_wf":       atLeast("own_fund_to_wf", 0.7),
	"net_fin_margin":       atLeast("net_financial_margin", 0.7),
	"avg_yield_on_wf":      atLeast("avg_yield_on_wf", 0.7),
	"avg_cost_of_wf":       atMost("avg_cost_of_wf", 1.3),
}

// Status classifica um índice; sem regra ou sem referência o resultado é amarelo
func Status(key string, value float64, benchmarks domain.RatioBenchmarks) domain.TrafficLight {
	r, ok := rules[key]
	if !ok {
		return domain.TrafficLightYellow
	}
	if status, ok := r(value, benchmarks); ok {
		return status
	}
	return domain.TrafficLightYellow
}

// TrafficLights classifica todos os índices, exceto os valores absolutos
func TrafficLights(values map[string]float64, benchmarks domain.RatioBenchmarks) map[string]domain.TrafficLight {
	statuses := make(map[string]domain.TrafficLight, len(values))
	for key, value := range values {
		if domain.IsAmountKey(key) {
			continue
		}
		statuses[key] = Status(key, value, benchmarks)
	}
	return statuses
}

package ratio

import "strings"

// Interpret gera o parecer textual a partir dos índices não arredondados
func Interpret(r map[string]float64) string {
	var sentences []string

	if r["credit_deposit_ratio"] > 70 {
		sentences = append(sentences, "Efficiency in deploying resources is high.")
	} else {
		sentences = append(sentences, "Under-utilization of mobilized deposits.")
	}

	if cod, yol := r["cost_of_deposits"], r["yield_on_loans"]; cod > 0 && yol > 0 {
		if cod < yol-4 {
			sentences = append(sentences, "Cost-effective deposit management.")
		} else {
			sentences = append(sentences, "Deposit costs are relatively high compared to loan yields.")
		}
	}

	switch nm := r["net_margin"]; {
	case nm >= 1.0:
		sentences = append(sentences, "Healthy profitability.")
	case nm >= 0.5:
		sentences = append(sentences, "Moderate profitability - room for improvement.")
	default:
		sentences = append(sentences, "Low profitability - requires immediate attention.")
	}

	switch risk := r["risk_cost_to_wf"]; {
	case risk > 0.25:
		sentences = append(sentences, "High risk exposure - review provisions.")
	case risk > 0.15:
		sentences = append(sentences, "Moderate risk exposure.")
	default:
		sentences = append(sentences, "Low risk exposure.")
	}

	switch st := r["stock_turnover"]; {
	case st >= 15:
		sentences = append(sentences, "Good inventory management.")
	case st >= 10:
		sentences = append(sentences, "Adequate inventory turnover.")
	default:
		sentences = append(sentences, "Low inventory turnover - review stock management.")
	}

	switch loans := r["loans_to_wf"]; {
	case loans < 70:
		sentences = append(sentences, "Loans deployment below optimal level.")
	case loans > 75:
		sentences = append(sentences, "High loan deployment - ensure adequate liquidity.")
	}

	return strings.Join(sentences, " ")
}

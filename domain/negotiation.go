package domain

// NegotiationInput feeds the single-installment negotiation.
type NegotiationInput struct {
	CourseValue        float64
	CurrentInstallment float64
	OverdueInstallment float64
}

type NegotiationResult struct {
	CurrentDiscountPct        float64 `json:"current_discount_pct"`
	ReducedDiscountPct        float64 `json:"reduced_discount_pct"`
	OverdueInstallment        float64 `json:"overdue_installment"`
	NegotiatedAmount          float64 `json:"negotiated_amount"`
	CurrentDiscountPctDisplay string  `json:"current_discount_pct_display"`
	ReducedDiscountPctDisplay string  `json:"reduced_discount_pct_display"`
	OverdueInstallmentBRL     string  `json:"overdue_installment_brl"`
	NegotiatedAmountBRL       string  `json:"negotiated_amount_brl"`
}

// MultiNegotiationInput feeds the negotiation over several overdue
// installments. Only the first installment is discounted.
type MultiNegotiationInput struct {
	CourseValue        float64
	CurrentInstallment float64
	Installments       []float64
}

type MultiNegotiationResult struct {
	CurrentDiscountPct        float64 `json:"current_discount_pct"`
	ReducedDiscountPct        float64 `json:"reduced_discount_pct"`
	TotalOverdue              float64 `json:"total_overdue"`
	NegotiatedAmount          float64 `json:"negotiated_amount"`
	DiscountGranted           float64 `json:"discount_granted"`
	CurrentDiscountPctDisplay string  `json:"current_discount_pct_display"`
	ReducedDiscountPctDisplay string  `json:"reduced_discount_pct_display"`
	TotalOverdueBRL           string  `json:"total_overdue_brl"`
	NegotiatedAmountBRL       string  `json:"negotiated_amount_brl"`
	DiscountGrantedBRL        string  `json:"discount_granted_brl"`
}

// SimulationInput feeds the simulation, where the customer keeps only a
// fraction of the current discount.
type SimulationInput struct {
	FullInstallment    float64
	CurrentInstallment float64
}

type SimulationResult struct {
	CurrentDiscountPct        float64 `json:"current_discount_pct"`
	ReducedDiscountPct        float64 `json:"reduced_discount_pct"`
	SimulatedInstallment      float64 `json:"simulated_installment"`
	CurrentDiscountPctDisplay string  `json:"current_discount_pct_display"`
	ReducedDiscountPctDisplay string  `json:"reduced_discount_pct_display"`
	SimulatedInstallmentBRL   string  `json:"simulated_installment_brl"`
}

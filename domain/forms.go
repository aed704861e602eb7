package domain

// Forms carry the amount fields exactly as typed, e.g. "R$ 1.000,00".

type NegotiationForm struct {
	CourseValue        string `json:"course_value"`
	CurrentInstallment string `json:"current_installment"`
	OverdueInstallment string `json:"overdue_installment"`
}

type MultiNegotiationForm struct {
	CourseValue        string `json:"course_value"`
	CurrentInstallment string `json:"current_installment"`
}

type SimulationForm struct {
	FullInstallment    string `json:"full_installment"`
	CurrentInstallment string `json:"current_installment"`
}

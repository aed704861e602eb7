package service

const (
	DefaultReductionPoints = 20.0 // percentage points lost when negotiating
	DefaultRetainedFactor  = 0.8  // share of the discount kept when simulating

	msgFillAllValues      = "Preencha todos os valores corretamente."
	msgFillCourseValues   = "Preencha o valor do curso e mensalidade atual."
	msgMustBePositive     = "Os valores devem ser maiores que zero."
	msgCurrentOverCourse  = "A mensalidade atual não pode ser maior que o valor do curso."
	msgCurrentOverFull    = "A mensalidade atual não pode ser maior que a mensalidade cheia."
	msgEmptyInstallments  = "Adicione ao menos uma mensalidade vencida."
	msgInvalidInstallment = "A lista contém uma mensalidade vencida inválida."
)

// Example values pre-filled in the amount fields when a page opens.
var placeholders = map[string]string{
	"course_value":        "R$ 1.000,00",
	"current_installment": "R$ 800,00",
	"overdue_installment": "R$ 850,00",
	"full_installment":    "R$ 1.000,00",
}

package service

import (
	"math"

	"tuition-negotiation/currency"
	"tuition-negotiation/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ReductionStrategy turns the customer's current discount percentage into
// the discount they keep after losing part of it.
type ReductionStrategy interface {
	Name() string
	Reduce(currentPct float64) float64
}

// PercentagePointReduction subtracts a flat number of percentage points,
// never going below zero.
type PercentagePointReduction struct {
	Points float64
}

func (r PercentagePointReduction) Name() string { return "percentage_points" }

func (r PercentagePointReduction) Reduce(currentPct float64) float64 {
	return math.Max(0, currentPct-r.Points)
}

// RelativeFactorReduction keeps a fraction of the current discount.
type RelativeFactorReduction struct {
	Retained float64
}

func (r RelativeFactorReduction) Name() string { return "relative_factor" }

func (r RelativeFactorReduction) Reduce(currentPct float64) float64 {
	return currentPct * r.Retained
}

type DiscountEngine struct {
	negotiation ReductionStrategy
	simulation  ReductionStrategy
}

// NewDiscountEngine creates an engine using negotiation for both negotiation
// calculators and simulation for the simulation calculator.
func NewDiscountEngine(negotiation, simulation ReductionStrategy) *DiscountEngine {
	return &DiscountEngine{negotiation: negotiation, simulation: simulation}
}

func DefaultDiscountEngine() *DiscountEngine {
	return NewDiscountEngine(
		PercentagePointReduction{Points: DefaultReductionPoints},
		RelativeFactorReduction{Retained: DefaultRetainedFactor},
	)
}

// Negotiate calculates the amount due on a single overdue installment.
func (e *DiscountEngine) Negotiate(
	input domain.NegotiationInput,
) (domain.NegotiationResult, error) {

	err := validateAmounts(amountCheck{
		base:        input.CourseValue,
		current:     input.CurrentInstallment,
		others:      []float64{input.OverdueInstallment},
		nonNumeric:  msgFillAllValues,
		exceedsBase: msgCurrentOverCourse,
	})
	if err != nil {
		return domain.NegotiationResult{}, err
	}

	currentPct := discountPct(input.CourseValue, input.CurrentInstallment)
	reducedPct := e.negotiation.Reduce(currentPct)
	negotiated := applyDiscount(input.OverdueInstallment, reducedPct)

	return domain.NegotiationResult{
		CurrentDiscountPct:        roundTo2Decimals(currentPct),
		ReducedDiscountPct:        roundTo2Decimals(reducedPct),
		OverdueInstallment:        roundTo2Decimals(input.OverdueInstallment),
		NegotiatedAmount:          roundTo2Decimals(negotiated),
		CurrentDiscountPctDisplay: currency.FormatPercent(currentPct),
		ReducedDiscountPctDisplay: currency.FormatPercent(reducedPct),
		OverdueInstallmentBRL:     currency.Format(input.OverdueInstallment),
		NegotiatedAmountBRL:       currency.Format(negotiated),
	}, nil
}

// NegotiateMany totals every overdue installment but only discounts the
// first one; the rest is reported as discount granted.
func (e *DiscountEngine) NegotiateMany(
	input domain.MultiNegotiationInput,
) (domain.MultiNegotiationResult, error) {

	err := validateAmounts(amountCheck{
		base:        input.CourseValue,
		current:     input.CurrentInstallment,
		nonNumeric:  msgFillCourseValues,
		exceedsBase: msgCurrentOverCourse,
	})
	if err != nil {
		return domain.MultiNegotiationResult{}, err
	}
	if len(input.Installments) == 0 {
		return domain.MultiNegotiationResult{}, domain.NewValidationError(domain.KindEmptyInstallments, msgEmptyInstallments)
	}
	for _, amount := range input.Installments {
		if !isFinite(amount) || amount <= 0 {
			return domain.MultiNegotiationResult{}, domain.NewValidationError(domain.KindInvalidInstallment, msgInvalidInstallment)
		}
	}

	currentPct := discountPct(input.CourseValue, input.CurrentInstallment)
	reducedPct := e.negotiation.Reduce(currentPct)

	totalOverdue := domain.InstallmentList(input.Installments).Total()
	negotiated := applyDiscount(input.Installments[0], reducedPct)
	granted := totalOverdue - negotiated

	return domain.MultiNegotiationResult{
		CurrentDiscountPct:        roundTo2Decimals(currentPct),
		ReducedDiscountPct:        roundTo2Decimals(reducedPct),
		TotalOverdue:              roundTo2Decimals(totalOverdue),
		NegotiatedAmount:          roundTo2Decimals(negotiated),
		DiscountGranted:           roundTo2Decimals(granted),
		CurrentDiscountPctDisplay: currency.FormatPercent(currentPct),
		ReducedDiscountPctDisplay: currency.FormatPercent(reducedPct),
		TotalOverdueBRL:           currency.Format(totalOverdue),
		NegotiatedAmountBRL:       currency.Format(negotiated),
		DiscountGrantedBRL:        currency.Format(granted),
	}, nil
}

// Simulate calculates the full installment discounted by what remains of the
// current discount.
func (e *DiscountEngine) Simulate(
	input domain.SimulationInput,
) (domain.SimulationResult, error) {

	err := validateAmounts(amountCheck{
		base:        input.FullInstallment,
		current:     input.CurrentInstallment,
		nonNumeric:  msgFillAllValues,
		exceedsBase: msgCurrentOverFull,
	})
	if err != nil {
		return domain.SimulationResult{}, err
	}

	currentPct := discountPct(input.FullInstallment, input.CurrentInstallment)
	reducedPct := e.simulation.Reduce(currentPct)
	simulated := applyDiscount(input.FullInstallment, reducedPct)

	return domain.SimulationResult{
		CurrentDiscountPct:        roundTo2Decimals(currentPct),
		ReducedDiscountPct:        roundTo2Decimals(reducedPct),
		SimulatedInstallment:      roundTo2Decimals(simulated),
		CurrentDiscountPctDisplay: currency.FormatPercent(currentPct),
		ReducedDiscountPctDisplay: currency.FormatPercent(reducedPct),
		SimulatedInstallmentBRL:   currency.Format(simulated),
	}, nil
}

type amountCheck struct {
	base    float64
	current float64
	others  []float64

	nonNumeric  string
	exceedsBase string
}

// validateAmounts checks, in order: every value finite, every value positive,
// current not above base.
func validateAmounts(c amountCheck) error {
	values := append([]float64{c.base, c.current}, c.others...)

	for _, v := range values {
		if !isFinite(v) {
			return domain.NewValidationError(domain.KindNonNumeric, c.nonNumeric)
		}
	}
	for _, v := range values {
		if v <= 0 {
			return domain.NewValidationError(domain.KindNonPositive, msgMustBePositive)
		}
	}
	if c.current > c.base {
		return domain.NewValidationError(domain.KindCurrentExceedsBase, c.exceedsBase)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func discountPct(base, current float64) float64 {
	return (base - current) / base * 100
}

func applyDiscount(amount, pct float64) float64 {
	return amount * (1 - pct/100)
}

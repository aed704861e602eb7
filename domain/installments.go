package domain

import (
	"fmt"
	"math"

	"tuition-negotiation/currency"
)

// MaxInstallments caps how many overdue installments a session can hold.
const MaxInstallments = 120

// InstallmentList holds overdue installment amounts in the order they were
// added. Duplicates are allowed.
type InstallmentList []float64

// InstallmentView is one list entry ready for display, addressed by Index
// for removal.
type InstallmentView struct {
	Index   int     `json:"index"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// Add appends amount when it is a finite value greater than zero.
func (l *InstallmentList) Add(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return NewValidationError(KindInvalidInstallment, "Informe um valor válido para a mensalidade vencida.")
	}
	if len(*l) >= MaxInstallments {
		return NewValidationError(KindInstallmentsFull,
			fmt.Sprintf("A lista aceita no máximo %d mensalidades vencidas.", MaxInstallments))
	}
	*l = append(*l, amount)
	return nil
}

// RemoveAt deletes the entry at index. An out of range index leaves the
// list untouched and reports false.
func (l *InstallmentList) RemoveAt(index int) bool {
	if index < 0 || index >= len(*l) {
		return false
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
	return true
}

func (l *InstallmentList) Clear() {
	*l = nil
}

func (l InstallmentList) Total() float64 {
	total := 0.0
	for _, amount := range l {
		total += amount
	}
	return total
}

func (l InstallmentList) DisplayList() []InstallmentView {
	views := make([]InstallmentView, 0, len(l))
	for i, amount := range l {
		views = append(views, InstallmentView{
			Index:   i,
			Amount:  amount,
			Display: currency.Format(amount),
		})
	}
	return views
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state behind one calculator page: the overdue installment
// list and the last successful result of each calculator. A nil result means
// nothing to show.
type Session struct {
	ID           uuid.UUID               `json:"id"`
	Installments InstallmentList         `json:"installments"`
	Negotiation  *NegotiationResult      `json:"negotiation,omitempty"`
	Multi        *MultiNegotiationResult `json:"multi,omitempty"`
	Simulation   *SimulationResult       `json:"simulation,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func NewSession(now time.Time) Session {
	return Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

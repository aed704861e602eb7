package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tuition-negotiation/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uint) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}

package repository

import (
	"context"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
)

// SettingsRepository defines the interface for company settings operations.
// The settings table holds a single row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Create(ctx context.Context, settings *entity.CompanySettings) error
	Update(ctx context.Context, settings *entity.CompanySettings) error
}

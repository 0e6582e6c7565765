package ports

import (
	"context"

	"github-migrator/internal/domain/entity"
)

// MigrationService defines the top-level migration operation
type MigrationService interface {
	Run(ctx context.Context, config *entity.Config, createRepo bool) (*entity.MigrationReport, error)
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

// LabelCopier replicates labels into a destination repository
type LabelCopier struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
}

// NewLabelCopier creates a new label copier
func NewLabelCopier(githubRepo ports.GitHubRepository, logger *zap.Logger) *LabelCopier {
	return &LabelCopier{
		githubRepo: githubRepo,
		logger:     loggerOrNop(logger),
	}
}

// CopyAll creates every label at the destination. Labels that already exist
// are skipped and left untouched; any other failure aborts the copy.
func (c *LabelCopier) CopyAll(ctx context.Context, labels []entity.Label, destOwner, destRepo string) (entity.LabelCopyResult, error) {
	result := entity.LabelCopyResult{
		Created: []string{},
		Skipped: []string{},
	}

	c.logger.Info("🏷️  Copying labels...", zap.Int("count", len(labels)), zap.String("owner", destOwner), zap.String("repo", destRepo))
	for _, label := range labels {
		err := c.githubRepo.CreateLabel(ctx, destOwner, destRepo, label)
		switch {
		case err == nil:
			result.Created = append(result.Created, label.Name)
		case entity.IsKind(err, entity.KindConflict):
			c.logger.Info("  Label has already been created", zap.String("label", label.Name))
			result.Skipped = append(result.Skipped, label.Name)
		default:
			return result, fmt.Errorf("error copying label %q: %w", label.Name, err)
		}
	}

	return result, nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

// IssueCopier replicates issues into a destination repository
type IssueCopier struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
}

// NewIssueCopier creates a new issue copier
func NewIssueCopier(githubRepo ports.GitHubRepository, logger *zap.Logger) *IssueCopier {
	return &IssueCopier{
		githubRepo: githubRepo,
		logger:     loggerOrNop(logger),
	}
}

// CopyAll creates one destination issue per source issue and returns the new
// node IDs in source order. The first failure aborts the copy; the IDs created
// so far are returned with the error.
func (c *IssueCopier) CopyAll(ctx context.Context, issues []*entity.Issue, destOwner, destRepo string) ([]string, error) {
	c.logger.Info("📝 Copying issues", zap.Int("count", len(issues)), zap.String("destination", destOwner+"/"+destRepo))

	ids := make([]string, 0, len(issues))
	for _, issue := range issues {
		id, err := c.githubRepo.CreateIssue(ctx, destOwner, destRepo, issue.ToNewIssue())
		if err != nil {
			return ids, fmt.Errorf("error copying issue #%d %q: %w", issue.Number, issue.Title, err)
		}
		c.logger.Debug("  Copied issue", zap.Int("issue_number", issue.Number), zap.String("node_id", id))
		ids = append(ids, id)
	}

	return ids, nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

// RepoResolver finds repositories and creates missing destinations
type RepoResolver struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
}

// NewRepoResolver creates a new repository resolver
func NewRepoResolver(githubRepo ports.GitHubRepository, logger *zap.Logger) *RepoResolver {
	return &RepoResolver{
		githubRepo: githubRepo,
		logger:     loggerOrNop(logger),
	}
}

// Resolve returns the repository with its node ID. A missing repository is
// created as a private organization repository when createIfMissing is set,
// otherwise entity.ErrRepositoryMissing is returned.
func (r *RepoResolver) Resolve(ctx context.Context, owner, name string, createIfMissing bool) (entity.RepoRef, error) {
	ref, err := r.githubRepo.GetRepository(ctx, owner, name)
	if err == nil {
		r.logger.Debug("🔎 Resolved repository", zap.String("owner", owner), zap.String("repo", name), zap.String("node_id", ref.NodeID))
		return ref, nil
	}
	if !entity.IsKind(err, entity.KindNotFound) {
		return entity.RepoRef{}, fmt.Errorf("error resolving repository %s/%s: %w", owner, name, err)
	}

	r.logger.Warn("⚠️  Repository does not exist", zap.String("owner", owner), zap.String("repo", name))
	if !createIfMissing {
		return entity.RepoRef{}, fmt.Errorf("%w: %s/%s", entity.ErrRepositoryMissing, owner, name)
	}

	r.logger.Info("🆕 --create-repo selected, creating repository", zap.String("owner", owner), zap.String("repo", name))
	created, err := r.githubRepo.CreateOrgRepository(ctx, owner, name)
	if err != nil {
		return entity.RepoRef{}, fmt.Errorf("error creating repository %s/%s: %w", owner, name, err)
	}
	return created, nil
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

// ProjectCopier duplicates organization ProjectsV2 boards
type ProjectCopier struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
}

// NewProjectCopier creates a new project copier
func NewProjectCopier(githubRepo ports.GitHubRepository, logger *zap.Logger) *ProjectCopier {
	return &ProjectCopier{
		githubRepo: githubRepo,
		logger:     loggerOrNop(logger),
	}
}

// FetchSourceProject resolves a project by its number within org
func (c *ProjectCopier) FetchSourceProject(ctx context.Context, org string, projectNumber int) (*entity.Project, error) {
	project, err := c.githubRepo.GetOrganizationProject(ctx, org, projectNumber)
	if err != nil {
		return nil, fmt.Errorf("error fetching project %d of %s: %w", projectNumber, org, err)
	}
	c.logger.Debug("🎯 Found source project", zap.String("project_id", project.ID), zap.String("title", project.Title), zap.Int("items", project.ItemCount))
	return project, nil
}

// ResolveOwnerID returns the node ID of the organization that will own the copy
func (c *ProjectCopier) ResolveOwnerID(ctx context.Context, org string) (string, error) {
	id, err := c.githubRepo.GetOrganizationID(ctx, org)
	if err != nil {
		return "", fmt.Errorf("error resolving organization %s: %w", org, err)
	}
	return id, nil
}

// CopyProject duplicates projectID under organizationID with a new title
func (c *ProjectCopier) CopyProject(ctx context.Context, organizationID, projectID, newTitle string, includeDrafts bool) (*entity.Project, error) {
	copied, err := c.githubRepo.CopyProject(ctx, entity.ProjectCopyRequest{
		OwnerID:            organizationID,
		ProjectID:          projectID,
		Title:              newTitle,
		IncludeDraftIssues: includeDrafts,
	})
	if err != nil {
		return nil, fmt.Errorf("error copying project %s: %w", projectID, err)
	}
	return copied, nil
}

// ProjectLinker attaches issues and repositories to a project
type ProjectLinker struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
}

// NewProjectLinker creates a new project linker
func NewProjectLinker(githubRepo ports.GitHubRepository, logger *zap.Logger) *ProjectLinker {
	return &ProjectLinker{
		githubRepo: githubRepo,
		logger:     loggerOrNop(logger),
	}
}

// AttachIssues adds every issue to the project, one call per issue, and
// returns how many were attached before the first failure.
func (l *ProjectLinker) AttachIssues(ctx context.Context, projectID string, issueIDs []string) (int, error) {
	l.logger.Info("📎 Adding copied issues to project...", zap.String("project_id", projectID), zap.Int("count", len(issueIDs)))
	for i, id := range issueIDs {
		if err := l.githubRepo.AddProjectItem(ctx, projectID, id); err != nil {
			return i, fmt.Errorf("error adding issue %s to project: %w", id, err)
		}
	}
	return len(issueIDs), nil
}

// LinkRepository makes the project appear in the repository's project list
func (l *ProjectLinker) LinkRepository(ctx context.Context, repoID, projectID string) error {
	l.logger.Info("🔗 Linking repo to project...", zap.String("repo_id", repoID), zap.String("project_id", projectID))
	if err := l.githubRepo.LinkProjectToRepository(ctx, projectID, repoID); err != nil {
		return fmt.Errorf("error linking project to repository: %w", err)
	}
	return nil
}

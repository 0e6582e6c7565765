package ports

import (
	"context"

	"github-migrator/internal/domain/entity"
)

// GitHubRepository defines the interface for GitHub data access
type GitHubRepository interface {
	// Repository operations
	GetRepository(ctx context.Context, owner, name string) (entity.RepoRef, error)
	CreateOrgRepository(ctx context.Context, org, name string) (entity.RepoRef, error)

	// Label operations
	ListLabels(ctx context.Context, owner, repo string) ([]entity.Label, error)
	CreateLabel(ctx context.Context, owner, repo string, label entity.Label) error

	// Issue operations
	ListIssues(ctx context.Context, owner, repo string, opts entity.IssueListOptions) ([]*entity.Issue, error)
	CreateIssue(ctx context.Context, owner, repo string, issue entity.NewIssue) (string, error)

	// Project operations
	GetOrganizationID(ctx context.Context, login string) (string, error)
	GetOrganizationProject(ctx context.Context, org string, number int) (*entity.Project, error)
	CopyProject(ctx context.Context, req entity.ProjectCopyRequest) (*entity.Project, error)
	AddProjectItem(ctx context.Context, projectID, contentID string) error
	LinkProjectToRepository(ctx context.Context, projectID, repoID string) error
}

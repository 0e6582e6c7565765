package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v58/github"
	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

var _ ports.GitHubRepository = (*Repository)(nil)

// Repository implements the GitHubRepository interface
type Repository struct {
	client   *Client
	pageSize int
	logger   *zap.Logger
}

// NewRepository creates a new GitHub repository adapter
func NewRepository(client *Client, pageSize int, logger *zap.Logger) *Repository {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
	}
}

// GetRepository looks up a repository by owner and name
func (r *Repository) GetRepository(ctx context.Context, owner, name string) (entity.RepoRef, error) {
	repo, _, err := r.client.rest.Repositories.Get(ctx, owner, name)
	if err != nil {
		return entity.RepoRef{}, classify("get repository", err)
	}
	return entity.RepoRef{Owner: owner, Name: name, NodeID: repo.GetNodeID()}, nil
}

// CreateOrgRepository creates a private repository with issues and projects enabled
func (r *Repository) CreateOrgRepository(ctx context.Context, org, name string) (entity.RepoRef, error) {
	repo, _, err := r.client.rest.Repositories.Create(ctx, org, &github.Repository{
		Name:        github.String(name),
		Private:     github.Bool(true),
		HasIssues:   github.Bool(true),
		HasProjects: github.Bool(true),
	})
	if err != nil {
		return entity.RepoRef{}, classify("create repository", err)
	}
	return entity.RepoRef{Owner: org, Name: name, NodeID: repo.GetNodeID(), Created: true}, nil
}

// ListLabels returns every label of a repository
func (r *Repository) ListLabels(ctx context.Context, owner, repo string) ([]entity.Label, error) {
	var labels []entity.Label

	opt := &github.ListOptions{PerPage: r.pageSize}
	for {
		page, resp, err := r.client.rest.Issues.ListLabels(ctx, owner, repo, opt)
		if err != nil {
			return nil, classify("list labels", err)
		}

		for _, label := range page {
			labels = append(labels, entity.Label{
				Name:        label.GetName(),
				Description: label.GetDescription(),
				Color:       label.GetColor(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	r.logger.Debug("📊 Fetched labels", zap.String("owner", owner), zap.String("repo", repo), zap.Int("count", len(labels)))
	return labels, nil
}

// CreateLabel creates a label; an existing label yields a conflict error
func (r *Repository) CreateLabel(ctx context.Context, owner, repo string, label entity.Label) error {
	_, _, err := r.client.rest.Issues.CreateLabel(ctx, owner, repo, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	return classify("create label", err)
}

// ListIssues returns the issues of a repository in listing order
func (r *Repository) ListIssues(ctx context.Context, owner, repo string, opts entity.IssueListOptions) ([]*entity.Issue, error) {
	state := string(opts.State)
	if state == "" {
		state = string(entity.IssueStateOpen)
	}

	var issues []*entity.Issue

	opt := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: r.pageSize},
	}
	for {
		page, resp, err := r.client.rest.Issues.ListByRepo(ctx, owner, repo, opt)
		if err != nil {
			return nil, classify("list issues", err)
		}

		for _, ghIssue := range page {
			if ghIssue.IsPullRequest() && !opts.IncludePullRequests {
				continue
			}
			issues = append(issues, convertIssue(ghIssue))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	r.logger.Debug("📊 Fetched issues", zap.String("owner", owner), zap.String("repo", repo), zap.Int("count", len(issues)))
	return issues, nil
}

// CreateIssue creates an issue and returns its node ID
func (r *Repository) CreateIssue(ctx context.Context, owner, repo string, issue entity.NewIssue) (string, error) {
	labels := issue.Labels
	if labels == nil {
		labels = []string{}
	}

	created, _, err := r.client.rest.Issues.Create(ctx, owner, repo, &github.IssueRequest{
		Title:     github.String(issue.Title),
		Body:      github.String(issue.Body),
		Labels:    &labels,
		Milestone: issue.Milestone,
	})
	if err != nil {
		return "", classify("create issue", err)
	}
	return created.GetNodeID(), nil
}

// GetOrganizationID resolves the node ID of an organization
func (r *Repository) GetOrganizationID(ctx context.Context, login string) (string, error) {
	var q struct {
		Organization struct {
			ID githubv4.ID
		} `graphql:"organization(login: $login)"`
	}
	vars := map[string]interface{}{
		"login": githubv4.String(login),
	}

	if err := r.client.graphql.Query(ctx, &q, vars); err != nil {
		return "", classify("get organization", err)
	}

	id := nodeID(q.Organization.ID)
	if id == "" {
		return "", notFound("get organization", fmt.Sprintf("organization %s", login))
	}
	return id, nil
}

// GetOrganizationProject resolves a ProjectsV2 board by its number within org
func (r *Repository) GetOrganizationProject(ctx context.Context, org string, number int) (*entity.Project, error) {
	var q struct {
		Organization struct {
			ID        githubv4.ID
			ProjectV2 struct {
				ID     githubv4.ID
				Number int
				Title  string
				Items  struct {
					TotalCount int
				}
			} `graphql:"projectV2(number: $number)"`
		} `graphql:"organization(login: $login)"`
	}
	vars := map[string]interface{}{
		"login":  githubv4.String(org),
		"number": githubv4.Int(number),
	}

	if err := r.client.graphql.Query(ctx, &q, vars); err != nil {
		return nil, classify("get project", err)
	}

	project := q.Organization.ProjectV2
	if nodeID(project.ID) == "" {
		return nil, notFound("get project", fmt.Sprintf("project %d in %s", number, org))
	}

	return &entity.Project{
		OrganizationID: nodeID(q.Organization.ID),
		ID:             nodeID(project.ID),
		Number:         project.Number,
		Title:          project.Title,
		ItemCount:      project.Items.TotalCount,
	}, nil
}

// CopyProject duplicates a project under a new owner and title
func (r *Repository) CopyProject(ctx context.Context, req entity.ProjectCopyRequest) (*entity.Project, error) {
	var m struct {
		CopyProjectV2 struct {
			ProjectV2 struct {
				ID     githubv4.ID
				Number int
				Title  string
				Items  struct {
					TotalCount int
				}
			} `graphql:"projectV2"`
		} `graphql:"copyProjectV2(input: $input)"`
	}
	input := githubv4.CopyProjectV2Input{
		ProjectID:          githubv4.ID(req.ProjectID),
		OwnerID:            githubv4.ID(req.OwnerID),
		Title:              githubv4.String(req.Title),
		IncludeDraftIssues: githubv4.NewBoolean(githubv4.Boolean(req.IncludeDraftIssues)),
	}

	if err := r.client.graphql.Mutate(ctx, &m, input, nil); err != nil {
		return nil, classify("copy project", err)
	}

	copied := m.CopyProjectV2.ProjectV2
	return &entity.Project{
		OrganizationID: req.OwnerID,
		ID:             nodeID(copied.ID),
		Number:         copied.Number,
		Title:          copied.Title,
		ItemCount:      copied.Items.TotalCount,
	}, nil
}

// AddProjectItem adds an issue or pull request to a project
func (r *Repository) AddProjectItem(ctx context.Context, projectID, contentID string) error {
	var m struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID githubv4.ID
			}
		} `graphql:"addProjectV2ItemById(input: $input)"`
	}
	input := githubv4.AddProjectV2ItemByIdInput{
		ProjectID: githubv4.ID(projectID),
		ContentID: githubv4.ID(contentID),
	}

	return classify("add project item", r.client.graphql.Mutate(ctx, &m, input, nil))
}

// LinkProjectToRepository links a project to a repository
func (r *Repository) LinkProjectToRepository(ctx context.Context, projectID, repoID string) error {
	var m struct {
		LinkProjectV2ToRepository struct {
			ClientMutationID string `graphql:"clientMutationId"`
		} `graphql:"linkProjectV2ToRepository(input: $input)"`
	}
	input := githubv4.LinkProjectV2ToRepositoryInput{
		ProjectID:    githubv4.ID(projectID),
		RepositoryID: githubv4.ID(repoID),
	}

	return classify("link project", r.client.graphql.Mutate(ctx, &m, input, nil))
}

// Helper methods

func convertIssue(ghIssue *github.Issue) *entity.Issue {
	var labels []string
	for _, label := range ghIssue.Labels {
		if label.Name != nil {
			labels = append(labels, *label.Name)
		}
	}

	issue := &entity.Issue{
		Number:        ghIssue.GetNumber(),
		Title:         ghIssue.GetTitle(),
		Body:          ghIssue.GetBody(),
		Labels:        labels,
		IsPullRequest: ghIssue.IsPullRequest(),
	}
	if ghIssue.Milestone != nil && ghIssue.Milestone.Number != nil {
		number := *ghIssue.Milestone.Number
		issue.Milestone = &number
	}
	return issue
}

func nodeID(id githubv4.ID) string {
	if id == nil {
		return ""
	}
	if s, ok := id.(string); ok {
		return s
	}
	return fmt.Sprint(id)
}

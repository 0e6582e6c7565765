package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

var _ ports.MigrationService = (*MigrationRunner)(nil)

// MigrationRunner sequences the migration steps in a fixed order
type MigrationRunner struct {
	githubRepo ports.GitHubRepository
	logger     *zap.Logger
	repos      *RepoResolver
	labels     *LabelCopier
	issues     *IssueCopier
	projects   *ProjectCopier
	linker     *ProjectLinker
}

// NewMigrationRunner creates a new migration runner around a single GitHub client
func NewMigrationRunner(githubRepo ports.GitHubRepository, logger *zap.Logger) *MigrationRunner {
	logger = loggerOrNop(logger)
	return &MigrationRunner{
		githubRepo: githubRepo,
		logger:     logger,
		repos:      NewRepoResolver(githubRepo, logger),
		labels:     NewLabelCopier(githubRepo, logger),
		issues:     NewIssueCopier(githubRepo, logger),
		projects:   NewProjectCopier(githubRepo, logger),
		linker:     NewProjectLinker(githubRepo, logger),
	}
}

// Run executes the migration described by config. The returned report is
// never nil; on failure it records which steps completed before the error.
// Nothing is rolled back.
func (m *MigrationRunner) Run(ctx context.Context, config *entity.Config, createRepo bool) (*entity.MigrationReport, error) {
	report := &entity.MigrationReport{
		SourceRepo: config.SourceRef(),
		DestRepo:   config.DestRef(),
		IssueIDs:   []string{},
	}
	j := newJournal(report, m.logger)

	m.logger.Info("🚀 Starting migration",
		zap.String("source", report.SourceRepo.FullName()),
		zap.String("destination", report.DestRepo.FullName()),
		zap.Int("source_project_number", config.SourceProjectNumber))

	// 1. source repository must exist
	source, err := m.repos.Resolve(ctx, report.SourceRepo.Owner, report.SourceRepo.Name, false)
	if err != nil {
		j.fail(entity.StepResolveSource, err)
		return report, err
	}
	report.SourceRepo = source
	j.complete(entity.StepResolveSource, source.NodeID)

	// 2. destination repository, optionally created
	dest, err := m.repos.Resolve(ctx, report.DestRepo.Owner, report.DestRepo.Name, createRepo)
	if err != nil {
		j.fail(entity.StepResolveDest, err)
		return report, err
	}
	report.DestRepo = dest
	report.RepoCreated = dest.Created
	j.complete(entity.StepResolveDest, dest.NodeID)

	// 3. labels
	labels, err := m.githubRepo.ListLabels(ctx, source.Owner, source.Name)
	if err != nil {
		err = fmt.Errorf("error fetching labels from %s: %w", source.FullName(), err)
		j.fail(entity.StepCopyLabels, err)
		return report, err
	}
	labelResult, err := m.labels.CopyAll(ctx, labels, dest.Owner, dest.Name)
	report.LabelsCreated = len(labelResult.Created)
	report.LabelsSkipped = len(labelResult.Skipped)
	if err != nil {
		j.fail(entity.StepCopyLabels, err)
		return report, err
	}
	j.complete(entity.StepCopyLabels, fmt.Sprintf("%d created, %d skipped", report.LabelsCreated, report.LabelsSkipped))

	// 4. issues
	issues, err := m.githubRepo.ListIssues(ctx, source.Owner, source.Name, entity.IssueListOptions{
		State:               config.Migration.IssueState,
		IncludePullRequests: config.Migration.IncludePullRequests,
	})
	if err != nil {
		err = fmt.Errorf("error fetching issues from %s: %w", source.FullName(), err)
		j.fail(entity.StepCopyIssues, err)
		return report, err
	}
	ids, err := m.issues.CopyAll(ctx, issues, dest.Owner, dest.Name)
	report.IssueIDs = ids
	if err != nil {
		j.fail(entity.StepCopyIssues, err)
		return report, err
	}
	j.complete(entity.StepCopyIssues, fmt.Sprintf("%d created", len(ids)))

	// 5. source project
	sourceProject, err := m.projects.FetchSourceProject(ctx, config.SourceOrganization, config.SourceProjectNumber)
	if err != nil {
		j.fail(entity.StepFetchProject, err)
		return report, err
	}
	report.SourceProject = sourceProject
	j.complete(entity.StepFetchProject, sourceProject.ID)

	// 6. copy project
	ownerID := sourceProject.OrganizationID
	if config.Migration.ProjectOwner == entity.ProjectOwnerDestination {
		ownerID, err = m.projects.ResolveOwnerID(ctx, config.DestOrganization)
		if err != nil {
			j.fail(entity.StepCopyProject, err)
			return report, err
		}
	}
	m.logger.Info("📋 Copying project",
		zap.String("title", sourceProject.Title),
		zap.String("new_title", config.DestProjectName))
	copied, err := m.projects.CopyProject(ctx, ownerID, sourceProject.ID, config.DestProjectName, config.Migration.DraftIssuesIncluded())
	if err != nil {
		j.fail(entity.StepCopyProject, err)
		return report, err
	}
	report.CopiedProject = copied
	j.complete(entity.StepCopyProject, copied.ID)

	// 7. attach issues
	attached, err := m.linker.AttachIssues(ctx, copied.ID, ids)
	report.ItemsAttached = attached
	if err != nil {
		j.fail(entity.StepAttachIssues, err)
		return report, err
	}
	j.complete(entity.StepAttachIssues, fmt.Sprintf("%d attached", attached))

	// 8. link repository
	if err := m.linker.LinkRepository(ctx, dest.NodeID, copied.ID); err != nil {
		j.fail(entity.StepLinkRepository, err)
		return report, err
	}
	report.RepoLinked = true
	j.complete(entity.StepLinkRepository, dest.NodeID)

	m.logger.Info("✅ Migration completed",
		zap.Int("labels_created", report.LabelsCreated),
		zap.Int("labels_skipped", report.LabelsSkipped),
		zap.Int("issues_created", len(report.IssueIDs)),
		zap.String("project_id", copied.ID))

	return report, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-migrator/internal/domain/entity"
)

const sampleConfig = `source_organization: orgA
source_repo: repoA
source_project_number: 4
dest_organization: orgB
dest_repo: repoB
dest_project_name: Roadmap (migrated)
github:
  timeout_seconds: 10
  requests_per_hour: 1800
migration:
  issue_state: all
  include_draft_issues: false
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "migration.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := NewRepository().LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, entity.MigrationConfig{
		SourceOrganization:  "orgA",
		SourceRepo:          "repoA",
		SourceProjectNumber: 4,
		DestOrganization:    "orgB",
		DestRepo:            "repoB",
		DestProjectName:     "Roadmap (migrated)",
	}, config.MigrationConfig)
	assert.Equal(t, 10, config.GitHub.TimeoutSec)
	assert.Equal(t, 1800, config.GitHub.RequestsPerHour)
	assert.Equal(t, entity.IssueStateAll, config.Migration.IssueState)
	assert.False(t, config.Migration.DraftIssuesIncluded())
}

func TestLoadConfigMinimal(t *testing.T) {
	config, err := NewRepository().LoadConfig(writeConfig(t, `source_organization: a
source_repo: b
source_project_number: 1
dest_organization: c
dest_repo: d
dest_project_name: e
`))
	require.NoError(t, err)
	assert.Equal(t, "d", config.DestRepo)
	assert.Nil(t, config.Migration.IncludeDraftIssues)
	assert.True(t, config.Migration.DraftIssuesIncluded())
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("GHMIGRATE_DEST_REPO", "repoC")
	t.Setenv("GHMIGRATE_GITHUB_API_URL", "https://ghe.example.com/api/v3/")

	config, err := NewRepository().LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "repoC", config.DestRepo)
	assert.Equal(t, "https://ghe.example.com/api/v3/", config.GitHub.APIURL)
	assert.Equal(t, "orgB", config.DestOrganization)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := NewRepository().LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := NewRepository().LoadConfig(writeConfig(t, "source_repo: [unterminated\n"))
	require.Error(t, err)
}

func TestGenerateExampleConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	repo := NewRepository()

	require.NoError(t, repo.GenerateExampleConfig(path))

	config, err := repo.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "source-org", config.SourceOrganization)
	assert.Equal(t, 1, config.SourceProjectNumber)
	assert.Equal(t, entity.ProjectOwnerDestination, config.Migration.ProjectOwner)
	assert.True(t, config.Migration.DraftIssuesIncluded())

	err = repo.GenerateExampleConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
}

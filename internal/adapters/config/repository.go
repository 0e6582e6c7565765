package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

// EnvPrefix prefixes environment variables that override config keys,
// e.g. GHMIGRATE_DEST_REPO or GHMIGRATE_GITHUB_API_URL
const EnvPrefix = "GHMIGRATE"

var configKeys = []string{
	"source_organization",
	"source_repo",
	"source_project_number",
	"dest_organization",
	"dest_repo",
	"dest_project_name",
	"github.api_url",
	"github.graphql_url",
	"github.timeout_seconds",
	"github.requests_per_hour",
	"github.page_size",
	"github.user_agent",
	"migration.issue_state",
	"migration.include_pull_requests",
	"migration.project_owner",
	"migration.include_draft_issues",
}

var _ ports.ConfigRepository = (*Repository)(nil)

// Repository implements the ConfigRepository interface
type Repository struct{}

// NewRepository creates a new config repository
func NewRepository() *Repository {
	return &Repository{}
}

// LoadConfig loads configuration from a YAML file
func (r *Repository) LoadConfig(configPath string) (*entity.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config entity.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// GenerateExampleConfig generates an example configuration file
func (r *Repository) GenerateExampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", filePath)
	}

	includeDrafts := true
	config := entity.Config{}
	config.SourceOrganization = "source-org"
	config.SourceRepo = "source-repo"
	config.SourceProjectNumber = 1
	config.DestOrganization = "dest-org"
	config.DestRepo = "dest-repo"
	config.DestProjectName = "Migrated Project"
	config.Migration.IssueState = entity.IssueStateOpen
	config.Migration.ProjectOwner = entity.ProjectOwnerDestination
	config.Migration.IncludeDraftIssues = &includeDrafts

	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("error marshaling example config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing example config: %v", err)
	}

	return nil
}

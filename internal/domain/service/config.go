package service

import (
	"fmt"
	"strings"

	"github-migrator/internal/domain/entity"
	"github-migrator/internal/ports"
)

const (
	DefaultAPIURL     = "https://api.github.com/"
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultUserAgent  = "github-migrator/1.0"
	DefaultPageSize   = 100
	DefaultTimeoutSec = 30

	requiredValueMessage = "value required"
)

var _ ports.ConfigService = (*ConfigService)(nil)

// ConfigService implements configuration management business logic
type ConfigService struct {
	configRepo ports.ConfigRepository
}

// NewConfigService creates a new configuration service
func NewConfigService(configRepo ports.ConfigRepository) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
	}
}

// GetConfig loads, defaults and validates the configuration at configPath
func (s *ConfigService) GetConfig(configPath string) (*entity.Config, error) {
	if strings.TrimSpace(configPath) == "" {
		return nil, entity.InvalidInputError{Field: "config", Message: "config file path required"}
	}

	config, err := s.configRepo.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config = s.SetDefaults(config)

	if err := s.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates configuration values
func (s *ConfigService) ValidateConfig(config *entity.Config) error {
	required := []struct {
		field string
		value string
	}{
		{"source_organization", config.SourceOrganization},
		{"source_repo", config.SourceRepo},
		{"dest_organization", config.DestOrganization},
		{"dest_repo", config.DestRepo},
		{"dest_project_name", config.DestProjectName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return entity.InvalidInputError{Field: r.field, Message: requiredValueMessage}
		}
	}

	if config.SourceProjectNumber <= 0 {
		return entity.InvalidInputError{Field: "source_project_number", Message: "must be a positive project number"}
	}

	switch config.Migration.IssueState {
	case entity.IssueStateOpen, entity.IssueStateClosed, entity.IssueStateAll:
	default:
		return entity.InvalidInputError{Field: "migration.issue_state", Message: fmt.Sprintf("unsupported state %q", config.Migration.IssueState)}
	}

	switch config.Migration.ProjectOwner {
	case entity.ProjectOwnerDestination, entity.ProjectOwnerSource:
	default:
		return entity.InvalidInputError{Field: "migration.project_owner", Message: fmt.Sprintf("unsupported owner %q", config.Migration.ProjectOwner)}
	}

	if config.GitHub.RequestsPerHour < 0 {
		return entity.InvalidInputError{Field: "github.requests_per_hour", Message: "must not be negative"}
	}

	return nil
}

// SetDefaults applies default values to configuration
func (s *ConfigService) SetDefaults(config *entity.Config) *entity.Config {
	if config.GitHub.APIURL == "" {
		config.GitHub.APIURL = DefaultAPIURL
	}
	if !strings.HasSuffix(config.GitHub.APIURL, "/") {
		config.GitHub.APIURL += "/"
	}

	if config.GitHub.GraphQLURL == "" {
		config.GitHub.GraphQLURL = DefaultGraphQLURL
	}

	if config.GitHub.TimeoutSec <= 0 {
		config.GitHub.TimeoutSec = DefaultTimeoutSec
	}

	if config.GitHub.PageSize <= 0 || config.GitHub.PageSize > 100 {
		config.GitHub.PageSize = DefaultPageSize
	}

	if config.GitHub.UserAgent == "" {
		config.GitHub.UserAgent = DefaultUserAgent
	}

	if config.Migration.IssueState == "" {
		config.Migration.IssueState = entity.IssueStateOpen
	}

	if config.Migration.ProjectOwner == "" {
		config.Migration.ProjectOwner = entity.ProjectOwnerDestination
	}

	return config
}

package entity

import (
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	MigrationConfig `mapstructure:",squash" yaml:",inline"`
	GitHub          GitHubSettings   `mapstructure:"github" yaml:"github"`
	Migration       MigrationOptions `mapstructure:"migration" yaml:"migration"`
}

// MigrationConfig identifies the source and destination of a migration
type MigrationConfig struct {
	SourceOrganization  string `mapstructure:"source_organization" yaml:"source_organization"`
	SourceRepo          string `mapstructure:"source_repo" yaml:"source_repo"`
	SourceProjectNumber int    `mapstructure:"source_project_number" yaml:"source_project_number"`
	DestOrganization    string `mapstructure:"dest_organization" yaml:"dest_organization"`
	DestRepo            string `mapstructure:"dest_repo" yaml:"dest_repo"`
	DestProjectName     string `mapstructure:"dest_project_name" yaml:"dest_project_name"`
}

// GitHubSettings contains GitHub API client configuration
// Note: the token is never read from the config file, only from flags or GITHUB_TOKEN
type GitHubSettings struct {
	APIURL          string `mapstructure:"api_url" yaml:"api_url,omitempty"`
	GraphQLURL      string `mapstructure:"graphql_url" yaml:"graphql_url,omitempty"`
	TimeoutSec      int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds,omitempty"`
	RequestsPerHour int    `mapstructure:"requests_per_hour" yaml:"requests_per_hour,omitempty"`
	PageSize        int    `mapstructure:"page_size" yaml:"page_size,omitempty"`
	UserAgent       string `mapstructure:"user_agent" yaml:"user_agent,omitempty"`
}

// IssueState selects which source issues are copied
type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
	IssueStateAll    IssueState = "all"
)

// ProjectOwner selects which organization owns the copied project
type ProjectOwner string

const (
	ProjectOwnerDestination ProjectOwner = "destination"
	ProjectOwnerSource      ProjectOwner = "source"
)

// MigrationOptions tunes what gets copied
type MigrationOptions struct {
	IssueState          IssueState   `mapstructure:"issue_state" yaml:"issue_state,omitempty"`
	IncludePullRequests bool         `mapstructure:"include_pull_requests" yaml:"include_pull_requests"`
	ProjectOwner        ProjectOwner `mapstructure:"project_owner" yaml:"project_owner,omitempty"`
	IncludeDraftIssues  *bool        `mapstructure:"include_draft_issues" yaml:"include_draft_issues,omitempty"`
}

// SourceRef returns the source repository reference
func (c MigrationConfig) SourceRef() RepoRef {
	return RepoRef{Owner: strings.TrimSpace(c.SourceOrganization), Name: strings.TrimSpace(c.SourceRepo)}
}

// DestRef returns the destination repository reference
func (c MigrationConfig) DestRef() RepoRef {
	return RepoRef{Owner: strings.TrimSpace(c.DestOrganization), Name: strings.TrimSpace(c.DestRepo)}
}

// Timeout returns the HTTP timeout for API calls
func (s GitHubSettings) Timeout() time.Duration {
	if s.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSec) * time.Second
}

// DraftIssuesIncluded reports whether draft issues are copied with the project
func (o MigrationOptions) DraftIssuesIncluded() bool {
	return o.IncludeDraftIssues == nil || *o.IncludeDraftIssues
}

package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github-migrator/internal/adapters/config"
	"github-migrator/internal/adapters/github"
	"github-migrator/internal/domain/entity"
	"github-migrator/internal/domain/service"
)

// TokenEnvVar holds the credential read by --token-env
const TokenEnvVar = "GITHUB_TOKEN"

var errTokenRequired = errors.New("GitHub token required. Use --token or --token-env with GITHUB_TOKEN set")

type migrateOptions struct {
	token      string
	tokenEnv   bool
	createRepo bool
	getenv     func(string) string
}

func newMigrateCommand(root *rootOptions) *cobra.Command {
	opts := &migrateOptions{getenv: os.Getenv}

	migrateCmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Migrate labels, issues and a project board as described by a YAML config file",
		Long: `Migrate reads the YAML config file given as argument and copies labels,
issues and the source organization project into the destination.

Config keys: source_organization, source_repo, source_project_number,
dest_organization, dest_repo, dest_project_name.

Exit codes: 0 on success, 1 when the source repository does not exist or the
destination does not exist and --create-repo was not given, 2 on any other failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, root.logger, opts, args[0])
		},
	}

	migrateCmd.Flags().StringVarP(&opts.token, "token", "t", "", "Token for GitHub authentication")
	migrateCmd.Flags().BoolVarP(&opts.createRepo, "create-repo", "c", false, "Create the destination repository if it does not exist")
	migrateCmd.Flags().BoolVar(&opts.tokenEnv, "token-env", false, "Read the token from the GITHUB_TOKEN environment variable instead of --token")
	migrateCmd.MarkFlagsMutuallyExclusive("token", "token-env")

	return migrateCmd
}

func runMigrate(cmd *cobra.Command, logger *zap.Logger, opts *migrateOptions, configPath string) error {
	logger.Info("📄 Loading config", zap.String("file", configPath))

	configService := service.NewConfigService(config.NewRepository())
	appConfig, err := configService.GetConfig(configPath)
	if err != nil {
		return err
	}

	token, err := resolveToken(opts)
	if err != nil {
		return err
	}

	client, err := github.NewClient(token, appConfig.GitHub)
	if err != nil {
		return err
	}
	githubRepo := github.NewRepository(client, appConfig.GitHub.PageSize, logger)
	runner := service.NewMigrationRunner(githubRepo, logger)

	report, runErr := runner.Run(cmd.Context(), appConfig, opts.createRepo)

	stats := client.GetStats()
	logger.Debug("📊 API usage",
		zap.Int("api_calls", stats.APICallsCount),
		zap.Int("errors", stats.ErrorsCount),
		zap.Int("rate_limit_hits", stats.RateLimitHits),
		zap.Int("remaining_quota", stats.RemainingQuota))

	if runErr != nil {
		logJournal(logger, report)
		return runErr
	}
	return nil
}

// resolveToken picks the credential from --token or, with --token-env, from
// the environment
func resolveToken(opts *migrateOptions) (string, error) {
	var token string
	if opts.tokenEnv {
		token = opts.getenv(TokenEnvVar)
	} else {
		token = opts.token
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errTokenRequired
	}
	return token, nil
}

func logJournal(logger *zap.Logger, report *entity.MigrationReport) {
	if report == nil {
		return
	}
	for _, record := range report.Journal {
		logger.Info("  step",
			zap.String("step", string(record.Step)),
			zap.String("status", string(record.Status)),
			zap.String("detail", record.Detail))
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github-migrator/internal/domain/entity"
)

const (
	// ExitRepositoryMissing is returned when the source repository is missing,
	// or the destination is missing and --create-repo was not given
	ExitRepositoryMissing = 1
	// ExitFailure is returned for every other error
	ExitFailure = 2
)

type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *zap.Logger
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "github-migrator",
		Short: "Copy issues, labels and a project board between GitHub repositories",
		Long: `GitHub Migrator copies the labels and issues of one repository into another
and duplicates an organization project board for the destination.

Steps, in order:
- Resolve the source repository and resolve or create the destination repository
- Copy labels (labels that already exist are skipped)
- Copy issues with their title, body, labels and milestone
- Copy the source project under a new name
- Add the copied issues to the new project and link it to the destination repository`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "Log format: console or json")

	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// Execute runs the command tree
func Execute() error {
	return NewRootCommand().Execute()
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, entity.ErrRepositoryMissing):
		return ExitRepositoryMissing
	default:
		return ExitFailure
	}
}

func newLogger(level, format string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.TimeKey = ""
		cfg.DisableCaller = true
	default:
		return nil, fmt.Errorf("invalid --log-format %q: expected console or json", format)
	}
	cfg.Level = atomicLevel
	cfg.DisableStacktrace = true

	return cfg.Build()
}

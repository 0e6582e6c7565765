package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github-migrator/internal/adapters/config"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-config [file]",
		Short: "Generate an example configuration file",
		Long: `Generate an example YAML configuration file. This will create config.yml in
the current directory unless another path is given. Edit the organizations,
repositories and project number before running migrate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := "config.yml"
			if len(args) == 1 {
				configPath = args[0]
			}

			if err := config.NewRepository().GenerateExampleConfig(configPath); err != nil {
				return fmt.Errorf("error generating config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Example config file generated: %s\n", configPath)
			fmt.Fprintln(cmd.OutOrStdout(), "Please edit the file and pass it to: github-migrator migrate <file>")
			return nil
		},
	}
}

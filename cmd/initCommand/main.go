package initCommand

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/domain/repository/config"
	"github.com/t-kuni/aspa/domain/repository/file"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an aspa.yml in the current directory",
		Long: `Create an aspa.yml holding the non-secret settings in the current directory.
Credentials are read from the environment (or .env) and are never written to this file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "aspa.yml")
			if fileRepository.Exists(configPath) {
				return eris.New("aspa.yml already exists in the current directory")
			}

			cfg := config.Default()
			cfg.Warehouse.Database = "DEMO"
			cfg.Warehouse.Schema = "ASPA"

			err = configRepository.Write(configPath, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Created aspa.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

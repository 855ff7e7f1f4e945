package cmd

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/aspa/cmd/bootstrap"
	"github.com/t-kuni/aspa/cmd/customerCommand"
	"github.com/t-kuni/aspa/cmd/historyCommand"
	"github.com/t-kuni/aspa/cmd/initCommand"
	"github.com/t-kuni/aspa/cmd/sessionCommand"
	"github.com/t-kuni/aspa/cmd/troubleshootCommand"
	"github.com/t-kuni/aspa/cmd/versionCommand"
	"github.com/t-kuni/aspa/domain/service/configFindService"
	"github.com/t-kuni/aspa/domain/service/configLoad"
	"github.com/t-kuni/aspa/domain/service/deskFactory"
	"github.com/t-kuni/aspa/domain/service/historySave"
	"github.com/t-kuni/aspa/infrastructure/external/azureOpenAi"
	"github.com/t-kuni/aspa/infrastructure/external/warehouse"
	configRepo "github.com/t-kuni/aspa/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/aspa/infrastructure/repository/file"
	"github.com/t-kuni/aspa/infrastructure/system/env"
	"github.com/t-kuni/aspa/infrastructure/system/ksuid"
	"github.com/t-kuni/aspa/infrastructure/system/logger"
	"github.com/t-kuni/aspa/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "aspa",
		Short: "A customer service assistant backed by a data warehouse and an LLM",
		Long: `Aspa looks customers up by phone number in the data warehouse, shows their purchases and
issue history, and extracts troubleshooting steps from product manuals using Azure OpenAI.`,
		SilenceUsage: true,
	}

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	configLoadSrv := configLoad.NewConfigLoadService(configFindSrv, configRepository, env.NewEnv())
	deskFactorySrv := deskFactory.NewDeskFactory(warehouse.NewClientFactory(), azureOpenAi.NewClientFactory())
	historySaveSrv := historySave.NewHistorySaveService(fileRepository, timer.NewTimer(), ksuid.NewKsuidGenerator())
	boot := bootstrap.NewBootstrap(configLoadSrv, deskFactorySrv, logger.NewLogger)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(customerCommand.NewCustomerCommand(boot).CobraCommand)
	cmd.AddCommand(historyCommand.NewHistoryCommand(boot).CobraCommand)
	cmd.AddCommand(troubleshootCommand.NewTroubleshootCommand(boot, historySaveSrv).CobraCommand)
	cmd.AddCommand(sessionCommand.NewSessionCommand(boot).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

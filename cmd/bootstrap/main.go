package bootstrap

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/repository/config"
	"github.com/t-kuni/aspa/domain/service/configLoad"
	"github.com/t-kuni/aspa/domain/service/deskFactory"
	"go.uber.org/zap"
)

type LoggerFactory func(cfg config.Log) (*zap.Logger, error)

// Bootstrap turns the environment into the objects a command runs with.
type Bootstrap struct {
	configLoadService *configLoad.ConfigLoadService
	deskFactory       *deskFactory.DeskFactory
	loggerFactory     LoggerFactory
}

func NewBootstrap(
	configLoadService *configLoad.ConfigLoadService,
	deskFactory *deskFactory.DeskFactory,
	loggerFactory LoggerFactory,
) *Bootstrap {
	return &Bootstrap{
		configLoadService: configLoadService,
		deskFactory:       deskFactory,
		loggerFactory:     loggerFactory,
	}
}

type Runtime struct {
	Config  *config.Config
	RootDir string
	Logger  *zap.Logger
	Desk    *deskFactory.Desk
}

func (b *Bootstrap) Prepare() (*Runtime, error) {
	loaded, err := b.configLoadService.Load()
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	logger, err := b.loggerFactory(loaded.Config.Log)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create logger")
	}

	desk, err := b.deskFactory.Make(loaded.Config, logger)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config:  loaded.Config,
		RootDir: loaded.RootDir,
		Logger:  logger,
		Desk:    desk,
	}, nil
}

// Close flushes buffered log entries.
func (r *Runtime) Close() {
	_ = r.Logger.Sync()
}

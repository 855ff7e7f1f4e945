package configLoad

import (
	"errors"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/repository/config"
	"github.com/t-kuni/aspa/domain/service/configFindService"
	"github.com/t-kuni/aspa/domain/system/env"
)

type ConfigLoadService struct {
	configFindService *configFindService.ConfigFindService
	configRepository  config.Repository
	env               env.IEnv
}

func NewConfigLoadService(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	env env.IEnv,
) *ConfigLoadService {
	return &ConfigLoadService{
		configFindService: configFindService,
		configRepository:  configRepository,
		env:               env,
	}
}

// Loaded is the configuration together with the directory it was found in.
// RootDir is empty when no aspa.yml exists.
type Loaded struct {
	Config  *config.Config
	RootDir string
}

// Load reads aspa.yml when one exists and overlays the environment on top of it.
// Secrets only ever come from the environment.
func (s *ConfigLoadService) Load() (Loaded, error) {
	cfg := config.Default()
	var rootDir string

	configPath, err := s.configFindService.FindConfig()
	switch {
	case err == nil:
		cfg, err = s.configRepository.Read(configPath)
		if err != nil {
			return Loaded{}, eris.Wrap(err, "failed to read config file")
		}
		rootDir = s.configFindService.GetProjectRoot(configPath)
	case errors.Is(err, configFindService.ErrConfigNotFound):
	default:
		return Loaded{}, eris.Wrap(err, "failed to find config file")
	}

	if err := s.overlayEnv(cfg); err != nil {
		return Loaded{}, err
	}

	return Loaded{Config: cfg, RootDir: rootDir}, nil
}

func (s *ConfigLoadService) overlayEnv(cfg *config.Config) error {
	s.setString(&cfg.Warehouse.Driver, "WAREHOUSE_DRIVER")
	s.setString(&cfg.Warehouse.DSN, "WAREHOUSE_DSN")
	s.setString(&cfg.Warehouse.User, "SNOWFLAKE_USER")
	s.setString(&cfg.Warehouse.Password, "SNOWFLAKE_PASSWORD")
	s.setString(&cfg.Warehouse.Account, "SNOWFLAKE_ACCOUNT")
	s.setString(&cfg.Warehouse.Warehouse, "SNOWFLAKE_WAREHOUSE")
	s.setString(&cfg.Warehouse.Database, "SNOWFLAKE_DATABASE")
	s.setString(&cfg.Warehouse.Schema, "SNOWFLAKE_SCHEMA")

	s.setString(&cfg.LLM.APIKey, "AZURE_OPENAI_API_KEY")
	s.setString(&cfg.LLM.Endpoint, "AZURE_OPENAI_ENDPOINT")
	s.setString(&cfg.LLM.APIVersion, "AZURE_OPENAI_API_VERSION")
	s.setString(&cfg.LLM.Deployment, "AZURE_OPENAI_DEPLOYMENT_NAME")
	if v, ok := s.env.LookupEnv("AZURE_OPENAI_MAX_TOKENS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return eris.Errorf("AZURE_OPENAI_MAX_TOKENS must be a positive integer: %s", v)
		}
		cfg.LLM.MaxTokens = n
	}
	if cfg.LLM.MaxTokens <= 0 {
		cfg.LLM.MaxTokens = config.DefaultMaxTokens
	}

	s.setString(&cfg.Log.Level, "ASPA_LOG_LEVEL")

	return nil
}

func (s *ConfigLoadService) setString(dst *string, key string) {
	if v, ok := s.env.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

package config

const (
	DriverSnowflake = "snowflake"
	DriverPostgres  = "postgres"
	DriverSqlite    = "sqlite"

	DefaultAPIVersion = "2023-12-01-preview"
	DefaultDeployment = "manufacturing-demo"
	DefaultMaxTokens  = 1000
	DefaultLogLevel   = "warn"
)

type Config struct {
	Warehouse Warehouse `yaml:"warehouse"`
	LLM       LLM       `yaml:"llm"`
	History   History   `yaml:"history"`
	Log       Log       `yaml:"log"`
}

type Warehouse struct {
	Driver string `yaml:"driver"`
	// DSN is used by the postgres and sqlite drivers.
	DSN       string `yaml:"dsn,omitempty"`
	Account   string `yaml:"account,omitempty"`
	User      string `yaml:"user,omitempty"`
	Password  string `yaml:"-"`
	Warehouse string `yaml:"warehouse,omitempty"`
	Database  string `yaml:"database,omitempty"`
	Schema    string `yaml:"schema,omitempty"`
}

// TablePrefix returns the qualifier put in front of table names, e.g. "DEMO.ASPA".
func (w Warehouse) TablePrefix() string {
	switch {
	case w.Database != "" && w.Schema != "":
		return w.Database + "." + w.Schema
	case w.Schema != "":
		return w.Schema
	default:
		return ""
	}
}

type LLM struct {
	Endpoint   string `yaml:"endpoint"`
	APIVersion string `yaml:"api-version"`
	Deployment string `yaml:"deployment"`
	MaxTokens  int    `yaml:"max-tokens"`
	APIKey     string `yaml:"-"`
}

type History struct {
	Enabled bool `yaml:"enabled"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no aspa.yml exists.
func Default() *Config {
	return &Config{
		Warehouse: Warehouse{
			Driver: DriverSnowflake,
		},
		LLM: LLM{
			APIVersion: DefaultAPIVersion,
			Deployment: DefaultDeployment,
			MaxTokens:  DefaultMaxTokens,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

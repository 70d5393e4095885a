package config

import (
	"io/fs"

	"github.com/Gobusters/ectoenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	AppName    string `env:"APP_NAME" env-default:"clover"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs bool   `env:"PRETTY_LOGS" env-default:"false"`

	// Tracing writes finished spans to the log at debug level
	TracingEnabled bool `env:"TRACING_ENABLED" env-default:"false"`

	// Fixture used when the CLI is run without a file argument
	FixturePath string `env:"FIXTURE_PATH" env-default:""`
	// Text printed for accounts without a sales rep
	TreeUnassignedRep string `env:"TREE_UNASSIGNED_REP" env-default:""`
}

// Load reads the configuration from the environment. Values in the given
// .env files (default ".env") are loaded first when the files exist and never
// override variables that are already set.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !isNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load env file '%s'", file)
		}
	}

	var cfg Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to bind environment")
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

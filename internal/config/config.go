package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
)

type HTTPConfig struct {
	Address         string `yaml:"address" env:"API_ADDRESS" env-default:":3001"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" env:"API_SHUTDOWN_TIMEOUT" env-default:"10"`
}

type Config struct {
	LogLevel       string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTP           HTTPConfig `yaml:"api_server"`
	DBPath         string     `yaml:"db_path" env:"DB_PATH" env-default:"task_manager.db"`
	RequestLogPath string     `yaml:"request_log_path" env:"REQUEST_LOG_PATH" env-default:"api_logs.txt"`
}

// MustLoad reads configuration from the file at configPath, falling back
// to environment variables when the file does not exist.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}

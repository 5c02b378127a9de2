package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Storage    string   `yaml:"storage" env:"STORAGE" env-default:"file"`
	ValuesPath string   `yaml:"values-path" env:"VALUES_PATH" env-default:"values.json"`
	SQLitePath string   `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"values.db"`
	ReportPath string   `yaml:"report-path" env:"REPORT_PATH" env-default:""`
	Redis      Redis    `yaml:"redis"`
	Training   Training `yaml:"training"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Training struct {
	Episodes       int     `yaml:"episodes" env:"TRAINING_EPISODES" env-default:"30000"`
	Alpha          float64 `yaml:"alpha" env:"TRAINING_ALPHA" env-default:"0.2"`
	Gamma          float64 `yaml:"gamma" env:"TRAINING_GAMMA" env-default:"0.9"`
	Epsilon        float64 `yaml:"epsilon" env:"TRAINING_EPSILON" env-default:"0.2"`
	ReportInterval int     `yaml:"report-interval" env:"TRAINING_REPORT_INTERVAL" env-default:"1000"`
	Seed           int64   `yaml:"seed" env:"TRAINING_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine: the binary runs on env values and defaults alone.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

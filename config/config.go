package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Token TokenConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type StoreConfig struct {
	// Path is the on-disk location of the SQLite database file.
	Path string
	// BusyTimeout is how long a statement waits on a locked database.
	BusyTimeout time.Duration
}

type TokenConfig struct {
	Secret string
	Expiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = 24 * time.Hour
	}

	busyTimeout, err := time.ParseDuration(viper.GetString("STORE_BUSY_TIMEOUT"))
	if err != nil {
		busyTimeout = 5 * time.Second
	}

	storePath := viper.GetString("STORE_PATH")
	if storePath == "" {
		storePath = "healthsathi.db"
	}

	config := &Config{
		App: AppConfig{
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Path:        storePath,
			BusyTimeout: busyTimeout,
		},
		Token: TokenConfig{
			Secret: viper.GetString("TOKEN_SECRET"),
			Expiry: tokenExpiry,
		},
	}

	return config, nil
}

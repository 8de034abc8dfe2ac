package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path                string
		QueryTimeoutSeconds int `mapstructure:"querytimeout"`
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env, existing env wins

	v := viper.New()
	v.SetEnvPrefix("USERSVC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "127.0.0.1:3000")
	v.SetDefault("database.path", "data/users.db")
	v.SetDefault("database.querytimeout", 5)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Database.QueryTimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("database query timeout must be positive, got %d", cfg.Database.QueryTimeoutSeconds)
	}

	return cfg, nil
}

package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Name      string `mapstructure:"name"`
	Port      int    `mapstructure:"port"`
	APIPrefix string `mapstructure:"api_prefix"`
	BodyLimit int    `mapstructure:"body_limit"` // bytes, covers multipart uploads
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // postgres, mysql or sqlite
	URL          string `mapstructure:"url"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// RedisConfig enables the product cache when Address is set
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTLSecs  int    `mapstructure:"ttl_seconds"`
}

type AuthConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

// envKeys maps config keys to the environment variable names used in deployments
var envKeys = map[string]string{
	"server.port":          "PORT",
	"server.api_prefix":    "API_PREFIX",
	"database.driver":      "DB_DRIVER",
	"database.url":         "DATABASE_URL",
	"database.host":        "DB_HOST",
	"database.port":        "DB_PORT",
	"database.user":        "DB_USER",
	"database.password":    "DB_PASSWORD",
	"database.name":        "DB_NAME",
	"redis.address":        "REDIS_ADDRESS",
	"redis.password":       "REDIS_PASSWORD",
	"redis.db":             "REDIS_DB",
	"auth.enabled":         "AUTH_ENABLED",
	"auth.jwt_secret":      "JWT_SECRET",
	"auth.token_ttl_hours": "JWT_TTL_HOURS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "Boxpoint API v1.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.api_prefix", "/api/v1")
	v.SetDefault("server.body_limit", 20*1024*1024)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "boxpoint")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl_seconds", 300)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "your-super-secret-key-change-in-production")
	v.SetDefault("auth.token_ttl_hours", 24)
}

// LoadConfig reads config.yaml from path when present, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("Warning: config.yaml not found, using defaults and environment")
	} else {
		log.Printf("Config loaded from %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Server.APIPrefix = "/" + strings.Trim(config.Server.APIPrefix, "/")
	return &config, nil
}

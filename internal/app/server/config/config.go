package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Хранилища коллекции студентов
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const (
	defaultRunAddress = ":8080"
	defaultLogLevel   = "info"
	defaultMigrations = "migrations"
)

type Config struct {
	Env     string
	Storage string
	DB      DB
	Server  Server
	Logger  Logger
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Logger struct {
	LogLevel string
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации сервера: %v", err))
	}
	return cfg
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("log_level", defaultLogLevel)
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("migrations_path", defaultMigrations)

	cfg := &Config{
		Env:     viper.GetString("app_env"),
		Storage: strings.ToLower(viper.GetString("storage")),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}

	// без строки подключения работаем в памяти
	if cfg.Storage == "" {
		cfg.Storage = StorageMemory
		if cfg.DB.DatabaseURI != "" {
			cfg.Storage = StoragePostgres
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("database_uri обязателен для storage=postgres")
		}
	default:
		return fmt.Errorf("неизвестное хранилище: %s", c.Storage)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}
	return nil
}

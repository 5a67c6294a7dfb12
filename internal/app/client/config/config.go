package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL          = "http://localhost:8080/students"
	defaultLogLevel        = "info"
	defaultEnv             = "local"
	defaultConfigDir       = ".studentdash"
	defaultCacheBackend    = CacheSQLite
	defaultCacheKey        = "localStudents"
	defaultRedisAddr       = "localhost:6379"
	defaultListTimeout     = 10 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultCorrectUsername = "testuser@example.com"
	defaultCorrectPassword = "password123"
	defaultRowsPerPage     = 10
)

// Бэкенды локального кеша
const (
	CacheSQLite = "sqlite"
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Env             string        `mapstructure:"app_env"`
	LogLevel        string        `mapstructure:"log_level"`
	APIURL          string        `mapstructure:"api_url"`
	ConfigDir       string        `mapstructure:"config_dir"`
	CacheBackend    string        `mapstructure:"cache_backend"`
	CacheKey        string        `mapstructure:"cache_key"`
	CachePath       string        `mapstructure:"cache_path"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	ListTimeout     time.Duration `mapstructure:"list_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	CorrectUsername string        `mapstructure:"correct_username"`
	CorrectPassword string        `mapstructure:"correct_password"`
	RowsPerPage     int           `mapstructure:"rows_per_page"`
	SessionPath     string        `mapstructure:"session_path"`
	AccountsPath    string        `mapstructure:"accounts_path"`
	MenuPath        string        `mapstructure:"menu_path"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return config
}

// Load собирает конфигурацию из .env, переменных окружения и файла конфигурации
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("API_URL", defaultAPIURL)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("CACHE_BACKEND", defaultCacheBackend)
	viper.SetDefault("CACHE_KEY", defaultCacheKey)
	viper.SetDefault("REDIS_ADDR", defaultRedisAddr)
	viper.SetDefault("LIST_TIMEOUT", defaultListTimeout)
	viper.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	viper.SetDefault("CORRECT_USERNAME", defaultCorrectUsername)
	viper.SetDefault("CORRECT_PASSWORD", defaultCorrectPassword)
	viper.SetDefault("ROWS_PER_PAGE", defaultRowsPerPage)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	cachePath := viper.GetString("CACHE_PATH")
	if cachePath == "" {
		cachePath = filepath.Join(configDir, "cache.db")
	}

	config := &Config{
		Env:             viper.GetString("APP_ENV"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		APIURL:          strings.TrimRight(viper.GetString("API_URL"), "/"),
		ConfigDir:       configDir,
		CacheBackend:    strings.ToLower(viper.GetString("CACHE_BACKEND")),
		CacheKey:        viper.GetString("CACHE_KEY"),
		CachePath:       cachePath,
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		ListTimeout:     viper.GetDuration("LIST_TIMEOUT"),
		RequestTimeout:  viper.GetDuration("REQUEST_TIMEOUT"),
		CorrectUsername: viper.GetString("CORRECT_USERNAME"),
		CorrectPassword: viper.GetString("CORRECT_PASSWORD"),
		RowsPerPage:     viper.GetInt("ROWS_PER_PAGE"),
		SessionPath:     filepath.Join(configDir, "session.json"),
		AccountsPath:    filepath.Join(configDir, "accounts.json"),
		MenuPath:        filepath.Join(configDir, "menu.json"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url не может быть пустым")
	}
	switch c.CacheBackend {
	case CacheSQLite, CacheRedis, CacheMemory:
	default:
		return fmt.Errorf("неизвестный cache_backend: %s", c.CacheBackend)
	}
	if c.ListTimeout <= 0 {
		return fmt.Errorf("list_timeout должен быть больше нуля")
	}
	if c.RowsPerPage <= 0 {
		return fmt.Errorf("rows_per_page должен быть больше нуля")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

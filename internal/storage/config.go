package storage

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Endpoint        string `mapstructure:"Endpoint"`
	Region          string `mapstructure:"Region"`
	AccessKeyID     string `mapstructure:"AccessKeyID"`
	SecretAccessKey string `mapstructure:"SecretAccessKey"`
	Bucket          string `mapstructure:"Bucket"`
	PublicBaseURL   string `mapstructure:"PublicBaseURL"`
}

func NewConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Привязываем переменные окружения
	v.BindEnv("Endpoint", "S3_ENDPOINT")
	v.BindEnv("Region", "S3_REGION")
	v.BindEnv("AccessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("SecretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("Bucket", "S3_BUCKET")
	v.BindEnv("PublicBaseURL", "S3_PUBLIC_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Warning: using only environment variables for storage config: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal storage config: %w", err)
	}

	// Проверяем переменные окружения напрямую если конфигурация неполная
	if cfg.Endpoint == "" {
		cfg.Endpoint = v.GetString("S3_ENDPOINT")
	}
	if cfg.Region == "" {
		cfg.Region = v.GetString("S3_REGION")
	}
	if cfg.AccessKeyID == "" {
		cfg.AccessKeyID = v.GetString("S3_ACCESS_KEY_ID")
	}
	if cfg.SecretAccessKey == "" {
		cfg.SecretAccessKey = v.GetString("S3_SECRET_ACCESS_KEY")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = v.GetString("S3_BUCKET")
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = v.GetString("S3_PUBLIC_BASE_URL")
	}

	// Значения по умолчанию: R2 не использует регионы
	if cfg.Region == "" {
		cfg.Region = "auto"
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return &cfg, nil
}

// Complete сообщает, достаточно ли конфигурации для работы с хранилищем.
// Неполная конфигурация не ошибка: клиент создается недоступным, а сервис
// продолжает отдавать метаданные.
func (c *Config) Complete() bool {
	return c.Endpoint != "" &&
		c.AccessKeyID != "" &&
		c.SecretAccessKey != "" &&
		c.Bucket != "" &&
		c.PublicBaseURL != ""
}

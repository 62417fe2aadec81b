package mail

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Host     string `mapstructure:"Host"`
	Port     string `mapstructure:"Port"`
	Username string `mapstructure:"Username"`
	Password string `mapstructure:"Password"`
	From     string `mapstructure:"From"`
	AdminTo  string `mapstructure:"AdminTo"`
}

func NewConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.BindEnv("Host", "SMTP_HOST")
	v.BindEnv("Port", "SMTP_PORT")
	v.BindEnv("Username", "SMTP_USERNAME")
	v.BindEnv("Password", "SMTP_PASSWORD")
	v.BindEnv("From", "SMTP_FROM")
	v.BindEnv("AdminTo", "SMTP_ADMIN_TO")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Warning: using only environment variables for mail config: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal mail config: %w", err)
	}

	if cfg.Host == "" {
		cfg.Host = v.GetString("SMTP_HOST")
	}
	if cfg.Port == "" {
		cfg.Port = v.GetString("SMTP_PORT")
	}
	if cfg.Username == "" {
		cfg.Username = v.GetString("SMTP_USERNAME")
	}
	if cfg.Password == "" {
		cfg.Password = v.GetString("SMTP_PASSWORD")
	}
	if cfg.From == "" {
		cfg.From = v.GetString("SMTP_FROM")
	}
	if cfg.AdminTo == "" {
		cfg.AdminTo = v.GetString("SMTP_ADMIN_TO")
	}

	if cfg.Port == "" {
		cfg.Port = "587"
	}

	return &cfg, nil
}

// Complete сообщает, настроена ли почта. Без настройки уведомления просто
// не отправляются, заявки при этом сохраняются как обычно.
func (c *Config) Complete() bool {
	return c.Host != "" && c.From != "" && c.AdminTo != ""
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	GitHub    GitHubConfig    `mapstructure:"github"`
	Stats     StatsConfig     `mapstructure:"stats"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	APIToken string `mapstructure:"api_token"` // optional: guards the read endpoints when set
}

type GitHubConfig struct {
	GraphQLURL string        `mapstructure:"graphql_url"`
	Tokens     []GitHubToken `mapstructure:"tokens"` // users refreshed by the scheduler
}

type GitHubToken struct {
	Token    string `mapstructure:"token"`
	Username string `mapstructure:"username"`
}

type StatsConfig struct {
	IncludePrivate bool `mapstructure:"include_private"` // count private repos on scheduled refreshes
}

type SchedulerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

type NotifiersConfig struct {
	Webhook WebhookConfig `mapstructure:"webhook"`
}

type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// Load reads configuration from a file, with GITHUB_STATS_* environment
// overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("github.graphql_url", "https://api.github.com/graphql")
	v.SetDefault("scheduler.cron", "0 8 * * *")

	v.SetEnvPrefix("GITHUB_STATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for fail-fast startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.GitHub.GraphQLURL == "" {
		return fmt.Errorf("github graphql_url is required")
	}

	if c.Scheduler.Enabled {
		if c.Scheduler.Cron == "" {
			return fmt.Errorf("scheduler cron expression is required")
		}
		hasUser := false
		for _, t := range c.GitHub.Tokens {
			if t.Username != "" && t.Token != "" {
				hasUser = true
				break
			}
		}
		if !hasUser {
			return fmt.Errorf("scheduler requires at least one GitHub token with a username")
		}
	}

	if c.Notifiers.Webhook.Enabled && c.Notifiers.Webhook.URL == "" {
		return fmt.Errorf("webhook notifier URL is required")
	}

	return nil
}

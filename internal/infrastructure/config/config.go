package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/lumira-inc/lumira/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Identity sharedConfig.IdentityConfig `mapstructure:"identity"`
	Studio   sharedConfig.StudioConfig   `mapstructure:"studio"`
	Billing  sharedConfig.BillingConfig  `mapstructure:"billing"`
	Gateway  sharedConfig.GatewayConfig  `mapstructure:"gateway"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("LUMIRA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine: defaults plus LUMIRA_* env vars are a
		// complete configuration. A malformed file is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.client_base_url", "http://localhost:5173")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.database", "lumira")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 3600)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	// Studio defaults
	viper.SetDefault("studio.api_base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("studio.text_model", "gemini-2.5-flash")
	viper.SetDefault("studio.image_model", "gemini-2.5-flash-image")
	viper.SetDefault("studio.request_timeout_seconds", 120)
	viper.SetDefault("studio.shot_tiers", map[string]int{
		"basic":    6,
		"standard": 8,
		"premium":  12,
	})
	viper.SetDefault("studio.rate_per_minute", 10)

	// Billing defaults: prices in minor currency units
	viper.SetDefault("billing.currency", "INR")
	viper.SetDefault("billing.starter_credits", 5)
	viper.SetDefault("billing.bill_returned_count", false)
	viper.SetDefault("billing.plan_prices", map[string]map[string]int64{
		"pro":      {"monthly": 199900, "yearly": 1999000},
		"business": {"monthly": 499900, "yearly": 4999000},
	})
	viper.SetDefault("billing.credit_packs", []map[string]interface{}{
		{"name": "Small", "credits": 50, "price": 50000},
		{"name": "Medium", "credits": 150, "price": 120000},
		{"name": "Large", "credits": 500, "price": 300000},
	})

	// Gateway defaults
	viper.SetDefault("gateway.website", "DEFAULT")
}

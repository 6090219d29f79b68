package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// ClientBaseURL is the frontend origin used for payment result redirects.
	ClientBaseURL string `mapstructure:"client_base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver selects the GORM driver: "mysql" or "sqlite".
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a Redis endpoint is configured. Rate limiting is
// skipped entirely when it is not.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

// IdentityConfig configures verification of external identity tokens.
type IdentityConfig struct {
	// ProjectID is the identity provider project; it determines the expected
	// issuer and audience of incoming ID tokens.
	ProjectID string `mapstructure:"project_id"`
	// CertsURL overrides the signing-certificate endpoint. Tests point this at
	// a local server; empty means the Google securetoken endpoint.
	CertsURL string `mapstructure:"certs_url"`
}

// StudioConfig configures the external image-generation collaborator and the
// shot-tier cost table.
type StudioConfig struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	APIKey     string `mapstructure:"api_key"`
	// TextModel answers category/concept prompts; ImageModel produces shots.
	TextModel  string `mapstructure:"text_model"`
	ImageModel string `mapstructure:"image_model"`
	// RequestTimeoutSeconds bounds a single model call.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`
	// ShotTiers maps a requested tier name to the number of shots (and thus
	// credits) it costs. Kept in config rather than code so product can tune it.
	ShotTiers map[string]int `mapstructure:"shot_tiers"`
	// RatePerMinute limits generation requests per user; 0 disables.
	RatePerMinute int `mapstructure:"rate_per_minute"`
}

// PlanPricing holds the charge amounts for one paid plan, in minor currency
// units (paise).
type PlanPricing struct {
	Monthly int64 `mapstructure:"monthly"`
	Yearly  int64 `mapstructure:"yearly"`
}

// CreditPack is one purchasable credit bundle. Price is in minor currency units.
type CreditPack struct {
	Name    string `mapstructure:"name"`
	Credits int    `mapstructure:"credits"`
	Price   int64  `mapstructure:"price"`
}

// BillingConfig holds the purchase catalogue and billing policy.
type BillingConfig struct {
	Currency string `mapstructure:"currency"`
	// PlanPrices maps plan id (pro, business, enterprise) to its pricing.
	PlanPrices map[string]PlanPricing `mapstructure:"plan_prices"`
	// CreditPacks is the closed set of purchasable packs.
	CreditPacks []CreditPack `mapstructure:"credit_packs"`
	// StarterCredits is the one-time grant on first login.
	StarterCredits int `mapstructure:"starter_credits"`
	// BillReturnedCount bills generations by the number of images actually
	// returned instead of the number requested. Default false: requested count.
	BillReturnedCount bool `mapstructure:"bill_returned_count"`
}

// GatewayConfig configures the payment gateway integration.
type GatewayConfig struct {
	MerchantID  string `mapstructure:"merchant_id"`
	MerchantKey string `mapstructure:"merchant_key"`
	Website     string `mapstructure:"website"`
	CallbackURL string `mapstructure:"callback_url"`
}

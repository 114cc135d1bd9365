package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Session cookie signing.
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	// Business details used by the booking flow.
	Timezone           string `mapstructure:"TIMEZONE"`
	BusinessPhone      string `mapstructure:"BUSINESS_PHONE"`
	ConfirmationPrefix string `mapstructure:"CONFIRMATION_PREFIX"`

	// Email delivery.
	EmailProvider                 string `mapstructure:"EMAIL_PROVIDER"`
	EmailTimeoutSeconds           int    `mapstructure:"EMAIL_TIMEOUT_SECONDS"`
	EmailJSServiceID              string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSNewOrderTemplateID     string `mapstructure:"EMAILJS_NEW_ORDER_TEMPLATE_ID"`
	EmailJSConfirmationTemplateID string `mapstructure:"EMAILJS_CONFIRMATION_TEMPLATE_ID"`
	EmailJSPublicKey              string `mapstructure:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey             string `mapstructure:"EMAILJS_PRIVATE_KEY"`
	EmailJSEndpoint               string `mapstructure:"EMAILJS_ENDPOINT"`
	RelayURL                      string `mapstructure:"RELAY_URL"`

	// In-flight submission guard.
	GuardBackend    string `mapstructure:"GUARD_BACKEND"`
	GuardTTLSeconds int    `mapstructure:"GUARD_TTL_SECONDS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisGuardDB  int    `mapstructure:"REDIS_GUARD_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("TIMEZONE", "America/New_York")
	v.SetDefault("BUSINESS_PHONE", "(540) 580-4960")
	v.SetDefault("CONFIRMATION_PREFIX", "TB")
	v.SetDefault("EMAIL_PROVIDER", "log")
	v.SetDefault("EMAIL_TIMEOUT_SECONDS", 10)
	v.SetDefault("EMAILJS_SERVICE_ID", "")
	v.SetDefault("EMAILJS_NEW_ORDER_TEMPLATE_ID", "")
	v.SetDefault("EMAILJS_CONFIRMATION_TEMPLATE_ID", "")
	v.SetDefault("EMAILJS_PUBLIC_KEY", "")
	v.SetDefault("EMAILJS_PRIVATE_KEY", "")
	v.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("RELAY_URL", "")
	v.SetDefault("GUARD_BACKEND", "memory")
	v.SetDefault("GUARD_TTL_SECONDS", 120)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_GUARD_DB", 0)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves TIMEZONE, falling back to the server's local zone.
func Location() *time.Location {
	if AppConfig.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using local time", AppConfig.Timezone)
		return time.Local
	}
	return loc
}

// Origins splits ALLOWED_ORIGINS on commas.
func Origins() []string {
	out := splitList(AppConfig.AllowedOrigins)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// TrustedProxies splits TRUSTED_PROXIES on commas. An empty result means
// forwarding headers are ignored and the peer address is the client IP.
func TrustedProxies() []string {
	return splitList(AppConfig.TrustedProxies)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func SessionTTL() time.Duration {
	if AppConfig.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}

func EmailTimeout() time.Duration {
	if AppConfig.EmailTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(AppConfig.EmailTimeoutSeconds) * time.Second
}

func GuardTTL() time.Duration {
	if AppConfig.GuardTTLSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(AppConfig.GuardTTLSeconds) * time.Second
}

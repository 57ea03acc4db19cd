package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from environment variables.
// Postmark tokens are optional so the server can run without outbound email
// in local development; the email endpoint then fails per-request instead.
type Config struct {
	Port               string   `env:"PORT" envDefault:"8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"billing_user"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"billing_password"`
	DBName     string `env:"DB_NAME" envDefault:"isp_billing_db"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"billing@example.com"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

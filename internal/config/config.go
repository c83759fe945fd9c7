package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the service reads from the environment. It is
// loaded once at startup; a missing MONGO_URI is fatal there.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"luxeroyale"`

	SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort string `envconfig:"SMTP_PORT" default:"465"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`

	// smtp or sendgrid
	EmailProvider     string `envconfig:"EMAIL_PROVIDER" default:"smtp"`
	SendGridAPIKey    string `envconfig:"SENDGRID_API_KEY"`
	SendGridFromEmail string `envconfig:"SENDGRID_FROM_EMAIL"`

	OwnerEmail string `envconfig:"OWNER_EMAIL"`
	SenderName string `envconfig:"SENDER_NAME" default:"Luxe Royale"`

	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`

	StaticDir string `envconfig:"STATIC_DIR" default:"public"`
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}

	// Notifications for the business go to the sending account unless an
	// explicit owner address is configured.
	if cfg.OwnerEmail == "" {
		cfg.OwnerEmail = cfg.SMTPUser
	}

	return cfg, nil
}

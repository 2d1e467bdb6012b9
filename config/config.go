package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

// SMTPConfig holds the outbound mail transport parameters. Everything comes
// from the environment; the relay attempts delivery with whatever is set.
type SMTPConfig struct {
	Host      string
	Port      int
	Secure    bool
	Username  string
	Password  string
	FromName  string
	FromEmail string
	ToEmail   string
}

// SiteConfig describes the public site the backend serves.
type SiteConfig struct {
	Name      string
	BaseURL   string
	ImagesDir string
}

// Host returns the bare host of BaseURL, used in the email footer.
func (s SiteConfig) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" {
		return s.BaseURL
	}
	return u.Host
}

type Config struct {
	Port string
	SMTP SMTPConfig
	Site SiteConfig
}

// Load reads the process environment into a Config. Missing SMTP values are
// not fatal here: the mailer attempts an unauthenticated dispatch and the
// failure surfaces per request.
func Load() Config {
	port, err := strconv.Atoi(envOrDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	return Config{
		Port: envOrDefault("PORT", "8080"),
		SMTP: SMTPConfig{
			Host:      strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:      port,
			Secure:    strings.TrimSpace(os.Getenv("SMTP_SECURE")) == "true",
			Username:  os.Getenv("SMTP_USER"),
			Password:  os.Getenv("SMTP_PASS"),
			FromName:  envOrDefault("SMTP_FROM_NAME", "Markey Gallery"),
			FromEmail: strings.TrimSpace(os.Getenv("SMTP_FROM_EMAIL")),
			ToEmail:   strings.TrimSpace(os.Getenv("SMTP_TO_EMAIL")),
		},
		Site: SiteConfig{
			Name:      envOrDefault("SITE_NAME", "Markey Gallery"),
			BaseURL:   envOrDefault("SITE_URL", "https://markeygallery.com"),
			ImagesDir: envOrDefault("IMAGES_DIR", "./public/images"),
		},
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

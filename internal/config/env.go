package config

import (
	"log"
	"os"
	"strings"

	"vitatkal/internal/domain/models"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	// AdminAccessHash is a bcrypt hash of the operator access code.
	// AdminAccessCode is the plain fallback for local setups.
	AdminAccessHash string
	AdminAccessCode string
	JWTSecret       string

	Roster models.Roster

	SMTP SMTP
}

// LoadEnv reads configuration from the environment, honoring a local .env
// file when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/vitatkal?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:           dsn,
		AdminAccessHash: strings.TrimSpace(os.Getenv("ADMIN_ACCESS_HASH")),
		AdminAccessCode: strings.TrimSpace(os.Getenv("ADMIN_ACCESS_CODE")),
		JWTSecret:       secret,
		Roster:          loadRoster(os.Getenv("AGENT_ROSTER")),
		SMTP: SMTP{
			Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
			Port:     envOr("SMTP_PORT", "587"),
			Username: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
			Password: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
			From:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
			To:       strings.TrimSpace(os.Getenv("SMTP_TO")),
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// loadRoster parses AGENT_ROSTER entries "id:Display Name:#color" separated
// by commas. The stock three-agent roster applies when unset.
func loadRoster(raw string) models.Roster {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Roster{
			{ID: "nikhil", DisplayName: "Nikhil", Color: "#e74c3c"},
			{ID: "sandeep", DisplayName: "Sandeep", Color: "#2980b9"},
			{ID: "raju", DisplayName: "Raju", Color: "#27ae60"},
		}
	}

	roster := models.Roster{}
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) == 0 || strings.TrimSpace(parts[0]) == "" {
			continue
		}
		a := models.Agent{ID: strings.ToLower(strings.TrimSpace(parts[0]))}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			a.DisplayName = strings.TrimSpace(parts[1])
		} else {
			a.DisplayName = capitalize(a.ID)
		}
		if len(parts) > 2 {
			a.Color = strings.TrimSpace(parts[2])
		}
		roster = append(roster, a)
	}
	if len(roster) == 0 {
		log.Printf("warning: AGENT_ROSTER parsed empty, falling back to defaults")
		return loadRoster("")
	}
	return roster
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the service.
// Values are loaded from config/env/<GO_ENV>.env and overridden by real
// environment variables.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                 // Port the HTTP server listens on
	JwtSecret             string `env:"JWT_SECRET,required"`                       // HMAC secret for validating identity tokens
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // MongoDB connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Database holding coefficient and order records
	CatalogURL            string `env:"CATALOG_URL"`                               // Catalog feed URL; empty = development mode with seed data
	CatalogRefreshMinutes int    `env:"CATALOG_REFRESH_MINUTES" envDefault:"5"`    // Periodic catalog refresh interval
	WhatsAppPhone         string `env:"WHATSAPP_PHONE"`                            // Default destination phone for wa.me handoff (optional)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentials on CORS requests
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Window length in seconds
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Toggle rate limiting
}

// getEnvPath returns the path of the env file for the current environment.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("could not determine working directory: %v\n", err)
		return ""
	}

	// Walk up until a config/env directory is found.
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the configuration from the environment file.
// It returns nil when the file cannot be located or parsed; callers treat
// that as a fatal startup condition.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// fmt because the logger is not initialized yet at this point
		fmt.Printf("config/env directory not found\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("could not load env file at %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("error parsing config: %+v\n", err)
		return nil
	}

	return &cfg
}

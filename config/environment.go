package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	Port           string
	AllowedOrigins []string
}

var Env Environment

// LoadEnvironment reads the process environment into Env. Call after
// godotenv has had a chance to populate it.
func LoadEnvironment() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	allowed := []string{"http://localhost:3000"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowed = strings.Split(origins, ",")
	}

	Env = Environment{
		IsDevelopment:  os.Getenv("APP_ENV") != "production",
		Port:           port,
		AllowedOrigins: allowed,
	}
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var defaultOrigins = []string{
	"http://localhost",
	"http://localhost:8080",
	"http://localhost:5050",
	"http://localhost:3000",
	"https://soapdesign.ru",
	"https://www.soapdesign.ru",
}

type Config struct {
	DBDSN       string
	ServerPort  string
	CORSOrigins []string
	ImagesDir   string
	LogLevel    string
	GinMode     string
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:      getenv("DB_DSN"),
		ServerPort: getenv("SERVER_PORT"),
		ImagesDir:  getenv("IMAGES_DIR"),
		LogLevel:   getenv("LOG_LEVEL"),
		GinMode:    getenv("GIN_MODE"),
	}

	if cfg.DBDSN == "" {
		dsn, err := dsnFromParts(getenv)
		if err != nil {
			return nil, err
		}
		cfg.DBDSN = dsn
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = "./web/images"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.CORSOrigins = defaultOrigins
	if raw := getenv("CORS_ORIGINS"); raw != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

// DSN из отдельных DB_* переменных, как в старом .env
func dsnFromParts(getenv func(string) string) (string, error) {
	host := getenv("DB_HOST")
	name := getenv("DB_NAME")
	user := getenv("DB_USER")
	if host == "" || name == "" || user == "" {
		return "", errors.New("DB_DSN is not set (or DB_HOST, DB_NAME, DB_USER)")
	}

	port := getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, getenv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   name,
	}
	return u.String(), nil
}

// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DB DBConfig

	CacheTTL          time.Duration
	StatsCacheTTL     time.Duration
	DefaultWindowDays int

	PrimaryTopicDelimiter   string
	SecondaryTopicDelimiter string

	// DashboardPassword enables the basic auth gate when non-empty.
	DashboardPassword string
}

type DBConfig struct {
	DSN            string // wins over the individual fields when set
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout int // seconds
	ConnectMaxWait time.Duration
}

// ConnString returns DSN, or a postgres URL built from the individual fields.
func (d DBConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("connect_timeout", strconv.Itoa(d.ConnectTimeout))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Load reads .env (if present) and then the process environment. The
// environment wins over .env.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var errs []string
	intVal := func(key string, def int) int {
		v, err := getInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	durVal := func(key string, def time.Duration) time.Duration {
		v, err := getDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	cfg := Config{
		Port:        getString("PORT", "8080"),
		Environment: getString("ENVIRONMENT", "local"),
		LogLevel:    getString("LOG_LEVEL", "info"),
		DB: DBConfig{
			DSN:            getString("POSTGRES_DSN", ""),
			Host:           getString("DB_HOST", "192.168.1.100"),
			Port:           getString("DB_PORT", "5432"),
			Name:           getString("POSTGRES_DB", "directus"),
			User:           getString("POSTGRES_USER", "directus"),
			Password:       getString("POSTGRES_PASSWORD", ""),
			SSLMode:        getString("DB_SSLMODE", "disable"),
			ConnectTimeout: intVal("DB_CONNECT_TIMEOUT", 10),
			ConnectMaxWait: durVal("DB_CONNECT_MAX_WAIT", 30*time.Second),
		},
		CacheTTL:          durVal("CACHE_TTL", 5*time.Minute),
		StatsCacheTTL:     durVal("STATS_CACHE_TTL", time.Hour),
		DefaultWindowDays: intVal("DEFAULT_WINDOW_DAYS", 90),
		// delimiters are not trimmed: " , " style values are meaningful
		PrimaryTopicDelimiter:   getRaw("TOPICS_PRIMARY_DELIMITER", ","),
		SecondaryTopicDelimiter: getRaw("TOPICS_SECONDARY_DELIMITER", ","),
		DashboardPassword:       getRaw("DASHBOARD_PASSWORD", ""),
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getRaw(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("%s: invalid int %q", key, s)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def, fmt.Errorf("%s: invalid duration %q (e.g. 300s, 5m, 1h)", key, s)
	}
	return d, nil
}

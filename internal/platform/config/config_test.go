package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "POSTGRES_DSN", "DB_HOST", "DB_PORT", "POSTGRES_DB", "POSTGRES_USER",
		"POSTGRES_PASSWORD", "CACHE_TTL", "STATS_CACHE_TTL", "DEFAULT_WINDOW_DAYS",
		"TOPICS_PRIMARY_DELIMITER", "DASHBOARD_PASSWORD", "DB_CONNECT_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DefaultWindowDays != 90 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute || cfg.StatsCacheTTL != time.Hour {
		t.Fatalf("unexpected cache ttls: %v %v", cfg.CacheTTL, cfg.StatsCacheTTL)
	}
	if cfg.PrimaryTopicDelimiter != "," || cfg.DashboardPassword != "" {
		t.Fatalf("unexpected topic/password defaults: %+v", cfg)
	}
	conn := cfg.DB.ConnString()
	for _, want := range []string{"postgres://directus:@192.168.1.100:5432/directus", "connect_timeout=10", "sslmode=disable"} {
		if !strings.Contains(conn, want) {
			t.Fatalf("expected %q in %q", want, conn)
		}
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "p@ss word")
	t.Setenv("CACHE_TTL", "300s")
	t.Setenv("TOPICS_SECONDARY_DELIMITER", ", ")
	t.Setenv("DEFAULT_WINDOW_DAYS", "30")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CacheTTL != 300*time.Second || cfg.DefaultWindowDays != 30 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SecondaryTopicDelimiter != ", " {
		t.Fatalf("delimiter must keep its spaces, got %q", cfg.SecondaryTopicDelimiter)
	}
	conn := cfg.DB.ConnString()
	if !strings.Contains(conn, "@db.internal:5432") || !strings.Contains(conn, "p%40ss%20word") {
		t.Fatalf("unexpected conn string: %s", conn)
	}
}

func TestFromEnv_DSNWins(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@h:1/db?sslmode=require")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.ConnString() != "postgres://u:p@h:1/db?sslmode=require" {
		t.Fatalf("expected DSN to win, got %s", cfg.DB.ConnString())
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "five minutes")
	t.Setenv("DEFAULT_WINDOW_DAYS", "ninety")

	_, err := FromEnv()
	if err == nil {
		t.Fatalf("expected error for invalid values")
	}
	if !strings.Contains(err.Error(), "CACHE_TTL") || !strings.Contains(err.Error(), "DEFAULT_WINDOW_DAYS") {
		t.Fatalf("expected both keys reported, got %v", err)
	}
}

package common

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Contract != "org.papernet.commercialpaper" {
		t.Fatalf("expected default contract, got %s", cfg.Contract)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.SSLMode != "disable" {
		t.Fatalf("unexpected db defaults %+v", cfg.DB)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MSP_ID", "DigiBankMSP")
	t.Setenv("DB_NAME", "paper_test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9090" || cfg.MSP != "DigiBankMSP" || cfg.DB.Name != "paper_test" {
		t.Fatalf("expected overrides applied, got %+v", cfg)
	}
}

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "require"}.DSN()
	for _, want := range []string{"host=db", "port=5433", "user=u", "password=p", "dbname=n", "sslmode=require"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("expected %q in %q", want, dsn)
		}
	}
}

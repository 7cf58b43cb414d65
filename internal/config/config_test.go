package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DBPath != "fieldbase.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.AdminUser != "Admin" {
		t.Errorf("expected default admin user 'Admin', got %q", cfg.AdminUser)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FIELDBASE_ADDR", ":9090")
	t.Setenv("FIELDBASE_ADMIN_USER", "ops")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr ':9090', got %q", cfg.Addr)
	}
	if cfg.AdminUser != "ops" {
		t.Errorf("expected admin user 'ops', got %q", cfg.AdminUser)
	}
}

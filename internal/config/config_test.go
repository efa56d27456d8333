package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Env != "dev" {
		t.Fatalf("env = %q, want dev", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Port)
	}
	if cfg.BackendBasePath != "/api" {
		t.Fatalf("base path = %q, want /api", cfg.BackendBasePath)
	}
	if cfg.SessionStore != "memory" {
		t.Fatalf("session store = %q, want memory", cfg.SessionStore)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "3000")
	t.Setenv("STRICT_403", "true")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("ALLOWED_ORIGINS", "https://console.techexpo.local, https://admin.techexpo.local")

	cfg := Load()

	if cfg.Env != "prod" || cfg.Port != 3000 {
		t.Fatalf("cfg = %+v, want prod/3000", cfg)
	}
	if !cfg.Strict403 {
		t.Fatal("STRICT_403 not picked up")
	}
	if cfg.SessionStore != "redis" {
		t.Fatalf("session store = %q, want redis", cfg.SessionStore)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.techexpo.local" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if got := Load().Port; got != 8080 {
		t.Fatalf("port = %d, want the 8080 fallback", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		store   string
		secret  string
		wantErr bool
	}{
		{name: "memory_without_secret", store: "memory"},
		{name: "redis_without_secret", store: "redis"},
		{name: "file_without_secret", store: "file", wantErr: true},
		{name: "file_with_secret", store: "file", secret: "s3cr3t"},
		{name: "unknown_store", store: "cookie", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{SessionStore: tt.store, SessionSecret: tt.secret}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATA_SOURCE", "DB_DRIVER", "CORS_ALLOW_ORIGINS", "LOG_PRETTY"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Server.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Data.Source != SourceCSV {
		t.Errorf("Data.Source = %q, want csv", cfg.Data.Source)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q", cfg.Database.Driver)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Log.Pretty {
		t.Error("LOG_PRETTY should default to false")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DATA_SOURCE", "db")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("LOG_PRETTY", "yes")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("invalid DB_PORT should fall back to default, got %d", cfg.Database.Port)
	}
	if cfg.Data.Source != SourceDB {
		t.Errorf("Data.Source = %q", cfg.Data.Source)
	}
	if got := cfg.Server.CORSOrigins; len(got) != 2 || got[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", got)
	}
	if !cfg.Log.Pretty {
		t.Error("LOG_PRETTY=yes should enable pretty logs")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	want := "host=db port=5433 user=u password=p dbname=n sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got := d.URL(); got != "postgres://u:p@db:5433/n?sslmode=disable" {
		t.Errorf("URL() = %q", got)
	}
}

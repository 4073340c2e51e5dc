package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func configPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(configPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.DB.Host == "" {
		t.Error("DB.Host should not be empty")
	}

	if cfg.Sync.Datasource != "netsuite" {
		t.Errorf("Sync.Datasource = %v, want netsuite", cfg.Sync.Datasource)
	}

	if cfg.Sync.Workers == 0 {
		t.Error("Sync.Workers should not be 0")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsSyncDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080}}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Sync.Datasource != "netsuite" {
		t.Errorf("Sync.Datasource = %v, want netsuite", cfg.Sync.Datasource)
	}

	if cfg.Sync.RequestTimeoutSeconds != 30 {
		t.Errorf("Sync.RequestTimeoutSeconds = %v, want 30", cfg.Sync.RequestTimeoutSeconds)
	}

	if cfg.Sync.RunDeadlineMinutes != 15 {
		t.Errorf("Sync.RunDeadlineMinutes = %v, want 15", cfg.Sync.RunDeadlineMinutes)
	}

	if cfg.Sync.Workers != 4 {
		t.Errorf("Sync.Workers = %v, want 4", cfg.Sync.Workers)
	}

	if cfg.Sync.PageRetries != 3 {
		t.Errorf("Sync.PageRetries = %v, want 3", cfg.Sync.PageRetries)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("Webserver.ShutDownTime = %v, want 5", cfg.Webserver.ShutDownTime)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv("SUITESYNC_CONFIG_JSON", jsonOverride)

	cfg, err := ReadConfig(configPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

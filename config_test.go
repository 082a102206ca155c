package cloudlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Name != "default" {
		t.Errorf("expected name 'default', got %q", cfg.Name)
	}
	if cfg.ResourceType != DefaultResourceType {
		t.Errorf("expected resource type %q, got %q", DefaultResourceType, cfg.ResourceType)
	}
}

func TestConfigApplyDefaultsKeepsExisting(t *testing.T) {
	cfg := Config{Name: "request-log", ResourceType: "cloud_function"}
	cfg.ApplyDefaults()

	if cfg.Name != "request-log" {
		t.Errorf("expected name to be preserved, got %q", cfg.Name)
	}
	if cfg.ResourceType != "cloud_function" {
		t.Errorf("expected resource type to be preserved, got %q", cfg.ResourceType)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Name: "app-log"}, false},
		{"missing name", Config{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloudlog.yml")
	content := `name: request-log
project_id: my-project
resource_type: cloud_function
resource_labels:
  function_name: handler
labels:
  env: prod
echo: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Name != "request-log" {
		t.Errorf("expected name 'request-log', got %q", cfg.Name)
	}
	if cfg.ProjectID != "my-project" {
		t.Errorf("expected project 'my-project', got %q", cfg.ProjectID)
	}
	if cfg.ResourceType != "cloud_function" {
		t.Errorf("expected resource type 'cloud_function', got %q", cfg.ResourceType)
	}
	if cfg.ResourceLabels["function_name"] != "handler" {
		t.Errorf("expected resource label, got %v", cfg.ResourceLabels)
	}
	if cfg.Labels["env"] != "prod" {
		t.Errorf("expected default label, got %v", cfg.Labels)
	}
	if !cfg.Echo {
		t.Error("expected echo to be enabled")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloudlog.yml")
	if err := os.WriteFile(path, []byte("name: file-log\nproject_id: file-project\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CLOUDLOG_PROJECT_ID", "env-project")

	cfg, err := LoadConfig(WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ProjectID != "env-project" {
		t.Errorf("expected env to win, got %q", cfg.ProjectID)
	}
	if cfg.Name != "file-log" {
		t.Errorf("expected file value to remain, got %q", cfg.Name)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("CLOUDLOG_RESOURCE_TYPE=gce_instance\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CLOUDLOG_RESOURCE_TYPE") })

	cfg, err := LoadConfig(WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ResourceType != "gce_instance" {
		t.Errorf("expected resource type from env file, got %q", cfg.ResourceType)
	}
}

func TestLoadConfigDefaultsWhenEmpty(t *testing.T) {
	cfg, err := LoadConfig(WithConfigFile(""), WithEnvFile(""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Name != "default" {
		t.Errorf("expected default name, got %q", cfg.Name)
	}
	if cfg.ResourceType != DefaultResourceType {
		t.Errorf("expected default resource type, got %q", cfg.ResourceType)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml"))); err == nil {
		t.Error("expected error for missing config file")
	}
}

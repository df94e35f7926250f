package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roboco-io/rtfwriter/internal/rtf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Page.Size != "a4" {
		t.Errorf("expected page size 'a4', got %s", cfg.Page.Size)
	}
	if cfg.Font.Name != rtf.DefaultFontName {
		t.Errorf("expected font %q, got %s", rtf.DefaultFontName, cfg.Font.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_DocumentOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Page.Size = "letter"
	cfg.Page.Orientation = "landscape"
	cfg.Locale = "ko"
	cfg.Page.Margins.Left = 36

	opts, err := cfg.DocumentOptions()
	if err != nil {
		t.Fatalf("DocumentOptions: %v", err)
	}
	if opts.PaperSize != rtf.PaperLetter || opts.Orientation != rtf.Landscape {
		t.Errorf("unexpected page: %s %s", opts.PaperSize, opts.Orientation)
	}
	if opts.Lcid != rtf.LcidKorean {
		t.Errorf("expected lcid %d, got %d", rtf.LcidKorean, opts.Lcid)
	}
	want := rtf.Margins{72, 72, 72, 36}
	if opts.Margins == nil || *opts.Margins != want {
		t.Errorf("expected margins %v, got %v", want, opts.Margins)
	}

	cfg.Page.Size = "tabloid"
	if _, err := cfg.DocumentOptions(); err == nil {
		t.Error("expected error for unknown page size")
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"page.size", "A3", false},
		{"page.size", "tabloid", true},
		{"page.orientation", "landscape", false},
		{"page.orientation", "sideways", true},
		{"page.margins", "36", false},
		{"page.margins.left", "18.5", false},
		{"page.margins.top", "-1", true},
		{"locale", "ja-JP", false},
		{"locale", "not a tag!", true},
		{"font.name", "Arial", false},
		{"font.name", " ", true},
		{"font.size", "11", false},
		{"image.dpi", "300", false},
		{"image.dpi", "0", true},
		{"image.max_size", "1048576", false},
		{"unknown.key", "x", true},
	}

	cfg := DefaultConfig()
	for _, tc := range tests {
		err := cfg.Set(tc.key, tc.value)
		if (err != nil) != tc.wantErr {
			t.Errorf("Set(%q, %q): error = %v, wantErr %v", tc.key, tc.value, err, tc.wantErr)
		}
	}

	want := DefaultConfig()
	want.Page.Size = "a3"
	want.Page.Orientation = "landscape"
	want.Page.Margins = MarginsConfig{Top: 36, Right: 36, Bottom: 36, Left: 18.5}
	want.Locale = "ja-JP"
	want.Font = FontConfig{Name: "Arial", Size: 11}
	want.Image = ImageConfig{DPI: 300, MaxSize: 1048576}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvLocale, "de-DE")
	t.Setenv(EnvPaper, "legal")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Locale != "de-DE" || cfg.Page.Size != "legal" {
		t.Errorf("expected env overrides, got locale %s paper %s", cfg.Locale, cfg.Page.Size)
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	// Save default config
	cfg := DefaultConfig()
	cfg.Page.Size = "letter"
	cfg.Locale = "ko-KR"

	err := loader.Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify file exists
	if !loader.Exists() {
		t.Error("expected config file to exist after save")
	}

	// Load config back
	loaded, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("loaded config mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoader_LoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nonexistent", "config.yaml")

	loader := NewLoaderWithPath(configPath)

	// Should return default config when file doesn't exist
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}

	if cfg.Page.Size != "a4" {
		t.Errorf("expected default page size 'a4', got %s", cfg.Page.Size)
	}
}

func TestLoader_ExpandEnvVars(t *testing.T) {
	// Set test env var
	t.Setenv("TEST_FONT", "Malgun Gothic")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write config with env var reference
	content := `locale: ko-KR
font:
  name: ${TEST_FONT}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Font.Name != "Malgun Gothic" {
		t.Errorf("expected font 'Malgun Gothic', got %s", cfg.Font.Name)
	}
	// keys missing from the file keep their defaults
	if cfg.Page.Orientation != "portrait" || cfg.Image.DPI != 96 {
		t.Errorf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if v := GetEnvOrDefault("TEST_VAR", "default"); v != "test-value" {
		t.Errorf("expected 'test-value', got %s", v)
	}

	if v := GetEnvOrDefault("NONEXISTENT_VAR", "default"); v != "default" {
		t.Errorf("expected 'default', got %s", v)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"YES", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		os.Setenv("TEST_BOOL", tc.value)
		got := GetEnvBool("TEST_BOOL")
		if got != tc.expected {
			t.Errorf("GetEnvBool(%q): expected %v, got %v", tc.value, tc.expected, got)
		}
	}
	os.Unsetenv("TEST_BOOL")
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}

	path := loader.ConfigPath()
	if path == "" {
		t.Error("expected non-empty config path")
	}

	// Should contain config.yaml
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("expected config file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
}

func TestLoader_Init(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	if err := loader.Init(false); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after init")
	}

	cfg := DefaultConfig()
	cfg.Locale = "ko-KR"
	if err := loader.Save(cfg); err != nil {
		t.Fatal(err)
	}
	if err := loader.Init(false); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
	if got, _ := loader.Load(); got.Locale != "ko-KR" {
		t.Errorf("expected existing file kept, got locale %s", got.Locale)
	}

	if err := loader.Init(true); err != nil {
		t.Fatalf("failed to force init: %v", err)
	}
	if got, _ := loader.Load(); got.Locale != "en-US" {
		t.Errorf("expected defaults after force, got locale %s", got.Locale)
	}
}

func TestLoader_SaveKeepsEnvReferences(t *testing.T) {
	t.Setenv("TEST_FONT", "Malgun Gothic")
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	cfg := DefaultConfig()
	cfg.Font.Name = "${TEST_FONT}"
	if err := loader.Save(cfg); err != nil {
		t.Fatal(err)
	}

	raw, err := loader.LoadRaw()
	if err != nil {
		t.Fatal(err)
	}
	if raw.Font.Name != "${TEST_FONT}" {
		t.Errorf("expected raw reference, got %s", raw.Font.Name)
	}
	expanded, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	if expanded.Font.Name != "Malgun Gothic" {
		t.Errorf("expected expanded font, got %s", expanded.Font.Name)
	}
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write invalid YAML
	invalidYAML := "{{{{invalid yaml"
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	_, err := loader.Load()
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestExpandEnvVars_UnsetVar(t *testing.T) {
	// Make sure the env var is unset
	os.Unsetenv("UNSET_VAR_FOR_TEST")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `font:
  name: "${UNSET_VAR_FOR_TEST}"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Unset env var should result in empty string
	if cfg.Font.Name != "" {
		t.Errorf("expected empty font name for unset env var, got %s", cfg.Font.Name)
	}
}

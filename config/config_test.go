package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Reload(): %v", err)
	}

	if cfg.Calculator.DecimalSeparator != "." {
		t.Errorf("DecimalSeparator = %q, want \".\"", cfg.Calculator.DecimalSeparator)
	}
	if cfg.Calculator.Precision != 6 {
		t.Errorf("Precision = %d, want 6", cfg.Calculator.Precision)
	}
	if cfg.Formatter.DefaultFormat != "text" {
		t.Errorf("DefaultFormat = %q, want \"text\"", cfg.Formatter.DefaultFormat)
	}
	if cfg.TUI.Theme.Primary != "63" {
		t.Errorf("Theme.Primary = %q, want \"63\"", cfg.TUI.Theme.Primary)
	}
}

func TestLoadUserConfigMerge(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "paper")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	userConfig := "[calculator]\nuser_locale = \"de-DE\"\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(userConfig), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Reload(): %v", err)
	}
	if cfg.Calculator.UserLocale != "de-DE" {
		t.Errorf("UserLocale = %q, want \"de-DE\"", cfg.Calculator.UserLocale)
	}
	if cfg.Calculator.Precision != 6 {
		t.Errorf("Precision = %d, want default 6 preserved", cfg.Calculator.Precision)
	}
}

func TestLoadFallbackConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallback := "[formatter]\nverbose = true\n"
	if err := os.WriteFile(filepath.Join(tmpHome, ".paperrc.toml"), []byte(fallback), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Reload(): %v", err)
	}
	if !cfg.Formatter.Verbose {
		t.Error("Formatter.Verbose = false, want true from fallback config")
	}
}

func TestLoadXDGPriorityOverFallback(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallback := "[calculator]\nuser_locale = \"fr-FR\"\n"
	if err := os.WriteFile(filepath.Join(tmpHome, ".paperrc.toml"), []byte(fallback), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	configDir := filepath.Join(tmpHome, ".config", "paper")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	xdg := "[calculator]\nuser_locale = \"ja-JP\"\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(xdg), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Reload(): %v", err)
	}
	if cfg.Calculator.UserLocale != "ja-JP" {
		t.Errorf("UserLocale = %q, want XDG config to win (\"ja-JP\")", cfg.Calculator.UserLocale)
	}
}

func TestBuildStyles(t *testing.T) {
	theme := ThemeConfig{Primary: "63", Accent: "241", Error: "196", Muted: "245", Output: "42"}
	styles := theme.BuildStyles()

	if styles.Title.Render("test") == "" {
		t.Error("Title.Render produced empty output")
	}
	_ = styles.Prompt.Render("prompt")
	_ = styles.Output.Render("output")
	_ = styles.Error.Render("error")
	_ = styles.Help.Render("help")
	_ = styles.Separator.Render("|")
}

func TestGetStylesAfterLoad(t *testing.T) {
	if _, err := Reload(); err != nil {
		t.Fatalf("Reload(): %v", err)
	}
	if GetStyles().Title.Render("paper") == "" {
		t.Error("GetStyles().Title.Render produced empty output")
	}
}

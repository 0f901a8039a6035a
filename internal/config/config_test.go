package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Event.Name == "" {
		t.Fatal("default event name is empty")
	}
	if cfg.Sheet.Mode != ModeLocal {
		t.Fatalf("default sheet mode = %q, want %q", cfg.Sheet.Mode, ModeLocal)
	}
	if cfg.Appearance.Theme != "lantern-dark" {
		t.Fatalf("default theme = %q, want lantern-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Event.Name = "Pirate Day"
	cfg.Event.Date = "2026-09-12"
	cfg.Sheet.Mode = ModeBridge
	cfg.Sheet.BridgeURL = "https://bridge.example.com"
	cfg.Access.AdminCode = "$argon2id$v=19$m=65536,t=1,p=2$abc$def"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Event.Name != "Pirate Day" {
		t.Fatalf("Event.Name = %q, want Pirate Day", got.Event.Name)
	}
	if got.Sheet.BridgeURL != "https://bridge.example.com" {
		t.Fatalf("Sheet.BridgeURL = %q", got.Sheet.BridgeURL)
	}
	if got.Access.AdminCode != cfg.Access.AdminCode {
		t.Fatalf("Access.AdminCode did not round-trip")
	}
}

func TestConfigFilePermissions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config file mode = %o, want 600", perm)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Sheet.BridgeURL = "https://file.example.com"
	cfg.Sheet.Token = "file-token"
	cfg.Access.AdminCode = "file-admin"
	cfg.Access.GuestCode = "file-guest"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv("FETE_BRIDGE_URL", "https://env.example.com")
	t.Setenv("FETE_SHEET_TOKEN", "env-token")
	t.Setenv("FETE_ADMIN_CODE", "env-admin")
	t.Setenv("FETE_GUEST_CODE", "env-guest")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := GetBridgeURL(loaded); got != "https://env.example.com" {
		t.Fatalf("GetBridgeURL = %q, want env value", got)
	}
	if got := GetSheetToken(loaded); got != "env-token" {
		t.Fatalf("GetSheetToken = %q, want env value", got)
	}
	if got := GetAdminCode(loaded); got != "env-admin" {
		t.Fatalf("GetAdminCode = %q, want env value", got)
	}
	if got := GetGuestCode(loaded); got != "env-guest" {
		t.Fatalf("GetGuestCode = %q, want env value", got)
	}
}

func TestWorkbookPathDefault(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := DefaultConfig()
	want := filepath.Join(tmp, "fete", "workbook.db")
	if got := WorkbookPath(cfg); got != want {
		t.Fatalf("WorkbookPath = %q, want %q", got, want)
	}

	cfg.Workbook.Path = "/tmp/custom.db"
	if got := WorkbookPath(cfg); got != "/tmp/custom.db" {
		t.Fatalf("WorkbookPath = %q, want /tmp/custom.db", got)
	}
}

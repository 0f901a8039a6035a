package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fete configuration.
type Config struct {
	Event      EventConfig      `toml:"event"`
	Sheet      SheetConfig      `toml:"sheet"`
	Workbook   WorkbookConfig   `toml:"workbook"`
	Access     AccessConfig     `toml:"access"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// EventConfig holds the event details shown on the Event page and in the
// exported summary. These live in config, not in a worksheet.
type EventConfig struct {
	Name         string  `toml:"name"`
	Date         string  `toml:"date"`       // YYYY-MM-DD
	StartTime    string  `toml:"start_time"` // HH:MM, 24h
	Venue        string  `toml:"venue"`
	RainPlan     string  `toml:"rain_plan,omitempty"`
	Parking      string  `toml:"parking,omitempty"`
	Latitude     float64 `toml:"latitude,omitempty"`
	Longitude    float64 `toml:"longitude,omitempty"`
	ForecastNote string  `toml:"forecast_note,omitempty"`
}

// SheetConfig selects and configures the spreadsheet gateway.
// Mode is "bridge" (remote sheet bridge) or "local" (workbook file).
type SheetConfig struct {
	Mode      string `toml:"mode"`
	BridgeURL string `toml:"bridge_url,omitempty"`
	Token     string `toml:"token,omitempty"`
}

// WorkbookConfig holds local workbook settings for mode = "local".
type WorkbookConfig struct {
	Path string `toml:"path,omitempty"`
}

// AccessConfig holds the two shared access codes. Values written by
// `fete setup` are argon2id hashes; plaintext also works for dev setups.
// Empty means the role cannot be logged into; both empty means the gate
// is open and sessions start as admin.
type AccessConfig struct {
	AdminCode string `toml:"admin_code,omitempty"`
	GuestCode string `toml:"guest_code,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Mode values for SheetConfig.
const (
	ModeBridge = "bridge"
	ModeLocal  = "local"
)

// DefaultConfig returns the default configuration. Event defaults mirror
// the fixture party so a fresh install renders something sensible.
func DefaultConfig() Config {
	return Config{
		Event: EventConfig{
			Name:         "Leo's 7th Birthday",
			Date:         "2026-02-28",
			StartTime:    "12:00",
			Venue:        "Rocky Island, Balmoral Beach",
			RainPlan:     "Balmoral Rotunda",
			Parking:      "Paid parking at Bathers Pavilion ($12/hr) or street parking on The Esplanade.",
			Latitude:     -33.8245,
			Longitude:    151.2505,
			ForecastNote: "Check the forecast 3 days prior. Average for late Feb: 26°C.",
		},
		Sheet: SheetConfig{
			Mode: ModeLocal,
		},
		Appearance: AppearanceConfig{
			Theme: "lantern-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fete")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fete")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk. 0600 because access codes live here.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// WorkbookPath returns the configured workbook path, defaulting to the
// config directory.
func WorkbookPath(cfg Config) string {
	if cfg.Workbook.Path != "" {
		return cfg.Workbook.Path
	}
	return filepath.Join(Dir(), "workbook.db")
}

// LogPath returns where the dashboard writes its log file.
func LogPath() string {
	return filepath.Join(Dir(), "fete.log")
}

// GetBridgeURL returns the bridge URL from env var or config, in that order.
func GetBridgeURL(cfg Config) string {
	if v := os.Getenv("FETE_BRIDGE_URL"); v != "" {
		return v
	}
	return cfg.Sheet.BridgeURL
}

// GetSheetToken returns the bridge token from env var or config, in that order.
func GetSheetToken(cfg Config) string {
	if v := os.Getenv("FETE_SHEET_TOKEN"); v != "" {
		return v
	}
	return cfg.Sheet.Token
}

// GetAdminCode returns the admin access code from env var or config.
func GetAdminCode(cfg Config) string {
	if v := os.Getenv("FETE_ADMIN_CODE"); v != "" {
		return v
	}
	return cfg.Access.AdminCode
}

// GetGuestCode returns the guest access code from env var or config.
func GetGuestCode(cfg Config) string {
	if v := os.Getenv("FETE_GUEST_CODE"); v != "" {
		return v
	}
	return cfg.Access.GuestCode
}

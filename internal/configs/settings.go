package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds user preferences for the CLI. Nothing in here affects
// the cryptographic or image wire formats; settings only shape where
// artifacts land and how they are kept.
type Settings struct {
	Output OutputSettings `toml:"output"`
}

// OutputSettings controls where generated images are written.
type OutputSettings struct {
	// Directory is where encode writes images when no --out is given.
	// Empty means the current working directory.
	Directory string `toml:"directory"`

	// KeepArtifacts disables removal of the previously generated image
	// when a new one is produced.
	KeepArtifacts bool `toml:"keep_artifacts"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{}
}

// SettingsPath returns the location of the user settings file,
// typically ~/.config/pixelock/settings.toml.
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "pixelock", "settings.toml"), nil
}

// LoadSettings reads the user settings file. A missing file is not an
// error; defaults are returned instead.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings writes the settings file, creating its directory if needed.
func SaveSettings(settings Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(settings)
}

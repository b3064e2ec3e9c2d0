package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "netcheck"

// platformDir describes where one kind of per-user directory lives.
type platformDir struct {
	windowsEnv  string   // e.g. APPDATA
	windowsHome []string // fallback under %USERPROFILE%
	xdgEnv      string   // e.g. XDG_CONFIG_HOME
	unixHome    []string // fallback under $HOME
}

var (
	configDir = platformDir{"APPDATA", []string{"AppData", "Roaming"}, "XDG_CONFIG_HOME", []string{".config"}}
	dataDir   = platformDir{"LOCALAPPDATA", []string{"AppData", "Local"}, "XDG_DATA_HOME", []string{".local", "share"}}
)

func (d platformDir) resolve() (string, error) {
	if runtime.GOOS == "windows" {
		base := os.Getenv(d.windowsEnv)
		if base == "" {
			base = filepath.Join(append([]string{os.Getenv("USERPROFILE")}, d.windowsHome...)...)
		}
		return filepath.Join(base, appName), nil
	}
	base := os.Getenv(d.xdgEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, d.unixHome...)...)
	}
	return filepath.Join(base, appName), nil
}

// GetConfigDir returns the platform-specific config directory.
// Unix: $XDG_CONFIG_HOME/netcheck or ~/.config/netcheck
// Windows: %APPDATA%\netcheck
func GetConfigDir() (string, error) {
	return configDir.resolve()
}

// GetDataDir returns the platform-specific data directory, home of the
// diagnostic log and, by default, saved status logs.
// Unix: $XDG_DATA_HOME/netcheck or ~/.local/share/netcheck
// Windows: %LOCALAPPDATA%\netcheck
func GetDataDir() (string, error) {
	return dataDir.resolve()
}

// GetConfigPath returns the path to config.toml.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetLogPath returns the path of the diagnostic log file.
func GetLogPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// EnsureDirs creates the config and data directories if they don't exist.
func EnsureDirs() error {
	for _, d := range []platformDir{configDir, dataDir} {
		dir, err := d.resolve()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return nil
}

package beagle

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/agiangrant/beagle/internal/dynlib"
	"github.com/agiangrant/beagle/internal/logging"
	"github.com/agiangrant/beagle/window"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the configuration file looked up in the working directory.
const ConfigFile = "beagle.toml"

// Config represents the beagle.toml configuration file
type Config struct {
	Library LibraryConfig  `toml:"library"`
	Log     logging.Config `toml:"log"`
	Window  window.Config  `toml:"window"`
}

// LibraryConfig says where the native libraries are.
type LibraryConfig struct {
	// Empty means the platform default name
	GL   string `toml:"gl"`
	GLFW string `toml:"glfw"`
	// Extra directories searched before the executable's directory
	SearchPaths []string `toml:"search_paths"`
}

// Locate returns the path to load for one library. An environment override
// wins over the configured name, which wins over the platform default.
func (c LibraryConfig) Locate(env, configured string, defaults dynlib.Names) string {
	name := configured
	if name == "" {
		name = defaults.DefaultName(runtime.GOOS)
	}
	return dynlib.Locate(env, name, c.SearchPaths)
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{SearchPaths: []string{}},
		Log:     logging.DefaultConfig(),
		Window:  window.DefaultConfig(),
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.Log.Dir == "" {
		config.Log.Dir = "logs"
	}
	if config.Window.Title == "" {
		config.Window.Title = window.DefaultConfig().Title
	}

	if err := config.Window.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// CreateConfig writes the default configuration to path unless a file is
// already there. It reports whether a file was written.
func CreateConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := SaveConfig(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// FindProjectRoot walks up from dir looking for beagle.toml, falling back
// to the nearest go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	modRoot := ""
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}
		if modRoot == "" {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				modRoot = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if modRoot != "" {
		return modRoot, nil
	}
	return "", fmt.Errorf("could not find %s or go.mod", ConfigFile)
}

// ResolveConfigPath returns path unchanged unless it is the default
// beagle.toml, which is then looked up at the project root of the working
// directory. Outside any project the default is returned as is.
func ResolveConfigPath(path string) string {
	if path != ConfigFile {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return path
	}
	return filepath.Join(root, ConfigFile)
}

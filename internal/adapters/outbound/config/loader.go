package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

const (
	// FileName is the project-level configuration file.
	FileName = domain.ConfigFileName
	// EnvPrefix prefixes every environment override, e.g. CARGO_CONFIGURE_OUTPUT_DIR.
	EnvPrefix = "CARGO_CONFIGURE_"
)

// FlagKeys maps CLI flag names to configuration keys. Flags not listed here
// never reach the configuration.
var FlagKeys = map[string]string{
	"out":        "output_dir",
	"profile":    "profiles",
	"prefix":     "tool_prefix",
	"wrap-width": "wrap_width",
	"vcs":        "vcs",
	"log-level":  "log.level",
	"log-format": "log.format",
	"allow":      "policy.allow",
	"warn":       "policy.warn",
}

// Loader implements domain.ConfigLoader with layered sources.
// Precedence (highest to lowest): flags > env vars > project file > user file > defaults
type Loader struct {
	// ConfigFile replaces the project file when set (--config).
	ConfigFile string
	// UserFile is the per-user config. Empty skips it.
	UserFile string
	// Flags are consulted for explicitly set flags only.
	Flags *pflag.FlagSet
}

// New creates a Loader reading the user file from the XDG config directory.
func New() *Loader {
	return &Loader{UserFile: UserConfigPath()}
}

// UserConfigPath returns $XDG_CONFIG_HOME/cargo-configure/config.yaml.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "cargo-configure", "config.yaml")
}

// Load resolves the configuration for projectPath. Missing files are not
// errors; the result is validated before it is returned.
func (l *Loader) Load(projectPath string) (domain.ProjectConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading defaults: %w", err)
	}

	if l.UserFile != "" {
		if err := loadFile(k, l.UserFile, false); err != nil {
			return domain.ProjectConfig{}, err
		}
	}

	if l.ConfigFile != "" {
		if err := loadFile(k, l.ConfigFile, true); err != nil {
			return domain.ProjectConfig{}, err
		}
	} else if err := loadFile(k, filepath.Join(projectPath, FileName), false); err != nil {
		return domain.ProjectConfig{}, err
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading env vars: %w", err)
	}

	if l.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(l.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := FlagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(l.Flags, f)
		}), nil); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg domain.ProjectConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func defaults() map[string]interface{} {
	d := domain.DefaultConfig()
	return map[string]interface{}{
		"output_dir":   d.OutputDir,
		"profiles":     d.Profiles,
		"tool_prefix":  d.ToolPrefix,
		"wrap_width":   d.WrapWidth,
		"vcs":          d.VCS,
		"log.level":    d.Log.Level,
		"log.format":   d.Log.Format,
		"policy.allow": d.Policy.Allow,
	}
}

// loadFile merges a YAML file into k. A missing file is an error only when
// required is set.
func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// listKeys are the keys whose environment values are comma-separated lists.
var listKeys = map[string]bool{
	"profiles":     true,
	"policy.allow": true,
	"policy.warn":  true,
}

// envValue maps an environment variable to its key and splits list values,
// so CARGO_CONFIGURE_PROFILES=novice,master yields [novice master]. An empty
// list variable yields an empty list.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envKey maps CARGO_CONFIGURE_LOG_LEVEL to log.level and
// CARGO_CONFIGURE_OUTPUT_DIR to output_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"log_", "policy_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

package cloudlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables recognized by LoadConfig,
// e.g. CLOUDLOG_PROJECT_ID.
const EnvPrefix = "CLOUDLOG"

// envKeys are the scalar config keys that may be set via environment.
var envKeys = []string{"name", "project_id", "resource_type", "echo"}

// loadOptions holds optional file overrides for LoadConfig.
type loadOptions struct {
	configFile string
	envFile    string
}

// LoadOption is a functional option for LoadConfig.
type LoadOption func(*loadOptions)

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoadOption {
	return func(o *loadOptions) { o.envFile = path }
}

// LoadConfig builds a Config from a YAML file, a .env file, and environment
// variables, in increasing order of precedence. Missing files are skipped;
// defaults are applied to whatever remains.
func LoadConfig(opts ...LoadOption) (Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}
	if lo.configFile == "" {
		lo.configFile = findFirst("cloudlog.yml", "config/cloudlog.yml", "config.yml")
	}
	if lo.envFile == "" {
		lo.envFile = findFirst(".env")
	}

	v := viper.New()

	if lo.configFile != "" {
		v.SetConfigFile(lo.configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", lo.configFile, err)
		}
	}

	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			return Config{}, fmt.Errorf("loading env file %s: %w", lo.envFile, err)
		}
	}

	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// bindEnv overlays CLOUDLOG_* environment variables onto the viper instance.
func bindEnv(v *viper.Viper) {
	for _, key := range envKeys {
		envName := EnvPrefix + "_" + strings.ToUpper(key)
		if val, ok := os.LookupEnv(envName); ok && val != "" {
			v.Set(key, val)
		}
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

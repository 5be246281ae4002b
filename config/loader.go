package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/apistruct/logger"
)

// DefaultEnvPrefix prefixes the environment variables bound by Load.
const DefaultEnvPrefix = "APISTRUCT"

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for a service.
// Explicit paths win; otherwise standard locations are searched.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(configSearchPaths(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting(envSearchPaths(serviceName))
	}
	return resolved
}

func (r *Resolver) firstExisting(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		fmt.Sprintf("../cmd/%s/config.yml", serviceName),
		fmt.Sprintf("./config/%s.yml", serviceName),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
		"./apistruct.yml",
	}
}

func envSearchPaths(serviceName string) []string {
	var paths []string
	for _, name := range []string{".env." + serviceName, ".env"} {
		paths = append(paths,
			fmt.Sprintf("./cmd/%s/%s", serviceName, name),
			"./config/"+name,
			"./"+name,
			"../"+name,
		)
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string // Environment variable prefix, DefaultEnvPrefix if empty
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load loads configuration for a service into cfg.
// It resolves config.yml and .env files, binds prefixed environment variables
// over known keys, and unmarshals the result into cfg.
func Load(serviceName string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{EnvPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	return loadFromResolvedFiles(serviceName, cfg, files, lc)
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(serviceName string, cfg any, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()
	setDefaults(v, serviceName)

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("failed to load .env file", logger.Fields("path", files.EnvFile, "error", err.Error()))
		}
	}
	bindEnvVars(v, lc.EnvPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for service %s: %w", serviceName, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, serviceName string) {
	v.SetDefault("name", serviceName)
	v.SetDefault("environment", "development")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("http.timeout", "30s")
}

// bindEnvVars binds PREFIX_* environment variables to viper keys. A variable
// only overrides a key that viper already knows from the file or defaults, so
// an ambiguous name never invents a new endpoint.
func bindEnvVars(v *viper.Viper, prefix string) {
	prefix = strings.ToUpper(prefix) + "_"
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, variant := range generateEnvKeyVariants(strings.TrimPrefix(key, prefix)) {
			if v.IsSet(variant) {
				v.Set(variant, value)
				break
			}
		}
	}
}

// generateEnvKeyVariants creates the possible nested keys for an environment
// variable, most nested first.
//
//	ENDPOINTS_USERS_ROOT -> [endpoints.users.root, endpoints.users_root, endpoints_users.root, endpoints_users_root, ...]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	var variants []string
	var walk func(prefix string, rest []string)
	walk = func(prefix string, rest []string) {
		if len(rest) == 0 {
			variants = append(variants, prefix)
			return
		}
		for i := 1; i <= len(rest); i++ {
			segment := strings.Join(rest[:i], "_")
			next := segment
			if prefix != "" {
				next = prefix + "." + segment
			}
			walk(next, rest[i:])
		}
	}
	walk("", parts)
	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings from a slice.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

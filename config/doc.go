// Package config loads apistruct configuration from files and the environment.
//
// It uses Viper to read a config.yml (YAML, JSON and TOML are accepted by
// extension), godotenv to load a .env file, and binds prefixed environment
// variables over the file values.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load("billing", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	registry, err := cfg.Registry()
//
// Environment variables override keys already present in the file or in the
// built-in defaults, using the APISTRUCT_ prefix with underscore-separated
// paths (e.g., APISTRUCT_ENDPOINTS_USERS_ROOT, APISTRUCT_HTTP_TIMEOUT).
package config

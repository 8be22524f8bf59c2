package config

import "context"

const (
	defaultEnvPrefix  = "FILTERDASH"
	defaultConfigName = "filterdash"
	defaultConfigType = "toml"
)

// Watcher enables live configuration updates
type Watcher interface {
	// Watch starts watching the loaded configuration file. The callback is
	// called with the freshly decoded configuration after every change that
	// still validates. Watching stops when ctx is done.
	Watch(ctx context.Context, callback func(*Config)) error
}

// Option defines a configuration option that can be passed to NewLoader
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath  string
	envPrefix   string
	searchPaths []string
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "FILTERDASH"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithSearchPaths replaces the directories searched for filterdash.toml
func WithSearchPaths(paths ...string) Option {
	return func(o *options) error {
		o.searchPaths = paths
		return nil
	}
}

// Theme names accepted by the theme setting.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

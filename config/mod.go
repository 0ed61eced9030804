// Package config holds the local configuration of the voting client: where
// the pinned trusted key lives and whether diagnostic output is enabled. The
// configuration is deliberately small; everything about a vote comes from the
// authenticated definition, never from local settings.
package config

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultPath is the location of the configuration file when no flag
	// overrides it.
	DefaultPath = "/etc/mpvote/config.yml"

	// DefaultTrustedKeyPath is the location of the pinned trusted public
	// key when the configuration does not name one.
	DefaultTrustedKeyPath = "/etc/mpvote/trusted.pem"
)

// Config is the client configuration.
type Config struct {
	// TrustedKey is the path of the PEM-encoded trusted public key that
	// definition signatures are checked against.
	TrustedKey string `yaml:"trusted_key"`

	// Verbose enables diagnostic logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		TrustedKey: DefaultTrustedKeyPath,
	}
}

// Load reads the configuration file at the given path. A missing file is not
// an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}

	if err != nil {
		return cfg, xerrors.Errorf("while reading config: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, xerrors.Errorf("while decoding config: %v", err)
	}

	if cfg.TrustedKey == "" {
		cfg.TrustedKey = DefaultTrustedKeyPath
	}

	return cfg, nil
}

// Package config loads and saves the TOML configuration of the huffman
// command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/chronos-tachyon/huffmantree/internal/logging"
)

// DefaultFile is the configuration file name used when none is given.
const DefaultFile = "config.toml"

// Config is the configuration of the huffman command.
type Config struct {
	// Alphabet selects the symbol unit for encoding: "bytes" or "runes".
	Alphabet string          `toml:"alphabet"`
	Logger   *logging.Config `toml:"logger"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Alphabet: "bytes",
		Logger: &logging.Config{
			Environment: "production",
		},
	}
}

// Load reads the configuration in path.  A missing file is not an error;
// Load then returns Default().  Keys absent from the file keep their default
// values.
func Load(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if conf.Logger == nil {
		conf.Logger = Default().Logger
	}
	return conf, nil
}

// Save writes conf to path in TOML encoding.  It refuses to overwrite an
// existing file.
func (conf *Config) Save(path string) error {
	var confBuf bytes.Buffer
	if err := toml.NewEncoder(&confBuf).Encode(conf); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("can't write config: file %q already exists", path)
		}
		return err
	}
	if _, err := confBuf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

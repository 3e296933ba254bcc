package cli

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Config holds defaults read from a TOML file. Command-line flags that are
// set explicitly take precedence.
//
//	verbose = true
//
//	[basis]
//	format = "json"
//	parallelism = 4
type Config struct {
	Verbose bool        `toml:"verbose"`
	Basis   BasisConfig `toml:"basis"`
}

// BasisConfig configures the basis command.
type BasisConfig struct {
	Format      string `toml:"format"`
	Parallelism int    `toml:"parallelism"`
}

func defaultConfig() Config {
	return Config{
		Basis: BasisConfig{
			Format:      formatText,
			Parallelism: runtime.GOMAXPROCS(0),
		},
	}
}

// loadConfig overlays the file at path onto the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, un[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := validateFormat(c.Basis.Format); err != nil {
		return err
	}
	if c.Basis.Parallelism < 1 {
		return fmt.Errorf("invalid parallelism: %d (must be at least 1)", c.Basis.Parallelism)
	}
	return nil
}

func validateFormat(f string) error {
	if f != formatText && f != formatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", f)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableaxis/pkg/cache"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
)

// Config is the user configuration read from config.toml.
type Config struct {
	Table    TableConfig    `toml:"table"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Output   OutputConfig   `toml:"output"`
	Server   ServerConfig   `toml:"server"`
}

// TableConfig controls the rebuilt table.
type TableConfig struct {
	// Name labels rebuilt tables. Empty keeps "Table".
	Name string `toml:"name"`
}

// SnapshotConfig controls undo snapshots.
type SnapshotConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"` // Go duration, e.g. "168h"
}

// Duration parses TTL. An empty TTL means the cache default.
func (s SnapshotConfig) Duration() (time.Duration, error) {
	if s.TTL == "" {
		return cache.TTLSnapshot, nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil || d <= 0 {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "snapshot.ttl must be a positive duration, got %q", s.TTL)
	}
	return d, nil
}

// OutputConfig controls how documents are written to stdout.
type OutputConfig struct {
	Format string `toml:"format"` // json, toml or yaml
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Snapshot: SnapshotConfig{Enabled: true, TTL: cache.TTLSnapshot.String()},
		Output:   OutputConfig{Format: string(docio.FormatJSON)},
		Server:   ServerConfig{Addr: "127.0.0.1:8080"},
	}
}

// LoadConfig reads the config file at path on top of [DefaultConfig].
// A missing file yields the defaults unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		if required {
			return cfg, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apperr.New(apperr.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks the values of a loaded config.
func (c Config) Validate() error {
	if _, err := docio.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := c.Snapshot.Duration(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "server.addr must not be empty")
	}
	return nil
}

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolvedConfigFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.Config)
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolvedConfigFile()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create config: %w", err)
			}
			defer f.Close()
			if err := toml.NewEncoder(f).Encode(DefaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote default configuration")
			printFile(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func (c *CLI) resolvedConfigFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	path, err := configFile()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return path, nil
}

package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableaxis/pkg/buildinfo"
	"github.com/matzehuels/tableaxis/pkg/cache"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tableaxis"

	// snapshotScope prefixes snapshot keys in the shared cache directory.
	snapshotScope = "cli:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before each command runs. Flags override it.
	Config Config

	// configPath overrides the config file location (--config).
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Tableaxis switches tables between rows and columns",
		Long:          `Tableaxis rebuilds an auto-layout table frame so that its rows become columns and its columns become rows, keeping cell order, cell styling and overlays intact.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tableaxis/config.toml)")

	root.AddCommand(c.switchCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.undoCommand())
	root.AddCommand(c.panelCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.snapshotsCommand())
	root.AddCommand(c.configCommand())

	return root
}

func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := configFile()
		if err != nil {
			return nil
		}
		path = p
	}
	cfg, err := LoadConfig(path, c.configPath != "")
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noSnapshot bool) (*pipeline.Runner, error) {
	store, err := c.newSnapshotStore(noSnapshot)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.Logger), nil
}

func (c *CLI) newSnapshotStore(disabled bool) (*cache.SnapshotStore, error) {
	if disabled || !c.Config.Snapshot.Enabled {
		return cache.NewSnapshotStore(nil, nil, 0), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewSnapshotStore(nil, nil, 0), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	ttl, err := c.Config.Snapshot.Duration()
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), snapshotScope)
	return cache.NewSnapshotStore(fc, keyer, ttl), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tableaxis/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the config file path (~/.config/tableaxis/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

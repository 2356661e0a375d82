// threefourthree plays a base-3 take on 2048 from the command line. Each
// invocation loads the game saved in a slot, applies one command and saves
// it again.
//
// Usage:
//
//	threefourthree variants               - List playable variants
//	threefourthree new [--variant ID]     - Start a new game
//	threefourthree move <direction>...    - Slide tiles up, down, left or right
//	threefourthree continue               - Keep playing after reaching the goal tile
//	threefourthree show                   - Print the current board
//	threefourthree end                    - Record the score and clear the slot
//	threefourthree export <file>          - Write the game as JSON
//	threefourthree import <file>          - Load a game from JSON
//	threefourthree saves                  - List saved games
//	threefourthree scores [variant]       - Show high scores
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.threefourthree, ./configs)
//	--db <path>         - Database path (default: ~/.threefourthree/games.db)
//	--slot <name>       - Save slot (default: "default")
//	--seed <value>      - RNG seed for reproducible tile placement
//	--log-level <lvl>   - debug, info, warn or error
//	--plain             - Disable colors
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/blubits/threefourthree/internal/config"
	"github.com/blubits/threefourthree/internal/core"
	"github.com/blubits/threefourthree/internal/registry"
	"github.com/blubits/threefourthree/internal/session"
	"github.com/blubits/threefourthree/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds global flags and everything built from them before a subcommand runs.
type app struct {
	// Global flags
	configPath string
	dbPath     string
	slot       string
	seed       int64
	logLevel   string
	plain      bool

	cfg      config.Config
	logger   *log.Logger
	variants *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "threefourthree",
		Short: "Threefourthree - 2048 in base 3",
		Long: `Threefourthree is 2048 played with powers of three: three equal tiles
in a row merge into one. Reach the goal tile to win.

Examples:
  threefourthree new
  threefourthree move left up up
  threefourthree new --variant mini --slot quick
  threefourthree scores classic`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	flags.StringVar(&a.dbPath, "db", "", "Path to games database (overrides config)")
	flags.StringVar(&a.slot, "slot", "", "Save slot name (overrides config)")
	flags.Int64Var(&a.seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&a.plain, "plain", false, "Print without colors")

	root.AddCommand(
		a.variantsCmd(),
		a.newCmd(),
		a.moveCmd(),
		a.continueCmd(),
		a.showCmd(),
		a.endCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.savesCmd(),
		a.scoresCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger and
// variant registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database = a.dbPath
	}
	if a.slot != "" {
		cfg.DefaultSlot = a.slot
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "threefourthree",
		Level:           level,
	})

	a.variants = registry.New()
	if err := a.variants.RegisterPresets(); err != nil {
		return err
	}
	for _, v := range cfg.Variants {
		if err := a.variants.Register(registry.Variant{ID: v.ID, Title: v.Title, Settings: v.Settings()}); err != nil {
			return err
		}
	}

	a.logger.Debug("config loaded", "database", cfg.Database, "slot", cfg.DefaultSlot, "variants", len(a.variants.List()))
	return nil
}

func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = a.seed
	return cfg
}

// openStore opens the games database. The caller closes it.
func (a *app) openStore() (*storage.Store, error) {
	store, err := storage.Open(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening games database: %w", err)
	}
	return store, nil
}

// withSession opens the store, builds a controller and runs fn. When resume
// is set, the game in the current slot is loaded first.
func (a *app) withSession(resume bool, fn func(*session.Controller) error) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctrl := session.New(store, a.variants, a.logger, a.runtimeConfig())
	if resume {
		if err := ctrl.Resume(a.cfg.DefaultSlot); err != nil {
			return err
		}
	}
	return fn(ctrl)
}

func (a *app) printer(out io.Writer) *printer {
	return newPrinter(out, a.plain)
}

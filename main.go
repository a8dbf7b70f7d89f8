package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/config"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/game"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/term"
)

const windowTitle = "Circle Shifter - Click or Space: shift, R: reset, S: snapshot, Esc/Q: quit"

var version = "dev" // set with -ldflags "-X main.version=..."

// options holds the command-line flags.
type options struct {
	configPath string
	logFile    string
	verbose    bool

	nodes   int
	circles int
	easing  string
	mute    bool
	debug   bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "circle-shifter",
		Short:        "A chain of circle clusters that shift and turn on tap",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return runWindow(cmd.Context(), cfg)
		},
	}

	bindFlags(root, &opts)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := charmlog.InfoLevel
		if opts.verbose {
			level = charmlog.DebugLevel
		}
		w, err := logWriter(cmd, opts.logFile)
		if err != nil {
			return err
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
		return nil
	}

	root.AddCommand(newTermCmd(&opts))
	return root
}

// bindFlags declares the persistent flags shared by every command.
func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.IntVar(&opts.nodes, "nodes", config.Nodes, "number of nodes in the chain")
	flags.IntVar(&opts.circles, "circles", config.Circles, "circles per node")
	flags.StringVar(&opts.easing, "easing", config.Easing, "easing applied to the shapes")
	flags.BoolVar(&opts.mute, "mute", false, "disable the chime")
	flags.BoolVar(&opts.debug, "debug", false, "show the status overlay")
}

func newTermCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run in the terminal",
		Long:  "Run in the terminal using half-block cells. Space, Enter or a click shifts; r resets; q or Esc quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTerm(cmd.Context(), cfg)
		},
	}
}

// logWriter picks the log destination. The terminal host owns the screen,
// so without a log file its logs are dropped.
func logWriter(cmd *cobra.Command, path string) (io.Writer, error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cobra.OnFinalize(func() { f.Close() })
		return f, nil
	}
	if cmd.Name() == "term" {
		return io.Discard, nil
	}
	return os.Stderr, nil
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("nodes") {
		cfg.Nodes = opts.nodes
	}
	if flags.Changed("circles") {
		cfg.Circles = opts.circles
	}
	if flags.Changed("easing") {
		cfg.Easing = opts.easing
	}
	if flags.Changed("mute") {
		cfg.Sound = !opts.mute
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	return cfg, cfg.Validate()
}

func runWindow(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	g, err := game.NewGame(ctx, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(windowTitle)
	logger.Info("starting", "nodes", cfg.Nodes, "circles", cfg.Circles, "easing", cfg.Easing)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		reportWindowError(logger, err)
		return fmt.Errorf("run window: %w", err)
	}
	return ctx.Err()
}

// errorDialog shows a fatal error to a desktop user.
var errorDialog = func(msg string) error {
	return zenity.Error(msg, zenity.Title("Circle Shifter"), zenity.ErrorIcon)
}

func reportWindowError(logger *charmlog.Logger, err error) {
	logger.Error("window", "err", err)
	if derr := errorDialog(err.Error()); derr != nil {
		logger.Debug("no display for error dialog", "err", derr)
	}
}

func runTerm(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	r, err := game.NewRenderer(cfg)
	if err != nil {
		return err
	}
	r.OnEvent(game.LogEvents(logger))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return term.New(screen, r, logger).Run(ctx)
}

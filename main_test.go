package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}
	l := newLogger(io.Discard, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext did not return the attached logger")
	}
}

// parse builds a command with the shared flags and parses args.
func parse(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	var opts options
	cmd := &cobra.Command{Use: "test"}
	bindFlags(cmd, &opts)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, &opts
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd, opts := parse(t)
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("nodes = 3\ncircles = 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, opts := parse(t, "--config", path, "--nodes", "8", "--mute", "--debug")
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Nodes != 8 {
		t.Errorf("Nodes = %d, want flag value 8", cfg.Nodes)
	}
	if cfg.Circles != 6 {
		t.Errorf("Circles = %d, want file value 6", cfg.Circles)
	}
	if cfg.Sound || !cfg.Debug {
		t.Errorf("Sound = %v Debug = %v, want false true", cfg.Sound, cfg.Debug)
	}
}

func TestLoadConfigFlagsSwitchOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("debug = true\nsound = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, opts := parse(t, "--config", path, "--debug=false", "--mute=false")
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Debug {
		t.Error("--debug=false did not override the file")
	}
	if !cfg.Sound {
		t.Error("--mute=false did not override the file")
	}

	cmd, opts = parse(t, "--config", path)
	if cfg, err = loadConfig(cmd, opts); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Debug || cfg.Sound {
		t.Errorf("unset flags changed file values: Debug = %v Sound = %v", cfg.Debug, cfg.Sound)
	}
}

func TestLoadConfigInvalidFlag(t *testing.T) {
	cmd, opts := parse(t, "--easing", "wobble")
	if _, err := loadConfig(cmd, opts); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLogWriter(t *testing.T) {
	root := &cobra.Command{Use: "circle-shifter"}
	termCmd := &cobra.Command{Use: "term"}

	if w, err := logWriter(root, ""); err != nil || w != os.Stderr {
		t.Errorf("root writer = %v, %v; want stderr", w, err)
	}
	if w, err := logWriter(termCmd, ""); err != nil || w != io.Discard {
		t.Errorf("term writer = %v, %v; want discard", w, err)
	}

	path := filepath.Join(t.TempDir(), "out.log")
	w, err := logWriter(termCmd, path)
	if err != nil {
		t.Fatalf("logWriter(file): %v", err)
	}
	newLogger(w, log.InfoLevel).Info("hello")
	w.(*os.File).Close()
	data, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(data, []byte("hello")) {
		t.Errorf("log file = %q, %v", data, err)
	}

	if _, err := logWriter(root, filepath.Join(t.TempDir(), "no", "dir.log")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestReportWindowErrorLogsDialogFailure(t *testing.T) {
	orig := errorDialog
	t.Cleanup(func() { errorDialog = orig })

	var shown string
	errorDialog = func(msg string) error {
		shown = msg
		return errors.New("zenity: not found")
	}

	var buf bytes.Buffer
	reportWindowError(newLogger(&buf, log.DebugLevel), errors.New("graphics lost"))

	if shown != "graphics lost" {
		t.Errorf("dialog message = %q", shown)
	}
	out := buf.String()
	for _, want := range []string{"graphics lost", "no display for error dialog", "zenity: not found"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestRootCommandHasTerm(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"term"})
	if err != nil || cmd.Name() != "term" {
		t.Fatalf("Find(term) = %v, %v", cmd, err)
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

// Command textbox-demo edits a few text boxes in the terminal, hosted by
// Bubble Tea or by tview.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/textbox"
	"github.com/iw2rmb/textbox/clipboard"
	"github.com/iw2rmb/textbox/editor"
)

func main() {
	configPath := flag.String("config", "", "TOML file describing the boxes")
	logPath := flag.String("log", "", "append logs to this file")
	frontend := flag.String("frontend", "", "bubbletea or tview; overrides the config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(textbox.VersionTag())
		return
	}

	if err := run(*configPath, *logPath, *frontend); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(configPath, logPath, frontend string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if frontend != "" {
		cfg.Frontend = frontend
	}

	// Logs never go to the terminal being drawn.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "textbox-demo",
		Level:           log.DebugLevel,
	})
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	fields, err := buildFields(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "frontend", cfg.Frontend, "boxes", len(fields), "version", textbox.Version())

	switch cfg.Frontend {
	case "bubbletea":
		return runTea(fields, logger)
	case "tview":
		return runTview(fields, logger)
	default:
		return fmt.Errorf("frontend %q: %w", cfg.Frontend, errBadConfig)
	}
}

// fieldDef is a validated box ready for either frontend.
type fieldDef struct {
	title  string
	height int
	cfg    editor.Config
}

func buildFields(cfg demoConfig, logger *log.Logger) ([]fieldDef, error) {
	clip := clipboard.Default()
	fields := make([]fieldDef, 0, len(cfg.Boxes))
	for _, b := range cfg.Boxes {
		ec, err := b.editorConfig()
		if err != nil {
			return nil, err
		}
		ec.Clipboard = clip
		ec.Logger = logger.With("box", b.Title)
		fields = append(fields, fieldDef{title: b.Title, height: b.height(ec), cfg: ec})
	}
	return fields, nil
}

// step returns the focus index after r, wrapping around n fields.
func step(cur, n int, r editor.Result) int {
	switch r {
	case editor.MoveFocusNext, editor.MoveFocusDown, editor.MoveFocusRight:
		return (cur + 1) % n
	case editor.MoveFocusPrevious, editor.MoveFocusUp, editor.MoveFocusLeft:
		return (cur - 1 + n) % n
	default:
		return cur
	}
}

package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/textbox/editor"
)

type demoConfig struct {
	Frontend string   `toml:"frontend"`
	Boxes    []boxDef `toml:"box"`
}

type boxDef struct {
	Title          string `toml:"title"`
	Text           string `toml:"text"`
	Mode           string `toml:"mode"`
	Height         int    `toml:"height"`
	ReadOnly       bool   `toml:"read_only"`
	CaretWarp      bool   `toml:"caret_warp"`
	Mask           string `toml:"mask"`
	Fill           string `toml:"fill"`
	MaxLineLength  int    `toml:"max_line_length"`
	History        int    `toml:"history"`
	HideScrollbars bool   `toml:"hide_scrollbars"`
}

var errBadConfig = errors.New("bad demo config")

func defaultConfig() demoConfig {
	return demoConfig{
		Frontend: "bubbletea",
		Boxes: []boxDef{
			{Title: "Name", Text: "Ada Lovelace", Mode: "single", History: 50},
			{Title: "Password", Mode: "single", Mask: "*"},
			{
				Title:     "Notes",
				Text:      "Tab and shift+tab move between fields.\nF3 toggles mark mode; ctrl+c, ctrl+x, ctrl+v use the clipboard.\nctrl+z undoes, ctrl+y redoes.\nctrl+q quits.\n\n日本語 text keeps its columns.",
				Mode:      "multi",
				Height:    6,
				CaretWarp: true,
				History:   200,
			},
		},
	}
}

// loadConfig reads path, or returns the built-in config when path is empty.
func loadConfig(path string) (demoConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	var cfg demoConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return demoConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return demoConfig{}, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), errBadConfig)
	}
	if cfg.Frontend == "" {
		cfg.Frontend = "bubbletea"
	}
	if len(cfg.Boxes) == 0 {
		return demoConfig{}, fmt.Errorf("%s: no [[box]] tables: %w", path, errBadConfig)
	}
	return cfg, nil
}

// editorConfig maps a box definition onto an editor.Config.
func (b boxDef) editorConfig() (editor.Config, error) {
	cfg := editor.Config{
		Text:           b.Text,
		ReadOnly:       b.ReadOnly,
		CaretWarp:      b.CaretWarp,
		MaxLineLength:  b.MaxLineLength,
		HistoryLimit:   b.History,
		HideScrollbars: b.HideScrollbars,
	}
	switch b.Mode {
	case "", "auto":
	case "single":
		cfg.Mode = editor.ModeSingleLine
	case "multi":
		cfg.Mode = editor.ModeMultiLine
	default:
		return editor.Config{}, fmt.Errorf("box %q: mode %q: %w", b.Title, b.Mode, errBadConfig)
	}
	var err error
	if cfg.Mask, err = singleRune(b.Mask); err != nil {
		return editor.Config{}, fmt.Errorf("box %q: mask: %w", b.Title, err)
	}
	if cfg.Fill, err = singleRune(b.Fill); err != nil {
		return editor.Config{}, fmt.Errorf("box %q: fill: %w", b.Title, err)
	}
	return cfg, cfg.Validate()
}

// height is the number of rows the box takes, scrollbars included.
func (b boxDef) height(cfg editor.Config) int {
	if b.Height > 0 {
		return b.Height
	}
	if cfg.Mode == editor.ModeMultiLine {
		return 4
	}
	return 1
}

func singleRune(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, n := utf8.DecodeRuneInString(s)
	if n != len(s) {
		return 0, fmt.Errorf("%q is not a single character: %w", s, errBadConfig)
	}
	return r, nil
}

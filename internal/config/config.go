package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Keymap maps key strings ("ctrl+s", "shift+left", "enter") to action names.
type Keymap map[string]string

type EditorOptions struct {
	TabWidth         int    `toml:"tab-width"`
	LineNumbers      string `toml:"line-numbers"`
	HorizontalScroll bool   `toml:"horizontal-scroll"`
	HistoryLimit     int    `toml:"history-limit"`
	AutoIndent       bool   `toml:"auto-indent"`
	SystemClipboard  bool   `toml:"system-clipboard"`
	StrictHighlight  bool   `toml:"strict-highlight"`
}

// ShowLineNumbers reports whether the gutter is drawn.
func (o EditorOptions) ShowLineNumbers() bool {
	return o.LineNumbers != "off" && o.LineNumbers != ""
}

type Theme struct {
	Theme                string `toml:"theme"`
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	Keyword              string `toml:"keyword"`
	String               string `toml:"string"`
	Comment              string `toml:"comment"`
	Number               string `toml:"number"`
	Header               string `toml:"header"`
	Link                 string `toml:"link"`
	LineNumber           string `toml:"line-number"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:         4,
			LineNumbers:      "absolute",
			HorizontalScroll: true,
			HistoryLimit:     0,
			AutoIndent:       true,
			SystemClipboard:  true,
		},
		Theme: Theme{
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			Keyword:              "#FFA759",
			String:               "#BAE67E",
			Comment:              "#5C6773",
			Number:               "#D4BFFF",
			Header:               "#59C2FF",
			Link:                 "#E6B673",
			LineNumber:           "#3E4B59",
			StatuslineForeground: "#B3B1AD",
			StatuslineBackground: "#0F1419",
		},
		Keymap: Keymap{
			"ctrl+s":      "save",
			"ctrl+q":      "quit",
			"ctrl+z":      "undo",
			"ctrl+y":      "redo",
			"ctrl+c":      "copy",
			"ctrl+x":      "cut",
			"ctrl+v":      "paste",
			"left":        "move_left",
			"right":       "move_right",
			"up":          "move_up",
			"down":        "move_down",
			"shift+left":  "select_left",
			"shift+right": "select_right",
			"shift+up":    "select_up",
			"shift+down":  "select_down",
			"backspace":   "backspace",
			"del":         "delete_char",
			"enter":       "newline",
			"tab":         "indent",
			"esc":         "cancel_selection",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Editor.LineNumbers != "" {
		cfg.Editor.LineNumbers = userCfg.Editor.LineNumbers
	}
	if userCfg.Editor.HistoryLimit > 0 {
		cfg.Editor.HistoryLimit = userCfg.Editor.HistoryLimit
	}
	// Booleans default to true, so only keys present in the file count.
	if md.IsDefined("editor", "horizontal-scroll") {
		cfg.Editor.HorizontalScroll = userCfg.Editor.HorizontalScroll
	}
	if md.IsDefined("editor", "auto-indent") {
		cfg.Editor.AutoIndent = userCfg.Editor.AutoIndent
	}
	if md.IsDefined("editor", "system-clipboard") {
		cfg.Editor.SystemClipboard = userCfg.Editor.SystemClipboard
	}
	if md.IsDefined("editor", "strict-highlight") {
		cfg.Editor.StrictHighlight = userCfg.Editor.StrictHighlight
	}

	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&dst.Foreground, src.Foreground)
	set(&dst.Background, src.Background)
	set(&dst.Keyword, src.Keyword)
	set(&dst.String, src.String)
	set(&dst.Comment, src.Comment)
	set(&dst.Number, src.Number)
	set(&dst.Header, src.Header)
	set(&dst.Link, src.Link)
	set(&dst.LineNumber, src.LineNumber)
	set(&dst.StatuslineForeground, src.StatuslineForeground)
	set(&dst.StatuslineBackground, src.StatuslineBackground)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. Both flat files and files wrapped in a
// [theme] table are accepted.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %q: %w", name, err)
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, fmt.Errorf("parse theme %q: %w", name, err)
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("SLATE_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "slate"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "slate"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Language binds file types to a tokenizer spec such as "regex:python",
// "markdown", "treesitter:go", "chroma:rust" or "plain".
type Language struct {
	Name      string   `toml:"name"`
	FileTypes []string `toml:"file-types"`
	Tokenizer string   `toml:"tokenizer"`
}

type Languages struct {
	Languages []Language `toml:"language"`
}

// Match finds the language for path by base name or extension.
func (l Languages) Match(path string) *Language {
	base := filepath.Base(path)
	baseLower := strings.ToLower(base)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	for i := range l.Languages {
		lang := &l.Languages[i]
		for _, ft := range lang.FileTypes {
			ftLower := strings.ToLower(ft)
			if ftLower == ext || ftLower == baseLower {
				return lang
			}
			if strings.HasPrefix(ftLower, ".") && strings.TrimPrefix(ftLower, ".") == ext {
				return lang
			}
		}
	}
	return nil
}

func LoadLanguages() (Languages, error) {
	path, err := LanguagesPath()
	if err != nil {
		return Languages{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Languages{}, nil
		}
		return Languages{}, fmt.Errorf("read languages: %w", err)
	}

	var cfg Languages
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Languages{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, lang := range cfg.Languages {
		if lang.Name == "" {
			return Languages{}, fmt.Errorf("parse %s: language #%d has no name", path, i+1)
		}
	}
	return cfg, nil
}

func LanguagesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "languages.toml"), nil
}

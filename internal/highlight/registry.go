package highlight

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kobzarvs/slate/internal/config"
	"github.com/kobzarvs/slate/internal/logger"
)

// Registry maps language names to tokenizers and file types to languages.
// Unknown file types resolve to a chroma lexer matched by file name when
// chroma fallback is on, else to Plain.
type Registry struct {
	langs  map[string]Tokenizer
	types  map[string]string
	user   config.Languages
	strict bool

	chromaFallback bool
}

func NewRegistry() *Registry {
	return &Registry{
		langs: make(map[string]Tokenizer),
		types: make(map[string]string),
	}
}

// Register binds lang to t and maps each file type (extension with or
// without the dot, or an exact base name) to lang.
func (r *Registry) Register(lang string, t Tokenizer, fileTypes ...string) {
	r.langs[lang] = t
	for _, ft := range fileTypes {
		r.types[normalizeType(ft)] = lang
	}
}

// SetStrict makes lookups wrap tokenizers with Strict.
func (r *Registry) SetStrict(strict bool) { r.strict = strict }

// Lookup returns the tokenizer registered for lang.
func (r *Registry) Lookup(lang string) (Tokenizer, bool) {
	t, ok := r.langs[lang]
	if !ok {
		return nil, false
	}
	return r.wrap(t), true
}

// Language returns the language name bound to a file type, or "".
func (r *Registry) Language(fileType string) string {
	return r.types[normalizeType(fileType)]
}

// ForExtension resolves an extension such as ".py" or "py".
func (r *Registry) ForExtension(ext string) (string, Tokenizer) {
	lang := r.Language(ext)
	if t, ok := r.Lookup(lang); ok {
		return lang, t
	}
	return "", r.wrap(Plain)
}

// ForFile resolves a path through the languages.toml entries first, then
// by base name and extension, then by chroma's file name patterns.
func (r *Registry) ForFile(path string) (string, Tokenizer) {
	if l := r.user.Match(path); l != nil {
		if t, ok := r.Lookup(l.Name); ok {
			return l.Name, t
		}
	}
	base := filepath.Base(path)
	if lang := r.Language(base); lang != "" {
		if t, ok := r.Lookup(lang); ok {
			return lang, t
		}
	}
	if lang := r.Language(filepath.Ext(base)); lang != "" {
		return r.ForExtension(filepath.Ext(base))
	}
	if r.chromaFallback {
		if c, ok := ChromaForFile(base); ok {
			return c.Name(), r.wrap(c)
		}
	}
	return "", r.wrap(Plain)
}

// Languages lists registered language names in order.
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.langs))
	for name := range r.langs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) wrap(t Tokenizer) Tokenizer {
	if r.strict {
		return Strict(t)
	}
	return t
}

func normalizeType(ft string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ft), "."))
}

// NewTokenizer builds a tokenizer from its config form: "plain",
// "markdown", "regex:<name>", "treesitter:<name>" or "chroma:<lexer>".
func NewTokenizer(spec string) (Tokenizer, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(spec), ":")
	switch kind {
	case "", "plain":
		return Plain, nil
	case "markdown":
		return Markdown, nil
	case "regex":
		if p, ok := patternTokenizers[arg]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("unknown regex tokenizer %q", arg)
	case "treesitter":
		return NewTreeSitter(arg)
	case "chroma":
		return NewChroma(arg)
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", spec)
	}
}

type builtin struct {
	name      string
	tokenizer string
	fileTypes []string
}

var builtins = []builtin{
	{"python", "regex:python", []string{"py", "pyw"}},
	{"javascript", "regex:javascript", []string{"js", "ts", "jsx", "tsx", "mjs"}},
	{"c", "regex:c", []string{"c", "cpp", "cc", "cxx", "h", "hpp"}},
	{"java", "regex:java", []string{"java"}},
	{"markdown", "markdown", []string{"md", "markdown"}},
	{"go", "treesitter:go", []string{"go"}},
	{"bash", "treesitter:bash", []string{"sh", "bash", "zsh"}},
	{"rust", "chroma:rust", []string{"rs"}},
	{"ruby", "chroma:ruby", []string{"rb"}},
	{"php", "chroma:php", []string{"php"}},
	{"sql", "chroma:sql", []string{"sql"}},
	{"lua", "chroma:lua", []string{"lua"}},
	{"yaml", "chroma:yaml", []string{"yaml", "yml"}},
	{"json", "chroma:json", []string{"json"}},
	{"toml", "chroma:toml", []string{"toml"}},
	{"html", "chroma:html", []string{"html", "htm"}},
	{"css", "chroma:css", []string{"css"}},
	{"xml", "chroma:xml", []string{"xml"}},
	{"swift", "chroma:swift", []string{"swift"}},
	{"kotlin", "chroma:kotlin", []string{"kt", "kts"}},
	{"perl", "chroma:perl", []string{"pl", "pm"}},
	{"scala", "chroma:scala", []string{"scala"}},
	{"r", "chroma:r", []string{"r"}},
	{"erlang", "chroma:erlang", []string{"erl"}},
	{"elixir", "chroma:elixir", []string{"ex", "exs"}},
	{"powershell", "chroma:powershell", []string{"ps1"}},
	{"batch", "chroma:batchfile", []string{"bat", "cmd"}},
	{"ini", "chroma:ini", []string{"ini", "cfg"}},
	{"vbnet", "chroma:vb.net", []string{"vb"}},
	{"fsharp", "chroma:fsharp", []string{"fs"}},
	{"text", "plain", []string{"txt"}},
}

// DefaultRegistry returns a registry with the built-in language table and
// chroma fallback. A tokenizer that cannot be built is replaced by a chroma
// lexer for the same language, or left out.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.chromaFallback = true
	for _, b := range builtins {
		t, err := NewTokenizer(b.tokenizer)
		if err != nil {
			logger.Warn("builtin tokenizer unavailable", "language", b.name, "error", err)
			alt, altErr := NewChroma(b.name)
			if altErr != nil {
				continue
			}
			t = alt
		}
		r.Register(b.name, t, b.fileTypes...)
	}
	return r
}

// Apply registers the languages from languages.toml over the current table.
// Entries with an unusable tokenizer are skipped and reported together.
func (r *Registry) Apply(langs config.Languages) error {
	var bad []string
	for _, lang := range langs.Languages {
		t, err := NewTokenizer(lang.Tokenizer)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s: %v", lang.Name, err))
			continue
		}
		if lang.Tokenizer == "" {
			if existing, ok := r.langs[lang.Name]; ok {
				t = existing
			}
		}
		r.Register(lang.Name, t, lang.FileTypes...)
		r.user.Languages = append(r.user.Languages, lang)
	}
	if len(bad) > 0 {
		return fmt.Errorf("languages: %s", strings.Join(bad, "; "))
	}
	return nil
}

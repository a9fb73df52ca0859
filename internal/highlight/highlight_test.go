package highlight

import (
	"reflect"
	"testing"

	"github.com/kobzarvs/slate/internal/config"
)

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %+v, want %+v", got, want)
	}
}

func findToken(tokens []Token, cat Category) (Token, bool) {
	for _, tok := range tokens {
		if tok.Category == cat {
			return tok, true
		}
	}
	return Token{}, false
}

func TestPlain(t *testing.T) {
	assertTokens(t, Plain.Tokenize("héllo"), []Token{{0, 5, Default}})
	if got := Plain.Tokenize(""); got != nil {
		t.Fatalf("empty line tokens = %+v, want nil", got)
	}
}

func TestPythonTokens(t *testing.T) {
	assertTokens(t, Python.Tokenize("def f(x): return 42"), []Token{
		{0, 3, Keyword},
		{10, 16, Keyword},
		{17, 19, Number},
	})
}

func TestPythonOverlapKeepsBoth(t *testing.T) {
	got := Python.Tokenize(`x = "a # b"`)
	assertTokens(t, got, []Token{
		{4, 11, String},
		{7, 11, Comment},
	})
}

func TestPatternUsesRuneColumns(t *testing.T) {
	got := Python.Tokenize(`s = "héllo" # ü`)
	assertTokens(t, got, []Token{
		{4, 11, String},
		{12, 15, Comment},
	})
}

func TestJavaScriptTemplateString(t *testing.T) {
	got := JavaScript.Tokenize("const s = `x` // done")
	if tok, ok := findToken(got, String); !ok || tok.Start != 10 || tok.End != 13 {
		t.Fatalf("string token = %+v, %v", tok, ok)
	}
	if tok, ok := findToken(got, Comment); !ok || tok.Start != 14 {
		t.Fatalf("comment token = %+v, %v", tok, ok)
	}
	if tok, ok := findToken(got, Keyword); !ok || tok.Start != 0 || tok.End != 5 {
		t.Fatalf("keyword token = %+v, %v", tok, ok)
	}
}

func TestCAndJavaKeywords(t *testing.T) {
	if tok, ok := findToken(C.Tokenize("static int x = 1;"), Keyword); !ok || tok.Start != 0 || tok.End != 6 {
		t.Fatalf("c keyword = %+v, %v", tok, ok)
	}
	if tok, ok := findToken(Java.Tokenize("public class A {}"), Keyword); !ok || tok.End != 6 {
		t.Fatalf("java keyword = %+v, %v", tok, ok)
	}
}

func TestMarkdownHeader(t *testing.T) {
	got := Markdown.Tokenize("# Title")
	assertTokens(t, got, []Token{
		{0, 2, Default},
		{2, 7, HeaderText},
	})
	headers := 0
	for _, tok := range got {
		if tok.Category == HeaderText {
			headers++
		}
	}
	if headers != 1 {
		t.Fatalf("header tokens = %d, want 1", headers)
	}
}

func TestMarkdownLinks(t *testing.T) {
	assertTokens(t, Markdown.Tokenize("see [a](b) now"), []Token{
		{0, 4, Default},
		{4, 10, LinkText},
		{10, 14, Default},
	})
	assertTokens(t, Markdown.Tokenize("plain"), []Token{{0, 5, Default}})
	assertTokens(t, Markdown.Tokenize("######"), []Token{{0, 6, Default}})
}

func TestStrictShadowsKeywords(t *testing.T) {
	assertTokens(t, Strict(Python).Tokenize("# if 1"), []Token{{0, 6, Comment}})
	assertTokens(t, Strict(Python).Tokenize("if 1"), []Token{{0, 2, Keyword}, {3, 4, Number}})
}

func TestTreeSitterGo(t *testing.T) {
	ts, err := NewTreeSitter("go")
	if err != nil {
		t.Fatalf("NewTreeSitter error: %v", err)
	}
	got := ts.Tokenize("var x = 42 // answer")
	if tok, ok := findToken(got, Keyword); !ok || tok.Start != 0 || tok.End != 3 {
		t.Fatalf("keyword = %+v, %v in %+v", tok, ok, got)
	}
	if tok, ok := findToken(got, Number); !ok || tok.Start != 8 || tok.End != 10 {
		t.Fatalf("number = %+v, %v in %+v", tok, ok, got)
	}
	if tok, ok := findToken(got, Comment); !ok || tok.Start != 11 || tok.End != 20 {
		t.Fatalf("comment = %+v, %v in %+v", tok, ok, got)
	}

	// Columns are runes, not bytes.
	got = ts.Tokenize(`const s = "ü" // ok`)
	if tok, ok := findToken(got, String); !ok || tok.Start != 10 || tok.End != 13 {
		t.Fatalf("string = %+v, %v in %+v", tok, ok, got)
	}
	if tok, ok := findToken(got, Comment); !ok || tok.Start != 14 {
		t.Fatalf("comment = %+v, %v in %+v", tok, ok, got)
	}
}

func TestTreeSitterUnknown(t *testing.T) {
	if _, err := NewTreeSitter("cobol"); err == nil {
		t.Fatalf("NewTreeSitter(cobol) error = nil")
	}
}

func TestChromaRust(t *testing.T) {
	c, err := NewChroma("rust")
	if err != nil {
		t.Fatalf("NewChroma error: %v", err)
	}
	line := "fn main() { // hi"
	got := c.Tokenize(line)
	if tok, ok := findToken(got, Keyword); !ok || tok.Start != 0 || tok.End != 2 {
		t.Fatalf("keyword = %+v, %v in %+v", tok, ok, got)
	}
	if tok, ok := findToken(got, Comment); !ok || tok.Start != 12 || tok.End != 17 {
		t.Fatalf("comment = %+v, %v in %+v", tok, ok, got)
	}
	for _, tok := range got {
		if tok.End > 17 {
			t.Fatalf("token past end of line: %+v", tok)
		}
	}
	if _, err := NewChroma("no-such-lexer-xyz"); err == nil {
		t.Fatalf("NewChroma error = nil for unknown lexer")
	}
}

func TestRegistryDefault(t *testing.T) {
	r := DefaultRegistry()
	if lang, tok := r.ForExtension(".py"); lang != "python" || tok != Tokenizer(Python) {
		t.Fatalf("ForExtension(.py) = %q, %T", lang, tok)
	}
	if lang, _ := r.ForExtension("TSX"); lang != "javascript" {
		t.Fatalf("ForExtension(TSX) = %q, want javascript", lang)
	}
	if lang, _ := r.ForFile("docs/README.md"); lang != "markdown" {
		t.Fatalf("ForFile(README.md) = %q, want markdown", lang)
	}
	lang, tok := r.ForExtension(".zzz")
	if lang != "" {
		t.Fatalf("ForExtension(.zzz) = %q, want fallback", lang)
	}
	assertTokens(t, tok.Tokenize("abc"), []Token{{0, 3, Default}})
}

func TestRegistryStrict(t *testing.T) {
	r := DefaultRegistry()
	r.SetStrict(true)
	_, tok := r.ForExtension("py")
	assertTokens(t, tok.Tokenize("# if"), []Token{{0, 4, Comment}})
}

func TestRegistryApply(t *testing.T) {
	r := NewRegistry()
	err := r.Apply(config.Languages{Languages: []config.Language{
		{Name: "notes", FileTypes: []string{"note"}, Tokenizer: "markdown"},
		{Name: "script", FileTypes: []string{".pyx", "SConstruct"}, Tokenizer: "regex:python"},
		{Name: "broken", FileTypes: []string{"brk"}, Tokenizer: "regex:cobol"},
	}})
	if err == nil {
		t.Fatalf("Apply error = nil, want error for broken entry")
	}
	if lang, _ := r.ForExtension("note"); lang != "notes" {
		t.Fatalf("ForExtension(note) = %q, want notes", lang)
	}
	if lang, _ := r.ForFile("SConstruct"); lang != "script" {
		t.Fatalf("ForFile(SConstruct) = %q, want script", lang)
	}
	if lang, _ := r.ForExtension("brk"); lang != "" {
		t.Fatalf("broken language registered as %q", lang)
	}
	if got := r.Languages(); !reflect.DeepEqual(got, []string{"notes", "script"}) {
		t.Fatalf("Languages = %v", got)
	}
}

func TestRegistryChromaFallback(t *testing.T) {
	lang, tok := DefaultRegistry().ForFile("build/Dockerfile")
	if lang != "Docker" {
		t.Fatalf("ForFile(Dockerfile) = %q, want Docker", lang)
	}
	if _, ok := tok.(*ChromaTokenizer); !ok {
		t.Fatalf("ForFile(Dockerfile) tokenizer = %T", tok)
	}
	if lang, _ := NewRegistry().ForFile("build/Dockerfile"); lang != "" {
		t.Fatalf("registry without chroma fallback resolved %q", lang)
	}
	if _, ok := ChromaForFile("no-lexer-for-this.zzz"); ok {
		t.Fatalf("ChromaForFile matched an unknown name")
	}
}

func TestRegistryApplyOverridesBuiltin(t *testing.T) {
	r := DefaultRegistry()
	err := r.Apply(config.Languages{Languages: []config.Language{
		{Name: "notes", FileTypes: []string{"README.md"}, Tokenizer: "plain"},
	}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if lang, _ := r.ForFile("docs/readme.MD"); lang != "notes" {
		t.Fatalf("ForFile(readme.MD) = %q, want notes", lang)
	}
	if lang, _ := r.ForFile("docs/guide.md"); lang != "markdown" {
		t.Fatalf("ForFile(guide.md) = %q, want markdown", lang)
	}
}

func TestNewTokenizerSpecs(t *testing.T) {
	for _, spec := range []string{"plain", "", "markdown", "regex:c", "treesitter:bash", "chroma:lua"} {
		if _, err := NewTokenizer(spec); err != nil {
			t.Fatalf("NewTokenizer(%q) error: %v", spec, err)
		}
	}
	if _, err := NewTokenizer("wat:x"); err == nil {
		t.Fatalf("NewTokenizer(wat:x) error = nil")
	}
}

func TestCategoryString(t *testing.T) {
	if HeaderText.String() != "header" || SelectionOverlay.String() != "selection" {
		t.Fatalf("unexpected category names")
	}
}

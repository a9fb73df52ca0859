package highlight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaTokenizer runs a chroma lexer over each line and keeps the token
// types that map onto a category.
type ChromaTokenizer struct {
	lexer chroma.Lexer
}

// NewChroma looks a lexer up by name or alias.
func NewChroma(name string) (*ChromaTokenizer, error) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, fmt.Errorf("chroma: no lexer for %q", name)
	}
	return &ChromaTokenizer{lexer: chroma.Coalesce(lexer)}, nil
}

// ChromaForFile picks a lexer from a file name. It reports false when no
// lexer claims the name.
func ChromaForFile(filename string) (*ChromaTokenizer, bool) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil, false
	}
	return &ChromaTokenizer{lexer: chroma.Coalesce(lexer)}, true
}

func (c *ChromaTokenizer) Name() string {
	if cfg := c.lexer.Config(); cfg != nil {
		return cfg.Name
	}
	return ""
}

func (c *ChromaTokenizer) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	iterator, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return Plain.Tokenize(line)
	}
	n := utf8.RuneCountInString(line)
	col := 0
	var tokens []Token
	for _, tok := range iterator.Tokens() {
		width := utf8.RuneCountInString(tok.Value)
		start := col
		col += width
		if start >= n {
			break
		}
		cat, ok := chromaCategory(tok.Type)
		if !ok || strings.TrimSpace(tok.Value) == "" {
			continue
		}
		tokens = append(tokens, Token{Start: start, End: min(col, n), Category: cat})
	}
	return tokens
}

func chromaCategory(t chroma.TokenType) (Category, bool) {
	switch {
	case t.InCategory(chroma.Comment):
		return Comment, true
	case t.InCategory(chroma.Keyword):
		return Keyword, true
	case t.InSubCategory(chroma.LiteralString):
		return String, true
	case t.InSubCategory(chroma.LiteralNumber):
		return Number, true
	default:
		return Default, false
	}
}

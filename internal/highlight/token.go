package highlight

import (
	"sort"
	"unicode/utf8"
)

// Category is the semantic style of a span. Backends map categories to
// concrete colors.
type Category int

const (
	Default Category = iota
	Keyword
	String
	Comment
	Number
	HeaderText
	LinkText
	SelectionOverlay
)

func (c Category) String() string {
	switch c {
	case Default:
		return "default"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case HeaderText:
		return "header"
	case LinkText:
		return "link"
	case SelectionOverlay:
		return "selection"
	default:
		return "unknown"
	}
}

// Token labels the rune columns [Start, End) of a line.
type Token struct {
	Start    int
	End      int
	Category Category
}

// Tokenizer turns one line into tokens ordered by Start.
type Tokenizer interface {
	Tokenize(line string) []Token
}

type TokenizerFunc func(line string) []Token

func (f TokenizerFunc) Tokenize(line string) []Token { return f(line) }

// Plain styles the whole line as Default.
var Plain Tokenizer = TokenizerFunc(func(line string) []Token {
	n := utf8.RuneCountInString(line)
	if n == 0 {
		return nil
	}
	return []Token{{Start: 0, End: n, Category: Default}}
})

func sortTokens(tokens []Token) {
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })
}

// runeCols converts byte offsets of line into rune columns.
type runeCols struct {
	line string
}

func (r runeCols) at(off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(r.line) {
		return utf8.RuneCountInString(r.line)
	}
	return utf8.RuneCountInString(r.line[:off])
}

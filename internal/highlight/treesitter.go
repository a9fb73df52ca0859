package highlight

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/golang"
)

const treeSitterCacheSize = 2000

// TreeSitterTokenizer parses each line on its own with a tree-sitter
// grammar and maps query captures named comment, string, keyword and number
// onto categories.
type TreeSitterTokenizer struct {
	parser *sitter.Parser
	query  *sitter.Query

	mu    sync.Mutex
	cache map[string][]Token
}

func treeSitterLanguage(name string) (*sitter.Language, string) {
	switch name {
	case "go":
		return golang.GetLanguage(), goHighlightQuery
	case "bash":
		return bash.GetLanguage(), bashHighlightQuery
	default:
		return nil, ""
	}
}

func NewTreeSitter(name string) (*TreeSitterTokenizer, error) {
	lang, src := treeSitterLanguage(name)
	if lang == nil {
		return nil, fmt.Errorf("tree-sitter: unsupported language %q", name)
	}
	query, err := sitter.NewQuery([]byte(src), lang)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter: %s query: %w", name, err)
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &TreeSitterTokenizer{
		parser: p,
		query:  query,
		cache:  make(map[string][]Token),
	}, nil
}

func (t *TreeSitterTokenizer) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if tokens, ok := t.cache[line]; ok {
		return tokens
	}
	tokens := t.tokenize(line)
	if len(t.cache) >= treeSitterCacheSize {
		t.cache = make(map[string][]Token)
	}
	t.cache[line] = tokens
	return tokens
}

func (t *TreeSitterTokenizer) tokenize(line string) []Token {
	source := []byte(line)
	tree, err := t.parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(t.query, tree.RootNode())

	cols := runeCols{line: line}
	var tokens []Token
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, source)
		if match == nil {
			continue
		}
		for _, capture := range match.Captures {
			cat, ok := captureCategory(t.query.CaptureNameForId(capture.Index))
			if !ok {
				continue
			}
			start := cols.at(int(capture.Node.StartByte()))
			end := cols.at(int(capture.Node.EndByte()))
			if end <= start {
				continue
			}
			tokens = append(tokens, Token{Start: start, End: end, Category: cat})
		}
	}
	sortTokens(tokens)
	return tokens
}

func captureCategory(name string) (Category, bool) {
	switch name {
	case "comment":
		return Comment, true
	case "string":
		return String, true
	case "keyword":
		return Keyword, true
	case "number":
		return Number, true
	default:
		return Default, false
	}
}

const goHighlightQuery = `
((comment) @comment)
((interpreted_string_literal) @string)
((raw_string_literal) @string)
((rune_literal) @string)
((int_literal) @number)
((float_literal) @number)
((imaginary_literal) @number)
[
  "break" "case" "chan" "const" "continue" "default" "defer" "else"
  "fallthrough" "for" "func" "go" "goto" "if" "import" "interface"
  "map" "package" "range" "return" "select" "struct" "switch"
  "type" "var"
] @keyword
`

const bashHighlightQuery = `
((comment) @comment)
((string) @string)
((raw_string) @string)
((number) @number)
[
  "if" "then" "else" "elif" "fi" "case" "esac" "for" "while" "until"
  "do" "done" "in" "function" "select"
  "local" "export" "readonly" "declare" "typeset" "unset"
] @keyword
`

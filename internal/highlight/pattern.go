package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// PatternTokenizer collects matches per category in the order comment,
// string, keyword, number and sorts them by start. Overlapping matches are
// kept; the one sorted later wins where they meet.
type PatternTokenizer struct {
	Comment *regexp.Regexp
	String  *regexp.Regexp
	Keyword *regexp.Regexp
	Number  *regexp.Regexp
}

func (p *PatternTokenizer) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	cols := runeCols{line: line}
	var tokens []Token
	collect := func(re *regexp.Regexp, cat Category) {
		if re == nil {
			return
		}
		for _, loc := range re.FindAllStringIndex(line, -1) {
			if loc[0] == loc[1] {
				continue
			}
			tokens = append(tokens, Token{Start: cols.at(loc[0]), End: cols.at(loc[1]), Category: cat})
		}
	}
	collect(p.Comment, Comment)
	collect(p.String, String)
	collect(p.Keyword, Keyword)
	collect(p.Number, Number)
	sortTokens(tokens)
	return tokens
}

func keywordPattern(words ...string) *regexp.Regexp {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return regexp.MustCompile(`\b(` + strings.Join(sorted, "|") + `)\b`)
}

var numberPattern = regexp.MustCompile(`\b\d+(\.\d+)?\b`)

var (
	Python = &PatternTokenizer{
		Comment: regexp.MustCompile(`#.*`),
		String:  regexp.MustCompile(`('[^']*'|"[^"]*")`),
		Keyword: keywordPattern(
			"False", "None", "True", "and", "as", "assert", "async", "await",
			"break", "class", "continue", "def", "del", "elif", "else", "except",
			"finally", "for", "from", "global", "if", "import", "in", "is", "lambda",
			"nonlocal", "not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
		),
		Number: numberPattern,
	}

	JavaScript = &PatternTokenizer{
		Comment: regexp.MustCompile(`(//.*|/\*.*?\*/)`),
		String:  regexp.MustCompile("(\".*?\"|'.*?'|`.*?`)"),
		Keyword: keywordPattern(
			"break", "case", "catch", "class", "const", "continue", "debugger",
			"default", "delete", "do", "else", "export", "extends", "finally", "for",
			"function", "if", "import", "in", "instanceof", "let", "new", "return",
			"super", "switch", "this", "throw", "try", "typeof", "var", "void",
			"while", "with", "yield",
		),
		Number: numberPattern,
	}

	C = &PatternTokenizer{
		Comment: regexp.MustCompile(`(//.*|/\*.*?\*/)`),
		String:  regexp.MustCompile(`(".*?"|'.*?')`),
		Keyword: keywordPattern(
			"auto", "break", "case", "char", "const", "continue", "default", "do", "double",
			"else", "enum", "extern", "float", "for", "goto", "if", "inline", "int", "long",
			"register", "restrict", "return", "short", "signed", "sizeof", "static", "struct",
			"switch", "typedef", "union", "unsigned", "void", "volatile", "while",
		),
		Number: numberPattern,
	}

	Java = &PatternTokenizer{
		Comment: regexp.MustCompile(`(//.*|/\*.*?\*/)`),
		String:  regexp.MustCompile(`(".*?"|'.*?')`),
		Keyword: keywordPattern(
			"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class",
			"const", "continue", "default", "do", "double", "else", "enum", "extends", "final",
			"finally", "float", "for", "goto", "if", "implements", "import", "instanceof", "int",
			"interface", "long", "native", "new", "package", "private", "protected", "public",
			"return", "short", "static", "strictfp", "super", "switch", "synchronized", "this",
			"throw", "throws", "transient", "try", "void", "volatile", "while",
		),
		Number: numberPattern,
	}
)

var patternTokenizers = map[string]*PatternTokenizer{
	"python":     Python,
	"javascript": JavaScript,
	"c":          C,
	"java":       Java,
}

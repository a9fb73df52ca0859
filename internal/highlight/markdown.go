package highlight

import "regexp"

var (
	mdHeader = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	mdLink   = regexp.MustCompile(`\[.*?\]\(.*?\)`)
)

// Markdown styles a heading line as a single HeaderText token after its
// marker. Other lines alternate Default text and LinkText spans.
var Markdown Tokenizer = TokenizerFunc(tokenizeMarkdown)

func tokenizeMarkdown(line string) []Token {
	if line == "" {
		return nil
	}
	cols := runeCols{line: line}
	if m := mdHeader.FindStringSubmatchIndex(line); m != nil {
		textStart := cols.at(m[4])
		end := cols.at(len(line))
		var tokens []Token
		if textStart > 0 {
			tokens = append(tokens, Token{Start: 0, End: textStart, Category: Default})
		}
		if end > textStart {
			tokens = append(tokens, Token{Start: textStart, End: end, Category: HeaderText})
		}
		return tokens
	}

	var tokens []Token
	last := 0
	for _, loc := range mdLink.FindAllStringIndex(line, -1) {
		start, end := cols.at(loc[0]), cols.at(loc[1])
		if start > last {
			tokens = append(tokens, Token{Start: last, End: start, Category: Default})
		}
		tokens = append(tokens, Token{Start: start, End: end, Category: LinkText})
		last = end
	}
	if n := cols.at(len(line)); last < n {
		tokens = append(tokens, Token{Start: last, End: n, Category: Default})
	}
	return tokens
}

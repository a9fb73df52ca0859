package highlight

// Strict drops Keyword and Number tokens that overlap a Comment or String
// token, so comments and strings shadow what is matched inside them.
func Strict(t Tokenizer) Tokenizer {
	return TokenizerFunc(func(line string) []Token {
		tokens := t.Tokenize(line)
		var shadows []Token
		for _, tok := range tokens {
			if tok.Category == Comment || tok.Category == String {
				shadows = append(shadows, tok)
			}
		}
		if len(shadows) == 0 {
			return tokens
		}
		out := make([]Token, 0, len(tokens))
		for _, tok := range tokens {
			if (tok.Category == Keyword || tok.Category == Number) && overlapsAny(tok, shadows) {
				continue
			}
			out = append(out, tok)
		}
		return out
	})
}

func overlapsAny(tok Token, spans []Token) bool {
	for _, s := range spans {
		if tok.Start < s.End && s.Start < tok.End {
			return true
		}
	}
	return false
}

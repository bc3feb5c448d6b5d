package tbrowser

import "strings"

type TokenKind int

const (
	TextToken TokenKind = iota
	TagToken
)

func (k TokenKind) String() string {
	if k == TagToken {
		return "tag"
	}

	return "text"
}

// Token is a raw slice of the input: a tag including its angle brackets, or
// the text between two tags.
type Token struct {
	Kind TokenKind
	Data string
}

func (t Token) IsClosingTag() bool {
	return t.Kind == TagToken && strings.HasPrefix(t.Data, "</")
}

// Tokenize splits markup into tag and text tokens in a single pass. Text is
// emitted untrimmed, so whitespace between tags survives as its own token.
// Anything after the last '>' is dropped.
func Tokenize(markup string) []Token {
	tokens := make([]Token, 0)
	start := 0

	// '<' and '>' never occur inside a multi-byte UTF-8 sequence, so
	// scanning bytes keeps the input intact.
	for i := 0; i < len(markup); i++ {
		switch markup[i] {
		case '<':
			if i > start {
				tokens = append(tokens, Token{Kind: TextToken, Data: markup[start:i]})
			}

			start = i
		case '>':
			data := markup[start : i+1]
			tokens = append(tokens, Token{Kind: kindOf(data), Data: data})
			start = i + 1
		}
	}

	return tokens
}

// kindOf reports a stray '>' in running text as text.
func kindOf(data string) TokenKind {
	if data[0] == '<' {
		return TagToken
	}

	return TextToken
}

package syntax

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// Token is a lexical token of the source language.
type Token struct {
	Type  js.TokenType
	Value string
}

// Tokens lexes the text of n, skipping whitespace, line terminators and comments.
func Tokens(f *File, n *Node) []Token {
	if n == nil {
		return nil
	}
	return lex(f.Text(n))
}

func lex(text string) []Token {
	var tokens []Token
	lexer := js.NewLexer(parse.NewInputString(text))
	for {
		tt, data := lexer.Next()
		if tt == js.ErrorToken {
			break
		}
		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}
		tokens = append(tokens, Token{Type: tt, Value: string(data)})
	}
	return tokens
}

// Fingerprint identifies a node by its token sequence. Two nodes have equal
// fingerprints when their tokens match in kind and value; positions,
// whitespace and comments are ignored.
type Fingerprint string

// FingerprintOf computes the fingerprint of n.
func FingerprintOf(f *File, n *Node) Fingerprint {
	return fingerprint(Tokens(f, n))
}

func fingerprint(tokens []Token) Fingerprint {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(strconv.Itoa(int(t.Type)))
		sb.WriteByte(':')
		sb.WriteString(strconv.Quote(t.Value))
		sb.WriteByte(';')
	}
	return Fingerprint(sb.String())
}

package parser

import (
	"fmt"
	"sync"

	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/scanner"
	"github.com/npillmayer/tlox/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal strings.
var literals = []string{
	"(", ")", "{", "}", ",", ".", ";",
	"-", "+", "*", "/",
	"!", "!=", "=", "==", "<", "<=", ">", ">=",
	"+=", "-=", "*=", "/=",
}

// The keyword tokens.
var keywords = []string{
	"and", "break", "class", "continue", "else", "false", "for", "fun", "if",
	"nil", "or", "print", "return", "static", "super", "this", "true", "var",
	"while",
}

var tokenIds map[string]int            // token names to their int ids
var tokenNames map[tlox.TokType]string // reverse of tokenIds

var initOnce sync.Once
var lexer *lexmach.LMAdapter
var lexerErr error

func initTokens() {
	tokenIds = make(map[string]int)
	tokenIds["ID"] = int(scanner.Ident)
	tokenIds["NUM"] = int(scanner.Number)
	tokenIds["STRING"] = int(scanner.String)
	next := int(scanner.FirstUserType)
	for _, lit := range append(append([]string{}, literals...), keywords...) {
		tokenIds[lit] = next
		next++
	}
	tokenNames = make(map[tlox.TokType]string, len(tokenIds)+1)
	for name, id := range tokenIds {
		tokenNames[tlox.TokType(id)] = name
	}
	tokenNames[scanner.EOF] = "end of input"
}

// Lexer returns the lexmachine adapter for the language. The DFA is compiled
// on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	initOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), lexmach.Skip)
			lexer.Add([]byte(`\"[^"]*\"`), lexmach.MakeToken("STRING", tokenIds["STRING"]))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ID", tokenIds["ID"]))
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

// Token returns the token type for a literal or keyword, e.g. "(" or "while".
func Token(name string) tlox.TokType {
	Lexer()
	id, ok := tokenIds[name]
	if !ok {
		panic(fmt.Sprintf("unknown token %q", name))
	}
	return tlox.TokType(id)
}

// TokenName is a tlox.TokTypeStringer for the language's tokens.
func TokenName(t tlox.TokType) string {
	Lexer()
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", t)
}

var _ tlox.TokTypeStringer = TokenName

// Tokenize scans the complete input. Scanner errors are collected; the
// returned tokens always end with an EOF token.
func Tokenize(input string) ([]tlox.Token, tlox.ErrorList) {
	lm, err := Lexer()
	if err != nil {
		return nil, tlox.ErrorList{err}
	}
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, tlox.ErrorList{err}
	}
	var errs tlox.ErrorList
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	var toks []tlox.Token
	for {
		tok := sc.NextToken()
		toks = append(toks, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	return toks, errs
}

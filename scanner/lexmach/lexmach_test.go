package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/scanner"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"nil nilly",
	`x="mystring" // commented `,
	"1,22,333",
	"a ? b",
}

var tokenCounts = []int{1, 3, 2, 3, 5, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(testInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) { t.Logf("expected error: %v", e) })
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestKeywordBeforeIdent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(testInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("nil nilly")
	if tok := sc.NextToken(); tok.TokType() != tlox.TokType(tokenIds["nil"]) {
		t.Errorf("expected keyword 'nil', got %v", tok)
	}
	if tok := sc.NextToken(); tok.TokType() != scanner.Ident || tok.Span() != (tlox.Span{4, 9}) {
		t.Errorf("expected identifier 'nilly' at (4…9), got %v", tok)
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.scanner")
	defer teardown()
	//
	initTokens()
	LM, _ := NewLMAdapter(testInit, literals, keywords, tokenIds)
	sc, _ := LM.Scanner("a ? b")
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 scanner error, got %d", len(errs))
	}
	if e, ok := errs[0].(scanner.Error); !ok || e.Span.From() != 2 {
		t.Errorf("expected error at position 2, got %v", errs[0])
	}
}

func testInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
	lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"(",
		")",
		",",
		"=",
		"+",
		"-",
	}
	keywords = []string{
		"nil",
		"var",
	}
	tokens = []string{
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["ID"] = int(scanner.Ident)
	tokenIds["NUM"] = int(scanner.Number)
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[3:] {
		tokenIds[tok] = i + int(scanner.FirstUserType)
	}
}

package format

import (
	"strconv"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/lexer"
)

// Tokens converts every token of stream to a Node. Identifier and string
// payloads are resolved through table.
func Tokens(stream lexer.TokenStream, table *intern.Table) []*Node {
	tokens := stream.Tokens()
	nodes := make([]*Node, len(tokens))
	for i, tok := range tokens {
		nodes[i] = &Node{
			Kind:  tok.Kind.String(),
			Value: tokenValue(tok, table),
			Span:  tok.Span.String(),
		}
	}
	return nodes
}

func tokenValue(tok lexer.Token, table *intern.Table) string {
	switch tok.Kind {
	case lexer.TokenKeyword:
		return tok.Keyword.Lexeme()
	case lexer.TokenIdentifier:
		return resolve(table, tok.Str)
	case lexer.TokenOperator:
		return tok.Operator.Lexeme()
	case lexer.TokenPunctuator:
		return tok.Punctuator.Lexeme()
	case lexer.TokenInteger:
		return strconv.FormatInt(tok.Int, 10)
	case lexer.TokenFloat:
		return strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case lexer.TokenBool:
		return strconv.FormatBool(tok.Bool)
	case lexer.TokenString:
		return strconv.Quote(resolve(table, tok.Str))
	}
	return ""
}

func resolve(table *intern.Table, id intern.StringID) string {
	if table != nil {
		if s, ok := table.TryResolve(id); ok {
			return s
		}
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

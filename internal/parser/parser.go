// Package parser implements the Stellar parser: recursive descent for
// statements and precedence climbing for expressions. It stops at the first
// error; there is no recovery.
package parser

import (
	"github.com/stellar-lang/stellar/internal/ast"
	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/position"
)

// Parser consumes a token stream through a saturating cursor.
type Parser struct {
	cursor *lexer.TokenStreamCursor
}

// Parse parses a complete token stream into statements in source order.
// A stream that does not end with EndOfFile is rejected with
// InvalidTokenStream.
func Parse(stream lexer.TokenStream) ([]ast.Statement, error) {
	cursor, ok := stream.Cursor()
	if !ok {
		got, _ := stream.Last()
		if stream.Len() == 0 {
			got = lexer.NewEndOfFile(position.StartOfFile())
		}
		return nil, &ParseError{Kind: InvalidTokenStream, Got: got}
	}

	p := &Parser{cursor: cursor}
	return p.parseProgram()
}

func (p *Parser) parseProgram() ([]ast.Statement, error) {
	var statements []ast.Statement

	for {
		p.skipEndOfLines()
		if p.peek().IsEOF() {
			return statements, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// peek returns the next token without consuming it
func (p *Parser) peek() lexer.Token {
	return p.cursor.Peek()
}

// next consumes the next token
func (p *Parser) next() lexer.Token {
	return p.cursor.Next()
}

func (p *Parser) skipEndOfLines() {
	for p.peek().IsEOL() {
		p.next()
	}
}

// expectPunctuator consumes the next token, which must be the punctuator
// expected.
func (p *Parser) expectPunctuator(expected lexer.Punctuator) (lexer.Token, error) {
	tok := p.peek()
	if !tok.IsPunctuator(expected) {
		return tok, expectedPunctuation(expected, tok)
	}
	return p.next(), nil
}

func (p *Parser) expectOperator(expected lexer.Operator) (lexer.Token, error) {
	tok := p.peek()
	if !tok.IsOperator(expected) {
		return tok, expectedOperator(expected, tok)
	}
	return p.next(), nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.peek()
	if tok.Kind != lexer.TokenIdentifier {
		return nil, expectedIdentifier(tok)
	}
	p.next()
	return &ast.Identifier{Span: tok.Span, Name: tok.Str}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.peek()
	if tok.Kind == lexer.TokenKeyword {
		switch tok.Keyword {
		case lexer.KeywordPlay:
			return p.parsePlayStatement()
		case lexer.KeywordWait:
			return p.parseWaitStatement()
		case lexer.KeywordSequence:
			return p.parseSequenceStatement()
		case lexer.KeywordWith:
			return p.parseWithStatement()
		case lexer.KeywordLet:
			return p.parseLetStatement()
		}
	}

	expr, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

func (p *Parser) parsePlayStatement() (ast.Statement, error) {
	start := p.next().Span.Start // 'play'

	value, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	return &ast.PlayStatement{
		Span:  position.NewSpan(start, value.GetSpan().End),
		Value: value,
	}, nil
}

func (p *Parser) parseWaitStatement() (ast.Statement, error) {
	start := p.next().Span.Start // 'wait'

	value, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	return &ast.WaitStatement{
		Span:  position.NewSpan(start, value.GetSpan().End),
		Value: value,
	}, nil
}

func (p *Parser) parseSequenceStatement() (ast.Statement, error) {
	start := p.next().Span.Start // 'sequence'

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.SequenceStatement{
		Span:  position.NewSpan(start, block.Span.End),
		Name:  name,
		Block: block,
	}, nil
}

// parseWithStatement parses `with name: expr, ... { ... }`. A comma
// directly followed by the opening brace ends the property list.
func (p *Parser) parseWithStatement() (ast.Statement, error) {
	start := p.next().Span.Start // 'with'

	var properties []*ast.Property
	for {
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}
		properties = append(properties, prop)

		if !p.peek().IsPunctuator(lexer.PunctuatorComma) {
			break
		}
		p.next() // ','
		p.skipEndOfLines()

		if p.peek().IsPunctuator(lexer.PunctuatorLeftBrace) {
			break
		}
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WithStatement{
		Span:       position.NewSpan(start, block.Span.End),
		Properties: properties,
		Block:      block,
	}, nil
}

func (p *Parser) parseProperty() (*ast.Property, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuator(lexer.PunctuatorColon); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	return &ast.Property{Name: name, Value: value}, nil
}

func (p *Parser) parseLetStatement() (ast.Statement, error) {
	start := p.next().Span.Start // 'let'

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipEndOfLines()
	if _, err := p.expectOperator(lexer.OperatorAssign); err != nil {
		return nil, err
	}
	p.skipEndOfLines()

	value, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	return &ast.LetStatement{
		Span:  position.NewSpan(start, value.GetSpan().End),
		Name:  name,
		Value: value,
	}, nil
}

// parseBlock parses `{ statements }`. Reaching EndOfFile before the closing
// brace reports the missing brace.
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expectPunctuator(lexer.PunctuatorLeftBrace)
	if err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for {
		p.skipEndOfLines()

		tok := p.peek()
		if tok.IsPunctuator(lexer.PunctuatorRightBrace) {
			break
		}
		if tok.IsEOF() {
			return nil, expectedPunctuation(lexer.PunctuatorRightBrace, tok)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	closing := p.next() // '}'

	return &ast.Block{
		Span:       position.NewSpan(open.Span.Start, closing.Span.End),
		Statements: statements,
	}, nil
}

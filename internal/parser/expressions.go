package parser

import (
	"github.com/stellar-lang/stellar/internal/ast"
	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/position"
)

// binaryOperators maps operator tokens to infix operator kinds. Every
// operator token has an infix form.
var binaryOperators = map[lexer.Operator]ast.BinaryOperatorKind{
	lexer.OperatorPlus:    ast.BinaryAdd,
	lexer.OperatorMinus:   ast.BinarySubtract,
	lexer.OperatorStar:    ast.BinaryMultiply,
	lexer.OperatorSlash:   ast.BinaryDivide,
	lexer.OperatorAssign:  ast.BinaryAssign,
	lexer.OperatorPlusEq:  ast.BinaryAddAssign,
	lexer.OperatorMinusEq: ast.BinarySubtractAssign,
	lexer.OperatorEq:      ast.BinaryEqual,
}

var prefixOperators = map[lexer.Operator]ast.PrefixOperatorKind{
	lexer.OperatorMinus: ast.PrefixNegate,
}

// binaryOperator returns the infix operator tok denotes, if any.
func binaryOperator(tok lexer.Token) (*ast.BinaryOperator, bool) {
	if tok.Kind != lexer.TokenOperator {
		return nil, false
	}
	kind, ok := binaryOperators[tok.Operator]
	if !ok {
		return nil, false
	}
	return &ast.BinaryOperator{Span: tok.Span, Kind: kind}, true
}

func prefixOperator(tok lexer.Token) (*ast.PrefixOperator, bool) {
	if tok.Kind != lexer.TokenOperator {
		return nil, false
	}
	kind, ok := prefixOperators[tok.Operator]
	if !ok {
		return nil, false
	}
	return &ast.PrefixOperator{Span: tok.Span, Kind: kind}, true
}

// parseExpression parses a prefix expression followed by every binary
// operator binding at least as tightly as precedence. The right operand is
// parsed one level higher, which makes all operators left associative.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	left, err := p.parsePrefixExpression()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := binaryOperator(p.peek())
		if !ok {
			break
		}

		operatorPrecedence := operator.Kind.Precedence()
		if operatorPrecedence < precedence {
			break
		}

		p.next() // operator
		p.skipEndOfLines()

		right, err := p.parseExpression(operatorPrecedence + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpression{
			Span:     position.NewSpan(left.GetSpan().Start, right.GetSpan().End),
			Operator: operator,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.TokenInteger:
		p.next()
		return &ast.IntegerLiteral{Span: tok.Span, Value: tok.Int}, nil
	case lexer.TokenFloat:
		p.next()
		return &ast.FloatLiteral{Span: tok.Span, Value: tok.Float}, nil
	case lexer.TokenBool:
		p.next()
		return &ast.BoolLiteral{Span: tok.Span, Value: tok.Bool}, nil
	case lexer.TokenString:
		p.next()
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Str}, nil
	case lexer.TokenIdentifier:
		p.next()
		return &ast.Identifier{Span: tok.Span, Name: tok.Str}, nil
	case lexer.TokenPunctuator:
		switch tok.Punctuator {
		case lexer.PunctuatorLeftParen:
			return p.parseGroupedExpression()
		case lexer.PunctuatorLeftBracket:
			return p.parseListExpression()
		}
	case lexer.TokenKeyword:
		if tok.Keyword == lexer.KeywordLoadSample {
			return p.parseLoadSampleExpression()
		}
	case lexer.TokenOperator:
		if operator, ok := prefixOperator(tok); ok {
			return p.parsePrefixOperation(operator)
		}
	}

	return nil, expectedExpression(tok)
}

func (p *Parser) parsePrefixOperation(operator *ast.PrefixOperator) (ast.Expression, error) {
	p.next() // operator

	operand, err := p.parseExpression(ast.PrecedencePrefix)
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpression{
		Span:     position.NewSpan(operator.Span.Start, operand.GetSpan().End),
		Operator: operator,
		Operand:  operand,
	}, nil
}

// parseGroupedExpression parses `( expr )`. Parentheses only group; the
// result is the inner expression.
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.next() // '('

	expr, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuator(lexer.PunctuatorRightParen); err != nil {
		return nil, err
	}

	return expr, nil
}

// parseListExpression parses `[a, b, ...]`. Line breaks may appear around
// elements and a trailing comma is allowed.
func (p *Parser) parseListExpression() (ast.Expression, error) {
	open := p.next() // '['

	var elements []ast.Expression
	for {
		p.skipEndOfLines()
		if p.peek().IsPunctuator(lexer.PunctuatorRightBracket) {
			break
		}

		elem, err := p.parseExpression(ast.PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)

		p.skipEndOfLines()
		if !p.peek().IsPunctuator(lexer.PunctuatorComma) {
			break
		}
		p.next() // ','
	}

	closing, err := p.expectPunctuator(lexer.PunctuatorRightBracket)
	if err != nil {
		return nil, err
	}

	return &ast.ListExpression{
		Span:     position.NewSpan(open.Span.Start, closing.Span.End),
		Elements: elements,
	}, nil
}

// parseLoadSampleExpression parses `load_sample expr`. The operand is a
// full expression, so `load_sample a + b` loads `a + b`.
func (p *Parser) parseLoadSampleExpression() (ast.Expression, error) {
	start := p.next().Span.Start // 'load_sample'

	sample, err := p.parseExpression(ast.PrecedenceLowest)
	if err != nil {
		return nil, err
	}

	return &ast.LoadSampleExpression{
		Span:   position.NewSpan(start, sample.GetSpan().End),
		Sample: sample,
	}, nil
}

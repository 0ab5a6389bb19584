// Package ast defines the syntax tree produced by the Stellar parser.
//
// Statements and expressions are closed sets of node types distinguished by
// unexported marker methods. Every node records the source span it covers,
// and parents exclusively own their children.
package ast

import (
	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/position"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns a human-readable representation of the node.
	// Interned names are shown by id; use Sprint to resolve them.
	String() string
	// Accept implements the visitor pattern for AST traversal
	Accept(visitor Visitor) interface{}
}

// Statement represents all statement nodes in the AST
type Statement interface {
	Node
	statementNode()
}

// Expression represents all expression nodes in the AST
type Expression interface {
	Node
	expressionNode()
}

// ===== Shared nodes =====

// Identifier is an interned name together with where it was written.
type Identifier struct {
	Span position.Span
	Name intern.StringID
}

func (i *Identifier) GetSpan() position.Span              { return i.Span }
func (i *Identifier) expressionNode()                     {}
func (i *Identifier) String() string                      { return Sprint(i, nil) }
func (i *Identifier) Accept(visitor Visitor) interface{} { return visitor.VisitIdentifier(i) }

// Block is a braced list of statements. Its span covers both braces.
type Block struct {
	Span       position.Span
	Statements []Statement
}

func (b *Block) GetSpan() position.Span              { return b.Span }
func (b *Block) String() string                      { return Sprint(b, nil) }
func (b *Block) Accept(visitor Visitor) interface{} { return visitor.VisitBlock(b) }

// Property is a `name: value` entry of a with statement.
type Property struct {
	Name  *Identifier
	Value Expression
}

// GetSpan runs from the start of the name to the end of the value.
func (p *Property) GetSpan() position.Span {
	return position.NewSpan(p.Name.Span.Start, p.Value.GetSpan().End)
}
func (p *Property) String() string                      { return Sprint(p, nil) }
func (p *Property) Accept(visitor Visitor) interface{} { return visitor.VisitProperty(p) }

// ===== Statements =====

// WaitStatement pauses for the duration given by Value.
type WaitStatement struct {
	Span  position.Span
	Value Expression
}

func (s *WaitStatement) GetSpan() position.Span { return s.Span }
func (s *WaitStatement) statementNode()         {}
func (s *WaitStatement) String() string         { return Sprint(s, nil) }
func (s *WaitStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitWaitStatement(s)
}

// PlayStatement plays the sample or sequence given by Value.
type PlayStatement struct {
	Span  position.Span
	Value Expression
}

func (s *PlayStatement) GetSpan() position.Span { return s.Span }
func (s *PlayStatement) statementNode()         {}
func (s *PlayStatement) String() string         { return Sprint(s, nil) }
func (s *PlayStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitPlayStatement(s)
}

// SequenceStatement declares a named block of statements.
type SequenceStatement struct {
	Span  position.Span
	Name  *Identifier
	Block *Block
}

func (s *SequenceStatement) GetSpan() position.Span { return s.Span }
func (s *SequenceStatement) statementNode()         {}
func (s *SequenceStatement) String() string         { return Sprint(s, nil) }
func (s *SequenceStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitSequenceStatement(s)
}

// WithStatement runs a block with a set of properties applied.
type WithStatement struct {
	Span       position.Span
	Properties []*Property
	Block      *Block
}

func (s *WithStatement) GetSpan() position.Span { return s.Span }
func (s *WithStatement) statementNode()         {}
func (s *WithStatement) String() string         { return Sprint(s, nil) }
func (s *WithStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitWithStatement(s)
}

// LetStatement binds Name to Value.
type LetStatement struct {
	Span  position.Span
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) GetSpan() position.Span { return s.Span }
func (s *LetStatement) statementNode()         {}
func (s *LetStatement) String() string         { return Sprint(s, nil) }
func (s *LetStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitLetStatement(s)
}

// ExpressionStatement is an expression used as a statement. It has the
// span of its expression.
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) GetSpan() position.Span { return s.Expression.GetSpan() }
func (s *ExpressionStatement) statementNode()         {}
func (s *ExpressionStatement) String() string         { return Sprint(s, nil) }
func (s *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(s)
}

// ===== Expressions =====

type IntegerLiteral struct {
	Span  position.Span
	Value int64
}

func (e *IntegerLiteral) GetSpan() position.Span { return e.Span }
func (e *IntegerLiteral) expressionNode()        {}
func (e *IntegerLiteral) String() string         { return Sprint(e, nil) }
func (e *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntegerLiteral(e)
}

type FloatLiteral struct {
	Span  position.Span
	Value float64
}

func (e *FloatLiteral) GetSpan() position.Span { return e.Span }
func (e *FloatLiteral) expressionNode()        {}
func (e *FloatLiteral) String() string         { return Sprint(e, nil) }
func (e *FloatLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitFloatLiteral(e)
}

type BoolLiteral struct {
	Span  position.Span
	Value bool
}

func (e *BoolLiteral) GetSpan() position.Span { return e.Span }
func (e *BoolLiteral) expressionNode()        {}
func (e *BoolLiteral) String() string         { return Sprint(e, nil) }
func (e *BoolLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitBoolLiteral(e)
}

// StringLiteral holds the unescaped content of a string literal.
type StringLiteral struct {
	Span  position.Span
	Value intern.StringID
}

func (e *StringLiteral) GetSpan() position.Span { return e.Span }
func (e *StringLiteral) expressionNode()        {}
func (e *StringLiteral) String() string         { return Sprint(e, nil) }
func (e *StringLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLiteral(e)
}

// BinaryExpression applies Operator to Left and Right. Its span runs from
// the start of Left to the end of Right.
type BinaryExpression struct {
	Span     position.Span
	Operator *BinaryOperator
	Left     Expression
	Right    Expression
}

func (e *BinaryExpression) GetSpan() position.Span { return e.Span }
func (e *BinaryExpression) expressionNode()        {}
func (e *BinaryExpression) String() string         { return Sprint(e, nil) }
func (e *BinaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpression(e)
}

type PrefixExpression struct {
	Span     position.Span
	Operator *PrefixOperator
	Operand  Expression
}

func (e *PrefixExpression) GetSpan() position.Span { return e.Span }
func (e *PrefixExpression) expressionNode()        {}
func (e *PrefixExpression) String() string         { return Sprint(e, nil) }
func (e *PrefixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixExpression(e)
}

// ListExpression is a bracketed list. Its span covers both brackets.
type ListExpression struct {
	Span     position.Span
	Elements []Expression
}

func (e *ListExpression) GetSpan() position.Span { return e.Span }
func (e *ListExpression) expressionNode()        {}
func (e *ListExpression) String() string         { return Sprint(e, nil) }
func (e *ListExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitListExpression(e)
}

// LoadSampleExpression loads the audio sample named by Sample.
type LoadSampleExpression struct {
	Span   position.Span
	Sample Expression
}

func (e *LoadSampleExpression) GetSpan() position.Span { return e.Span }
func (e *LoadSampleExpression) expressionNode()        {}
func (e *LoadSampleExpression) String() string         { return Sprint(e, nil) }
func (e *LoadSampleExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitLoadSampleExpression(e)
}

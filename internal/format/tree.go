package format

import (
	"strconv"

	"github.com/stellar-lang/stellar/internal/ast"
	"github.com/stellar-lang/stellar/internal/intern"
)

// Statements converts a parsed program to a list of Node trees.
func Statements(statements []ast.Statement, table *intern.Table) []*Node {
	b := &builder{table: table}
	nodes := make([]*Node, len(statements))
	for i, stmt := range statements {
		nodes[i] = b.build(stmt)
	}
	return nodes
}

// Tree converts a single syntax tree node.
func Tree(node ast.Node, table *intern.Table) *Node {
	b := &builder{table: table}
	return b.build(node)
}

// builder produces the Node for a single syntax node; build attaches the
// children.
type builder struct {
	table *intern.Table
}

func (b *builder) build(node ast.Node) *Node {
	n := node.Accept(b).(*Node)
	n.Span = node.GetSpan().String()
	for _, child := range ast.Children(node) {
		n.Children = append(n.Children, b.build(child))
	}
	return n
}

func (b *builder) VisitWaitStatement(node *ast.WaitStatement) interface{} {
	return &Node{Kind: "WaitStatement"}
}

func (b *builder) VisitPlayStatement(node *ast.PlayStatement) interface{} {
	return &Node{Kind: "PlayStatement"}
}

func (b *builder) VisitSequenceStatement(node *ast.SequenceStatement) interface{} {
	return &Node{Kind: "SequenceStatement"}
}

func (b *builder) VisitWithStatement(node *ast.WithStatement) interface{} {
	return &Node{Kind: "WithStatement"}
}

func (b *builder) VisitLetStatement(node *ast.LetStatement) interface{} {
	return &Node{Kind: "LetStatement"}
}

func (b *builder) VisitExpressionStatement(node *ast.ExpressionStatement) interface{} {
	return &Node{Kind: "ExpressionStatement"}
}

func (b *builder) VisitIdentifier(node *ast.Identifier) interface{} {
	return &Node{Kind: "Identifier", Value: resolve(b.table, node.Name)}
}

func (b *builder) VisitIntegerLiteral(node *ast.IntegerLiteral) interface{} {
	return &Node{Kind: "IntegerLiteral", Value: strconv.FormatInt(node.Value, 10)}
}

func (b *builder) VisitFloatLiteral(node *ast.FloatLiteral) interface{} {
	return &Node{Kind: "FloatLiteral", Value: strconv.FormatFloat(node.Value, 'g', -1, 64)}
}

func (b *builder) VisitBoolLiteral(node *ast.BoolLiteral) interface{} {
	return &Node{Kind: "BoolLiteral", Value: strconv.FormatBool(node.Value)}
}

func (b *builder) VisitStringLiteral(node *ast.StringLiteral) interface{} {
	return &Node{Kind: "StringLiteral", Value: strconv.Quote(resolve(b.table, node.Value))}
}

func (b *builder) VisitBinaryExpression(node *ast.BinaryExpression) interface{} {
	return &Node{Kind: "BinaryExpression"}
}

func (b *builder) VisitPrefixExpression(node *ast.PrefixExpression) interface{} {
	return &Node{Kind: "PrefixExpression"}
}

func (b *builder) VisitListExpression(node *ast.ListExpression) interface{} {
	return &Node{Kind: "ListExpression"}
}

func (b *builder) VisitLoadSampleExpression(node *ast.LoadSampleExpression) interface{} {
	return &Node{Kind: "LoadSampleExpression"}
}

func (b *builder) VisitBlock(node *ast.Block) interface{} {
	return &Node{Kind: "Block"}
}

func (b *builder) VisitProperty(node *ast.Property) interface{} {
	return &Node{Kind: "Property"}
}

func (b *builder) VisitBinaryOperator(node *ast.BinaryOperator) interface{} {
	return &Node{Kind: "BinaryOperator", Value: node.Kind.Symbol()}
}

func (b *builder) VisitPrefixOperator(node *ast.PrefixOperator) interface{} {
	return &Node{Kind: "PrefixOperator", Value: node.Kind.Symbol()}
}

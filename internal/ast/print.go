package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stellar-lang/stellar/internal/intern"
)

// Sprint renders node as compact source-like text with every binary and
// prefix expression parenthesized, e.g. "((a + (2 * (3 + b))) - 3)".
// Names and strings are resolved through table; when table is nil (or does
// not know an id) they are shown as "#id".
func Sprint(node Node, table *intern.Table) string {
	if node == nil {
		return "<nil>"
	}
	p := &printer{table: table}
	return node.Accept(p).(string)
}

// SprintAll renders one statement per line.
func SprintAll(statements []Statement, table *intern.Table) string {
	lines := make([]string, len(statements))
	for i, stmt := range statements {
		lines[i] = Sprint(stmt, table)
	}
	return strings.Join(lines, "\n")
}

type printer struct {
	table *intern.Table
}

func (p *printer) print(node Node) string {
	return Sprint(node, p.table)
}

func (p *printer) name(id intern.StringID) string {
	if p.table != nil {
		if s, ok := p.table.TryResolve(id); ok {
			return s
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (p *printer) VisitWaitStatement(node *WaitStatement) interface{} {
	return "wait " + p.print(node.Value)
}

func (p *printer) VisitPlayStatement(node *PlayStatement) interface{} {
	return "play " + p.print(node.Value)
}

func (p *printer) VisitSequenceStatement(node *SequenceStatement) interface{} {
	return fmt.Sprintf("sequence %s %s", p.print(node.Name), p.print(node.Block))
}

func (p *printer) VisitWithStatement(node *WithStatement) interface{} {
	props := make([]string, len(node.Properties))
	for i, prop := range node.Properties {
		props[i] = p.print(prop)
	}
	return fmt.Sprintf("with %s %s", strings.Join(props, ", "), p.print(node.Block))
}

func (p *printer) VisitLetStatement(node *LetStatement) interface{} {
	return fmt.Sprintf("let %s = %s", p.print(node.Name), p.print(node.Value))
}

func (p *printer) VisitExpressionStatement(node *ExpressionStatement) interface{} {
	return p.print(node.Expression)
}

func (p *printer) VisitIdentifier(node *Identifier) interface{} {
	return p.name(node.Name)
}

func (p *printer) VisitIntegerLiteral(node *IntegerLiteral) interface{} {
	return strconv.FormatInt(node.Value, 10)
}

func (p *printer) VisitFloatLiteral(node *FloatLiteral) interface{} {
	s := strconv.FormatFloat(node.Value, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (p *printer) VisitBoolLiteral(node *BoolLiteral) interface{} {
	return strconv.FormatBool(node.Value)
}

func (p *printer) VisitStringLiteral(node *StringLiteral) interface{} {
	if p.table != nil {
		if s, ok := p.table.TryResolve(node.Value); ok {
			return strconv.Quote(s)
		}
	}
	return fmt.Sprintf("#%d", node.Value)
}

func (p *printer) VisitBinaryExpression(node *BinaryExpression) interface{} {
	return fmt.Sprintf("(%s %s %s)", p.print(node.Left), node.Operator, p.print(node.Right))
}

func (p *printer) VisitPrefixExpression(node *PrefixExpression) interface{} {
	return fmt.Sprintf("(%s%s)", node.Operator, p.print(node.Operand))
}

func (p *printer) VisitListExpression(node *ListExpression) interface{} {
	elems := make([]string, len(node.Elements))
	for i, e := range node.Elements {
		elems[i] = p.print(e)
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

func (p *printer) VisitLoadSampleExpression(node *LoadSampleExpression) interface{} {
	return "load_sample " + p.print(node.Sample)
}

func (p *printer) VisitBlock(node *Block) interface{} {
	if len(node.Statements) == 0 {
		return "{}"
	}
	stmts := make([]string, len(node.Statements))
	for i, s := range node.Statements {
		stmts[i] = p.print(s)
	}
	return "{ " + strings.Join(stmts, "; ") + " }"
}

func (p *printer) VisitProperty(node *Property) interface{} {
	return fmt.Sprintf("%s: %s", p.print(node.Name), p.print(node.Value))
}

func (p *printer) VisitBinaryOperator(node *BinaryOperator) interface{} {
	return node.Kind.Symbol()
}

func (p *printer) VisitPrefixOperator(node *PrefixOperator) interface{} {
	return node.Kind.Symbol()
}

package ast

// Visitor is implemented by passes that need a method per node type.
// Accept dispatches to the matching method; traversal of children is left
// to the visitor (see Inspect and Children for generic walking).
type Visitor interface {
	// Statements.
	VisitWaitStatement(node *WaitStatement) interface{}
	VisitPlayStatement(node *PlayStatement) interface{}
	VisitSequenceStatement(node *SequenceStatement) interface{}
	VisitWithStatement(node *WithStatement) interface{}
	VisitLetStatement(node *LetStatement) interface{}
	VisitExpressionStatement(node *ExpressionStatement) interface{}

	// Expressions.
	VisitIdentifier(node *Identifier) interface{}
	VisitIntegerLiteral(node *IntegerLiteral) interface{}
	VisitFloatLiteral(node *FloatLiteral) interface{}
	VisitBoolLiteral(node *BoolLiteral) interface{}
	VisitStringLiteral(node *StringLiteral) interface{}
	VisitBinaryExpression(node *BinaryExpression) interface{}
	VisitPrefixExpression(node *PrefixExpression) interface{}
	VisitListExpression(node *ListExpression) interface{}
	VisitLoadSampleExpression(node *LoadSampleExpression) interface{}

	// Inner nodes.
	VisitBlock(node *Block) interface{}
	VisitProperty(node *Property) interface{}
	VisitBinaryOperator(node *BinaryOperator) interface{}
	VisitPrefixOperator(node *PrefixOperator) interface{}
}

// BaseVisitor returns nil for every node. Embed it to implement only the
// methods a pass cares about.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitWaitStatement(node *WaitStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitPlayStatement(node *PlayStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitSequenceStatement(node *SequenceStatement) interface{}       { return nil }
func (v *BaseVisitor) VisitWithStatement(node *WithStatement) interface{}               { return nil }
func (v *BaseVisitor) VisitLetStatement(node *LetStatement) interface{}                 { return nil }
func (v *BaseVisitor) VisitExpressionStatement(node *ExpressionStatement) interface{}   { return nil }
func (v *BaseVisitor) VisitIdentifier(node *Identifier) interface{}                     { return nil }
func (v *BaseVisitor) VisitIntegerLiteral(node *IntegerLiteral) interface{}             { return nil }
func (v *BaseVisitor) VisitFloatLiteral(node *FloatLiteral) interface{}                 { return nil }
func (v *BaseVisitor) VisitBoolLiteral(node *BoolLiteral) interface{}                   { return nil }
func (v *BaseVisitor) VisitStringLiteral(node *StringLiteral) interface{}               { return nil }
func (v *BaseVisitor) VisitBinaryExpression(node *BinaryExpression) interface{}         { return nil }
func (v *BaseVisitor) VisitPrefixExpression(node *PrefixExpression) interface{}         { return nil }
func (v *BaseVisitor) VisitListExpression(node *ListExpression) interface{}             { return nil }
func (v *BaseVisitor) VisitLoadSampleExpression(node *LoadSampleExpression) interface{} { return nil }
func (v *BaseVisitor) VisitBlock(node *Block) interface{}                               { return nil }
func (v *BaseVisitor) VisitProperty(node *Property) interface{}                         { return nil }
func (v *BaseVisitor) VisitBinaryOperator(node *BinaryOperator) interface{}             { return nil }
func (v *BaseVisitor) VisitPrefixOperator(node *PrefixOperator) interface{}             { return nil }

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *WaitStatement:
		return []Node{n.Value}
	case *PlayStatement:
		return []Node{n.Value}
	case *SequenceStatement:
		return []Node{n.Name, n.Block}
	case *WithStatement:
		children := make([]Node, 0, len(n.Properties)+1)
		for _, p := range n.Properties {
			children = append(children, p)
		}
		return append(children, n.Block)
	case *LetStatement:
		return []Node{n.Name, n.Value}
	case *ExpressionStatement:
		return []Node{n.Expression}
	case *BinaryExpression:
		return []Node{n.Left, n.Operator, n.Right}
	case *PrefixExpression:
		return []Node{n.Operator, n.Operand}
	case *ListExpression:
		children := make([]Node, len(n.Elements))
		for i, e := range n.Elements {
			children[i] = e
		}
		return children
	case *LoadSampleExpression:
		return []Node{n.Sample}
	case *Block:
		children := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			children[i] = s
		}
		return children
	case *Property:
		return []Node{n.Name, n.Value}
	default:
		return nil
	}
}

// Inspect traverses the tree rooted at node in depth-first order, calling
// f for every node. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// InspectAll runs Inspect over each statement in order.
func InspectAll(statements []Statement, f func(Node) bool) {
	for _, stmt := range statements {
		Inspect(stmt, f)
	}
}

// Walk calls node.Accept(v) for every node of the tree in pre-order.
func Walk(v Visitor, node Node) {
	Inspect(node, func(n Node) bool {
		n.Accept(v)
		return true
	})
}

package ast

import (
	"fmt"

	"github.com/stellar-lang/stellar/internal/position"
)

// BinaryOperatorKind enumerates infix operators.
type BinaryOperatorKind int

const (
	BinaryAdd BinaryOperatorKind = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryAssign
	BinaryAddAssign
	BinarySubtractAssign
	BinaryEqual
)

// Precedence levels. Higher binds tighter.
const (
	PrecedenceLowest     = 0
	PrecedenceAssignment = 1 // = += -=
	PrecedenceEquality   = 2 // ==
	PrecedenceSum        = 3 // + -
	PrecedenceProduct    = 4 // * /
	PrecedencePrefix     = 5 // -x
)

var binaryOperatorInfo = map[BinaryOperatorKind]struct {
	name       string
	symbol     string
	precedence int
}{
	BinaryAdd:            {"Add", "+", PrecedenceSum},
	BinarySubtract:       {"Subtract", "-", PrecedenceSum},
	BinaryMultiply:       {"Multiply", "*", PrecedenceProduct},
	BinaryDivide:         {"Divide", "/", PrecedenceProduct},
	BinaryAssign:         {"Assign", "=", PrecedenceAssignment},
	BinaryAddAssign:      {"AddAssign", "+=", PrecedenceAssignment},
	BinarySubtractAssign: {"SubtractAssign", "-=", PrecedenceAssignment},
	BinaryEqual:          {"Equal", "==", PrecedenceEquality},
}

func (k BinaryOperatorKind) String() string {
	if info, ok := binaryOperatorInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("BinaryOperatorKind(%d)", int(k))
}

// Symbol returns the source spelling of the operator.
func (k BinaryOperatorKind) Symbol() string {
	return binaryOperatorInfo[k].symbol
}

// Precedence returns the binding strength of the operator.
func (k BinaryOperatorKind) Precedence() int {
	return binaryOperatorInfo[k].precedence
}

// BinaryOperator is an infix operator occurrence.
type BinaryOperator struct {
	Span position.Span
	Kind BinaryOperatorKind
}

func (o *BinaryOperator) GetSpan() position.Span { return o.Span }
func (o *BinaryOperator) String() string         { return o.Kind.Symbol() }
func (o *BinaryOperator) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOperator(o)
}

// PrefixOperatorKind enumerates prefix operators.
type PrefixOperatorKind int

const (
	PrefixNegate PrefixOperatorKind = iota
)

func (k PrefixOperatorKind) String() string {
	switch k {
	case PrefixNegate:
		return "Negate"
	default:
		return fmt.Sprintf("PrefixOperatorKind(%d)", int(k))
	}
}

// Symbol returns the source spelling of the operator.
func (k PrefixOperatorKind) Symbol() string {
	switch k {
	case PrefixNegate:
		return "-"
	default:
		return "?"
	}
}

// PrefixOperator is a prefix operator occurrence.
type PrefixOperator struct {
	Span position.Span
	Kind PrefixOperatorKind
}

func (o *PrefixOperator) GetSpan() position.Span { return o.Span }
func (o *PrefixOperator) String() string         { return o.Kind.Symbol() }
func (o *PrefixOperator) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixOperator(o)
}

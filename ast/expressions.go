package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// overflowLiteral is the shortest digit run that parses to +Inf.
var overflowLiteral = "1" + strings.Repeat("0", 309)

// Number is a numeric literal. Trees built by the parser only hold
// non-negative values, +Inf included for digit runs past the float64 range.
// Dump spells negative values as a subtraction from zero so the output stays
// parseable; it reparses to an equal value, not to the same tree. NaN has
// no source form.
type Number struct {
	Value float64
}

func (Number) node()                  {}
func (Number) expr()                  {}
func (Number) precedence() precedence { return precPrimary }

func (n Number) Dump() string {
	if math.Signbit(n.Value) && !math.IsNaN(n.Value) {
		return "(0 - " + formatLiteral(-n.Value) + ")"
	}
	return formatLiteral(n.Value)
}

func formatLiteral(v float64) string {
	if math.IsInf(v, 1) {
		return overflowLiteral
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Variable is the free variable x.
type Variable struct{}

func (Variable) node()                  {}
func (Variable) expr()                  {}
func (Variable) precedence() precedence { return precPrimary }

func (Variable) Dump() string { return "x" }

// Identifier is a named reference, resolved at evaluation time.
type Identifier struct {
	Name string
}

func (Identifier) node()                  {}
func (Identifier) expr()                  {}
func (Identifier) precedence() precedence { return precPrimary }

func (i Identifier) Dump() string { return i.Name }

// Binary is a binary arithmetic operation. Left and Right are owned by the node.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (Binary) node()                    {}
func (Binary) expr()                    {}
func (b Binary) precedence() precedence { return b.Op.precedence() }

// Dump parenthesizes a child only when the tree would not read back the same
// without it: a looser left child, or a right child that is not strictly
// tighter (operators are left-associative).
func (b Binary) Dump() string {
	left, right := b.Left.Dump(), b.Right.Dump()
	if b.Left.precedence() < b.precedence() {
		left = "(" + left + ")"
	}
	if b.Right.precedence() <= b.precedence() {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%s %s %s", left, b.Op, right)
}

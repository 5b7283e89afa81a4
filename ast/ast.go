// Package ast defines the syntax tree of a single-variable function definition.
package ast

import "fmt"

// Grammar, one token of lookahead:
//
//	Function   -> Assignment | Expression
//	Assignment -> Identifier '=' Expression
//	Expression -> Term (('+'|'-') Term)*
//	Term       -> Factor (('*'|'/') Factor)*
//	Factor     -> '(' Expression ')' | Number | VariableX | Identifier

// Node is any result of parsing a Function: an Expr or an Assignment.
// Nodes are immutable once built and never share children.
type Node interface {
	// Dump returns source text that parses back into the same tree.
	Dump() string
	node()
}

// Expr is a Node that can appear as an operand.
type Expr interface {
	Node
	expr()
	precedence() precedence
}

type precedence int

const (
	precAdditive precedence = iota + 1
	precMultiplicative
	precPrimary
)

// Op is a binary arithmetic operator.
type Op int

// Binary operators.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

var opStrings = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (o Op) String() string {
	if s, ok := opStrings[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

func (o Op) precedence() precedence {
	switch o {
	case OpAdd, OpSub:
		return precAdditive
	case OpMul, OpDiv:
		return precMultiplicative
	default:
		panic(fmt.Errorf("unknown operator %d", int(o)))
	}
}

// Assignment binds Name to Value. It is only produced at the top level.
type Assignment struct {
	Name  string
	Value Expr
}

func (Assignment) node() {}

func (a Assignment) Dump() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.Dump())
}

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case Assignment:
		Walk(n.Value, fn)
	case Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case Number, Variable, Identifier:
	default:
		panic(fmt.Errorf("unhandled node type %T", n))
	}
}

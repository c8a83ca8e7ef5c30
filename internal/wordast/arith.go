package wordast

import "strconv"

// ArithNode is the opaque arithmetic-expression node the bracket op, slice
// op, and `$((...))` arithmetic substitution pass to the arithmetic
// evaluator.
// The word evaluator never interprets these itself -- it only walks enough
// structure to find variable references for the indirect (`!`) prefix op.
type ArithNode interface {
	Node
	arithNode()
}

// IntLit is an integer literal in an arithmetic expression.
type IntLit struct {
	Span Span
	Val  int64
}

func (n *IntLit) Pos() Span     { return n.Span }
func (n *IntLit) String() string { return strconv.FormatInt(n.Val, 10) }
func (*IntLit) arithNode()      {}

// StrLit is a string literal in an arithmetic expression (used to compute
// associative-array keys).
type StrLit struct {
	Span Span
	Val  string
}

func (n *StrLit) Pos() Span     { return n.Span }
func (n *StrLit) String() string { return n.Val }
func (*StrLit) arithNode()      {}

// ArithVarRef is a bare variable name used inside an arithmetic expression
// (e.g. the `i` in `${a[i]}`); it is resolved through the same variable
// store as everything else.
type ArithVarRef struct {
	Span Span
	Name string
}

func (n *ArithVarRef) Pos() Span     { return n.Span }
func (n *ArithVarRef) String() string { return n.Name }
func (*ArithVarRef) arithNode()      {}

// ArithBinary is a binary arithmetic operation.
type ArithBinary struct {
	Span        Span
	Op          byte // '+', '-', '*', '/'
	Left, Right ArithNode
}

func (n *ArithBinary) Pos() Span { return n.Span }
func (n *ArithBinary) String() string {
	return n.Left.String() + " " + string(n.Op) + " " + n.Right.String()
}
func (*ArithBinary) arithNode() {}

// ArithUnaryMinus negates its operand.
type ArithUnaryMinus struct {
	Span Span
	X    ArithNode
}

func (n *ArithUnaryMinus) Pos() Span     { return n.Span }
func (n *ArithUnaryMinus) String() string { return "-" + n.X.String() }
func (*ArithUnaryMinus) arithNode()      {}

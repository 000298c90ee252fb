// Package ast contains the abstract syntax tree shared between the
// parser, which builds it, and the code generator, which walks it.
//
// A Node carries a Type tag (the same enumeration the lexer uses for
// Tokens, plus the two tags this package adds), an optional Value, and
// up to three ordered children plus a Next sibling link. The Next link
// threads a singly-linked list of statements through a block or
// top-level program. Which of Value/Child1/Child2/Child3 are live
// depends entirely on Type - see the per-shape notes below.
package ast

import "github.com/skx/rv32-compiler/token"

// Program and Block extend the token-kind enumeration with two tags
// that only ever appear on AST nodes, never on lexer tokens.
const (
	// Program tags the root node of a compilation unit. Child1 is
	// the head of the top-level statement list, linked via Next.
	Program token.Type = "PROGRAM"

	// Block tags a brace-delimited statement list. Child1 is the
	// head of its statement list, linked via Next. A Block does not
	// introduce a new scope.
	Block token.Type = "BLOCK"
)

// Node is one element of the AST.
//
// Shapes the code generator depends on:
//
//	Program:     Child1 = head of top-level statement list (via Next)
//	Block:       Child1 = head of statement list
//	DeclareInt:  Type=Keyword, Value=token.INT;      Child1=identifier, Child2=initializer
//	Assign:      Type=Operator, Value="=";           Child1=identifier, Child2=value expression
//	If:          Type=Keyword, Value=token.IF;       Child1=condition, Child2=then-body, Child3=optional else-body
//	While:       Type=Keyword, Value=token.WHILE;    Child1=condition, Child2=body
//	Exit:        Type=Keyword, Value=token.EXIT;     Child1=value expression
//	Write:       Type=Keyword, Value=token.WRITE;    Child2=integer expression (Child1 accepted, ignored)
//	Binary:      Type=Operator or Comparator;        Value=operator lexeme, Child1/Child2=operands
//	Leaf:        Type=Int, Identifier, or String;    Value=literal text
//
// Ownership of children and of Next is exclusive: each node owns its
// subtree.
type Node struct {
	Type   token.Type
	Value  string
	Child1 *Node
	Child2 *Node
	Child3 *Node
	Next   *Node

	// Line is the source line the node was parsed from, used to
	// annotate debug output.
	Line int
}

// NewProgram creates the root node of a compilation unit.
func NewProgram(statements *Node) *Node {
	return &Node{Type: Program, Child1: statements}
}

// NewBlock creates a brace-delimited statement list.
func NewBlock(statements *Node) *Node {
	return &Node{Type: Block, Child1: statements}
}

// NewDeclareInt creates an `int x = expr;` declaration node.
func NewDeclareInt(line int, ident, initializer *Node) *Node {
	return &Node{Type: token.Keyword, Value: token.INT, Child1: ident, Child2: initializer, Line: line}
}

// NewAssign creates an `x = expr;` assignment node.
func NewAssign(line int, ident, value *Node) *Node {
	return &Node{Type: token.Operator, Value: "=", Child1: ident, Child2: value, Line: line}
}

// NewIf creates an `if (cond) then [else elseBody]` node. elseBody may
// be nil.
func NewIf(line int, cond, then, elseBody *Node) *Node {
	return &Node{Type: token.Keyword, Value: token.IF, Child1: cond, Child2: then, Child3: elseBody, Line: line}
}

// NewWhile creates a `while (cond) body` node.
func NewWhile(line int, cond, body *Node) *Node {
	return &Node{Type: token.Keyword, Value: token.WHILE, Child1: cond, Child2: body, Line: line}
}

// NewExit creates an `exit(expr);` node.
func NewExit(line int, value *Node) *Node {
	return &Node{Type: token.Keyword, Value: token.EXIT, Child1: value, Line: line}
}

// NewWrite creates a `write(first, second);` node. first is accepted
// by the grammar but ignored at code-generation time.
func NewWrite(line int, first, second *Node) *Node {
	return &Node{Type: token.Keyword, Value: token.WRITE, Child1: first, Child2: second, Line: line}
}

// NewBinary creates an arithmetic or comparison operator node.
func NewBinary(line int, typ token.Type, op string, left, right *Node) *Node {
	return &Node{Type: typ, Value: op, Child1: left, Child2: right, Line: line}
}

// NewLeaf creates an Int, Identifier, or String leaf node.
func NewLeaf(line int, typ token.Type, value string) *Node {
	return &Node{Type: typ, Value: value, Line: line}
}

// IsKeyword reports whether n is a Keyword node with the given
// canonical spelling (e.g. token.IF).
func (n *Node) IsKeyword(value string) bool {
	return n != nil && n.Type == token.Keyword && n.Value == value
}

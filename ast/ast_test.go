package ast

import (
	"testing"

	"github.com/skx/rv32-compiler/token"
)

// TestNodeShapes checks that each constructor wires its children into
// the slot the code generator expects.
func TestNodeShapes(t *testing.T) {

	ident := NewLeaf(1, token.Identifier, "x")
	init := NewLeaf(1, token.Int, "7")
	decl := NewDeclareInt(1, ident, init)

	if decl.Type != token.Keyword || decl.Value != token.INT {
		t.Errorf("DeclareInt: expected Keyword/INT, got %s/%s", decl.Type, decl.Value)
	}
	if decl.Child1 != ident || decl.Child2 != init {
		t.Errorf("DeclareInt: children wired incorrectly")
	}

	cond := NewBinary(2, token.Comparator, token.LESS, ident, init)
	then := NewExit(2, init)
	ifNode := NewIf(2, cond, then, nil)

	if !ifNode.IsKeyword(token.IF) {
		t.Errorf("If: expected IsKeyword(IF) to be true")
	}
	if ifNode.Child1 != cond || ifNode.Child2 != then || ifNode.Child3 != nil {
		t.Errorf("If: children wired incorrectly")
	}

	write := NewWrite(3, NewLeaf(3, token.String, "ignored"), ident)
	if write.Child2 != ident {
		t.Errorf("Write: Child2 should carry the printed expression")
	}
}

// TestStatementList checks that Next threads a sequence of statements
// the way Block/Program expect.
func TestStatementList(t *testing.T) {

	a := NewExit(1, NewLeaf(1, token.Int, "1"))
	b := NewExit(2, NewLeaf(2, token.Int, "2"))
	a.Next = b

	block := NewBlock(a)

	count := 0
	for n := block.Child1; n != nil; n = n.Next {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 statements in block, got %d", count)
	}
}

// Package codegen lowers an AST into RV32IM assembly text.
//
// The Generator type, its symbol table, label counter and offset
// cursor, plus the top-level Generate entry point and statement
// dispatch live in this file; the one-method-per-node-kind emitters
// live in emit.go.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skx/rv32-compiler/ast"
	"github.com/skx/rv32-compiler/token"
)

// wordSize is the size, in bytes, of every stack-allocated local. The
// stack-offset cursor is decremented by this amount on each
// DeclareInt.
const wordSize = 4

// defaultFrameSize is the fixed local area the prologue reserves
// beneath the frame pointer when New is called with a frame size of 0.
const defaultFrameSize = 128

// Generator holds all per-compilation state: nothing here is a
// package-level global, so two Generators (e.g. two test cases in the
// same process, or a host embedding this package) never interfere -
// see SPEC_FULL.md §5 / §9 on avoiding global mutable state.
type Generator struct {
	// Debug, when set, prepends a comment naming the source line
	// being lowered ahead of each statement's generated code.
	Debug bool

	frameSize int            // bytes the prologue reserves beneath s0
	symbols   map[string]int // identifier -> frame offset (negative, multiple of wordSize)
	offset    int            // stack-offset cursor; next local is offset-wordSize
	labels    int            // label counter; mints "L<n>"

	out strings.Builder
}

// New creates a Generator with empty per-compilation state. frameSize
// is the number of bytes the prologue reserves beneath the frame
// pointer for locals; a value of 0 selects defaultFrameSize.
func New(frameSize int) *Generator {
	if frameSize == 0 {
		frameSize = defaultFrameSize
	}
	return &Generator{frameSize: frameSize, symbols: make(map[string]int)}
}

// Generate walks prog once and returns the complete assembly-language
// text, or the first fatal code-generation error encountered.
func (g *Generator) Generate(prog *ast.Node) (string, error) {
	if prog == nil || prog.Type != ast.Program {
		return "", fmt.Errorf("CodeGen Error: expected a Program root node")
	}

	g.out.Reset()

	g.writeHeader()
	g.writePrologue()

	if err := g.genStatementList(prog.Child1); err != nil {
		return "", err
	}

	g.writeEpilogue()

	return g.out.String(), nil
}

// writeHeader emits the .data/.text skeleton §6 requires.
func (g *Generator) writeHeader() {
	g.out.WriteString(".data\n")
	g.out.WriteString(`fmt: .asciz "%d\n"` + "\n")
	g.out.WriteString("\n.text\n")
	g.out.WriteString(".extern printf\n")
	g.out.WriteString(".globl main\n\n")
	g.out.WriteString("main:\n")
}

// writePrologue emits the fixed entry sequence: save ra and s0, set
// s0 to the new frame base, and reserve the fixed local area.
func (g *Generator) writePrologue() {
	g.emit("addi sp, sp, -%d", wordSize)
	g.emit("sw ra, 0(sp)")
	g.emit("addi sp, sp, -%d", wordSize)
	g.emit("sw s0, 0(sp)")
	g.emit("mv s0, sp")
	g.emit("addi sp, sp, -%d", g.frameSize)
}

// writeEpilogue releases the local area by adding frameSize back to sp
// (which brings sp back to s0's value), pops s0 then ra, and returns.
func (g *Generator) writeEpilogue() {
	g.emit("addi sp, sp, %d", g.frameSize)
	g.emit("lw s0, 0(sp)")
	g.emit("addi sp, sp, %d", wordSize)
	g.emit("lw ra, 0(sp)")
	g.emit("addi sp, sp, %d", wordSize)
	g.emit("ret")
}

// emit appends one indented instruction line.
func (g *Generator) emit(format string, args ...any) {
	fmt.Fprintf(&g.out, "  %s\n", fmt.Sprintf(format, args...))
}

// comment appends a debug-only comment line.
func (g *Generator) comment(format string, args ...any) {
	if !g.Debug {
		return
	}
	fmt.Fprintf(&g.out, "  # %s\n", fmt.Sprintf(format, args...))
}

// label appends a bare assembly label.
func (g *Generator) label(name string) {
	fmt.Fprintf(&g.out, "%s:\n", name)
}

// freshLabel mints a new, compilation-unique label of the form "L<n>".
func (g *Generator) freshLabel() string {
	name := fmt.Sprintf("L%d", g.labels)
	g.labels++
	return name
}

// declare inserts ident into the symbol table, decrementing the
// offset cursor first so the assigned offset is always negative and a
// multiple of wordSize. Duplicate declarations are a fatal error.
func (g *Generator) declare(ident string) (int, error) {
	if _, exists := g.symbols[ident]; exists {
		return 0, fmt.Errorf("CodeGen Error: duplicate declaration of %q", ident)
	}
	g.offset -= wordSize
	g.symbols[ident] = g.offset
	return g.offset, nil
}

// lookup resolves ident to its frame offset. Lookup failure is a
// fatal error, whether the identifier is being read or assigned.
func (g *Generator) lookup(ident string) (int, error) {
	offset, ok := g.symbols[ident]
	if !ok {
		return 0, fmt.Errorf("CodeGen Error: undefined identifier %q", ident)
	}
	return offset, nil
}

// genStatementList walks a Next-linked statement list, generating
// each statement in source order.
func (g *Generator) genStatementList(stmt *ast.Node) error {
	for n := stmt; n != nil; n = n.Next {
		if err := g.genStatement(n); err != nil {
			return err
		}
	}
	return nil
}

// genStatement dispatches a single statement (or Block) to its
// emitter, by Type/Value.
func (g *Generator) genStatement(n *ast.Node) error {
	g.comment("line %d", n.Line)

	switch {
	case n.Type == ast.Block:
		return g.genStatementList(n.Child1)

	case n.IsKeyword(token.INT):
		return g.genDeclareInt(n)

	case n.Type == token.Operator && n.Value == "=":
		return g.genAssign(n)

	case n.IsKeyword(token.IF):
		return g.genIf(n)

	case n.IsKeyword(token.WHILE):
		return g.genWhile(n)

	case n.IsKeyword(token.EXIT):
		return g.genExit(n)

	case n.IsKeyword(token.WRITE):
		return g.genWrite(n)
	}

	return fmt.Errorf("CodeGen Error: don't know how to generate statement %s %q", n.Type, n.Value)
}

// parseImmediate converts an Int leaf's literal text to a machine
// integer for use in an immediate-form instruction.
func parseImmediate(n *ast.Node) (int, error) {
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("CodeGen Error: invalid integer literal %q", n.Value)
	}
	return v, nil
}

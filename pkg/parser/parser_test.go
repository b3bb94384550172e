package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/pkg/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	l := lexer.New(input)
	p := New(l)
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	return program
}

// parseSingleExpr parses one expression statement and returns its
// expression.
func parseSingleExpr(t *testing.T, input string) ast.Expression {
	t.Helper()

	program := parseProgram(t, input)
	if len(program.Statements) != 1 {
		t.Fatalf("program has %d statements, want 1", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("statement is not *ast.ExpressionStmt. got=%T", program.Statements[0])
	}

	return stmt.Expr
}

func testIntLit(t *testing.T, expr ast.Expression, value int32) bool {
	t.Helper()

	lit, ok := expr.(*ast.IntLit)
	if !ok {
		t.Errorf("expr not *ast.IntLit. got=%T", expr)

		return false
	}
	if lit.Value != value {
		t.Errorf("lit.Value not %d. got=%d", value, lit.Value)

		return false
	}

	return true
}

func testIdentifier(t *testing.T, expr ast.Expression, name string) bool {
	t.Helper()

	ident, ok := expr.(*ast.IdentExpr)
	if !ok {
		t.Errorf("expr not *ast.IdentExpr. got=%T", expr)

		return false
	}
	if ident.Name != name {
		t.Errorf("ident.Name not %s. got=%s", name, ident.Name)

		return false
	}

	return true
}

func TestLiteralExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Expression
	}{
		{"5;", &ast.IntLit{Value: 5}},
		{"3.25;", &ast.FloatLit{Value: 3.25}},
		{`"hi";`, &ast.StringLit{Value: "hi"}},
		{"true;", &ast.BoolLit{Value: true}},
		{"false;", &ast.BoolLit{Value: false}},
		{"null;", &ast.NullLit{}},
		{"foobar;", &ast.IdentExpr{Name: "foobar"}},
	}

	for _, tt := range tests {
		expr := parseSingleExpr(t, tt.input)
		if diff := cmp.Diff(tt.expected, expr); diff != "" {
			t.Errorf("input %q: expression mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestUnaryExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator ast.UnaryOp
	}{
		{"!true;", ast.OpUnaryNot},
		{"-15;", ast.OpUnaryMinus},
		{"+x;", ast.OpUnaryPlus},
	}

	for _, tt := range tests {
		expr := parseSingleExpr(t, tt.input)
		unary, ok := expr.(*ast.UnaryExpr)
		if !ok {
			t.Fatalf("input %q: expr not *ast.UnaryExpr. got=%T", tt.input, expr)
		}
		if unary.Op != tt.operator {
			t.Fatalf("input %q: op is not %v. got=%v", tt.input, tt.operator, unary.Op)
		}
	}
}

// Logical not parses to the not node, not to arithmetic negation.
func TestUnaryNotIsNotMinus(t *testing.T) {
	expr := parseSingleExpr(t, "!x;")
	unary, ok := expr.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("expr not *ast.UnaryExpr. got=%T", expr)
	}
	if unary.Op != ast.OpUnaryNot {
		t.Fatalf("op = %v, want %v", unary.Op, ast.OpUnaryNot)
	}
}

func TestBinaryExpressions(t *testing.T) {
	tests := []struct {
		input string
		left  int32
		op    ast.BinaryOp
		right int32
	}{
		{"5 + 5;", 5, ast.OpAdd, 5},
		{"5 - 5;", 5, ast.OpSub, 5},
		{"5 * 5;", 5, ast.OpMul, 5},
		{"5 / 5;", 5, ast.OpDiv, 5},
		{"5 % 5;", 5, ast.OpMod, 5},
		{"5 > 5;", 5, ast.OpGT, 5},
		{"5 < 5;", 5, ast.OpLT, 5},
		{"5 >= 5;", 5, ast.OpGTE, 5},
		{"5 <= 5;", 5, ast.OpLTE, 5},
		{"5 == 5;", 5, ast.OpEq, 5},
		{"5 != 5;", 5, ast.OpNEq, 5},
	}

	for _, tt := range tests {
		expr := parseSingleExpr(t, tt.input)
		binary, ok := expr.(*ast.BinaryExpr)
		if !ok {
			t.Fatalf("input %q: expr not *ast.BinaryExpr. got=%T", tt.input, expr)
		}
		if binary.Op != tt.op {
			t.Fatalf("input %q: op is not %v. got=%v", tt.input, tt.op, binary.Op)
		}
		if !testIntLit(t, binary.Left, tt.left) || !testIntLit(t, binary.Right, tt.right) {
			return
		}
	}
}

// The structural rendering exposes grouping, so precedence and
// associativity are checked through it.
func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 * 2 + 3;", "((1 * 2) + 3)"},
		{"a + b + c;", "((a + b) + c)"},
		{"a + b - c;", "((a + b) - c)"},
		{"a * b / c;", "((a * b) / c)"},
		{"a % b * c;", "((a % b) * c)"},
		{"a + b . c;", `((a + b) . c)`},
		{"a . b + c;", `((a . b) + c)`},
		{"a == b != c;", "((a == b) != c)"},
		{"a < b == c > d;", "((a < b) == (c > d))"},
		{"a <= b != c >= d;", "((a <= b) != (c >= d))"},
		{"a && b || c;", "((a && b) || c)"},
		{"a || b && c;", "(a || (b && c))"},
		{"a == b && c != d;", "((a == b) && (c != d))"},
		{"1 + 2 == 3;", "((1 + 2) == 3)"},
		{"x = 1 + 2 * 3;", "(x = (1 + (2 * 3)))"},
		{"x = a && b;", "(x = (a && b))"},
		{"-a * b;", "((-a) * b)"},
		{"!a && b;", "((!a) && b)"},
		{"(1 + 2) * 3;", "(((1 + 2)) * 3)"},
		{"f(1) + f(2);", "(f(1) + f(2))"},
	}

	for _, tt := range tests {
		expr := parseSingleExpr(t, tt.input)
		if got := expr.String(); got != tt.expected {
			t.Errorf("input %q: rendered %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Assignment folds the whole right-hand side, so a = 1 + 2 * 3 is an
// assignment of the additive expression, not an addition to an
// assignment.
func TestAssignmentTree(t *testing.T) {
	expr := parseSingleExpr(t, "a = 1 + 2 * 3;")

	expected := &ast.BinaryExpr{
		Op:   ast.OpAssign,
		Left: &ast.IdentExpr{Name: "a"},
		Right: &ast.BinaryExpr{
			Op:   ast.OpAdd,
			Left: &ast.IntLit{Value: 1},
			Right: &ast.BinaryExpr{
				Op:    ast.OpMul,
				Left:  &ast.IntLit{Value: 2},
				Right: &ast.IntLit{Value: 3},
			},
		},
	}

	if diff := cmp.Diff(expected, expr); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCallExpressions(t *testing.T) {
	expr := parseSingleExpr(t, "add(1, 2 * 3, x);")

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expr not *ast.CallExpr. got=%T", expr)
	}
	if !testIdentifier(t, call.Target, "add") {
		return
	}
	if len(call.Args) != 3 {
		t.Fatalf("wrong number of arguments. got=%d", len(call.Args))
	}
	testIntLit(t, call.Args[0], 1)
	if call.Args[1].String() != "(2 * 3)" {
		t.Errorf("arg 1 rendered %q, want %q", call.Args[1].String(), "(2 * 3)")
	}
	testIdentifier(t, call.Args[2], "x")
}

func TestEmptyArgumentList(t *testing.T) {
	expr := parseSingleExpr(t, "f();")

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expr not *ast.CallExpr. got=%T", expr)
	}
	if len(call.Args) != 0 {
		t.Fatalf("wrong number of arguments. got=%d", len(call.Args))
	}
}

// Chained calls nest left-associatively.
func TestChainedCalls(t *testing.T) {
	expr := parseSingleExpr(t, "f(1)(2);")

	outer, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expr not *ast.CallExpr. got=%T", expr)
	}
	inner, ok := outer.Target.(*ast.CallExpr)
	if !ok {
		t.Fatalf("outer target not *ast.CallExpr. got=%T", outer.Target)
	}
	if !testIdentifier(t, inner.Target, "f") {
		return
	}
	testIntLit(t, inner.Args[0], 1)
	testIntLit(t, outer.Args[0], 2)
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while (i < 4) { echo i; }")

	if len(program.Statements) != 1 {
		t.Fatalf("program has %d statements, want 1", len(program.Statements))
	}
	loop, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("statement not *ast.WhileStmt. got=%T", program.Statements[0])
	}
	if loop.Cond.String() != "(i < 4)" {
		t.Errorf("condition rendered %q, want %q", loop.Cond.String(), "(i < 4)")
	}
	body, ok := loop.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("body not *ast.BlockStmt. got=%T", loop.Body)
	}
	if len(body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(body.Statements))
	}
}

func TestIfStatement(t *testing.T) {
	program := parseProgram(t, `if (x == 1) echo "yes"; else echo "no";`)

	stmt, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement not *ast.IfStmt. got=%T", program.Statements[0])
	}
	if stmt.Else == nil {
		t.Fatal("else branch missing")
	}
	if _, ok := stmt.Then.(*ast.EchoStmt); !ok {
		t.Errorf("then branch not *ast.EchoStmt. got=%T", stmt.Then)
	}
}

func TestIfWithoutElse(t *testing.T) {
	program := parseProgram(t, "if (x) { echo x; }")

	stmt, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement not *ast.IfStmt. got=%T", program.Statements[0])
	}
	if stmt.Else != nil {
		t.Errorf("unexpected else branch: %v", stmt.Else)
	}
}

// The dangling else binds to the nearest if.
func TestDanglingElse(t *testing.T) {
	program := parseProgram(t, "if (a) if (b) echo 1; else echo 2;")

	outer, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement not *ast.IfStmt. got=%T", program.Statements[0])
	}
	if outer.Else != nil {
		t.Fatal("else bound to the outer if, want the inner one")
	}
	inner, ok := outer.Then.(*ast.IfStmt)
	if !ok {
		t.Fatalf("then branch not *ast.IfStmt. got=%T", outer.Then)
	}
	if inner.Else == nil {
		t.Fatal("inner if has no else branch")
	}
}

func TestFunctionDeclaration(t *testing.T) {
	program := parseProgram(t, "function add(a, b) { return a + b; }")

	decl, ok := program.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("statement not *ast.FunctionDecl. got=%T", program.Statements[0])
	}
	if decl.Name != "add" {
		t.Errorf("name = %q, want %q", decl.Name, "add")
	}
	if diff := cmp.Diff([]string{"a", "b"}, decl.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if _, ok := decl.Body.(*ast.BlockStmt); !ok {
		t.Errorf("body not *ast.BlockStmt. got=%T", decl.Body)
	}
}

func TestFunctionWithoutParams(t *testing.T) {
	program := parseProgram(t, "function f() { return 1; }")

	decl, ok := program.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("statement not *ast.FunctionDecl. got=%T", program.Statements[0])
	}
	if len(decl.Params) != 0 {
		t.Errorf("params = %v, want none", decl.Params)
	}
}

func TestControlStatements(t *testing.T) {
	program := parseProgram(t, "while (x) { break; continue; }")

	loop := program.Statements[0].(*ast.WhileStmt)
	body := loop.Body.(*ast.BlockStmt)
	if _, ok := body.Statements[0].(*ast.BreakStmt); !ok {
		t.Errorf("statement 0 not *ast.BreakStmt. got=%T", body.Statements[0])
	}
	if _, ok := body.Statements[1].(*ast.ContinueStmt); !ok {
		t.Errorf("statement 1 not *ast.ContinueStmt. got=%T", body.Statements[1])
	}
}

func TestReturnAndEcho(t *testing.T) {
	program := parseProgram(t, "return 1 + 2; echo x;")

	ret, ok := program.Statements[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("statement 0 not *ast.ReturnStmt. got=%T", program.Statements[0])
	}
	if ret.Value.String() != "(1 + 2)" {
		t.Errorf("return value rendered %q, want %q", ret.Value.String(), "(1 + 2)")
	}
	echo, ok := program.Statements[1].(*ast.EchoStmt)
	if !ok {
		t.Fatalf("statement 1 not *ast.EchoStmt. got=%T", program.Statements[1])
	}
	testIdentifier(t, echo.Value, "x")
}

func TestNestedBlocks(t *testing.T) {
	program := parseProgram(t, "{ { x = 1; } }")

	outer, ok := program.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("statement not *ast.BlockStmt. got=%T", program.Statements[0])
	}
	if _, ok := outer.Statements[0].(*ast.BlockStmt); !ok {
		t.Fatalf("inner statement not *ast.BlockStmt. got=%T", outer.Statements[0])
	}
}

func TestEmptyProgram(t *testing.T) {
	program := parseProgram(t, "  // nothing here\n")
	if len(program.Statements) != 0 {
		t.Fatalf("program has %d statements, want 0", len(program.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantSub string
	}{
		{"echo 1", "expected next token to be SEMICOLON"},
		{"break", "expected next token to be SEMICOLON"},
		{"while 1) {}", "expected next token to be LPAREN"},
		{"while (1 {}", "expected next token to be RPAREN"},
		{"if (1 echo 2;", "expected next token to be RPAREN"},
		{"function (a) {}", "expected function name"},
		{"function f(a,) {}", "expected next token to be IDENT"},
		{"{ echo 1;", "expected next token to be RBRACE"},
		{"f(1,);", "unexpected token RPAREN in expression"},
		{"1 + ;", "unexpected token SEMICOLON in expression"},
		{"*;", "unexpected token MULTIPLY in expression"},
		{"(1 + 2;", "expected next token to be RPAREN"},
	}

	for _, tt := range tests {
		l := lexer.New(tt.input)
		p := New(l)
		_, err := p.Parse()
		if err == nil {
			t.Fatalf("input %q: expected parse error", tt.input)
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("input %q: error %q does not contain %q", tt.input, err, tt.wantSub)
		}
	}
}

// Lexical errors surface through Parse.
func TestLexicalErrorPropagates(t *testing.T) {
	l := lexer.New("x = 1 & 2;")
	p := New(l)
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error from stray '&'")
	}
	if !strings.Contains(err.Error(), "'&' operator") {
		t.Errorf("error %q should mention the stray '&'", err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	l := lexer.New("echo 1;\necho 2")
	p := New(l)
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Line != 1 {
		t.Errorf("error line = %d, want 1", perr.Line)
	}
}

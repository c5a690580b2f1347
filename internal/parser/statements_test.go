package parser

import (
	"testing"

	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

func parseStmt(t *testing.T, input string) (ast.Statement, *diag.SliceSink) {
	t.Helper()
	l := lexer.New(input)
	sink := diag.NewSliceSink()
	p := New(l, sink)
	return p.parseStatement(), sink
}

func TestParseStatementBlock(t *testing.T) {
	stmt, sink := parseStmt(t, "{ x = 1; y = 2; }")
	requireNoErrors(t, sink)
	blk, ok := stmt.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("expected *ast.BlockStatement, got %T", stmt)
	}
	if len(blk.Statements) != 2 {
		t.Errorf("expected 2 statements, got %d", len(blk.Statements))
	}
}

func TestParseStatementEmpty(t *testing.T) {
	stmt, sink := parseStmt(t, ";")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.EmptyStatement); !ok {
		t.Errorf("expected *ast.EmptyStatement, got %T", stmt)
	}
}

func TestParseStatementIfElse(t *testing.T) {
	stmt, sink := parseStmt(t, "if (a) b(); else c();")
	requireNoErrors(t, sink)
	ifs, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", stmt)
	}
	if ifs.Then == nil || ifs.Else == nil {
		t.Errorf("expected both Then and Else branches, got %+v", ifs)
	}
}

func TestParseStatementSwitch(t *testing.T) {
	stmt, sink := parseStmt(t, `switch (x) {
		case 1:
		case 2:
			a();
			break;
		default:
			b();
	}`)
	requireNoErrors(t, sink)
	sw, ok := stmt.(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("expected *ast.SwitchStatement, got %T", stmt)
	}
	if len(sw.Sections) != 2 {
		t.Fatalf("expected 2 switch sections, got %d", len(sw.Sections))
	}
	if len(sw.Sections[0].Labels) != 2 {
		t.Errorf("expected the first section to share 2 fallthrough labels, got %d", len(sw.Sections[0].Labels))
	}
	if !sw.Sections[1].IsDefault {
		t.Errorf("expected the second section to be the default case")
	}
}

func TestParseStatementWhile(t *testing.T) {
	stmt, sink := parseStmt(t, "while (x < 10) x++;")
	requireNoErrors(t, sink)
	ws, ok := stmt.(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", stmt)
	}
	if ws.Body == nil {
		t.Errorf("expected a body statement")
	}
}

func TestParseStatementDoWhile(t *testing.T) {
	stmt, sink := parseStmt(t, "do { x++; } while (x < 10);")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.DoWhileStatement); !ok {
		t.Errorf("expected *ast.DoWhileStatement, got %T", stmt)
	}
}

func TestParseStatementForWithLocalVarInit(t *testing.T) {
	stmt, sink := parseStmt(t, "for (int i = 0; i < 10; i++) x();")
	requireNoErrors(t, sink)
	fs, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", stmt)
	}
	if len(fs.Init) != 1 {
		t.Fatalf("expected 1 init clause, got %d", len(fs.Init))
	}
	if _, ok := fs.Init[0].(*ast.LocalVarDeclStatement); !ok {
		t.Errorf("expected init to be a local var decl, got %T", fs.Init[0])
	}
	if fs.Condition == nil || len(fs.Iterators) != 1 {
		t.Errorf("expected a condition and one iterator, got %+v", fs)
	}
}

func TestParseStatementForWithExpressionInit(t *testing.T) {
	stmt, sink := parseStmt(t, "for (i = 0, j = 1; ; ) x();")
	requireNoErrors(t, sink)
	fs, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", stmt)
	}
	if len(fs.Init) != 2 {
		t.Errorf("expected 2 comma-separated init expressions, got %d", len(fs.Init))
	}
	if fs.Condition != nil {
		t.Errorf("expected no condition, got %v", fs.Condition)
	}
}

func TestParseStatementForEach(t *testing.T) {
	stmt, sink := parseStmt(t, "foreach (var item in items) Use(item);")
	requireNoErrors(t, sink)
	fe, ok := stmt.(*ast.ForEachStatement)
	if !ok {
		t.Fatalf("expected *ast.ForEachStatement, got %T", stmt)
	}
	if !fe.VarIsImplicit || fe.VarName != "item" {
		t.Errorf("unexpected foreach binding: %+v", fe)
	}
}

func TestParseStatementBreakContinue(t *testing.T) {
	stmt, sink := parseStmt(t, "break;")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.BreakStatement); !ok {
		t.Errorf("expected *ast.BreakStatement, got %T", stmt)
	}

	stmt, sink = parseStmt(t, "continue;")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.ContinueStatement); !ok {
		t.Errorf("expected *ast.ContinueStatement, got %T", stmt)
	}
}

func TestParseStatementGoto(t *testing.T) {
	stmt, sink := parseStmt(t, "goto Label;")
	requireNoErrors(t, sink)
	gs, ok := stmt.(*ast.GotoStatement)
	if !ok {
		t.Fatalf("expected *ast.GotoStatement, got %T", stmt)
	}
	if gs.Label != "Label" {
		t.Errorf("expected label 'Label', got %q", gs.Label)
	}

	stmt, sink = parseStmt(t, "goto case 1;")
	requireNoErrors(t, sink)
	gs, ok = stmt.(*ast.GotoStatement)
	if !ok || gs.CaseExpr == nil {
		t.Errorf("expected goto-case with a case expression, got %+v", stmt)
	}

	stmt, sink = parseStmt(t, "goto default;")
	requireNoErrors(t, sink)
	gs, ok = stmt.(*ast.GotoStatement)
	if !ok || !gs.IsDefault {
		t.Errorf("expected goto-default, got %+v", stmt)
	}
}

func TestParseStatementReturnAndThrow(t *testing.T) {
	stmt, sink := parseStmt(t, "return 1;")
	requireNoErrors(t, sink)
	rs, ok := stmt.(*ast.ReturnStatement)
	if !ok || rs.Value == nil {
		t.Errorf("expected return with a value, got %+v", stmt)
	}

	stmt, sink = parseStmt(t, "return;")
	requireNoErrors(t, sink)
	rs, ok = stmt.(*ast.ReturnStatement)
	if !ok || rs.Value != nil {
		t.Errorf("expected bare return, got %+v", stmt)
	}

	stmt, sink = parseStmt(t, "throw ex;")
	requireNoErrors(t, sink)
	if ts, ok := stmt.(*ast.ThrowStatement); !ok || ts.Value == nil {
		t.Errorf("expected throw with a value, got %+v", stmt)
	}
}

func TestParseStatementTryCatchFinally(t *testing.T) {
	stmt, sink := parseStmt(t, `try {
		a();
	} catch (IOException e) {
		b();
	} catch {
		c();
	} finally {
		d();
	}`)
	requireNoErrors(t, sink)
	ts, ok := stmt.(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected *ast.TryStatement, got %T", stmt)
	}
	if len(ts.Catches) != 2 {
		t.Fatalf("expected 2 catch clauses, got %d", len(ts.Catches))
	}
	if ts.Catches[0].Type == nil || ts.Catches[0].Name != "e" {
		t.Errorf("expected a typed catch binding 'e', got %+v", ts.Catches[0])
	}
	if ts.Catches[1].Type != nil {
		t.Errorf("expected the general catch to have a nil type, got %+v", ts.Catches[1])
	}
	if ts.Finally == nil {
		t.Errorf("expected a finally block")
	}
}

func TestParseStatementLockAndUsing(t *testing.T) {
	stmt, sink := parseStmt(t, "lock (obj) { a(); }")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.LockStatement); !ok {
		t.Errorf("expected *ast.LockStatement, got %T", stmt)
	}

	stmt, sink = parseStmt(t, "using (var f = Open()) { Read(f); }")
	requireNoErrors(t, sink)
	us, ok := stmt.(*ast.UsingStatement)
	if !ok {
		t.Fatalf("expected *ast.UsingStatement, got %T", stmt)
	}
	if _, ok := us.Resource.(*ast.LocalVarDeclStatement); !ok {
		t.Errorf("expected a local-var-decl resource, got %T", us.Resource)
	}
}

func TestParseStatementUnsafeAndFixed(t *testing.T) {
	stmt, sink := parseStmt(t, "unsafe { a(); }")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.UnsafeStatement); !ok {
		t.Errorf("expected *ast.UnsafeStatement, got %T", stmt)
	}

	stmt, sink = parseStmt(t, "fixed (int* p = &x) { Use(p); }")
	requireNoErrors(t, sink)
	fs, ok := stmt.(*ast.FixedStatement)
	if !ok {
		t.Fatalf("expected *ast.FixedStatement, got %T", stmt)
	}
	if fs.Type.PointerNesting != 1 {
		t.Errorf("expected a pointer-typed fixed declaration, got %+v", fs.Type)
	}
}

func TestParseStatementFixedRequiresPointerType(t *testing.T) {
	_, sink := parseStmt(t, "fixed (int p = &x) { Use(p); }")
	if sink.Len() == 0 {
		t.Errorf("expected an error for a fixed statement without a pointer type")
	}
}

func TestParseStatementCheckedUncheckedBlockForm(t *testing.T) {
	stmt, sink := parseStmt(t, "checked { a(); }")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.CheckedStatement); !ok {
		t.Errorf("expected *ast.CheckedStatement, got %T", stmt)
	}

	stmt, sink = parseStmt(t, "unchecked { a(); }")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.UncheckedStatement); !ok {
		t.Errorf("expected *ast.UncheckedStatement, got %T", stmt)
	}
}

func TestParseStatementCheckedExpressionFormIsNotMisroutedToStatementForm(t *testing.T) {
	stmt, sink := parseStmt(t, "checked(1 + 2);")
	requireNoErrors(t, sink)
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
	}
	if _, ok := es.Expr.(*ast.CheckedExpression); !ok {
		t.Errorf("expected the expression-statement's expr to be a CheckedExpression, got %T", es.Expr)
	}
}

func TestParseStatementYieldReturnAndBreak(t *testing.T) {
	stmt, sink := parseStmt(t, "yield return 1;")
	requireNoErrors(t, sink)
	yr, ok := stmt.(*ast.YieldReturnStatement)
	if !ok {
		t.Fatalf("expected *ast.YieldReturnStatement, got %T", stmt)
	}
	if yr.Value == nil {
		t.Errorf("expected a yielded value")
	}

	stmt, sink = parseStmt(t, "yield break;")
	requireNoErrors(t, sink)
	if _, ok := stmt.(*ast.YieldBreakStatement); !ok {
		t.Errorf("expected *ast.YieldBreakStatement, got %T", stmt)
	}
}

func TestParseStatementYieldAsPlainIdentifierWhenNotFollowedByReturnOrBreak(t *testing.T) {
	stmt, sink := parseStmt(t, "yield = 1;")
	requireNoErrors(t, sink)
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
	}
	assign, ok := es.Expr.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expected an assignment expression, got %T", es.Expr)
	}
	if ident, ok := assign.Target.(*ast.Identifier); !ok || ident.Name != "yield" {
		t.Errorf("expected 'yield' to be parsed as a plain identifier target, got %+v", assign.Target)
	}
}

func TestParseStatementLabeled(t *testing.T) {
	stmt, sink := parseStmt(t, "Start: x();")
	requireNoErrors(t, sink)
	ls, ok := stmt.(*ast.LabeledStatement)
	if !ok {
		t.Fatalf("expected *ast.LabeledStatement, got %T", stmt)
	}
	if ls.Label != "Start" {
		t.Errorf("expected label 'Start', got %q", ls.Label)
	}
}

func TestParseStatementLocalConst(t *testing.T) {
	stmt, sink := parseStmt(t, "const int Max = 10;")
	requireNoErrors(t, sink)
	lv, ok := stmt.(*ast.LocalVarDeclStatement)
	if !ok {
		t.Fatalf("expected *ast.LocalVarDeclStatement, got %T", stmt)
	}
	if !lv.IsConst || lv.Type.Name != "int" || len(lv.Declarators) != 1 {
		t.Errorf("unexpected local const decl: %+v", lv)
	}
}

func TestParseStatementLocalVarDecl(t *testing.T) {
	stmt, sink := parseStmt(t, "int x = 1, y = 2;")
	requireNoErrors(t, sink)
	lv, ok := stmt.(*ast.LocalVarDeclStatement)
	if !ok {
		t.Fatalf("expected *ast.LocalVarDeclStatement, got %T", stmt)
	}
	if lv.VarIsImplicit {
		t.Errorf("did not expect VarIsImplicit for an explicitly typed decl")
	}
	if len(lv.Declarators) != 2 {
		t.Errorf("expected 2 declarators, got %d", len(lv.Declarators))
	}
}

func TestParseStatementVarImplicitLocalVarDecl(t *testing.T) {
	stmt, sink := parseStmt(t, "var x = 1;")
	requireNoErrors(t, sink)
	lv, ok := stmt.(*ast.LocalVarDeclStatement)
	if !ok || !lv.VarIsImplicit {
		t.Errorf("expected an implicit var declaration, got %+v", stmt)
	}
}

func TestParseStatementLocalVarDeclNotConfusedWithMethodCall(t *testing.T) {
	stmt, sink := parseStmt(t, "Foo.Bar();")
	requireNoErrors(t, sink)
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected a plain expression statement for a method call, got %T", stmt)
	}
	if _, ok := es.Expr.(*ast.InvocationExpression); !ok {
		t.Errorf("expected an invocation expression, got %T", es.Expr)
	}
}

func TestParseStatementExpressionStatement(t *testing.T) {
	stmt, sink := parseStmt(t, "x = 1;")
	requireNoErrors(t, sink)
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
	}
	if _, ok := es.Expr.(*ast.AssignmentExpression); !ok {
		t.Errorf("expected an assignment expression, got %T", es.Expr)
	}
}

package parser

import (
	"testing"

	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/diag"
)

func parseClassMembers(t *testing.T, body string) (*ast.TypeDecl, *diag.SliceSink) {
	t.Helper()
	return parseType(t, "class C {\n"+body+"\n}")
}

func TestParseMemberField(t *testing.T) {
	td, sink := parseClassMembers(t, "private int count;")
	requireNoErrors(t, sink)
	fd, ok := td.Members[0].(*ast.FieldDecl)
	if !ok {
		t.Fatalf("expected *ast.FieldDecl, got %T", td.Members[0])
	}
	if !fd.Modifiers.Has(ast.ModPrivate) || fd.Type.Name != "int" || fd.Declarators[0].Name != "count" {
		t.Errorf("unexpected field decl: %+v", fd)
	}
}

func TestParseMemberFieldMultipleDeclarators(t *testing.T) {
	td, sink := parseClassMembers(t, "int a = 1, b = 2;")
	requireNoErrors(t, sink)
	fd := td.Members[0].(*ast.FieldDecl)
	if len(fd.Declarators) != 2 {
		t.Fatalf("expected 2 declarators, got %d", len(fd.Declarators))
	}
}

func TestParseMemberConst(t *testing.T) {
	td, sink := parseClassMembers(t, "public const int Max = 100;")
	requireNoErrors(t, sink)
	cd, ok := td.Members[0].(*ast.ConstDecl)
	if !ok {
		t.Fatalf("expected *ast.ConstDecl, got %T", td.Members[0])
	}
	if cd.Declarators[0].Name != "Max" {
		t.Errorf("unexpected const decl: %+v", cd)
	}
}

func TestParseMemberMethodWithBody(t *testing.T) {
	td, sink := parseClassMembers(t, `public int Add(int a, int b) {
		return a + b;
	}`)
	requireNoErrors(t, sink)
	md, ok := td.Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected *ast.MethodDecl, got %T", td.Members[0])
	}
	if md.Name != "Add" || len(md.Parameters) != 2 || md.Body == nil {
		t.Errorf("unexpected method decl: %+v", md)
	}
}

func TestParseMemberAbstractMethodHasNoBody(t *testing.T) {
	td, sink := parseClassMembers(t, "public abstract void Render();")
	requireNoErrors(t, sink)
	md := td.Members[0].(*ast.MethodDecl)
	if md.Body != nil {
		t.Errorf("expected a nil body for an abstract method, got %+v", md.Body)
	}
}

func TestParseMemberGenericMethodWithConstraints(t *testing.T) {
	td, sink := parseClassMembers(t, `T Convert<T>(object value) where T : struct {
		return default(T);
	}`)
	requireNoErrors(t, sink)
	md := td.Members[0].(*ast.MethodDecl)
	if len(md.TemplateParams) != 1 || md.TemplateParams[0].Name != "T" {
		t.Fatalf("unexpected template params: %+v", md.TemplateParams)
	}
	if len(md.Constraints) != 1 || md.Constraints[0].Items[0].Kind != ast.ConstraintKindStruct {
		t.Errorf("unexpected constraints: %+v", md.Constraints)
	}
}

func TestParseMemberParameterModifiersAndDefault(t *testing.T) {
	td, sink := parseClassMembers(t, "void M(ref int a, out int b, params int[] c, int d = 5) { }")
	requireNoErrors(t, sink)
	md := td.Members[0].(*ast.MethodDecl)
	if len(md.Parameters) != 4 {
		t.Fatalf("expected 4 parameters, got %d", len(md.Parameters))
	}
	if md.Parameters[0].Modifier != "ref" || md.Parameters[1].Modifier != "out" || md.Parameters[2].Modifier != "params" {
		t.Errorf("unexpected parameter modifiers: %+v", md.Parameters)
	}
	if md.Parameters[3].Default == nil {
		t.Errorf("expected parameter d to carry a default value expression")
	}
}

func TestParseMemberConstructorWithBaseInitializer(t *testing.T) {
	td, sink := parseClassMembers(t, `public C(int x) : base(x) {
	}`)
	requireNoErrors(t, sink)
	cd, ok := td.Members[0].(*ast.ConstructorDecl)
	if !ok {
		t.Fatalf("expected *ast.ConstructorDecl, got %T", td.Members[0])
	}
	if cd.InitializerKind != "base" || len(cd.InitializerArgs) != 1 {
		t.Errorf("unexpected constructor initializer: %+v", cd)
	}
}

func TestParseMemberConstructorWithThisInitializer(t *testing.T) {
	td, sink := parseClassMembers(t, `public C() : this(0) {
	}`)
	requireNoErrors(t, sink)
	cd := td.Members[0].(*ast.ConstructorDecl)
	if cd.InitializerKind != "this" {
		t.Errorf("expected a 'this(...)' initializer, got %q", cd.InitializerKind)
	}
}

func TestParseMemberDestructor(t *testing.T) {
	td, sink := parseClassMembers(t, "~C() { }")
	requireNoErrors(t, sink)
	dd, ok := td.Members[0].(*ast.DestructorDecl)
	if !ok {
		t.Fatalf("expected *ast.DestructorDecl, got %T", td.Members[0])
	}
	if dd.Name != "C" {
		t.Errorf("expected destructor name 'C', got %q", dd.Name)
	}
}

func TestParseMemberPropertyWithGetSet(t *testing.T) {
	td, sink := parseClassMembers(t, `public string Name {
		get { return name; }
		set { name = value; }
	}`)
	requireNoErrors(t, sink)
	pd, ok := td.Members[0].(*ast.PropertyDecl)
	if !ok {
		t.Fatalf("expected *ast.PropertyDecl, got %T", td.Members[0])
	}
	if len(pd.Accessors) != 2 {
		t.Fatalf("expected 2 accessors, got %d", len(pd.Accessors))
	}
	if pd.Accessors[0].Kind != ast.AccessorGet || pd.Accessors[1].Kind != ast.AccessorSet {
		t.Errorf("unexpected accessor kinds: %+v", pd.Accessors)
	}
}

func TestParseMemberAutoPropertyWithInitializer(t *testing.T) {
	td, sink := parseClassMembers(t, "public int Count { get; set; } = 0;")
	requireNoErrors(t, sink)
	pd := td.Members[0].(*ast.PropertyDecl)
	if len(pd.Accessors) != 2 || pd.Accessors[0].Body != nil {
		t.Errorf("expected auto-implemented accessors with no bodies, got %+v", pd.Accessors)
	}
	if pd.Initializer == nil {
		t.Errorf("expected an initializer expression")
	}
}

func TestParseMemberIndexer(t *testing.T) {
	td, sink := parseClassMembers(t, `public int this[int i] {
		get { return items[i]; }
		set { items[i] = value; }
	}`)
	requireNoErrors(t, sink)
	id, ok := td.Members[0].(*ast.IndexerDecl)
	if !ok {
		t.Fatalf("expected *ast.IndexerDecl, got %T", td.Members[0])
	}
	if len(id.Parameters) != 1 || len(id.Accessors) != 2 {
		t.Errorf("unexpected indexer decl: %+v", id)
	}
}

func TestParseMemberEventWithAccessors(t *testing.T) {
	td, sink := parseClassMembers(t, `public event Handler Changed {
		add { inner += value; }
		remove { inner -= value; }
	}`)
	requireNoErrors(t, sink)
	ed, ok := td.Members[0].(*ast.EventDecl)
	if !ok {
		t.Fatalf("expected *ast.EventDecl, got %T", td.Members[0])
	}
	if len(ed.Accessors) != 2 || ed.Accessors[0].Kind != ast.AccessorAdd || ed.Accessors[1].Kind != ast.AccessorRemove {
		t.Errorf("unexpected event accessors: %+v", ed.Accessors)
	}
}

func TestParseMemberFieldStyleEvent(t *testing.T) {
	td, sink := parseClassMembers(t, "public event Handler Changed;")
	requireNoErrors(t, sink)
	ed := td.Members[0].(*ast.EventDecl)
	if ed.Accessors != nil {
		t.Errorf("expected no explicit accessors for a field-style event, got %+v", ed.Accessors)
	}
}

func TestParseMemberBinaryOperatorOverload(t *testing.T) {
	td, sink := parseClassMembers(t, `public static Point operator +(Point a, Point b) {
		return new Point(a.X + b.X, a.Y + b.Y);
	}`)
	requireNoErrors(t, sink)
	od, ok := td.Members[0].(*ast.OperatorDecl)
	if !ok {
		t.Fatalf("expected *ast.OperatorDecl, got %T", td.Members[0])
	}
	if od.Kind != ast.OperatorKindBinaryOrUnary || od.OperatorSym != "+" || len(od.Parameters) != 2 {
		t.Errorf("unexpected operator decl: %+v", od)
	}
}

func TestParseMemberShiftRightOperatorOverload(t *testing.T) {
	td, sink := parseClassMembers(t, `public static BigNum operator >>(BigNum a, int shift) {
		return a;
	}`)
	requireNoErrors(t, sink)
	od := td.Members[0].(*ast.OperatorDecl)
	if od.OperatorSym != ">>" {
		t.Errorf("expected operator symbol '>>', got %q", od.OperatorSym)
	}
}

func TestParseMemberImplicitConversionOperator(t *testing.T) {
	td, sink := parseClassMembers(t, `public static implicit operator int(Wrapper w) {
		return w.Value;
	}`)
	requireNoErrors(t, sink)
	od, ok := td.Members[0].(*ast.OperatorDecl)
	if !ok {
		t.Fatalf("expected *ast.OperatorDecl, got %T", td.Members[0])
	}
	if od.Kind != ast.OperatorKindConversion || !od.IsImplicit || od.ReturnType.Name != "int" {
		t.Errorf("unexpected conversion operator: %+v", od)
	}
}

func TestParseMemberExplicitConversionOperator(t *testing.T) {
	td, sink := parseClassMembers(t, `public static explicit operator Wrapper(int v) {
		return new Wrapper(v);
	}`)
	requireNoErrors(t, sink)
	od := td.Members[0].(*ast.OperatorDecl)
	if od.IsImplicit {
		t.Errorf("expected an explicit conversion, got IsImplicit=true")
	}
}

func TestParseMemberConstructorNotConfusedWithMethod(t *testing.T) {
	td, sink := parseClassMembers(t, `void Run() { }
	C() { }`)
	requireNoErrors(t, sink)
	if len(td.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(td.Members))
	}
	if _, ok := td.Members[0].(*ast.MethodDecl); !ok {
		t.Errorf("expected the first member to be a method, got %T", td.Members[0])
	}
	if _, ok := td.Members[1].(*ast.ConstructorDecl); !ok {
		t.Errorf("expected the second member to be a constructor, got %T", td.Members[1])
	}
}

func TestParseMemberAttributeSectionsAttachToNextMember(t *testing.T) {
	td, sink := parseClassMembers(t, `[Obsolete]
	[CLSCompliant(false)]
	public void Legacy() { }`)
	requireNoErrors(t, sink)
	md, ok := td.Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected *ast.MethodDecl, got %T", td.Members[0])
	}
	if len(md.Attributes) != 2 {
		t.Fatalf("expected 2 stacked attribute sections, got %d", len(md.Attributes))
	}
}

func TestParseMemberParameterAttributeSection(t *testing.T) {
	td, sink := parseClassMembers(t, "void M([NotNull] string s) { }")
	requireNoErrors(t, sink)
	md := td.Members[0].(*ast.MethodDecl)
	if len(md.Parameters[0].Attributes) != 1 {
		t.Errorf("expected the parameter to carry one attribute section, got %+v", md.Parameters[0].Attributes)
	}
}

func TestParseMemberLocalAttrTargetOnMethod(t *testing.T) {
	td, sink := parseClassMembers(t, `[return: NotNull]
	string M() { return ""; }`)
	requireNoErrors(t, sink)
	md := td.Members[0].(*ast.MethodDecl)
	if len(md.Attributes) != 1 || md.Attributes[0].Target != "return" {
		t.Errorf("expected a 'return:' targeted attribute section, got %+v", md.Attributes)
	}
}

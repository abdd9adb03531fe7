package evaluator

import (
	"testing"

	"github.com/rljacobson/cps/internal/ast"
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// storeWithHandler returns an initial store with the default (top-level
// delivering) handler installed at the fixed handler location, mirroring
// what pkg/cps.Engine.Eval does before calling down into the driver.
func storeWithHandler() runtime.Store {
	s := runtime.NewStore()
	return s.Upd(s.HandlerLoc(), runtime.DefaultHandler())
}

func v(name string) ast.Value { return ast.VariableRef{Name: ast.Variable(name)} }
func lbl(name string) ast.Value { return ast.LabelRef{Name: ast.Variable(name)} }
func iv(n int64) ast.Value    { return ast.IntegerLit{Value: n} }

// --- Scenario 1: identity program -----------------------------------------

func TestIdentityProgram(t *testing.T) {
	ev := New()
	// formals (k, x); body: App(k, [x])
	body := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("x")}}

	answer, _ := ev.Eval(
		[]ast.Variable{"k", "x"},
		body,
		[]runtime.Value{runtime.TopLevelContinuation(), &runtime.IntegerValue{Value: 41}},
		storeWithHandler(),
	)

	got, ok := answer.(*runtime.IntegerValue)
	if !ok || got.Value != 41 {
		t.Fatalf("answer = %v, want IntegerValue(41)", answer)
	}
}

// --- Scenario 2: allocate-and-read ----------------------------------------

func TestAllocateAndRead(t *testing.T) {
	ev := New()
	// makeref(5) -> r; subscript(r, 0) -> w; App(k, [w])
	inner := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("w")}}
	subscriptExp := &ast.PrimopExp{
		Op:      ast.Subscript,
		Args:    []ast.Value{v("r"), iv(0)},
		Binders: []ast.Variable{"w"},
		Arms:    []ast.CExp{inner},
	}
	makerefExp := &ast.PrimopExp{
		Op:      ast.MakeRef,
		Args:    []ast.Value{iv(5)},
		Binders: []ast.Variable{"r"},
		Arms:    []ast.CExp{subscriptExp},
	}

	answer, finalStore := ev.Eval(
		[]ast.Variable{"k"},
		makerefExp,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	got, ok := answer.(*runtime.IntegerValue)
	if !ok || got.Value != 5 {
		t.Fatalf("answer = %v, want IntegerValue(5)", answer)
	}

	// Exactly one new location was allocated: the very first one handed
	// out after the fixed handler location.
	if readBack := finalStore.Fetch(runtime.Location(1)); readBack.(*runtime.IntegerValue).Value != 5 {
		t.Fatalf("store at the newly allocated location = %v, want 5", readBack)
	}
}

// --- Scenario 3: update round-trip -----------------------------------------

func TestUpdateRoundTrip(t *testing.T) {
	ev := New()
	// makeref(1) -> r; update(r, 0, 99) -> (); subscript(r, 0) -> w; App(k, [w])
	tail := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("w")}}
	subscriptExp := &ast.PrimopExp{
		Op:      ast.Subscript,
		Args:    []ast.Value{v("r"), iv(0)},
		Binders: []ast.Variable{"w"},
		Arms:    []ast.CExp{tail},
	}
	updateExp := &ast.PrimopExp{
		Op:      ast.Update,
		Args:    []ast.Value{v("r"), iv(0), iv(99)},
		Binders: []ast.Variable{},
		Arms:    []ast.CExp{subscriptExp},
	}
	makerefExp := &ast.PrimopExp{
		Op:      ast.MakeRef,
		Args:    []ast.Value{iv(1)},
		Binders: []ast.Variable{"r"},
		Arms:    []ast.CExp{updateExp},
	}

	answer, _ := ev.Eval(
		[]ast.Variable{"k"},
		makerefExp,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	got, ok := answer.(*runtime.IntegerValue)
	if !ok || got.Value != 99 {
		t.Fatalf("answer = %v, want IntegerValue(99) after update", answer)
	}
}

// --- Scenario 4: overflow trap ----------------------------------------------

func TestOverflowTrap(t *testing.T) {
	ev := New()
	maxInt := ev.Bounds.MaxInt
	// "+"(maxint, 1) -> w; App(k, [w]) -- the success arm is never reached.
	success := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("w")}}
	body := &ast.PrimopExp{
		Op:      ast.Add,
		Args:    []ast.Value{iv(maxInt), iv(1)},
		Binders: []ast.Variable{"w"},
		Arms:    []ast.CExp{success},
	}

	answer, _ := ev.Eval(
		[]ast.Variable{"k"},
		body,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	exn, ok := answer.(*runtime.ExceptionValue)
	if !ok {
		t.Fatalf("answer = %v, want an ExceptionValue delivered to the default handler", answer)
	}
	tag, ok := exn.Tag.(*runtime.StringValue)
	if !ok || tag.Value != "Overflow" {
		t.Fatalf("exception tag = %v, want Overflow", exn.Tag)
	}
}

// --- Scenario 5: mutual recursion via Fix -----------------------------------

// isEven(n, k) = ieql(n, 0) -> App(k,[1]) | sub(n,1) -> n1; App(isOdd,[n1,k])
// isOdd(n, k)  = ieql(n, 0) -> App(k,[0]) | sub(n,1) -> n1; App(isEven,[n1,k])
//
// Deep enough (several thousand steps) that a native-recursion evaluator
// would blow the Go call stack; the trampoline must not.
func TestMutualRecursionViaFix(t *testing.T) {
	ev := New()

	evenRecur := &ast.AppExp{Fn: lbl("isOdd"), Args: []ast.Value{v("n1"), v("k")}}
	evenSub := &ast.PrimopExp{
		Op:      ast.Sub,
		Args:    []ast.Value{v("n"), iv(1)},
		Binders: []ast.Variable{"n1"},
		Arms:    []ast.CExp{evenRecur},
	}
	evenBase := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(1)}}
	evenBody := &ast.PrimopExp{
		Op:      ast.IEql,
		Args:    []ast.Value{v("n"), iv(0)},
		Binders: []ast.Variable{},
		Arms:    []ast.CExp{evenBase, evenSub},
	}

	oddRecur := &ast.AppExp{Fn: lbl("isEven"), Args: []ast.Value{v("n1"), v("k")}}
	oddSub := &ast.PrimopExp{
		Op:      ast.Sub,
		Args:    []ast.Value{v("n"), iv(1)},
		Binders: []ast.Variable{"n1"},
		Arms:    []ast.CExp{oddRecur},
	}
	oddBase := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(0)}}
	oddBody := &ast.PrimopExp{
		Op:      ast.IEql,
		Args:    []ast.Value{v("n"), iv(0)},
		Binders: []ast.Variable{},
		Arms:    []ast.CExp{oddBase, oddSub},
	}

	fix := &ast.FixExp{
		Defs: []ast.FunDef{
			{Name: "isEven", Formals: []ast.Variable{"n", "k"}, Body: evenBody},
			{Name: "isOdd", Formals: []ast.Variable{"n", "k"}, Body: oddBody},
		},
		Body: &ast.AppExp{Fn: lbl("isEven"), Args: []ast.Value{v("n0"), v("k0")}},
	}

	answer, _ := ev.Eval(
		[]ast.Variable{"n0", "k0"},
		fix,
		[]runtime.Value{&runtime.IntegerValue{Value: 5001}, runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	got, ok := answer.(*runtime.IntegerValue)
	if !ok || got.Value != 0 {
		t.Fatalf("isEven(5001) answer = %v, want IntegerValue(0) (5001 is odd)", answer)
	}
}

// --- Scenario 6: Switch arm selection and out-of-range ----------------------

func TestSwitchSelectsArmByIndex(t *testing.T) {
	ev := New()
	arms := []ast.CExp{
		&ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(100)}},
		&ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(200)}},
		&ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(300)}},
	}
	body := &ast.SwitchExp{V: v("i"), Arms: arms}

	answer, _ := ev.Eval(
		[]ast.Variable{"k", "i"},
		body,
		[]runtime.Value{runtime.TopLevelContinuation(), &runtime.IntegerValue{Value: 1}},
		storeWithHandler(),
	)

	got, ok := answer.(*runtime.IntegerValue)
	if !ok || got.Value != 200 {
		t.Fatalf("Switch(1) answer = %v, want IntegerValue(200)", answer)
	}
}

func TestSwitchOutOfRangePanics(t *testing.T) {
	ev := New()
	body := &ast.SwitchExp{
		V:    v("i"),
		Arms: []ast.CExp{&ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(1)}}},
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for an out-of-range Switch index")
		}
		if _, ok := r.(*cpserrors.ImplementationError); !ok {
			t.Fatalf("expected an *ImplementationError panic, got %T: %v", r, r)
		}
	}()

	ev.Eval(
		[]ast.Variable{"k", "i"},
		body,
		[]runtime.Value{runtime.TopLevelContinuation(), &runtime.IntegerValue{Value: 5}},
		storeWithHandler(),
	)
}

// --- Testable property: record projection law -------------------------------

func TestRecordProjectionLaw(t *testing.T) {
	ev := New()
	// Record([10, 20, 30], w) ; Select(1, w) -> a ; Offset(1, w) -> w2 ;
	// Select(0, w2) -> b ; App(k, [a, b])
	// Select(1, w) must equal Select(0, Offset(1, w)).
	final := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("a"), v("b")}}
	selectAfterOffset := &ast.SelectExp{I: 0, V: v("w2"), W: "b", Body: final}
	offset := &ast.OffsetExp{I: 1, V: v("w"), W: "w2", Body: selectAfterOffset}
	selectDirect := &ast.SelectExp{I: 1, V: v("w"), W: "a", Body: offset}
	record := &ast.RecordExp{
		Fields: []ast.Field{
			{Value: iv(10), Path: ast.Off{K: 0}},
			{Value: iv(20), Path: ast.Off{K: 0}},
			{Value: iv(30), Path: ast.Off{K: 0}},
		},
		W:    "w",
		Body: selectDirect,
	}

	answer, _ := ev.Eval(
		[]ast.Variable{"k"},
		record,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	got, ok := answer.([]runtime.Value)
	if !ok || len(got) != 2 {
		t.Fatalf("answer = %v, want a 2-tuple", answer)
	}
	a := got[0].(*runtime.IntegerValue).Value
	b := got[1].(*runtime.IntegerValue).Value
	if a != 20 || b != 20 {
		t.Fatalf("Select(1,w) = %d, Select(0,Offset(1,w)) = %d, want both 20", a, b)
	}
}

// --- Testable property: handler round-trip ----------------------------------

func TestHandlerRoundTrip(t *testing.T) {
	ev := New()
	// gethdlr() -> h; sethdlr(h) -> (); gethdlr() -> h2; App(k, [h, h2])
	final := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("h"), v("h2")}}
	getAgain := &ast.PrimopExp{Op: ast.GetHdlr, Binders: []ast.Variable{"h2"}, Arms: []ast.CExp{final}}
	set := &ast.PrimopExp{Op: ast.SetHdlr, Args: []ast.Value{v("h")}, Binders: []ast.Variable{}, Arms: []ast.CExp{getAgain}}
	get := &ast.PrimopExp{Op: ast.GetHdlr, Binders: []ast.Variable{"h"}, Arms: []ast.CExp{set}}

	answer, _ := ev.Eval(
		[]ast.Variable{"k"},
		get,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	got, ok := answer.([]runtime.Value)
	if !ok || len(got) != 2 {
		t.Fatalf("answer = %v, want a 2-tuple", answer)
	}
	if got[0] != got[1] {
		t.Fatalf("handler round-trip: gethdlr before/after sethdlr(h) with the same h must agree, got %v and %v", got[0], got[1])
	}
}

// --- Testable property: boxed discriminator ---------------------------------

func TestBoxedDiscriminator(t *testing.T) {
	ev := New()
	tArm := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(1)}}
	fArm := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(0)}}
	body := &ast.PrimopExp{Op: ast.Boxed, Args: []ast.Value{v("x")}, Binders: []ast.Variable{}, Arms: []ast.CExp{tArm, fArm}}

	cases := []struct {
		val     runtime.Value
		wantInt int64
	}{
		{&runtime.IntegerValue{Value: 7}, 0},
		{&runtime.StringValue{Value: "x"}, 1},
	}
	for _, c := range cases {
		answer, _ := ev.Eval(
			[]ast.Variable{"k", "x"},
			body,
			[]runtime.Value{runtime.TopLevelContinuation(), c.val},
			storeWithHandler(),
		)
		got := answer.(*runtime.IntegerValue).Value
		if got != c.wantInt {
			t.Fatalf("boxed(%v) branch = %d, want %d", c.val, got, c.wantInt)
		}
	}
}

// --- Testable property: division exceptions ---------------------------------

func TestDivisionByZeroRaises(t *testing.T) {
	ev := New()
	success := &ast.AppExp{Fn: v("k"), Args: []ast.Value{v("w")}}
	body := &ast.PrimopExp{Op: ast.Div, Args: []ast.Value{iv(10), iv(0)}, Binders: []ast.Variable{"w"}, Arms: []ast.CExp{success}}

	answer, _ := ev.Eval(
		[]ast.Variable{"k"},
		body,
		[]runtime.Value{runtime.TopLevelContinuation()},
		storeWithHandler(),
	)

	exn, ok := answer.(*runtime.ExceptionValue)
	if !ok {
		t.Fatalf("answer = %v, want an ExceptionValue", answer)
	}
	if tag := exn.Tag.(*runtime.StringValue).Value; tag != "Div" {
		t.Fatalf("exception tag = %q, want Div", tag)
	}
}

// --- Testable property: range check -----------------------------------------

func TestRangeCheck(t *testing.T) {
	ev := New()
	tArm := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(1)}}
	fArm := &ast.AppExp{Fn: v("k"), Args: []ast.Value{iv(0)}}
	body := &ast.PrimopExp{Op: ast.RangeChk, Args: []ast.Value{v("i"), v("j")}, Binders: []ast.Variable{}, Arms: []ast.CExp{tArm, fArm}}

	cases := []struct{ i, j, want int64 }{
		{2, 5, 1},
		{5, 2, 0},
		{-1, 3, 0},
		{3, -1, 1},
	}
	for _, c := range cases {
		answer, _ := ev.Eval(
			[]ast.Variable{"k", "i", "j"},
			body,
			[]runtime.Value{runtime.TopLevelContinuation(), &runtime.IntegerValue{Value: c.i}, &runtime.IntegerValue{Value: c.j}},
			storeWithHandler(),
		)
		got := answer.(*runtime.IntegerValue).Value
		if got != c.want {
			t.Fatalf("rangechk(%d,%d) = %d, want %d", c.i, c.j, got, c.want)
		}
	}
}

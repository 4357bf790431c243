package builtins

import (
	"strings"
	"testing"

	"github.com/otieno-dev/lugha/internal/host"
	"github.com/otieno-dev/lugha/internal/runtime"
)

func newTestContext(io host.IO) (*runtime.Context, *Registry) {
	table := runtime.NewSymbolTable()
	reg := RegisterAll(table, io)
	return runtime.NewGlobalContext("<global>", table), reg
}

func call(t *testing.T, ctx *runtime.Context, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	v, ok := ctx.SymbolTable.Get(name)
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	fn, ok := v.(*runtime.BuiltinFunction)
	if !ok {
		t.Fatalf("%q is not a BuiltinFunction", name)
	}
	result, err := fn.Handler(ctx, args)
	if err != nil {
		t.Fatalf("%q returned error: %v", name, err)
	}
	return result
}

func TestAndikaWritesLineAndReturnsNull(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	result := call(t, ctx, "andika", runtime.NewString("habari"))

	if _, ok := result.(*runtime.Null); !ok {
		t.Errorf("andika returned %v, want Null", result)
	}
	if got, want := io.Output.String(), "habari\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSomaReturnsEmptyStringOnEOF(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	result := call(t, ctx, "soma", runtime.NewString("jina? "))
	if got := result.(*runtime.String).Value; got != "" {
		t.Errorf("soma on EOF = %q, want empty", got)
	}
}

func TestSomaNambariReprompt(t *testing.T) {
	io := host.NewFake("sio-nambari", "42")
	ctx, _ := newTestContext(io)
	result := call(t, ctx, "somaNambari", runtime.NewString("? "))
	if got := result.(*runtime.Number).Value; got != 42 {
		t.Errorf("got %v, want 42", got)
	}
	if !strings.Contains(io.Output.String(), "Jibu yako si nambari. Jaribu tena.") {
		t.Error("expected reprompt message after invalid input")
	}
}

func TestFutaClearsScreen(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	call(t, ctx, "futa")
	if io.ClearedCount != 1 {
		t.Errorf("ClearedCount = %d, want 1", io.ClearedCount)
	}
}

func TestTypePredicates(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)

	if !call(t, ctx, "niNambari", runtime.NewNumber(1)).IsTrue() {
		t.Error("niNambari(1) should be true")
	}
	if call(t, ctx, "niNambari", runtime.NewString("x")).IsTrue() {
		t.Error("niNambari(\"x\") should be false")
	}
	if !call(t, ctx, "niOrodha", runtime.NewList(nil)).IsTrue() {
		t.Error("niOrodha([]) should be true")
	}
}

func TestIdadiLengthAndTypeError(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)

	if got := call(t, ctx, "idadi", runtime.NewString("hello")).(*runtime.Number).Value; got != 5 {
		t.Errorf("idadi(\"hello\") = %v, want 5", got)
	}
	if got := call(t, ctx, "idadi", runtime.NewList(nil)).(*runtime.Number).Value; got != 0 {
		t.Errorf("idadi([]) = %v, want 0", got)
	}

	v, ok := ctx.SymbolTable.Get("idadi")
	if !ok {
		t.Fatal("idadi not registered")
	}
	_, err := v.(*runtime.BuiltinFunction).Handler(ctx, []runtime.Value{runtime.NewNumber(42)})
	if err == nil {
		t.Fatal("idadi(42) should be a TypeError")
	}
}

func TestSentinelsPrePopulated(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)

	for _, name := range []string{"kweli", "uwongo", "tupu"} {
		if _, ok := ctx.SymbolTable.Get(name); !ok {
			t.Errorf("sentinel %q not pre-populated", name)
		}
	}
	if kweli, _ := ctx.SymbolTable.Get("kweli"); !kweli.IsTrue() {
		t.Error("kweli should be true")
	}
	if uwongo, _ := ctx.SymbolTable.Get("uwongo"); uwongo.IsTrue() {
		t.Error("uwongo should be false")
	}
}

func TestUnganishaConcatenatesLists(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	a := runtime.NewList([]runtime.Value{runtime.NewNumber(1)})
	b := runtime.NewList([]runtime.Value{runtime.NewNumber(2), runtime.NewNumber(3)})
	result := call(t, ctx, "unganisha", a, b)
	if got := len(result.(*runtime.List).Elements); got != 3 {
		t.Errorf("len = %d, want 3", got)
	}
}

func TestPigaReversesList(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	l := runtime.NewList([]runtime.Value{runtime.NewNumber(1), runtime.NewNumber(2), runtime.NewNumber(3)})
	result := call(t, ctx, "piga", l).(*runtime.List)
	if result.Elements[0].(*runtime.Number).Value != 3 || result.Elements[2].(*runtime.Number).Value != 1 {
		t.Errorf("piga result = %v, want reversed", result)
	}
}

func TestAinaNamesKind(t *testing.T) {
	io := host.NewFake()
	ctx, _ := newTestContext(io)
	if got := call(t, ctx, "aina", runtime.NewNumber(1)).(*runtime.String).Value; got != "nambari" {
		t.Errorf("aina(1) = %q, want nambari", got)
	}
}

func TestRegistryIntrospection(t *testing.T) {
	io := host.NewFake()
	_, reg := newTestContext(io)
	if len(reg.Names()) == 0 {
		t.Error("Names() should be non-empty")
	}
	if ioNames := reg.Category(CategoryIO); len(ioNames) != 4 {
		t.Errorf("CategoryIO has %d entries, want 4", len(ioNames))
	}
}

package builtins

import (
	"github.com/otieno-dev/lugha/internal/host"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// entries builds every built-in Entry, closing the I/O-dependent ones over
// the given host.IO.
func entries(io host.IO) []Entry {
	return []Entry{
		{Name: "andika", ParamNames: []string{"value"}, Category: CategoryIO,
			Description: "Print value followed by a newline.", Handler: andika(io)},
		{Name: "soma", ParamNames: []string{"swali"}, Category: CategoryIO,
			Description: "Prompt and read one line from stdin.", Handler: soma(io)},
		{Name: "somaNambari", ParamNames: []string{"swali"}, Category: CategoryIO,
			Description: "Prompt and read a number, re-prompting on parse failure.", Handler: somaNambari(io)},
		{Name: "futa", ParamNames: nil, Category: CategoryIO,
			Description: "Clear the terminal screen.", Handler: futa(io)},

		{Name: "niNambari", ParamNames: []string{"value"}, Category: CategoryPredicate,
			Description: "Is value a Number?", Handler: kindPredicate(runtime.KindNumber)},
		{Name: "niJina", ParamNames: []string{"value"}, Category: CategoryPredicate,
			Description: "Is value a String?", Handler: kindPredicate(runtime.KindString)},
		{Name: "niOrodha", ParamNames: []string{"value"}, Category: CategoryPredicate,
			Description: "Is value a List?", Handler: kindPredicate(runtime.KindList)},
		{Name: "niShughuli", ParamNames: []string{"value"}, Category: CategoryPredicate,
			Description: "Is value any kind of function?", Handler: niShughuli},
		{Name: "idadi", ParamNames: []string{"value"}, Category: CategoryPredicate,
			Description: "Length of a String or List.", Handler: idadi},

		{Name: "jumla", ParamNames: []string{"orodha"}, Category: CategoryMath,
			Description: "Sum of a list of numbers.", Handler: jumla},
		{Name: "kubwa", ParamNames: []string{"a", "b"}, Category: CategoryMath,
			Description: "Larger of two numbers.", Handler: kubwa},
		{Name: "ndogo", ParamNames: []string{"a", "b"}, Category: CategoryMath,
			Description: "Smaller of two numbers.", Handler: ndogo},

		{Name: "unganisha", ParamNames: []string{"..."}, Category: CategoryArray,
			Description: "Concatenate any number of lists.", Handler: unganisha},
		{Name: "piga", ParamNames: []string{"orodha"}, Category: CategoryArray,
			Description: "Reverse a list.", Handler: piga},

		{Name: "aina", ParamNames: []string{"value"}, Category: CategorySystem,
			Description: "Name of value's runtime kind.", Handler: aina},
	}
}

// RegisterAll pre-populates table with every built-in Entry (bound to io)
// plus the kweli/uwongo/tupu sentinel constants, as spec.md §3's
// SymbolTable invariant requires happen "before any user code runs". It
// returns the Registry for introspection.
func RegisterAll(table *runtime.SymbolTable, io host.IO) *Registry {
	reg := NewRegistry()
	for _, e := range entries(io) {
		reg.Add(e)
		table.Set(e.Name, runtime.NewBuiltinFunction(e.Name, e.ParamNames, e.Handler))
	}

	table.Set("kweli", runtime.NewBoolean(true))
	table.Set("uwongo", runtime.NewBoolean(false))
	table.Set("tupu", runtime.NewNull())

	return reg
}

package builtins

import (
	"strconv"

	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/host"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// ============================================================================
// I/O built-ins: andika (print), soma (read), somaNambari (read number),
// futa (clear screen). Grounded on the teacher's Print/PrintLn handlers,
// which reach the host only through an injected interface — never os.Stdout
// directly — so these are just as testable with a host.Fake.
// ============================================================================

func andika(io host.IO) runtime.BuiltinHandler {
	return func(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
		io.WriteLine(args[0].String())
		return runtime.NewNull(), nil
	}
}

func soma(io host.IO) runtime.BuiltinHandler {
	return func(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
		prompt := ""
		if len(args) > 0 {
			prompt = args[0].String()
		}
		return runtime.NewString(io.ReadLine(prompt)), nil
	}
}

func somaNambari(io host.IO) runtime.BuiltinHandler {
	return func(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
		prompt := ""
		if len(args) > 0 {
			prompt = args[0].String()
		}
		for {
			line := io.ReadLine(prompt)
			n, err := strconv.ParseFloat(line, 64)
			if err == nil {
				return runtime.NewNumber(n), nil
			}
			io.WriteLine("Jibu yako si nambari. Jaribu tena.")
		}
	}
}

func futa(io host.IO) runtime.BuiltinHandler {
	return func(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
		io.ClearScreen()
		return runtime.NewNull(), nil
	}
}

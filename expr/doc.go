// Package expr compiles and evaluates small, side-effect free expressions
// over named variables.
//
// An expression is compiled once into a Program and then executed any
// number of times, each time against a fresh Scope holding the variables of
// one record. Programs and Contexts are immutable, so a single Program can be
// executed from many goroutines at once as long as each goroutine uses its
// own Scope.
//
// # Grammar
//
// Expressions follow a CEL-like syntax:
//
//	HR >= 40 && AB > 500
//	H / double(AB)
//	decision == "W" ? 1 : 0
//	abs(double(R) - double(ER)) > 2.0
//
// Supported literals are int (42), uint (42u), double (3.5, 1e3, .5),
// strings in single or double quotes, and true/false. Operators in order of
// increasing precedence:
//
//	?:
//	||
//	&&
//	== != < <= > >=
//	+ -
//	* / %
//	! - (unary)
//
// Comparisons do not chain: a < b < c is a syntax error.
//
// # Functions
//
// Function calls are resolved when the expression is compiled. The built-in
// set is abs, round, floor, ceil, sqrt, pow, min, max, double, int, uint,
// string and size. Additional functions can be supplied through NewContext.
//
// # Basic Usage
//
//	prog, err := expr.Compile("HR * 4 + H")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scope := expr.DefaultContext().NewScope()
//	scope.SetUint("HR", 2)
//	scope.SetUint("H", 3)
//	value, err := prog.Execute(scope)
//
// # Errors
//
// Compilation failures are returned as *CompileError, evaluation failures as
// *EvalError and failed bindings as *BindError. All of them wrap one of the
// package's sentinel errors and can be inspected with errors.Is.
package expr

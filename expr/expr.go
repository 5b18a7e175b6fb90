// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expr evaluates integer expressions into instruction words.
//
// Expressions are Starlark, evaluated with the ISA and CPU defines
// predeclared as integers, so a word can be written from its fields:
//
//	0x12345 << 12 | t0 << 7 | OPCODE_LUI
package expr

import (
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvcore/cpu"
	"github.com/ezrec/rvcore/internal"
	"github.com/ezrec/rvcore/isa"
)

// Defines returns all of the names known to expressions.
func Defines() iter.Seq2[string, string] {
	return internal.Concat2(isa.Defines(), cpu.Defines())
}

// Evaluator evaluates expressions against a fixed set of defines.
type Evaluator struct {
	predeclared starlark.StringDict
}

// NewEvaluator creates an evaluator. Defines whose value is not an
// integer are ignored.
func NewEvaluator(defines iter.Seq2[string, string]) (ev *Evaluator) {
	ev = &Evaluator{
		predeclared: starlark.StringDict{},
	}

	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		ev.predeclared[key] = starlark.MakeInt64(value)
	}

	return
}

var evaluator = NewEvaluator(Defines())

// Eval evaluates an expression using the default defines.
func Eval(expression string) (word uint32, err error) {
	return evaluator.Eval(expression)
}

// Eval evaluates an expression to a 32-bit word. Negative results down to
// -2^31 are returned in two's complement.
func (ev *Evaluator) Eval(expression string) (word uint32, err error) {
	defer func() {
		if err != nil {
			err = &ErrEval{Expr: expression, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expression + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, ev.predeclared)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < -0x8000_0000 || st_int64 > 0xffff_ffff {
		err = ErrRange
		return
	}

	word = uint32(st_int64)

	return
}

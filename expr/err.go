package expr

import (
	"errors"

	"github.com/ezrec/rvcore/translate"
)

var f = translate.From

var (
	ErrExpression = errors.New(f("not an integer"))
	ErrRange      = errors.New(f("out of 32-bit range"))
)

// ErrEval indicates the expression that failed to evaluate.
type ErrEval struct {
	Expr string
	Err  error
}

func (err *ErrEval) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrEval) Unwrap() error {
	return err.Err
}

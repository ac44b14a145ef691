package exprules

import (
	"errors"
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

type exprEngine struct{}

// Expr returns an engine backed by github.com/expr-lang/expr. Unknown names
// resolve to nil at evaluation time instead of failing compilation, so rules
// can reference fields that are registered later.
func Expr() Engine {
	return exprEngine{}
}

func (exprEngine) Compile(expression string) (Program, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}
	return exprProgram{program: program}, nil
}

type exprProgram struct {
	program *exprvm.Program
}

func (p exprProgram) Eval(env map[string]any) (bool, error) {
	out, err := exprlang.Run(p.program, env)
	if err != nil {
		return false, err
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, want bool", out)
	}
	return result, nil
}

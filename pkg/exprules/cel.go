package exprules

import (
	"errors"
	"fmt"

	celgo "github.com/google/cel-go/cel"
)

type celEngine struct{}

// CEL returns an engine backed by github.com/google/cel-go. The environment
// declares exactly value, fields, and now; expressions referencing other
// names fail at compile time.
func CEL() Engine {
	return celEngine{}
}

func (celEngine) Compile(expression string) (Program, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	env, err := celgo.NewEnv(
		celgo.Variable("value", celgo.DynType),
		celgo.Variable("fields", celgo.MapType(celgo.StringType, celgo.DynType)),
		celgo.Variable("now", celgo.TimestampType),
	)
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Join(ErrCompile, issues.Err())
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Join(ErrCompile, issues.Err())
	}
	program, err := env.Program(checked)
	if err != nil {
		return nil, errors.Join(ErrCompile, err)
	}
	return celProgram{program: program}, nil
}

type celProgram struct {
	program celgo.Program
}

func (p celProgram) Eval(env map[string]any) (bool, error) {
	out, _, err := p.program.Eval(env)
	if err != nil {
		return false, err
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, want bool", out.Value())
	}
	return result, nil
}
